package service

import (
	"context"
	"time"

	"Quill/pkg/log"
	"Quill/types"

	"go.uber.org/zap"
)

const publishTimeout = 3 * time.Second

// EventPublisher 投递互动事件，投递失败不影响业务结果
type EventPublisher interface {
	Publish(ctx context.Context, event *types.InteractionEvent) error
}

// NopPublisher 未配置消息队列时使用
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, *types.InteractionEvent) error { return nil }

func publish(ctx context.Context, p EventPublisher, eventType string, actorID, targetID uint64) {
	if p == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	event := &types.InteractionEvent{
		Type:       eventType,
		ActorID:    actorID,
		TargetID:   targetID,
		OccurredAt: time.Now(),
	}
	if err := p.Publish(ctx, event); err != nil {
		log.L.Warn("publish interaction event failed",
			zap.String("type", eventType),
			zap.Uint64("actor_id", actorID),
			zap.Uint64("target_id", targetID),
			zap.Error(err),
		)
	}
}
