package rocketmq

import (
	"context"
	"encoding/json"
	"strconv"

	"Quill/config"
	"Quill/pkg/log"
	"Quill/types"

	rmq_client "github.com/apache/rocketmq-clients/golang/v5"
	"github.com/apache/rocketmq-clients/golang/v5/credentials"
	"go.uber.org/zap"
)

// Producer 把互动事件投递到 RocketMQ，以关系类型作为 tag
type Producer struct {
	topic    string
	producer rmq_client.Producer
}

// NewProducer 未配置 endpoint 时返回 nil，调用方改用空实现
func NewProducer(cfg *config.RocketMQConfig) (*Producer, error) {
	if cfg == nil || cfg.Endpoint == "" {
		return nil, nil
	}
	p, err := rmq_client.NewProducer(&rmq_client.Config{
		Endpoint: cfg.Endpoint,
		Credentials: &credentials.SessionCredentials{
			AccessKey:    cfg.AccessKey,
			AccessSecret: cfg.SecretKey,
		},
	}, rmq_client.WithTopics(cfg.Topic))
	if err != nil {
		return nil, err
	}
	if err := p.Start(); err != nil {
		return nil, err
	}
	log.L.Info("init producer success", zap.String("endpoint", cfg.Endpoint), zap.String("topic", cfg.Topic))
	return &Producer{topic: cfg.Topic, producer: p}, nil
}

func (p *Producer) Publish(ctx context.Context, event *types.InteractionEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	msg := &rmq_client.Message{
		Topic: p.topic,
		Body:  body,
	}
	msg.SetTag(event.Type)
	msg.SetKeys(strconv.FormatUint(event.ActorID, 10) + ":" + strconv.FormatUint(event.TargetID, 10))

	receipts, err := p.producer.Send(ctx, msg)
	if err != nil {
		return err
	}
	for _, r := range receipts {
		log.L.Debug("send message success", zap.String("msg_id", r.MessageID))
	}
	return nil
}

func (p *Producer) Close() error {
	return p.producer.GracefulStop()
}
