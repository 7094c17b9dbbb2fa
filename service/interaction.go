package service

import (
	"context"

	"Quill/dao"
	"Quill/pkg/log"
	"Quill/pkg/metrics"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// interaction 点赞与收藏共用的切换流程，只在关系表和事件名上不同
type interaction[T any] struct {
	relation   string
	eventOn    string
	eventOff   string
	statColumn string

	db        *gorm.DB
	edges     dao.ArticleInteractionDAO[T]
	articles  *dao.ArticleDAO
	stats     *dao.ArticleStatsDAO
	publisher EventPublisher
}

type interactionState struct {
	present bool
	count   int64
}

func (e interaction[T]) toggle(ctx context.Context, actorID, articleID uint64) (interactionState, error) {
	if actorID == 0 {
		return interactionState{}, ErrUnauthorized()
	}
	exist, err := e.articles.Exists(ctx, articleID)
	if err != nil {
		return interactionState{}, guard(e.relation+".check_article", err)
	}
	if !exist {
		return interactionState{}, ErrNotFound("Article")
	}

	var (
		edge  dao.ToggleResult
		state interactionState
	)
	err = e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		edge, err = e.edges.Toggle(ctx, tx, actorID, articleID)
		if err != nil {
			return err
		}
		state.count, err = e.edges.WithTx(tx).CountByRight(ctx, articleID)
		return err
	})
	if err != nil {
		return interactionState{}, guard(e.relation+".toggle", err)
	}
	state.present = edge.Present

	if edge.Absorbed {
		if n, err := e.edges.CountByArticle(ctx, articleID); err == nil {
			state.count = n
		} else {
			log.L.Warn("recount after absorbed toggle failed",
				zap.String("relation", e.relation), zap.Uint64("article_id", articleID), zap.Error(err))
		}
	}

	if e.stats != nil {
		if err := e.stats.SetCount(ctx, articleID, e.statColumn, state.count); err != nil {
			log.L.Warn("refresh article stats failed",
				zap.String("relation", e.relation), zap.Uint64("article_id", articleID), zap.Error(err))
		}
	}

	metrics.ObserveToggle(e.relation, state.present)
	if !edge.Absorbed {
		eventType := e.eventOff
		if state.present {
			eventType = e.eventOn
		}
		publish(ctx, e.publisher, eventType, actorID, articleID)
	}

	return state, nil
}

func (e interaction[T]) has(ctx context.Context, userID, articleID uint64) bool {
	if userID == 0 {
		return false
	}
	return soft(e.relation+".has", false, func() (bool, error) {
		return e.edges.Has(ctx, userID, articleID)
	})
}

func (e interaction[T]) count(ctx context.Context, articleID uint64) (int64, error) {
	n, err := e.edges.CountByArticle(ctx, articleID)
	if err != nil {
		return 0, guard(e.relation+".count", err)
	}
	return n, nil
}

// articleIDs 未登录或存储不可达返回空列表，其他错误上抛
func (e interaction[T]) articleIDs(ctx context.Context, userID uint64, limit int) ([]uint64, error) {
	if userID == 0 {
		return []uint64{}, nil
	}
	ids, err := degrade(e.relation+".article_ids", []uint64{}, unavailable, func() ([]uint64, error) {
		return e.edges.ArticleIDsByUser(ctx, userID, limit)
	})
	if err != nil {
		return nil, guard(e.relation+".article_ids", err)
	}
	return ids, nil
}
