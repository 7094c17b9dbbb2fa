package service

import (
	"context"

	"Quill/dao"
	"Quill/models"
	"Quill/types"

	"gorm.io/gorm"
)

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	ToggleLike(ctx context.Context, actorID, articleID uint64) (*types.ToggleLikeResult, error)
	HasLiked(ctx context.Context, actorID, articleID uint64) bool
	GetLikeCount(ctx context.Context, articleID uint64) (int64, error)
	ListLikedArticleIDs(ctx context.Context, userID uint64) ([]uint64, error)
}

type LikeService struct {
	DB         *gorm.DB
	LikeDAO    *dao.LikeDAO
	ArticleDAO *dao.ArticleDAO
	StatsDAO   *dao.ArticleStatsDAO
	Publisher  EventPublisher
}

func (s *LikeService) engine() interaction[models.Like] {
	return interaction[models.Like]{
		relation:   "like",
		eventOn:    types.EventLike,
		eventOff:   types.EventUnlike,
		statColumn: "like_count",
		db:         s.DB,
		edges:      s.LikeDAO.ArticleInteractionDAO,
		articles:   s.ArticleDAO,
		stats:      s.StatsDAO,
		publisher:  s.Publisher,
	}
}

// ToggleLike 点赞/取消点赞，允许给自己的文章点赞
func (s *LikeService) ToggleLike(ctx context.Context, actorID, articleID uint64) (*types.ToggleLikeResult, error) {
	state, err := s.engine().toggle(ctx, actorID, articleID)
	if err != nil {
		return nil, err
	}
	return &types.ToggleLikeResult{Liked: state.present, LikeCount: state.count}, nil
}

func (s *LikeService) HasLiked(ctx context.Context, actorID, articleID uint64) bool {
	return s.engine().has(ctx, actorID, articleID)
}

func (s *LikeService) GetLikeCount(ctx context.Context, articleID uint64) (int64, error) {
	return s.engine().count(ctx, articleID)
}

// ListLikedArticleIDs 用户点赞过的全部文章
func (s *LikeService) ListLikedArticleIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	return s.engine().articleIDs(ctx, userID, 0)
}
