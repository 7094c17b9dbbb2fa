package dao

import (
	"context"
	"time"

	"Quill/models"

	"gorm.io/gorm"
)

type FollowDAO struct {
	EdgeDAO[models.Follow]
}

func NewFollowDAO(db *gorm.DB) *FollowDAO {
	return &FollowDAO{
		EdgeDAO: newEdgeDAO(db, "follower_id", "following_id",
			func(id, follower, following uint64, at time.Time) *models.Follow {
				return &models.Follow{ID: id, FollowerID: follower, FollowingID: following, CreatedAt: at}
			}),
	}
}

func (d *FollowDAO) WithTx(tx *gorm.DB) *FollowDAO {
	return &FollowDAO{EdgeDAO: d.EdgeDAO.WithTx(tx)}
}

// IsFollowing followerID 是否关注了 followingID
func (d *FollowDAO) IsFollowing(ctx context.Context, followerID, followingID uint64) (bool, error) {
	return d.Exists(ctx, followerID, followingID)
}

// GetFollowerCount 粉丝数
func (d *FollowDAO) GetFollowerCount(ctx context.Context, userID uint64) (int64, error) {
	return d.CountByRight(ctx, userID)
}

// GetFollowingCount 关注数
func (d *FollowDAO) GetFollowingCount(ctx context.Context, userID uint64) (int64, error) {
	return d.CountByLeft(ctx, userID)
}

// ListFollowers 关注 userID 的边，最新的在前
func (d *FollowDAO) ListFollowers(ctx context.Context, userID uint64, limit int) ([]*models.Follow, error) {
	return d.ListByRight(ctx, userID, limit)
}

// ListFollowing userID 关注的边，最新的在前
func (d *FollowDAO) ListFollowing(ctx context.Context, userID uint64, limit int) ([]*models.Follow, error) {
	return d.ListByLeft(ctx, userID, limit)
}

// FollowedAmong viewer 关注了 userIDs 中的哪些人
func (d *FollowDAO) FollowedAmong(ctx context.Context, viewerID uint64, userIDs []uint64) (map[uint64]bool, error) {
	return d.RightsOf(ctx, viewerID, userIDs)
}
