package dao

import (
	"context"
	"time"

	"Quill/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserStatsDAO 冗余计数，只在切换之后尽力刷新
type UserStatsDAO struct {
	Repo[models.UserStats]
}

func NewUserStatsDAO(db *gorm.DB) *UserStatsDAO {
	return &UserStatsDAO{
		Repo: NewRepo[models.UserStats](db),
	}
}

// SetFollowCounts 用精确值覆盖
func (d *UserStatsDAO) SetFollowCounts(ctx context.Context, userID uint64, followers, following int64) error {
	stats := &models.UserStats{
		UserID:         userID,
		FollowerCount:  followers,
		FollowingCount: following,
		UpdatedAt:      time.Now(),
	}
	return d.Db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"follower_count", "following_count", "updated_at"}),
	}).Create(stats).Error
}
