package models

import (
	"time"
)

// UserStats 冗余计数，只供列表预览使用，可能与关注表存在偏差
type UserStats struct {
	UserID         uint64    `gorm:"column:user_id;primaryKey;autoIncrement:false" json:"user_id"`
	FollowerCount  int64     `gorm:"column:follower_count;not null;default:0" json:"follower_count"`
	FollowingCount int64     `gorm:"column:following_count;not null;default:0" json:"following_count"`
	UpdatedAt      time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (UserStats) TableName() string {
	return "user_stats"
}
