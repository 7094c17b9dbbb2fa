package models

import (
	"time"
)

// Follow 关注边：FollowerID 关注 FollowingID
// 唯一键: follower_id + following_id，取消关注直接删除
type Follow struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	FollowerID  uint64    `gorm:"column:follower_id;not null;uniqueIndex:uk_follower_following,priority:1" json:"follower_id"`
	FollowingID uint64    `gorm:"column:following_id;not null;uniqueIndex:uk_follower_following,priority:2;index:idx_following_created,priority:1" json:"following_id"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;index:idx_following_created,priority:2" json:"created_at"`
}

func (Follow) TableName() string {
	return "follows"
}
