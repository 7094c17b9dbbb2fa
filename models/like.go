package models

import "time"

// Like 点赞记录
// 唯一键: user_id + article_id
type Like struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_like_user_article,priority:1" json:"user_id"`
	ArticleID uint64    `gorm:"column:article_id;not null;uniqueIndex:uk_like_user_article,priority:2;index:idx_like_article" json:"article_id"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (Like) TableName() string { return "likes" }
