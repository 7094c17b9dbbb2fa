package models

import "time"

// Bookmark 收藏记录，结构与 Like 相同但生命周期独立
// 唯一键: user_id + article_id
type Bookmark struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_bookmark_user_article,priority:1" json:"user_id"`
	ArticleID uint64    `gorm:"column:article_id;not null;uniqueIndex:uk_bookmark_user_article,priority:2;index:idx_bookmark_article" json:"article_id"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (Bookmark) TableName() string { return "bookmarks" }
