package models

import (
	"time"
)

// Comment 评论，ParentID 为 0 表示顶级评论
type Comment struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	ArticleID uint64    `gorm:"column:article_id;not null;index:idx_article_id" json:"article_id"`
	AuthorID  uint64    `gorm:"column:author_id;not null;index:idx_author_id" json:"author_id"`
	ParentID  uint64    `gorm:"column:parent_id;not null;default:0" json:"parent_id"`
	Body      string    `gorm:"column:body;type:text;not null" json:"body"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Comment) TableName() string {
	return "comments"
}
