package models

import "time"

// Article 文章正文由写作模块维护，这里只需要作者与发布状态
type Article struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	AuthorID  uint64    `gorm:"column:author_id;not null;index:idx_author_published,priority:1" json:"author_id"`
	Title     string    `gorm:"column:title;type:varchar(200);not null;default:''" json:"title"`
	Slug      string    `gorm:"column:slug;type:varchar(255);not null;uniqueIndex:uk_slug" json:"slug"`
	Published bool      `gorm:"column:published;not null;default:false;index:idx_author_published,priority:2" json:"published"`
	CreatedAt time.Time `gorm:"column:created_at;index:idx_created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Article) TableName() string {
	return "articles"
}
