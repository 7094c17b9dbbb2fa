package models

import "time"

// ArticleStats 文章冗余计数，同 UserStats 一样只是参考值
type ArticleStats struct {
	ArticleID     uint64    `gorm:"column:article_id;primaryKey;autoIncrement:false" json:"article_id"`
	LikeCount     int64     `gorm:"column:like_count;not null;default:0" json:"like_count"`
	BookmarkCount int64     `gorm:"column:bookmark_count;not null;default:0" json:"bookmark_count"`
	UpdatedAt     time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (ArticleStats) TableName() string {
	return "article_stats"
}

// AllModels 建表顺序
func AllModels() []any {
	return []any{
		&User{}, &Article{}, &Comment{},
		&Follow{}, &Like{}, &Bookmark{},
		&UserStats{}, &ArticleStats{},
	}
}
