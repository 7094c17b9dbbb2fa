package dao

import (
	"context"
	"time"

	"Quill/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ArticleStatsDAO struct {
	Repo[models.ArticleStats]
}

func NewArticleStatsDAO(db *gorm.DB) *ArticleStatsDAO {
	return &ArticleStatsDAO{
		Repo: NewRepo[models.ArticleStats](db),
	}
}

// SetCount 覆盖某一列计数，column 只能是 like_count / bookmark_count
func (d *ArticleStatsDAO) SetCount(ctx context.Context, articleID uint64, column string, count int64) error {
	now := time.Now()
	stats := &models.ArticleStats{ArticleID: articleID, UpdatedAt: now}
	switch column {
	case "like_count":
		stats.LikeCount = count
	case "bookmark_count":
		stats.BookmarkCount = count
	default:
		return gorm.ErrInvalidField
	}
	return d.Db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "article_id"}},
		DoUpdates: clause.AssignmentColumns([]string{column, "updated_at"}),
	}).Create(stats).Error
}
