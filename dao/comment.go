package dao

import (
	"context"

	"Quill/models"

	"gorm.io/gorm"
)

// CommentDAO 评论只读，用于统计
type CommentDAO struct {
	Repo[models.Comment]
}

func NewCommentDAO(db *gorm.DB) *CommentDAO {
	return &CommentDAO{
		Repo: NewRepo[models.Comment](db),
	}
}

// CountGroupByArticle 每篇文章的评论数（含回复）
func (d *CommentDAO) CountGroupByArticle(ctx context.Context, articleIDs []uint64) (map[uint64]int64, error) {
	return countGroupBy[models.Comment](ctx, d.Db, "article_id", articleIDs)
}
