package dao

import (
	"context"
	"time"

	"Quill/models"

	"gorm.io/gorm"
)

// ArticleInteractionDAO 用户对文章的一类互动（点赞、收藏），left=user_id right=article_id
type ArticleInteractionDAO[T any] struct {
	EdgeDAO[T]
}

func newArticleInteractionDAO[T any](db *gorm.DB, build func(id, userID, articleID uint64, at time.Time) *T) ArticleInteractionDAO[T] {
	return ArticleInteractionDAO[T]{EdgeDAO: newEdgeDAO(db, "user_id", "article_id", build)}
}

func (d ArticleInteractionDAO[T]) Has(ctx context.Context, userID, articleID uint64) (bool, error) {
	return d.Exists(ctx, userID, articleID)
}

// CountByArticle 文章被互动的次数
func (d ArticleInteractionDAO[T]) CountByArticle(ctx context.Context, articleID uint64) (int64, error) {
	return d.CountByRight(ctx, articleID)
}

// CountByUser 用户发起的互动次数
func (d ArticleInteractionDAO[T]) CountByUser(ctx context.Context, userID uint64) (int64, error) {
	return d.CountByLeft(ctx, userID)
}

// CountGroupByArticle 每篇文章各自的次数
func (d ArticleInteractionDAO[T]) CountGroupByArticle(ctx context.Context, articleIDs []uint64) (map[uint64]int64, error) {
	return d.CountGroupByRight(ctx, articleIDs)
}

// ArticleIDsByUser 用户互动过的文章 id，最新的在前，limit<=0 表示不限
func (d ArticleInteractionDAO[T]) ArticleIDsByUser(ctx context.Context, userID uint64, limit int) ([]uint64, error) {
	ids := make([]uint64, 0)
	q := d.Db.WithContext(ctx).
		Model(d.model()).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Pluck("article_id", &ids).Error
	return ids, err
}

type LikeDAO struct {
	ArticleInteractionDAO[models.Like]
}

func NewLikeDAO(db *gorm.DB) *LikeDAO {
	return &LikeDAO{
		ArticleInteractionDAO: newArticleInteractionDAO(db, func(id, userID, articleID uint64, at time.Time) *models.Like {
			return &models.Like{ID: id, UserID: userID, ArticleID: articleID, CreatedAt: at}
		}),
	}
}

func (d *LikeDAO) WithTx(tx *gorm.DB) *LikeDAO {
	return &LikeDAO{ArticleInteractionDAO: ArticleInteractionDAO[models.Like]{EdgeDAO: d.EdgeDAO.WithTx(tx)}}
}

type BookmarkDAO struct {
	ArticleInteractionDAO[models.Bookmark]
}

func NewBookmarkDAO(db *gorm.DB) *BookmarkDAO {
	return &BookmarkDAO{
		ArticleInteractionDAO: newArticleInteractionDAO(db, func(id, userID, articleID uint64, at time.Time) *models.Bookmark {
			return &models.Bookmark{ID: id, UserID: userID, ArticleID: articleID, CreatedAt: at}
		}),
	}
}

func (d *BookmarkDAO) WithTx(tx *gorm.DB) *BookmarkDAO {
	return &BookmarkDAO{ArticleInteractionDAO: ArticleInteractionDAO[models.Bookmark]{EdgeDAO: d.EdgeDAO.WithTx(tx)}}
}
