package dao

import (
	"context"

	"Quill/models"

	"gorm.io/gorm"
)

// ArticleDAO 文章由写作模块维护，这里只读
type ArticleDAO struct {
	Repo[models.Article]
}

func NewArticleDAO(db *gorm.DB) *ArticleDAO {
	return &ArticleDAO{
		Repo: NewRepo[models.Article](db),
	}
}

func (d *ArticleDAO) Exists(ctx context.Context, id uint64) (bool, error) {
	return d.IsExist(ctx, "id = ?", id)
}

// IDsByAuthor 作者的全部文章 id
func (d *ArticleDAO) IDsByAuthor(ctx context.Context, authorID uint64) ([]uint64, error) {
	ids := make([]uint64, 0)
	err := d.Db.WithContext(ctx).
		Model(&models.Article{}).
		Where("author_id = ?", authorID).
		Pluck("id", &ids).Error
	return ids, err
}

// FindOrdered 按 ids 顺序返回，已不存在的文章跳过
func (d *ArticleDAO) FindOrdered(ctx context.Context, ids []uint64) ([]*models.Article, error) {
	items, err := d.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint64]*models.Article, len(items))
	for _, a := range items {
		byID[a.ID] = a
	}
	ordered := make([]*models.Article, 0, len(items))
	for _, id := range ids {
		if a, ok := byID[id]; ok {
			ordered = append(ordered, a)
		}
	}
	return ordered, nil
}
