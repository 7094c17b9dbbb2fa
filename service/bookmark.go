package service

import (
	"context"

	"Quill/dao"
	"Quill/models"
	"Quill/types"

	"gorm.io/gorm"
)

var _ IBookmarkService = (*BookmarkService)(nil)

type IBookmarkService interface {
	ToggleBookmark(ctx context.Context, actorID, articleID uint64) (*types.ToggleBookmarkResult, error)
	HasBookmarked(ctx context.Context, actorID, articleID uint64) bool
	GetBookmarkCount(ctx context.Context, articleID uint64) (int64, error)
	ListBookmarkedArticles(ctx context.Context, userID uint64, limit int) ([]*types.ArticleSummary, error)
}

type BookmarkService struct {
	DB          *gorm.DB
	BookmarkDAO *dao.BookmarkDAO
	ArticleDAO  *dao.ArticleDAO
	StatsDAO    *dao.ArticleStatsDAO
	Publisher   EventPublisher
}

func (s *BookmarkService) engine() interaction[models.Bookmark] {
	return interaction[models.Bookmark]{
		relation:   "bookmark",
		eventOn:    types.EventBookmark,
		eventOff:   types.EventUnbookmark,
		statColumn: "bookmark_count",
		db:         s.DB,
		edges:      s.BookmarkDAO.ArticleInteractionDAO,
		articles:   s.ArticleDAO,
		stats:      s.StatsDAO,
		publisher:  s.Publisher,
	}
}

func (s *BookmarkService) ToggleBookmark(ctx context.Context, actorID, articleID uint64) (*types.ToggleBookmarkResult, error) {
	state, err := s.engine().toggle(ctx, actorID, articleID)
	if err != nil {
		return nil, err
	}
	return &types.ToggleBookmarkResult{Bookmarked: state.present}, nil
}

func (s *BookmarkService) HasBookmarked(ctx context.Context, actorID, articleID uint64) bool {
	return s.engine().has(ctx, actorID, articleID)
}

func (s *BookmarkService) GetBookmarkCount(ctx context.Context, articleID uint64) (int64, error) {
	return s.engine().count(ctx, articleID)
}

// ListBookmarkedArticles 最近收藏的在前，文章已删除的跳过
func (s *BookmarkService) ListBookmarkedArticles(ctx context.Context, userID uint64, limit int) ([]*types.ArticleSummary, error) {
	ids, err := s.engine().articleIDs(ctx, userID, normalizeLimit(limit))
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*types.ArticleSummary{}, nil
	}

	articles, err := degrade("bookmark.articles", []*models.Article(nil), unavailable, func() ([]*models.Article, error) {
		return s.ArticleDAO.FindOrdered(ctx, ids)
	})
	if err != nil {
		return nil, guard("bookmark.articles", err)
	}

	list := make([]*types.ArticleSummary, 0, len(articles))
	for _, a := range articles {
		list = append(list, &types.ArticleSummary{
			ID:        a.ID,
			AuthorID:  a.AuthorID,
			Title:     a.Title,
			Slug:      a.Slug,
			CreatedAt: a.CreatedAt,
		})
	}
	return list, nil
}
