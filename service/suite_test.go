package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"Quill/dao"
	"Quill/models"
	"Quill/pkg/database"
	"Quill/pkg/snowflake"
	"Quill/types"

	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []*types.InteractionEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e *types.InteractionEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) kinds() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

// serviceSuite 每个用例一个全新的内存库
type serviceSuite struct {
	suite.Suite
	ctx       context.Context
	db        *gorm.DB
	publisher *recordingPublisher

	users     *dao.UserDAO
	articles  *dao.ArticleDAO
	follows   *dao.FollowDAO
	likes     *dao.LikeDAO
	bookmarks *dao.BookmarkDAO

	followSvc   *FollowService
	likeSvc     *LikeService
	bookmarkSvc *BookmarkService
	profileSvc  *ProfileService
}

func (s *serviceSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)
	sqlDB, err := db.DB()
	s.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)
	s.Require().NoError(database.Migrate(db))

	s.ctx = context.Background()
	s.db = db
	s.publisher = &recordingPublisher{}

	s.users = dao.NewUserDAO(db)
	s.articles = dao.NewArticleDAO(db)
	s.follows = dao.NewFollowDAO(db)
	s.likes = dao.NewLikeDAO(db)
	s.bookmarks = dao.NewBookmarkDAO(db)
	articleStats := dao.NewArticleStatsDAO(db)

	s.followSvc = &FollowService{
		DB:        db,
		FollowDAO: s.follows,
		UserDAO:   s.users,
		StatsDAO:  dao.NewUserStatsDAO(db),
		Publisher: s.publisher,
	}
	s.likeSvc = &LikeService{
		DB:         db,
		LikeDAO:    s.likes,
		ArticleDAO: s.articles,
		StatsDAO:   articleStats,
		Publisher:  s.publisher,
	}
	s.bookmarkSvc = &BookmarkService{
		DB:          db,
		BookmarkDAO: s.bookmarks,
		ArticleDAO:  s.articles,
		StatsDAO:    articleStats,
		Publisher:   s.publisher,
	}
	s.profileSvc = &ProfileService{
		UserDAO:     s.users,
		ArticleDAO:  s.articles,
		CommentDAO:  dao.NewCommentDAO(db),
		FollowDAO:   s.follows,
		LikeDAO:     s.likes,
		BookmarkDAO: s.bookmarks,
	}
}

func (s *serviceSuite) TearDownTest() {
	if sqlDB, err := s.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// closeStore 模拟存储不可达
func (s *serviceSuite) closeStore() {
	sqlDB, err := s.db.DB()
	s.Require().NoError(err)
	s.Require().NoError(sqlDB.Close())
}

func (s *serviceSuite) user(username string) *models.User {
	now := time.Now()
	u := &models.User{
		ID:        snowflake.GenID(),
		Username:  username,
		Email:     username + "@example.com",
		Role:      models.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.Require().NoError(s.db.Create(u).Error)
	return u
}

func (s *serviceSuite) article(authorID uint64, slug string) *models.Article {
	a := &models.Article{
		ID:        snowflake.GenID(),
		AuthorID:  authorID,
		Title:     slug,
		Slug:      slug,
		Published: true,
	}
	s.Require().NoError(s.db.Create(a).Error)
	return a
}

func (s *serviceSuite) rows(model any) int64 {
	var n int64
	s.Require().NoError(s.db.Model(model).Count(&n).Error)
	return n
}

func (s *serviceSuite) requireKind(err error, kind ErrorKind) {
	s.Require().Error(err)
	var e *Error
	s.Require().True(errors.As(err, &e), "expected *service.Error, got %T", err)
	s.Equal(kind, e.Kind)
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(serviceSuite))
}
