package service

import (
	"fmt"
	"time"

	"Quill/models"
	"Quill/types"

	"gorm.io/gorm"
)

func (s *serviceSuite) TestToggleLike_Symmetry() {
	author := s.user("author")
	reader := s.user("reader")
	art := s.article(author.ID, "hello")

	res, err := s.likeSvc.ToggleLike(s.ctx, reader.ID, art.ID)
	s.Require().NoError(err)
	s.Equal(&types.ToggleLikeResult{Liked: true, LikeCount: 1}, res)
	s.True(s.likeSvc.HasLiked(s.ctx, reader.ID, art.ID))

	res, err = s.likeSvc.ToggleLike(s.ctx, reader.ID, art.ID)
	s.Require().NoError(err)
	s.Equal(&types.ToggleLikeResult{Liked: false, LikeCount: 0}, res)
	s.False(s.likeSvc.HasLiked(s.ctx, reader.ID, art.ID))
	s.Zero(s.rows(&models.Like{}))

	s.Equal([]string{types.EventLike, types.EventUnlike}, s.publisher.kinds())
}

func (s *serviceSuite) TestToggleLike_ConcurrentInsertIsAbsorbed() {
	author := s.user("author")
	reader := s.user("reader")
	art := s.article(author.ID, "raced")

	// 查询点赞之后、插入之前另一个请求写入了同一条记录
	fired := false
	s.Require().NoError(s.db.Callback().Query().After("gorm:query").Register("test:concurrent_like", func(tx *gorm.DB) {
		if fired || tx.Statement.Table != "likes" {
			return
		}
		fired = true
		s.Require().NoError(tx.Session(&gorm.Session{NewDB: true}).Exec(
			"INSERT INTO likes (id, user_id, article_id, created_at) VALUES (?, ?, ?, ?)",
			9, reader.ID, art.ID, time.Now(),
		).Error)
	}))

	res, err := s.likeSvc.ToggleLike(s.ctx, reader.ID, art.ID)
	s.Require().NoError(err)
	s.True(fired)
	s.Equal(&types.ToggleLikeResult{Liked: true, LikeCount: 1}, res)
	s.EqualValues(1, s.rows(&models.Like{}))
	s.Empty(s.publisher.kinds())

	var stats models.ArticleStats
	s.Require().NoError(s.db.Where("article_id = ?", art.ID).Take(&stats).Error)
	s.EqualValues(1, stats.LikeCount)
}

func (s *serviceSuite) TestToggleLike_SelfLikeAllowed() {
	author := s.user("author")
	art := s.article(author.ID, "mine")

	res, err := s.likeSvc.ToggleLike(s.ctx, author.ID, art.ID)
	s.Require().NoError(err)
	s.True(res.Liked)
	s.EqualValues(1, res.LikeCount)
}

func (s *serviceSuite) TestToggleLike_CountConsistency() {
	author := s.user("author")
	art := s.article(author.ID, "popular")

	fans := make([]*models.User, 0, 6)
	for i := 0; i < 6; i++ {
		fan := s.user(fmt.Sprintf("fan%d", i))
		fans = append(fans, fan)
		res, err := s.likeSvc.ToggleLike(s.ctx, fan.ID, art.ID)
		s.Require().NoError(err)
		s.EqualValues(i+1, res.LikeCount)
	}
	for _, fan := range fans[:2] {
		_, err := s.likeSvc.ToggleLike(s.ctx, fan.ID, art.ID)
		s.Require().NoError(err)
	}

	n, err := s.likeSvc.GetLikeCount(s.ctx, art.ID)
	s.Require().NoError(err)
	s.EqualValues(4, n)

	var stats models.ArticleStats
	s.Require().NoError(s.db.Where("article_id = ?", art.ID).Take(&stats).Error)
	s.EqualValues(4, stats.LikeCount)
}

func (s *serviceSuite) TestToggleLike_Rejections() {
	reader := s.user("reader")

	_, err := s.likeSvc.ToggleLike(s.ctx, reader.ID, 424242)
	s.requireKind(err, KindNotFound)
	s.Equal("Article not found", err.Error())
	s.Zero(s.rows(&models.Like{}))

	author := s.user("author")
	art := s.article(author.ID, "post")
	_, err = s.likeSvc.ToggleLike(s.ctx, 0, art.ID)
	s.requireKind(err, KindUnauthorized)
	s.Zero(s.rows(&models.Like{}))
}

func (s *serviceSuite) TestLikeReads_AnonymousAndUnavailable() {
	author := s.user("author")
	art := s.article(author.ID, "post")
	_, err := s.likeSvc.ToggleLike(s.ctx, author.ID, art.ID)
	s.Require().NoError(err)

	s.False(s.likeSvc.HasLiked(s.ctx, 0, art.ID))
	ids, err := s.likeSvc.ListLikedArticleIDs(s.ctx, author.ID)
	s.Require().NoError(err)
	s.Equal([]uint64{art.ID}, ids)

	s.closeStore()
	s.False(s.likeSvc.HasLiked(s.ctx, author.ID, art.ID))

	_, err = s.likeSvc.GetLikeCount(s.ctx, art.ID)
	s.requireKind(err, KindUnavailable)

	ids, err = s.likeSvc.ListLikedArticleIDs(s.ctx, author.ID)
	s.Require().NoError(err)
	s.Empty(ids)
}

func (s *serviceSuite) TestToggleBookmark() {
	author := s.user("author")
	reader := s.user("reader")
	first := s.article(author.ID, "first")
	second := s.article(author.ID, "second")

	res, err := s.bookmarkSvc.ToggleBookmark(s.ctx, reader.ID, first.ID)
	s.Require().NoError(err)
	s.True(res.Bookmarked)
	res, err = s.bookmarkSvc.ToggleBookmark(s.ctx, reader.ID, second.ID)
	s.Require().NoError(err)
	s.True(res.Bookmarked)
	s.True(s.bookmarkSvc.HasBookmarked(s.ctx, reader.ID, first.ID))

	n, err := s.bookmarkSvc.GetBookmarkCount(s.ctx, first.ID)
	s.Require().NoError(err)
	s.EqualValues(1, n)

	list, err := s.bookmarkSvc.ListBookmarkedArticles(s.ctx, reader.ID, 0)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.ElementsMatch([]uint64{first.ID, second.ID}, []uint64{list[0].ID, list[1].ID})

	res, err = s.bookmarkSvc.ToggleBookmark(s.ctx, reader.ID, first.ID)
	s.Require().NoError(err)
	s.False(res.Bookmarked)
	s.False(s.bookmarkSvc.HasBookmarked(s.ctx, reader.ID, first.ID))

	anon, err := s.bookmarkSvc.ListBookmarkedArticles(s.ctx, 0, 10)
	s.Require().NoError(err)
	s.Empty(anon)

	_, err = s.bookmarkSvc.ToggleBookmark(s.ctx, reader.ID, 1)
	s.requireKind(err, KindNotFound)

	s.closeStore()
	down, err := s.bookmarkSvc.ListBookmarkedArticles(s.ctx, reader.ID, 10)
	s.Require().NoError(err)
	s.Empty(down)
	s.False(s.bookmarkSvc.HasBookmarked(s.ctx, reader.ID, second.ID))
}
