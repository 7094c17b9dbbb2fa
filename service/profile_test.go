package service

import (
	"fmt"
	"strings"
	"time"

	"Quill/models"
	"Quill/types"
)

func (s *serviceSuite) TestGetUserProfile_CountsFromJoinTables() {
	author := s.user("author")
	reader := s.user("reader")
	articles := []*models.Article{
		s.article(author.ID, "a1"),
		s.article(author.ID, "a2"),
		s.article(author.ID, "a3"),
	}

	for i, likes := range []int{2, 0, 5} {
		for j := 0; j < likes; j++ {
			fan := s.user(fmt.Sprintf("fan-%d-%d", i, j))
			_, err := s.likeSvc.ToggleLike(s.ctx, fan.ID, articles[i].ID)
			s.Require().NoError(err)
		}
	}
	// 冗余统计故意写错，资料页不能读它
	s.Require().NoError(s.db.Save(&models.ArticleStats{ArticleID: articles[0].ID, LikeCount: 99, UpdatedAt: time.Now()}).Error)

	for i := 0; i < 3; i++ {
		s.Require().NoError(s.db.Create(&models.Comment{ID: uint64(1000 + i), ArticleID: articles[2].ID, AuthorID: reader.ID, Body: "nice"}).Error)
	}

	_, err := s.followSvc.ToggleFollow(s.ctx, reader.ID, author.ID)
	s.Require().NoError(err)
	_, err = s.likeSvc.ToggleLike(s.ctx, author.ID, articles[1].ID)
	s.Require().NoError(err)
	_, err = s.bookmarkSvc.ToggleBookmark(s.ctx, author.ID, articles[0].ID)
	s.Require().NoError(err)

	p, err := s.profileSvc.GetUserProfile(s.ctx, "author")
	s.Require().NoError(err)
	s.Require().NotNil(p)
	s.Equal(author.ID, p.ID)
	s.EqualValues(3, p.Counts.Articles)
	s.EqualValues(1, p.Counts.Followers)
	s.EqualValues(0, p.Counts.Following)
	s.EqualValues(1, p.Counts.Bookmarks)
	s.EqualValues(1, p.Counts.LikesGiven)
	s.EqualValues(3, p.Counts.CommentsReceived)
	// 2 + 0 + 5，再加作者自己点赞的一次
	s.EqualValues(8, p.Counts.LikesReceived)
}

func (s *serviceSuite) TestGetUserProfile_LikesReceivedIgnoresStaleCache() {
	author := s.user("author")
	articles := []*models.Article{
		s.article(author.ID, "x1"),
		s.article(author.ID, "x2"),
		s.article(author.ID, "x3"),
	}
	for i, likes := range []int{2, 0, 5} {
		for j := 0; j < likes; j++ {
			fan := s.user(fmt.Sprintf("reader-%d-%d", i, j))
			_, err := s.likeSvc.ToggleLike(s.ctx, fan.ID, articles[i].ID)
			s.Require().NoError(err)
		}
	}
	s.Require().NoError(s.db.Model(&models.ArticleStats{}).Where("article_id = ?", articles[2].ID).Update("like_count", 99).Error)

	p, err := s.profileSvc.GetUserProfileByID(s.ctx, author.ID)
	s.Require().NoError(err)
	s.Require().NotNil(p)
	s.EqualValues(7, p.Counts.LikesReceived)
}

func (s *serviceSuite) TestGetUserProfile_MissingAndUnavailable() {
	p, err := s.profileSvc.GetUserProfile(s.ctx, "ghost")
	s.Require().NoError(err)
	s.Nil(p)

	p, err = s.profileSvc.GetCurrentUserProfile(s.ctx, 0)
	s.Require().NoError(err)
	s.Nil(p)

	s.user("alice")
	s.closeStore()
	p, err = s.profileSvc.GetUserProfile(s.ctx, "alice")
	s.Require().NoError(err)
	s.Nil(p)
}

func (s *serviceSuite) TestListPopularAuthors() {
	busy := s.user("busy")
	quiet := s.user("quiet")
	s.user("lurker")
	s.article(busy.ID, "b1")
	s.article(busy.ID, "b2")
	s.article(quiet.ID, "q1")
	_, err := s.followSvc.ToggleFollow(s.ctx, quiet.ID, busy.ID)
	s.Require().NoError(err)

	list, err := s.profileSvc.ListPopularAuthors(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("busy", list[0].Username)
	s.EqualValues(2, list[0].ArticleCount)
	s.EqualValues(1, list[0].FollowerCount)
	s.Equal("quiet", list[1].Username)

	s.closeStore()
	list, err = s.profileSvc.ListPopularAuthors(s.ctx, 3)
	s.Require().NoError(err)
	s.Empty(list)
}

func (s *serviceSuite) TestResolveUserID() {
	alice := s.user("alice")
	id, err := s.profileSvc.ResolveUserID(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(alice.ID, id)

	_, err = s.profileSvc.ResolveUserID(s.ctx, "nobody")
	s.requireKind(err, KindNotFound)
}

func (s *serviceSuite) TestUpdateProfile() {
	alice := s.user("alice")
	s.Require().NoError(s.db.Model(&models.User{}).Where("id = ?", alice.ID).
		Updates(map[string]any{"bio": "old bio", "avatar_url": "https://cdn.example.com/old.png"}).Error)

	_, err := s.profileSvc.UpdateProfile(s.ctx, 0, &types.UpdateProfileReq{})
	s.requireKind(err, KindUnauthorized)

	long := strings.Repeat("a", 501)
	_, err = s.profileSvc.UpdateProfile(s.ctx, alice.ID, &types.UpdateProfileReq{Bio: &long})
	s.requireKind(err, KindValidation)
	s.Equal("bio must be at most 500 characters", err.Error())

	_, err = s.profileSvc.UpdateProfile(s.ctx, alice.ID, &types.UpdateProfileReq{AvatarURL: "ftp is not//a url"})
	s.requireKind(err, KindValidation)

	// 校验失败不落库
	var stored models.User
	s.Require().NoError(s.db.Take(&stored, "id = ?", alice.ID).Error)
	s.Equal("old bio", stored.Bio)

	// 不传 bio 保留原值，空头像表示清除
	p, err := s.profileSvc.UpdateProfile(s.ctx, alice.ID, &types.UpdateProfileReq{})
	s.Require().NoError(err)
	s.Equal("old bio", p.Bio)
	s.Empty(p.AvatarURL)

	bio := "writes about databases"
	p, err = s.profileSvc.UpdateProfile(s.ctx, alice.ID, &types.UpdateProfileReq{Bio: &bio, AvatarURL: "https://cdn.example.com/new.png"})
	s.Require().NoError(err)
	s.Equal(alice.ID, p.ID)
	s.Equal(bio, p.Bio)
	s.Equal("https://cdn.example.com/new.png", p.AvatarURL)

	_, err = s.profileSvc.UpdateProfile(s.ctx, 987654321, &types.UpdateProfileReq{Bio: &bio})
	s.requireKind(err, KindNotFound)

	s.closeStore()
	_, err = s.profileSvc.UpdateProfile(s.ctx, alice.ID, &types.UpdateProfileReq{Bio: &bio})
	s.requireKind(err, KindUnavailable)
}
