package service

import (
	"fmt"
	"time"

	"Quill/models"
	"Quill/types"

	"gorm.io/gorm"
)

func (s *serviceSuite) TestToggleFollow_AliceAndBob() {
	alice := s.user("alice")
	bob := s.user("bob")
	carol := s.user("carol")
	// bob 自己关注了 carol，followingCount 应保持为 1
	_, err := s.followSvc.ToggleFollow(s.ctx, bob.ID, carol.ID)
	s.Require().NoError(err)

	res, err := s.followSvc.ToggleFollow(s.ctx, alice.ID, bob.ID)
	s.Require().NoError(err)
	s.Equal(&types.ToggleFollowResult{Following: true, FollowerCount: 1, FollowingCount: 1}, res)
	s.True(s.followSvc.IsFollowing(s.ctx, alice.ID, bob.ID))

	res, err = s.followSvc.ToggleFollow(s.ctx, alice.ID, bob.ID)
	s.Require().NoError(err)
	s.Equal(&types.ToggleFollowResult{Following: false, FollowerCount: 0, FollowingCount: 1}, res)
	s.False(s.followSvc.IsFollowing(s.ctx, alice.ID, bob.ID))

	s.Equal([]string{types.EventFollow, types.EventFollow, types.EventUnfollow}, s.publisher.kinds())
}

func (s *serviceSuite) TestToggleFollow_Rejections() {
	alice := s.user("alice")

	_, err := s.followSvc.ToggleFollow(s.ctx, 0, alice.ID)
	s.requireKind(err, KindUnauthorized)
	s.Equal("please sign in", err.Error())

	_, err = s.followSvc.ToggleFollow(s.ctx, alice.ID, alice.ID)
	s.requireKind(err, KindForbidden)
	s.Equal("cannot follow yourself", err.Error())

	_, err = s.followSvc.ToggleFollow(s.ctx, alice.ID, 987654321)
	s.requireKind(err, KindNotFound)

	s.Zero(s.rows(&models.Follow{}))
	s.Empty(s.publisher.kinds())
}

func (s *serviceSuite) TestToggleFollow_ConcurrentInsertIsAbsorbed() {
	alice := s.user("alice")
	bob := s.user("bob")

	// 在查询边之后、插入之前写入同一条边
	fired := false
	s.Require().NoError(s.db.Callback().Query().After("gorm:query").Register("test:concurrent_follow", func(tx *gorm.DB) {
		if fired || tx.Statement.Table != "follows" {
			return
		}
		fired = true
		s.Require().NoError(tx.Session(&gorm.Session{NewDB: true}).Exec(
			"INSERT INTO follows (id, follower_id, following_id, created_at) VALUES (?, ?, ?, ?)",
			7, alice.ID, bob.ID, time.Now(),
		).Error)
	}))

	res, err := s.followSvc.ToggleFollow(s.ctx, alice.ID, bob.ID)
	s.Require().NoError(err)
	s.True(fired)
	s.True(res.Following)
	s.EqualValues(1, res.FollowerCount)
	s.EqualValues(1, s.rows(&models.Follow{}))
	// 事件由先写入的请求负责
	s.Empty(s.publisher.kinds())
}

func (s *serviceSuite) TestToggleFollow_RefreshesAdvisoryStats() {
	alice := s.user("alice")
	bob := s.user("bob")

	_, err := s.followSvc.ToggleFollow(s.ctx, alice.ID, bob.ID)
	s.Require().NoError(err)

	var target, actor models.UserStats
	s.Require().NoError(s.db.Where("user_id = ?", bob.ID).Take(&target).Error)
	s.Require().NoError(s.db.Where("user_id = ?", alice.ID).Take(&actor).Error)
	s.EqualValues(1, target.FollowerCount)
	s.EqualValues(1, actor.FollowingCount)
}

func (s *serviceSuite) TestToggleFollow_PublishFailureDoesNotFail() {
	alice := s.user("alice")
	bob := s.user("bob")
	s.publisher.err = gorm.ErrInvalidDB

	res, err := s.followSvc.ToggleFollow(s.ctx, alice.ID, bob.ID)
	s.Require().NoError(err)
	s.True(res.Following)
}

func (s *serviceSuite) TestFollowReads_AnonymousAndUnavailable() {
	alice := s.user("alice")
	bob := s.user("bob")
	_, err := s.followSvc.ToggleFollow(s.ctx, alice.ID, bob.ID)
	s.Require().NoError(err)

	s.False(s.followSvc.IsFollowing(s.ctx, 0, bob.ID))
	s.EqualValues(1, s.followSvc.GetFollowerCount(s.ctx, bob.ID))
	s.EqualValues(1, s.followSvc.GetFollowingCount(s.ctx, alice.ID))

	s.closeStore()
	s.False(s.followSvc.IsFollowing(s.ctx, alice.ID, bob.ID))
	s.Zero(s.followSvc.GetFollowerCount(s.ctx, bob.ID))
	s.Zero(s.followSvc.GetFollowingCount(s.ctx, alice.ID))
	s.NotNil(s.followSvc.ListFollowers(s.ctx, bob.ID, alice.ID, 10))
	s.Empty(s.followSvc.ListFollowers(s.ctx, bob.ID, alice.ID, 10))

	_, err = s.followSvc.ToggleFollow(s.ctx, alice.ID, bob.ID)
	s.requireKind(err, KindUnavailable)
}

func (s *serviceSuite) TestListFollowers_ViewerPerspective() {
	target := s.user("target")
	viewer := s.user("viewer")
	a := s.user("a")
	b := s.user("b")

	base := time.Now().Add(-time.Hour)
	s.Require().NoError(s.db.Create(&models.Follow{ID: 1, FollowerID: a.ID, FollowingID: target.ID, CreatedAt: base}).Error)
	s.Require().NoError(s.db.Create(&models.Follow{ID: 2, FollowerID: b.ID, FollowingID: target.ID, CreatedAt: base.Add(time.Minute)}).Error)
	s.Require().NoError(s.db.Create(&models.Follow{ID: 3, FollowerID: viewer.ID, FollowingID: a.ID, CreatedAt: base}).Error)

	list := s.followSvc.ListFollowers(s.ctx, target.ID, viewer.ID, 0)
	s.Require().Len(list, 2)
	s.Equal("b", list[0].Username)
	s.False(list[0].IsFollowing)
	s.Equal("a", list[1].Username)
	s.True(list[1].IsFollowing)

	anon := s.followSvc.ListFollowers(s.ctx, target.ID, 0, 1)
	s.Require().Len(anon, 1)
	s.Equal("b", anon[0].Username)
	s.False(anon[0].IsFollowing)

	following := s.followSvc.ListFollowing(s.ctx, viewer.ID, 0, 500)
	s.Require().Len(following, 1)
	s.Equal(a.ID, following[0].ID)
}

func (s *serviceSuite) TestNormalizeLimit() {
	s.Equal(50, normalizeLimit(0))
	s.Equal(50, normalizeLimit(-3))
	s.Equal(20, normalizeLimit(20))
	s.Equal(500, normalizeLimit(500))
}

func (s *serviceSuite) TestListFollowers_LimitIsNotCapped() {
	target := s.user("target")
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 120; i++ {
		fan := s.user(fmt.Sprintf("fan-%03d", i))
		s.Require().NoError(s.db.Create(&models.Follow{
			ID:          uint64(10000 + i),
			FollowerID:  fan.ID,
			FollowingID: target.ID,
			CreatedAt:   base.Add(time.Duration(i) * time.Second),
		}).Error)
	}

	s.Len(s.followSvc.ListFollowers(s.ctx, target.ID, 0, 120), 120)
	s.Len(s.followSvc.ListFollowers(s.ctx, target.ID, 0, 0), defaultPeerLimit)
}
