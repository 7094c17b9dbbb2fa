package service

import (
	"context"

	"Quill/dao"
	"Quill/pkg/log"
	"Quill/pkg/metrics"
	"Quill/types"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultPeerLimit = 50

var _ IFollowService = (*FollowService)(nil)

type IFollowService interface {
	ToggleFollow(ctx context.Context, actorID, targetID uint64) (*types.ToggleFollowResult, error)
	IsFollowing(ctx context.Context, actorID, targetID uint64) bool
	GetFollowerCount(ctx context.Context, userID uint64) int64
	GetFollowingCount(ctx context.Context, userID uint64) int64
	ListFollowers(ctx context.Context, userID, viewerID uint64, limit int) []*types.PeerSummary
	ListFollowing(ctx context.Context, userID, viewerID uint64, limit int) []*types.PeerSummary
}

type FollowService struct {
	DB        *gorm.DB
	FollowDAO *dao.FollowDAO
	UserDAO   *dao.UserDAO
	StatsDAO  *dao.UserStatsDAO
	Publisher EventPublisher
}

// ToggleFollow 关注/取消关注，返回的两个计数都是目标用户的
func (s *FollowService) ToggleFollow(ctx context.Context, actorID, targetID uint64) (*types.ToggleFollowResult, error) {
	if actorID == 0 {
		return nil, ErrUnauthorized()
	}
	if actorID == targetID {
		return nil, ErrForbidden("cannot follow yourself")
	}

	exist, err := s.UserDAO.Exists(ctx, targetID)
	if err != nil {
		return nil, guard("follow.check_target", err)
	}
	if !exist {
		return nil, ErrNotFound("User")
	}

	var (
		edge   dao.ToggleResult
		result = &types.ToggleFollowResult{}
	)
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		edge, err = s.FollowDAO.Toggle(ctx, tx, actorID, targetID)
		if err != nil {
			return err
		}
		return s.countTarget(ctx, s.FollowDAO.WithTx(tx), targetID, result)
	})
	if err != nil {
		return nil, guard("follow.toggle", err)
	}
	result.Following = edge.Present

	// 插入被并发请求抢先时，事务快照可能看不到对方的行，提交后重新计数
	if edge.Absorbed {
		if err := s.countTarget(ctx, s.FollowDAO, targetID, result); err != nil {
			log.L.Warn("recount after absorbed follow failed", zap.Uint64("target_id", targetID), zap.Error(err))
		}
	}

	s.refreshStats(ctx, actorID, targetID, result)

	metrics.ObserveToggle("follow", edge.Present)
	// 被吸收的插入由抢先的请求发过事件
	if !edge.Absorbed {
		eventType := types.EventUnfollow
		if edge.Present {
			eventType = types.EventFollow
		}
		publish(ctx, s.Publisher, eventType, actorID, targetID)
	}

	return result, nil
}

func (s *FollowService) countTarget(ctx context.Context, follows *dao.FollowDAO, targetID uint64, result *types.ToggleFollowResult) error {
	followers, err := follows.GetFollowerCount(ctx, targetID)
	if err != nil {
		return err
	}
	following, err := follows.GetFollowingCount(ctx, targetID)
	if err != nil {
		return err
	}
	result.FollowerCount = followers
	result.FollowingCount = following
	return nil
}

// refreshStats 冗余计数尽力刷新，失败只记日志
func (s *FollowService) refreshStats(ctx context.Context, actorID, targetID uint64, target *types.ToggleFollowResult) {
	if s.StatsDAO == nil {
		return
	}
	if err := s.StatsDAO.SetFollowCounts(ctx, targetID, target.FollowerCount, target.FollowingCount); err != nil {
		log.L.Warn("refresh user stats failed", zap.Uint64("user_id", targetID), zap.Error(err))
	}

	followers, err := s.FollowDAO.GetFollowerCount(ctx, actorID)
	if err != nil {
		log.L.Warn("count actor followers failed", zap.Uint64("user_id", actorID), zap.Error(err))
		return
	}
	following, err := s.FollowDAO.GetFollowingCount(ctx, actorID)
	if err != nil {
		log.L.Warn("count actor following failed", zap.Uint64("user_id", actorID), zap.Error(err))
		return
	}
	if err := s.StatsDAO.SetFollowCounts(ctx, actorID, followers, following); err != nil {
		log.L.Warn("refresh user stats failed", zap.Uint64("user_id", actorID), zap.Error(err))
	}
}

// IsFollowing 未登录或出错都视为未关注
func (s *FollowService) IsFollowing(ctx context.Context, actorID, targetID uint64) bool {
	if actorID == 0 {
		return false
	}
	return soft("follow.is_following", false, func() (bool, error) {
		return s.FollowDAO.IsFollowing(ctx, actorID, targetID)
	})
}

func (s *FollowService) GetFollowerCount(ctx context.Context, userID uint64) int64 {
	return soft("follow.follower_count", int64(0), func() (int64, error) {
		return s.FollowDAO.GetFollowerCount(ctx, userID)
	})
}

func (s *FollowService) GetFollowingCount(ctx context.Context, userID uint64) int64 {
	return soft("follow.following_count", int64(0), func() (int64, error) {
		return s.FollowDAO.GetFollowingCount(ctx, userID)
	})
}

// ListFollowers 关注 userID 的人
func (s *FollowService) ListFollowers(ctx context.Context, userID, viewerID uint64, limit int) []*types.PeerSummary {
	return soft("follow.list_followers", []*types.PeerSummary{}, func() ([]*types.PeerSummary, error) {
		edges, err := s.FollowDAO.ListFollowers(ctx, userID, normalizeLimit(limit))
		if err != nil {
			return nil, err
		}
		ids := make([]uint64, 0, len(edges))
		for _, e := range edges {
			ids = append(ids, e.FollowerID)
		}
		return s.peers(ctx, ids, viewerID)
	})
}

// ListFollowing userID 关注的人
func (s *FollowService) ListFollowing(ctx context.Context, userID, viewerID uint64, limit int) []*types.PeerSummary {
	return soft("follow.list_following", []*types.PeerSummary{}, func() ([]*types.PeerSummary, error) {
		edges, err := s.FollowDAO.ListFollowing(ctx, userID, normalizeLimit(limit))
		if err != nil {
			return nil, err
		}
		ids := make([]uint64, 0, len(edges))
		for _, e := range edges {
			ids = append(ids, e.FollowingID)
		}
		return s.peers(ctx, ids, viewerID)
	})
}

// peers 按边的顺序组装对端用户，已删除的用户跳过
func (s *FollowService) peers(ctx context.Context, ids []uint64, viewerID uint64) ([]*types.PeerSummary, error) {
	users, err := s.UserDAO.FindMapByIds(ctx, ids)
	if err != nil {
		return nil, err
	}

	followed := map[uint64]bool{}
	if viewerID != 0 && len(ids) > 0 {
		followed, err = s.FollowDAO.FollowedAmong(ctx, viewerID, ids)
		if err != nil {
			return nil, err
		}
	}

	list := make([]*types.PeerSummary, 0, len(ids))
	for _, id := range ids {
		u, ok := users[id]
		if !ok {
			continue
		}
		list = append(list, &types.PeerSummary{
			ID:          u.ID,
			Username:    u.Username,
			AvatarURL:   u.AvatarURL,
			Bio:         u.Bio,
			IsFollowing: followed[id],
		})
	}
	return list, nil
}

// normalizeLimit 未指定时取默认值，指定了就按原值取
func normalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultPeerLimit
	}
	return limit
}
