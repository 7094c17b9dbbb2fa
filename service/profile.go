package service

import (
	"context"

	"Quill/dao"
	"Quill/models"
	"Quill/pkg/validate"
	"Quill/types"

	"github.com/sourcegraph/conc/pool"
)

const defaultPopularLimit = 5

var _ IProfileService = (*ProfileService)(nil)

type IProfileService interface {
	GetUserProfile(ctx context.Context, username string) (*types.Profile, error)
	GetUserProfileByID(ctx context.Context, userID uint64) (*types.Profile, error)
	GetCurrentUserProfile(ctx context.Context, viewerID uint64) (*types.Profile, error)
	ResolveUserID(ctx context.Context, username string) (uint64, error)
	UpdateProfile(ctx context.Context, viewerID uint64, req *types.UpdateProfileReq) (*types.Profile, error)
	ListPopularAuthors(ctx context.Context, limit int) ([]*types.PopularAuthor, error)
}

// ProfileService 资料页计数全部实时统计关系表，不读冗余统计
type ProfileService struct {
	UserDAO     *dao.UserDAO
	ArticleDAO  *dao.ArticleDAO
	CommentDAO  *dao.CommentDAO
	FollowDAO   *dao.FollowDAO
	LikeDAO     *dao.LikeDAO
	BookmarkDAO *dao.BookmarkDAO
}

// GetUserProfile 用户不存在或存储不可达返回 nil, nil
func (s *ProfileService) GetUserProfile(ctx context.Context, username string) (*types.Profile, error) {
	return s.profile(ctx, "profile.by_username", func() (*models.User, error) {
		return s.UserDAO.FindByUsername(ctx, username)
	})
}

func (s *ProfileService) GetUserProfileByID(ctx context.Context, userID uint64) (*types.Profile, error) {
	return s.profile(ctx, "profile.by_id", func() (*models.User, error) {
		return s.UserDAO.FindById(ctx, userID)
	})
}

// GetCurrentUserProfile 未登录返回 nil
func (s *ProfileService) GetCurrentUserProfile(ctx context.Context, viewerID uint64) (*types.Profile, error) {
	if viewerID == 0 {
		return nil, nil
	}
	return s.GetUserProfileByID(ctx, viewerID)
}

// ResolveUserID 用户名转 id，不存在返回 NotFound
func (s *ProfileService) ResolveUserID(ctx context.Context, username string) (uint64, error) {
	user, err := s.UserDAO.FindByUsername(ctx, username)
	if err != nil {
		return 0, guard("profile.resolve", err)
	}
	if user == nil {
		return 0, ErrNotFound("User")
	}
	return user.ID, nil
}

// UpdateProfile 修改当前用户的简介与头像，返回修改后的资料
// 写操作，存储不可达直接报错，不降级
func (s *ProfileService) UpdateProfile(ctx context.Context, viewerID uint64, req *types.UpdateProfileReq) (*types.Profile, error) {
	if viewerID == 0 {
		return nil, ErrUnauthorized()
	}
	if req == nil {
		req = &types.UpdateProfileReq{}
	}
	if err := validate.Struct(req); err != nil {
		return nil, ErrValidation(validate.Message(err))
	}

	if err := s.UserDAO.UpdateProfile(ctx, viewerID, req.Bio, req.AvatarURL); err != nil {
		return nil, guard("profile.update", err)
	}
	user, err := s.UserDAO.FindById(ctx, viewerID)
	if err != nil {
		return nil, guard("profile.update", err)
	}
	if user == nil {
		return nil, ErrNotFound("User")
	}
	p, err := s.assemble(ctx, user)
	if err != nil {
		return nil, guard("profile.update", err)
	}
	return p, nil
}

func (s *ProfileService) profile(ctx context.Context, op string, find func() (*models.User, error)) (*types.Profile, error) {
	p, err := degrade(op, (*types.Profile)(nil), unavailable, func() (*types.Profile, error) {
		user, err := find()
		if err != nil || user == nil {
			return nil, err
		}
		return s.assemble(ctx, user)
	})
	if err != nil {
		return nil, guard(op, err)
	}
	return p, nil
}

func (s *ProfileService) assemble(ctx context.Context, user *models.User) (*types.Profile, error) {
	counts, err := s.counts(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &types.Profile{
		ID:        user.ID,
		Username:  user.Username,
		Bio:       user.Bio,
		AvatarURL: user.AvatarURL,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		Counts:    *counts,
	}, nil
}

// counts 各计数并发统计，任一失败整体失败
func (s *ProfileService) counts(ctx context.Context, userID uint64) (*types.ProfileCounts, error) {
	var c types.ProfileCounts

	articleIDs, err := s.ArticleDAO.IDsByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}
	c.Articles = int64(len(articleIDs))

	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) (err error) {
		c.Followers, err = s.FollowDAO.GetFollowerCount(ctx, userID)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		c.Following, err = s.FollowDAO.GetFollowingCount(ctx, userID)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		c.Bookmarks, err = s.BookmarkDAO.CountByUser(ctx, userID)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		c.LikesGiven, err = s.LikeDAO.CountByUser(ctx, userID)
		return err
	})
	p.Go(func(ctx context.Context) error {
		perArticle, err := s.CommentDAO.CountGroupByArticle(ctx, articleIDs)
		if err != nil {
			return err
		}
		c.CommentsReceived = sum(perArticle)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		perArticle, err := s.LikeDAO.CountGroupByArticle(ctx, articleIDs)
		if err != nil {
			return err
		}
		c.LikesReceived = sum(perArticle)
		return nil
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return &c, nil
}

func sum(m map[uint64]int64) int64 {
	var total int64
	for _, n := range m {
		total += n
	}
	return total
}

// ListPopularAuthors 预览用，粉丝数取冗余统计，存储不可达返回空列表
func (s *ProfileService) ListPopularAuthors(ctx context.Context, limit int) ([]*types.PopularAuthor, error) {
	if limit <= 0 {
		limit = defaultPopularLimit
	}
	rows, err := degrade("profile.popular_authors", []*dao.PopularAuthor{}, unavailable, func() ([]*dao.PopularAuthor, error) {
		return s.UserDAO.ListPopularAuthors(ctx, limit)
	})
	if err != nil {
		return nil, guard("profile.popular_authors", err)
	}

	list := make([]*types.PopularAuthor, 0, len(rows))
	for _, r := range rows {
		list = append(list, &types.PopularAuthor{
			ID:            r.ID,
			Username:      r.Username,
			AvatarURL:     r.AvatarURL,
			Bio:           r.Bio,
			ArticleCount:  r.ArticleCount,
			FollowerCount: r.FollowerCount,
		})
	}
	return list, nil
}
