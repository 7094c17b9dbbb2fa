package handler

import (
	gocontext "context"

	"Quill/config"
	"Quill/middleware"
	"Quill/pkg/context"
	"Quill/pkg/response"
	"Quill/service"
	"Quill/types"

	"github.com/gin-gonic/gin"
)

type User struct {
	Config         *config.Config
	ProfileService service.IProfileService
	FollowService  service.IFollowService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	secret := []byte(u.Config.Jwt.Secret)
	optional := middleware.OptionalAuth(secret)

	g := r.Group("/v1/users")
	g.GET("/me", middleware.Auth(secret), context.Wrap(u.Me))
	g.PUT("/me", middleware.Auth(secret), context.Wrap(u.UpdateMe))
	g.GET("/:username", optional, context.Wrap(u.Profile))
	g.GET("/:username/followers", optional, context.Wrap(u.Followers))
	g.GET("/:username/following", optional, context.Wrap(u.Following))

	r.GET("/v1/authors/popular", context.Wrap(u.PopularAuthors))
}

// Me 当前登录用户的资料
func (u *User) Me(c *gin.Context) error {
	p, err := u.ProfileService.GetCurrentUserProfile(c.Request.Context(), context.ViewerID(c))
	if err != nil {
		return err
	}
	if p == nil {
		return service.ErrNotFound("User")
	}
	response.Success(c, p)
	return nil
}

// UpdateMe 修改简介与头像
func (u *User) UpdateMe(c *gin.Context) error {
	var req types.UpdateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return badRequest(err)
	}
	p, err := u.ProfileService.UpdateProfile(c.Request.Context(), context.ViewerID(c), &req)
	if err != nil {
		return err
	}
	response.Success(c, p)
	return nil
}

func (u *User) Profile(c *gin.Context) error {
	ctx := c.Request.Context()
	p, err := u.ProfileService.GetUserProfile(ctx, c.Param("username"))
	if err != nil {
		return err
	}
	if p == nil {
		return service.ErrNotFound("User")
	}
	response.Success(c, types.ProfileRes{
		Profile:     p,
		IsFollowing: u.FollowService.IsFollowing(ctx, context.ViewerID(c), p.ID),
	})
	return nil
}

func (u *User) Followers(c *gin.Context) error {
	return u.peers(c, u.FollowService.ListFollowers)
}

func (u *User) Following(c *gin.Context) error {
	return u.peers(c, u.FollowService.ListFollowing)
}

type peerLister func(ctx gocontext.Context, userID, viewerID uint64, limit int) []*types.PeerSummary

func (u *User) peers(c *gin.Context, list peerLister) error {
	var req types.PeerListReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return badRequest(err)
	}
	ctx := c.Request.Context()
	userID, err := u.ProfileService.ResolveUserID(ctx, c.Param("username"))
	if err != nil {
		return err
	}
	response.Success(c, types.PeerListRes{
		List: list(ctx, userID, context.ViewerID(c), req.Limit),
	})
	return nil
}

func (u *User) PopularAuthors(c *gin.Context) error {
	var req types.PopularAuthorsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return badRequest(err)
	}
	list, err := u.ProfileService.ListPopularAuthors(c.Request.Context(), req.Limit)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"list": list})
	return nil
}
