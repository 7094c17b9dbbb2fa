package handler

import (
	"Quill/config"
	"Quill/middleware"
	"Quill/pkg/context"
	"Quill/pkg/response"
	"Quill/service"
	"Quill/types"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Follow struct {
	Config        *config.Config
	Redis         *redis.Client
	FollowService service.IFollowService
}

func (f *Follow) RegisterRouter(r gin.IRouter) {
	optional := middleware.OptionalAuth([]byte(f.Config.Jwt.Secret))
	g := r.Group("/v1/follows")
	g.POST("", with(writeChain(f.Config, f.Redis), context.Wrap(f.Toggle))...)
	g.GET("", optional, context.Wrap(f.Query))
}

// Toggle 关注/取消关注
func (f *Follow) Toggle(c *gin.Context) error {
	var req types.ToggleFollowReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return badRequest(err)
	}
	res, err := f.FollowService.ToggleFollow(c.Request.Context(), context.ViewerID(c), req.UserID)
	if err != nil {
		return err
	}
	response.Success(c, res)
	return nil
}

// Query action=check 或缺省：当前用户是否关注了 user_id；action=count 该用户的粉丝数与关注数
func (f *Follow) Query(c *gin.Context) error {
	var req types.FollowQueryReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return badRequest(err)
	}
	ctx := c.Request.Context()
	switch req.Action {
	case "count":
		response.Success(c, types.FollowCountRes{
			FollowerCount:  f.FollowService.GetFollowerCount(ctx, req.UserID),
			FollowingCount: f.FollowService.GetFollowingCount(ctx, req.UserID),
		})
	default:
		response.Success(c, types.FollowCheckRes{
			Following: f.FollowService.IsFollowing(ctx, context.ViewerID(c), req.UserID),
		})
	}
	return nil
}
