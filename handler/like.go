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

type Like struct {
	Config      *config.Config
	Redis       *redis.Client
	LikeService service.ILikeService
}

func (l *Like) RegisterRouter(r gin.IRouter) {
	secret := []byte(l.Config.Jwt.Secret)
	g := r.Group("/v1/likes")
	g.POST("", with(writeChain(l.Config, l.Redis), context.Wrap(l.Toggle))...)
	g.GET("", middleware.OptionalAuth(secret), context.Wrap(l.Status))
	g.GET("/articles", middleware.Auth(secret), context.Wrap(l.LikedArticles))
}

// Toggle 点赞/取消点赞
func (l *Like) Toggle(c *gin.Context) error {
	var req types.ArticleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return badRequest(err)
	}
	res, err := l.LikeService.ToggleLike(c.Request.Context(), context.ViewerID(c), req.ArticleID)
	if err != nil {
		return err
	}
	response.Success(c, res)
	return nil
}

// Status 当前用户是否点赞以及总点赞数
func (l *Like) Status(c *gin.Context) error {
	var req types.ArticleReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return badRequest(err)
	}
	ctx := c.Request.Context()
	count, err := l.LikeService.GetLikeCount(ctx, req.ArticleID)
	if err != nil {
		return err
	}
	response.Success(c, types.LikeStatusRes{
		Liked: l.LikeService.HasLiked(ctx, context.ViewerID(c), req.ArticleID),
		Count: count,
	})
	return nil
}

func (l *Like) LikedArticles(c *gin.Context) error {
	ids, err := l.LikeService.ListLikedArticleIDs(c.Request.Context(), context.ViewerID(c))
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"article_ids": ids})
	return nil
}
