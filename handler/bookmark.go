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

type Bookmark struct {
	Config          *config.Config
	Redis           *redis.Client
	BookmarkService service.IBookmarkService
}

func (b *Bookmark) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/bookmarks")
	g.POST("", with(writeChain(b.Config, b.Redis), context.Wrap(b.Toggle))...)
	g.GET("", middleware.OptionalAuth([]byte(b.Config.Jwt.Secret)), context.Wrap(b.Get))
}

func (b *Bookmark) Toggle(c *gin.Context) error {
	var req types.ArticleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return badRequest(err)
	}
	res, err := b.BookmarkService.ToggleBookmark(c.Request.Context(), context.ViewerID(c), req.ArticleID)
	if err != nil {
		return err
	}
	response.Success(c, res)
	return nil
}

// Get 带 article_id 时返回收藏状态，否则返回当前用户的收藏列表（未登录为空）
func (b *Bookmark) Get(c *gin.Context) error {
	if c.Query("article_id") == "" {
		return b.list(c)
	}
	var req types.ArticleReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return badRequest(err)
	}
	ctx := c.Request.Context()
	count, err := b.BookmarkService.GetBookmarkCount(ctx, req.ArticleID)
	if err != nil {
		return err
	}
	response.Success(c, types.BookmarkStatusRes{
		Bookmarked: b.BookmarkService.HasBookmarked(ctx, context.ViewerID(c), req.ArticleID),
		Count:      count,
	})
	return nil
}

func (b *Bookmark) list(c *gin.Context) error {
	var req types.BookmarkListReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return badRequest(err)
	}
	list, err := b.BookmarkService.ListBookmarkedArticles(c.Request.Context(), context.ViewerID(c), req.Limit)
	if err != nil {
		return err
	}
	response.Success(c, types.BookmarkListRes{List: list})
	return nil
}
