package middleware

import (
	"fmt"
	"net/http"
	"time"

	"Quill/pkg/context"
	"Quill/pkg/log"
	"Quill/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimit 固定窗口限流，按登录用户计数（未登录按 IP）
// redis 出错时放行
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil || limit <= 0 {
			c.Next()
			return
		}
		subject := c.ClientIP()
		if uid := context.ViewerID(c); uid != 0 {
			subject = fmt.Sprintf("u:%d", uid)
		}
		key := fmt.Sprintf("quill:ratelimit:%s:%s", c.FullPath(), subject)

		// INCR 与 EXPIRE NX 同一个 MULTI 提交，计数键总会带上过期时间
		var incr *redis.IntCmd
		_, err := rdb.TxPipelined(c.Request.Context(), func(pipe redis.Pipeliner) error {
			incr = pipe.Incr(c.Request.Context(), key)
			pipe.ExpireNX(c.Request.Context(), key, window)
			return nil
		})
		if err != nil {
			log.L.Warn("rate limit unavailable", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}
		if count := incr.Val(); count > int64(limit) {
			response.Abort(c, http.StatusTooManyRequests, "too many requests")
			return
		}
		c.Next()
	}
}
