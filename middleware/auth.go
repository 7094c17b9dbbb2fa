package middleware

import (
	"net/http"
	"strings"

	"Quill/pkg/context"
	"Quill/pkg/jwt"
	"Quill/pkg/log"
	"Quill/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Auth 必须登录
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := principal(c, secret)
		if err != nil || uid == 0 {
			response.Abort(c, http.StatusUnauthorized, "please sign in")
			return
		}
		c.Set(context.CtxUserID, uid)
		c.Next()
	}
}

// OptionalAuth 可选登录：没有凭证按匿名处理，凭证无效同样按匿名处理
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := principal(c, secret)
		if err != nil {
			log.L.Debug("ignore invalid token", zap.String("path", c.FullPath()), zap.Error(err))
		}
		if uid != 0 {
			c.Set(context.CtxUserID, uid)
		}
		c.Next()
	}
}

// principal 没有 Authorization 头时返回 0, nil
func principal(c *gin.Context, secret []byte) (uint64, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return 0, nil
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return 0, jwt.ErrTokenType
	}
	claims, err := jwt.ParseToken(secret, jwt.TypeAccess, parts[1])
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}
