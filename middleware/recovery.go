package middleware

import (
	"net/http"

	"Quill/pkg/context"
	"Quill/pkg/log"
	"Quill/pkg/response"
	"Quill/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery panic 记录调用栈并返回 500
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.L.Error("panic recovered",
					zap.String("path", c.Request.URL.Path),
					zap.String("request_id", c.GetString(context.CtxRequestID)),
					zap.String("trace", utils.PanicTrace(r, 3)),
				)
				response.Abort(c, http.StatusInternalServerError, "an unexpected error occurred")
			}
		}()
		c.Next()
	}
}
