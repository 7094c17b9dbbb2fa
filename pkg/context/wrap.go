package context

import (
	"Quill/pkg/log"
	"Quill/pkg/response"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxUserID    = "user_id"
	CtxRequestID = "request_id"
)

type HandlerFunc func(*gin.Context) error

// statusError 由业务层错误实现，用于映射 HTTP 状态码，PublicMsg 是可以返回给客户端的部分
type statusError interface {
	error
	HTTPStatus() int
	PublicMsg() string
}

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				response.Fail(c, be.Code, be.Msg)
				return
			}
			var se statusError
			if errors.As(err, &se) {
				if se.HTTPStatus() >= http.StatusInternalServerError {
					log.L.Warn("handler degraded",
						zap.String("path", c.FullPath()),
						zap.String("request_id", c.GetString(CtxRequestID)),
						zap.Error(err),
					)
				}
				response.Fail(c, se.HTTPStatus(), se.PublicMsg())
				return
			}
			log.L.Error("unhandled handler error",
				zap.String("path", c.FullPath()),
				zap.String("request_id", c.GetString(CtxRequestID)),
				zap.Error(err),
			)
			c.JSON(http.StatusInternalServerError, response.Response{
				Code: 500,
				Msg:  "an unexpected error occurred",
			})
		}
	}
}

func GetUserID(c *gin.Context) (uint64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, errors.New("user_id not found")
	}

	uid, ok := v.(uint64)
	if !ok {
		return 0, errors.New("user_id has unexpected type")
	}

	return uid, nil
}

// ViewerID 可选登录场景下的当前用户，未登录返回 0
func ViewerID(c *gin.Context) uint64 {
	uid, err := GetUserID(c)
	if err != nil {
		return 0
	}
	return uid
}
