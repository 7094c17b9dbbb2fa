package handler

import (
	"time"

	"Quill/config"
	"Quill/middleware"
	"Quill/pkg/validate"
	"Quill/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
)

// gin 绑定的校验错误同样使用 json/form 字段名
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validate.RegisterFieldNames(v)
	}
}

// writeChain 写接口：必须登录并限流
func writeChain(conf *config.Config, rdb *redis.Client) []gin.HandlerFunc {
	chain := []gin.HandlerFunc{middleware.Auth([]byte(conf.Jwt.Secret))}
	if conf.RateLimit.Enabled {
		window := time.Duration(conf.RateLimit.Window) * time.Second
		chain = append(chain, middleware.RateLimit(rdb, conf.RateLimit.Limit, window))
	}
	return chain
}

func with(chain []gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	out := make([]gin.HandlerFunc, 0, len(chain)+1)
	out = append(out, chain...)
	return append(out, h)
}

// badRequest 绑定失败，只返回字段级描述
func badRequest(err error) error {
	return service.ErrValidation(validate.Message(err))
}
