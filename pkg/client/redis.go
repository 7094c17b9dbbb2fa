package client

import (
	"context"
	"time"

	"Quill/config"
	"Quill/pkg/log"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient 限流未开启时返回 nil；连接失败只告警，限流会放行
func NewRedisClient(conf *config.Config) *redis.Client {
	if !conf.RateLimit.Enabled {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     conf.Redis.Addr(),
		Password: conf.Redis.Password,
		Username: conf.Redis.Username,
		DB:       conf.Redis.Database,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.L.Warn("connect redis error", zap.String("addr", conf.Redis.Addr()), zap.Error(err))
		return client
	}
	log.L.Info("redis client success")
	return client
}
