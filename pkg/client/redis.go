package client

import (
	"PromptLib/config"
	"PromptLib/pkg/log"
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient 未配置地址时返回 nil，由会话存储降级处理
func NewRedisClient(conf *config.Config) *redis.Client {
	if conf.Redis == nil || conf.Redis.Address == "" {
		log.L.Warn("redis address is empty, session store disabled")
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
	if _, err := client.Ping(ctx).Result(); err != nil {
		// 连不上也返回 client，go-redis 会在后续命令时重连
		log.L.Error("connect redis error", zap.String("addr", conf.Redis.Addr()), zap.Error(err))
		return client
	}
	log.L.Info("redis client success")
	return client
}
