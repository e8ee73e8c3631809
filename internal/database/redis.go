package database

import (
	"context"
	"fmt"
	"net"

	"member-events-api/config"

	"github.com/redis/go-redis/v9"
)

// InitRedis 只在 REDIS_ENABLED 時呼叫，供異動事件 stream 使用
func InitRedis(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	addr := net.JoinHostPort(cfg.Host, cfg.Port)
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return rdb, nil
}
