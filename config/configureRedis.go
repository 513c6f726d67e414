package config

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// InitRedisServer connects to Redis for view caching. The cache is optional:
// when Redis is unreachable the portal serves every request uncached.
func InitRedisServer(ctx context.Context) *redis.Client {
	addr := GetEnvOrDefault("REDIS_ADDRESS", "localhost:6379")

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "",
		DB:       0,
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		Logger.Warn("Redis unavailable, view caching disabled", zap.String("addr", addr), zap.Error(err))
		return nil
	}

	return client
}
