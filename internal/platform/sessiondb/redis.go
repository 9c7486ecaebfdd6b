package sessiondb

import (
	"context"
	"fmt"

	"inkwell/internal/platform/config"

	"github.com/redis/go-redis/v9"
)

// Connect opens the Redis client backing the session store.
func Connect(cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("could not connect to redis: %w", err)
	}
	return rdb, nil
}
