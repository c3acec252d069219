package database

import (
	"context"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// NewRedis connects a redis client from a redis:// URL. Returns nil without
// error when no URL is configured; the form cache is optional.
func NewRedis(url string, log *zap.Logger) (*redis.Client, error) {
	if url == "" {
		log.Info("Redis not configured, form cache disabled")
		return nil, nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	log.Info("Redis connection established successfully",
		zap.String("addr", opts.Addr),
		zap.Int("db", opts.DB),
	)
	return client, nil
}
