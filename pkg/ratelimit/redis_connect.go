package ratelimit

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig describes how to reach the Redis server backing a RedisStore.
// Fields can be populated from environment variables via github.com/caarlos0/env.
type RedisConfig struct {
	ConnectionURL  string        `env:"RATELIMIT_REDIS_URL" envDefault:"redis://localhost:6379/0"`
	RetryAttempts  int           `env:"RATELIMIT_REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"RATELIMIT_REDIS_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"RATELIMIT_REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
}

var (
	ErrInvalidRedisURL = errors.New("failed to parse redis connection url")
	ErrRedisNotReady   = errors.New("redis is not ready")
)

// ConnectRedis establishes a connection to Redis with retries and returns a
// pinged client. Callers own closing the client.
func ConnectRedis(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opt, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrInvalidRedisURL, err)
	}

	attempts := max(cfg.RetryAttempts, 1)
	for i := 0; i < attempts; i++ {
		client := redis.NewClient(opt)
		if err := client.Ping(ctx).Err(); err == nil {
			return client, nil
		}
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, ErrRedisNotReady
}
