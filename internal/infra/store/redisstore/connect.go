package redisstore

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-redis/redis/v8"

	"github.com/ormanli/rewards/internal/app/rewards"
)

// Connect creates a Redis client and waits until the server answers a ping.
// The ping is retried with exponential backoff up to cfg.RedisConnectRetries times.
func Connect(ctx context.Context, cfg rewards.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), cfg.RedisConnectRetries), ctx)

	err := backoff.Retry(func() error {
		err := client.Ping(ctx).Err()
		if err != nil {
			slog.Warn("Redis connection failed, retrying", "addr", cfg.RedisAddr, "error", err)
		}
		return err
	}, policy)
	if err != nil {
		_ = client.Close()
		return nil, err
	}

	slog.Info("Redis client initialized", "addr", cfg.RedisAddr)

	return client, nil
}
