package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"brims/internal/config"
)

const pingTimeout = 5 * time.Second

// Redis backs the snapshot cache and the change queue.
type Redis struct {
	Client *redis.Client
}

func NewRedis(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (*Redis, error) {
	rdb := redis.NewClient(clientOptions(cfg))

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Error("failed to ping redis", slog.String("addr", cfg.Addr), slog.Any("error", err))
		_ = rdb.Close()
		return nil, fmt.Errorf("redis.NewRedis: ping %s: %w", cfg.Addr, err)
	}
	logger.Info("connected to redis",
		slog.String("addr", cfg.Addr),
		slog.Int("db", cfg.DB),
		slog.Int("pool_size", cfg.PoolSize),
	)

	return &Redis{Client: rdb}, nil
}

// clientOptions maps the config onto go-redis options. Zero values keep the
// go-redis defaults.
func clientOptions(cfg config.RedisConfig) *redis.Options {
	return &redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}

func (r *Redis) Close() error {
	return r.Client.Close()
}
