// Package cache provides the key-value stores backing the identity cache.
package cache

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"foodies/config"
	"foodies/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Store is a string key-value store with per-key expiry.
type Store interface {
	// Get returns the value and true, or false when the key is absent or expired.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

// StoreParams defines the dependencies for building the configured store.
type StoreParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewStore builds the store selected by cache.driver and ties it to the fx lifecycle.
func NewStore(params StoreParams) (Store, error) {
	cfg := params.Config.Cache

	var store Store
	switch strings.ToLower(cfg.Driver) {
	case "", "memory":
		store = NewMemoryStore(cfg.CleanupInterval)
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Username: cfg.Redis.Username,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		store = NewRedisStore(client)

		params.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
				defer cancel()

				// The cache is optional for correctness; an unreachable Redis only costs latency.
				if err := client.Ping(pingCtx).Err(); err != nil {
					params.Logger.Warn("Redis cache is unreachable", slog.String("addr", cfg.Redis.Addr), slog.Any("error", err))
				}

				return nil
			},
		})
	default:
		return nil, errors.Errorf("unknown cache driver %q", cfg.Driver)
	}

	params.Logger.Info("Identity cache store ready", slog.String("driver", cfg.Driver), slog.Duration("ttl", cfg.TTL))

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}
