package service

import (
	"context"
	"errors"
	"time"

	"foodies/internal/domain/entity"
)

// ErrCacheMiss is returned by IdentityCache.Get when no live entry exists.
var ErrCacheMiss = errors.New("identity cache miss")

// IdentityCache keeps short-lived snapshots of users keyed by name.
// It is an optimization only; the store of record stays authoritative.
type IdentityCache interface {
	Get(ctx context.Context, username string) (*entity.User, error)
	Put(ctx context.Context, username string, user *entity.User, ttl time.Duration) error
	Invalidate(ctx context.Context, username string) error
}
