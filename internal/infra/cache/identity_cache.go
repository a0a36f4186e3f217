package cache

import (
	"context"
	"encoding/json"
	"time"

	"foodies/internal/domain/entity"
	"foodies/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const identityKeyPrefix = "user:"

// identitySnapshot is the cached form of a user. Secrets are never cached.
type identitySnapshot struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type identityCache struct {
	store Store
}

// NewIdentityCache stores user snapshots under "user:{name}" in store.
func NewIdentityCache(store Store) service.IdentityCache {
	return &identityCache{store: store}
}

func identityKey(username string) string {
	return identityKeyPrefix + username
}

func (c *identityCache) Get(ctx context.Context, username string) (*entity.User, error) {
	raw, ok, err := c.store.Get(ctx, identityKey(username))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read identity cache")
	}
	if !ok {
		return nil, service.ErrCacheMiss
	}

	var snapshot identitySnapshot
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		// Undecodable entries are dropped and reported as misses.
		_ = c.store.Delete(ctx, identityKey(username))

		return nil, service.ErrCacheMiss
	}

	return &entity.User{
		ID:        snapshot.ID,
		Name:      snapshot.Name,
		Email:     snapshot.Email,
		Avatar:    snapshot.Avatar,
		CreatedAt: snapshot.CreatedAt,
		UpdatedAt: snapshot.UpdatedAt,
	}, nil
}

func (c *identityCache) Put(ctx context.Context, username string, user *entity.User, ttl time.Duration) error {
	raw, err := json.Marshal(identitySnapshot{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Avatar:    user.Avatar,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	})
	if err != nil {
		return errors.Wrap(err, "failed to encode identity snapshot")
	}

	if err := c.store.Set(ctx, identityKey(username), string(raw), ttl); err != nil {
		return errors.Wrap(err, "failed to write identity cache")
	}

	return nil
}

func (c *identityCache) Invalidate(ctx context.Context, username string) error {
	if err := c.store.Delete(ctx, identityKey(username)); err != nil {
		return errors.Wrap(err, "failed to invalidate identity cache")
	}

	return nil
}
