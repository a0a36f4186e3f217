package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"foodies/config"
	"foodies/internal/domain/repository"
	mockRepo "foodies/internal/mocks/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth:    &config.AuthConfig{BcryptCost: 4},
		Cache:   &config.CacheConfig{Driver: "memory", TTL: 300 * time.Second, CleanupInterval: time.Minute},
		Storage: &config.StorageConfig{Driver: "url", BucketURL: "mem://", MaxUploadSize: "1KB"},
	}
	cfg.Token = config.TokenConfig{
		Secret:     "test-secret",
		Algorithm:  "HS256",
		AccessTTL:  30 * time.Minute,
		RefreshTTL: 7 * 24 * time.Hour,
	}

	return cfg
}

// expectTransaction makes txManager run the callback against factory and return its result.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func subject(name string) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{Subject: name}
}
