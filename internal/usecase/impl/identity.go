// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"foodies/internal/domain/service"
)

// invalidateIdentities drops cached snapshots after a committed mutation.
// Failures are logged; the cache entry expires on its own.
func invalidateIdentities(ctx context.Context, logger *slog.Logger, cache service.IdentityCache, names ...string) {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		if err := cache.Invalidate(ctx, name); err != nil {
			logger.Warn("Failed to invalidate identity cache", slog.String("name", name), slog.Any("error", err))
		}
	}
}
