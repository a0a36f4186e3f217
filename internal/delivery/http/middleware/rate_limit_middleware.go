package middleware

import (
	"foodies/config"
	domainerrors "foodies/internal/domain/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware throttles clients by IP with an in-memory token bucket.
type RateLimitMiddleware struct {
	limit echo.MiddlewareFunc
}

// NewRateLimitMiddleware builds the limiter from config. A disabled limiter lets every request through.
func NewRateLimitMiddleware(cfg *config.Config) *RateLimitMiddleware {
	rl := cfg.RateLimit
	if rl == nil || !rl.Enabled {
		return &RateLimitMiddleware{limit: func(next echo.HandlerFunc) echo.HandlerFunc { return next }}
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(float64(rl.RequestsPerMinute) / 60),
		Burst:     rl.Burst,
		ExpiresIn: rl.ExpiresIn,
	})

	return &RateLimitMiddleware{
		limit: echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
			Store: store,
			IdentifierExtractor: func(c echo.Context) (string, error) {
				return c.RealIP(), nil
			},
			ErrorHandler: func(_ echo.Context, err error) error {
				return errors.Wrap(domainerrors.ErrForbidden, "could not identify client")
			},
			DenyHandler: func(_ echo.Context, identifier string, _ error) error {
				return errors.Wrapf(domainerrors.ErrRateLimited, "client %s exceeded its request budget", identifier)
			},
		}),
	}
}

// Limit is the echo middleware guarding a route or group.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return m.limit(next)
}
