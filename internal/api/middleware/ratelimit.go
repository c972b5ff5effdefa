package middleware

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/chirpnet/social-api/internal/api/metrics"
	"github.com/chirpnet/social-api/internal/core/domain"
)

// Limiter counts attempts per key within a fixed window.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimitLogin throttles credential attempts per client IP. A limiter
// backend failure fails open: losing brute-force protection briefly is
// preferable to locking every user out.
func RateLimitLogin(limiter Limiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Msg("login rate limit check failed, allowing request")
				return next(c)
			}
			if !ok {
				metrics.LoginThrottledTotal.Inc()
				return domain.ErrTooManyAttempts
			}
			return next(c)
		}
	}
}
