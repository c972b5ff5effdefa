package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/chirpnet/social-api/internal/api/metrics"
	"github.com/chirpnet/social-api/internal/core/domain"
	"github.com/chirpnet/social-api/internal/core/ports"
	"github.com/chirpnet/social-api/internal/core/token"
)

// bearerPrefixLen is the length of "Bearer ". The prefix is sliced off
// without being inspected: a malformed scheme corrupts the token text and
// dies in the codec instead of producing a distinguishable error.
const bearerPrefixLen = len("Bearer ")

const principalKey = "principal"

// Access validates the access-scope bearer token and injects the resolved
// principal into the request context.
func Access(codec *token.Codec, users ports.UserRepository) echo.MiddlewareFunc {
	return requireScope(codec, users, token.ScopeAccess)
}

// Refresh is identical to Access but demands refresh scope. It guards only
// the token-refresh route and is never combined with Access.
func Refresh(codec *token.Codec, users ports.UserRepository) echo.MiddlewareFunc {
	return requireScope(codec, users, token.ScopeRefresh)
}

func requireScope(codec *token.Codec, users ports.UserRepository, scope token.Scope) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_header").Inc()
				return domain.ErrAuthRequired
			}

			var raw string
			if len(header) > bearerPrefixLen {
				raw = header[bearerPrefixLen:]
			}

			uid, err := codec.Verify(raw, scope)
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues(codecFailureReason(err)).Inc()
				return domain.ErrCouldNotAuthenticate
			}

			// Resolve the principal fresh on every request. A deleted account
			// therefore invalidates its outstanding tokens immediately.
			user, err := users.FindByUID(c.Request().Context(), uid)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.AuthFailuresTotal.WithLabelValues("unknown_subject").Inc()
					return domain.ErrCouldNotAuthenticate
				}
				return err
			}

			c.Set(principalKey, user)
			return next(c)
		}
	}
}

// Principal returns the authenticated user injected by Access or Refresh.
func Principal(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(principalKey).(*domain.User)
	return user, ok
}

func codecFailureReason(err error) string {
	switch {
	case errors.Is(err, token.ErrExpired):
		return "expired"
	case errors.Is(err, token.ErrWrongScope):
		return "wrong_scope"
	default:
		return "malformed"
	}
}
