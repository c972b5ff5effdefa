package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/chirpnet/social-api/internal/api/middleware"
	"github.com/chirpnet/social-api/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the auth guards and
// fast-fails before any service call. A missing principal means the route
// was wired without its guard; it still renders as the generic 401.
func ctxPrincipal(c echo.Context) (*domain.User, error) {
	principal, ok := middleware.Principal(c)
	if !ok {
		return nil, domain.ErrCouldNotAuthenticate
	}
	return principal, nil
}
