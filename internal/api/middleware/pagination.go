package middleware

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/chirpnet/social-api/internal/core/domain"
)

const (
	offsetKey = "offset"
	limitKey  = "limit"

	defaultLimit = 20
	// maxLimit is a fixed upper bound; callers asking for bigger pages are
	// clamped back down, not rejected.
	maxLimit = 20
)

// Pagination normalises the optional offset and limit query parameters into
// a safe window before the handler runs. Non-integer values for either
// parameter are reported together in one validation response.
func Pagination() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			offset, limit := 0, defaultLimit
			fields := make(map[string]string)

			if raw := c.QueryParam("offset"); raw != "" {
				v, err := strconv.Atoi(raw)
				if err != nil {
					fields["offset"] = "offset must be an integer"
				} else {
					offset = v
				}
			}

			if raw := c.QueryParam("limit"); raw != "" {
				v, err := strconv.Atoi(raw)
				if err != nil {
					fields["limit"] = "limit must be an integer"
				} else {
					limit = v
				}
			}

			if len(fields) > 0 {
				return &domain.ValidationError{Fields: fields}
			}

			if offset < 0 {
				offset = 0
			}
			if limit <= 0 || limit > maxLimit {
				limit = defaultLimit
			}

			c.Set(offsetKey, offset)
			c.Set(limitKey, limit)
			return next(c)
		}
	}
}

// Page returns the normalised window injected by Pagination, falling back to
// the defaults when the guard did not run.
func Page(c echo.Context) (offset, limit int) {
	offset, _ = c.Get(offsetKey).(int)
	limit, ok := c.Get(limitKey).(int)
	if !ok {
		limit = defaultLimit
	}
	return offset, limit
}
