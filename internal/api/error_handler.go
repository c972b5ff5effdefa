package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/chirpnet/social-api/internal/core/domain"
)

// errorEnvelope is the canonical error body for all API errors:
// {"message": ..., "errors": {field: reason}, "error": ...}.
type errorEnvelope struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
	Error   string            `json:"error,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders field-level validation failures as a 400 with the full
//     field→reason map.
//   - Maps known domain errors to deterministic HTTP status codes; every
//     authentication failure collapses to the same generic 401 regardless of
//     whether credentials were missing, malformed, expired or wrong-scoped.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			c.Response().Header().Set("X-Validation-Error", "Validation error")
			_ = c.JSON(http.StatusBadRequest, errorEnvelope{
				Message: "validation error",
				Errors:  ve.Fields,
			})
			return
		}

		code, msg := resolveError(err, log, c)
		envelope := errorEnvelope{Message: "could not complete your request", Error: msg}
		if code == http.StatusInternalServerError {
			envelope.Message = "please try again"
		}
		_ = c.JSON(code, envelope)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (guard rejections, 404 from the router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrAuthRequired), errors.Is(err, domain.ErrCouldNotAuthenticate):
		return http.StatusUnauthorized, "could not authenticate"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrPostNotFound):
		return http.StatusNotFound, "post not found"
	case errors.Is(err, domain.ErrCommentNotFound):
		return http.StatusNotFound, "comment not found"
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusBadRequest, "email is taken"
	case errors.Is(err, domain.ErrTooManyAttempts):
		return http.StatusTooManyRequests, "too many attempts"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal error"
}
