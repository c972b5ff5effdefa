package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const payloadKey = "payload"

// RequireJSON ensures the request carries a JSON object body before the
// handler runs: correct content type, parseable body, object at the top
// level. The parsed mapping is injected into the context untouched; field
// semantics stay with the handler. The body is restored so handlers can
// still bind into typed request structs.
func RequireJSON() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			ctype := req.Header.Get(echo.HeaderContentType)
			if !strings.HasPrefix(ctype, echo.MIMEApplicationJSON) {
				return echo.NewHTTPError(http.StatusBadRequest, "content-type must be application/json")
			}

			body, err := io.ReadAll(req.Body)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid json format")
			}
			req.Body = io.NopCloser(bytes.NewReader(body))

			var payload map[string]any
			if err := json.Unmarshal(body, &payload); err != nil || payload == nil {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid json format")
			}

			c.Set(payloadKey, payload)
			return next(c)
		}
	}
}

// Payload returns the parsed JSON object injected by RequireJSON.
func Payload(c echo.Context) (map[string]any, bool) {
	payload, ok := c.Get(payloadKey).(map[string]any)
	return payload, ok
}
