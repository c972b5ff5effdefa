package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func payloadContext(t *testing.T, contentType, body string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func TestRequireJSON_ValidObject(t *testing.T) {
	c := payloadContext(t, echo.MIMEApplicationJSON, `{"content":"hello"}`)

	called := false
	handler := RequireJSON()(func(c echo.Context) error {
		called = true

		payload, ok := Payload(c)
		if !ok {
			t.Fatalf("payload not injected")
		}
		if payload["content"] != "hello" {
			t.Fatalf("unexpected payload: %v", payload)
		}

		// The body must still be bindable after the guard consumed it.
		var req struct {
			Content string `json:"content"`
		}
		if err := c.Bind(&req); err != nil {
			t.Fatalf("bind after guard: %v", err)
		}
		if req.Content != "hello" {
			t.Fatalf("bind got %q", req.Content)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestRequireJSON_WrongContentType(t *testing.T) {
	c := payloadContext(t, echo.MIMETextPlain, `{"content":"hello"}`)

	handler := RequireJSON()(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	assertBadRequest(t, handler(c))
}

func TestRequireJSON_UnparseableBody(t *testing.T) {
	c := payloadContext(t, echo.MIMEApplicationJSON, `{"content":`)

	handler := RequireJSON()(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	assertBadRequest(t, handler(c))
}

func TestRequireJSON_NonObjectTopLevel(t *testing.T) {
	for _, body := range []string{`[1,2,3]`, `"text"`, `42`, `null`} {
		c := payloadContext(t, echo.MIMEApplicationJSON, body)

		handler := RequireJSON()(func(c echo.Context) error {
			t.Fatalf("should not reach next for body %q", body)
			return nil
		})

		assertBadRequest(t, handler(c))
	}
}

func assertBadRequest(t *testing.T, err error) {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", he.Code)
	}
}
