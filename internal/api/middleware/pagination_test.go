package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/chirpnet/social-api/internal/core/domain"
)

func pageContext(t *testing.T, query string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func runPagination(t *testing.T, query string) (offset, limit int, err error) {
	t.Helper()
	c := pageContext(t, query)
	handler := Pagination()(func(c echo.Context) error {
		offset, limit = Page(c)
		return c.NoContent(http.StatusOK)
	})
	err = handler(c)
	return offset, limit, err
}

func TestPagination_Defaults(t *testing.T) {
	offset, limit, err := runPagination(t, "")
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if offset != 0 || limit != 20 {
		t.Fatalf("expected (0, 20), got (%d, %d)", offset, limit)
	}
}

func TestPagination_Clamping(t *testing.T) {
	tests := []struct {
		query      string
		wantOffset int
		wantLimit  int
	}{
		{"offset=-5", 0, 20},
		{"limit=0", 0, 20},
		{"limit=-3", 0, 20},
		{"limit=500", 0, 20},
		{"limit=10", 0, 10},
		{"offset=40&limit=5", 40, 5},
	}

	for _, tt := range tests {
		offset, limit, err := runPagination(t, tt.query)
		if err != nil {
			t.Fatalf("%s: handler error: %v", tt.query, err)
		}
		if offset != tt.wantOffset || limit != tt.wantLimit {
			t.Fatalf("%s: expected (%d, %d), got (%d, %d)", tt.query, tt.wantOffset, tt.wantLimit, offset, limit)
		}
	}
}

func TestPagination_NonIntegerReportsAllFields(t *testing.T) {
	_, _, err := runPagination(t, "offset=abc&limit=xyz")

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Fields) != 2 {
		t.Fatalf("expected both fields reported, got %v", ve.Fields)
	}
	if ve.Fields["offset"] == "" || ve.Fields["limit"] == "" {
		t.Fatalf("missing field reasons: %v", ve.Fields)
	}
}

func TestPagination_NonIntegerSingleField(t *testing.T) {
	_, _, err := runPagination(t, "offset=abc&limit=5")

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Fields) != 1 || ve.Fields["offset"] == "" {
		t.Fatalf("expected only offset reported, got %v", ve.Fields)
	}
}
