package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/chirpnet/social-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec, body
}

func TestErrorHandler_AuthFailuresIndistinguishable(t *testing.T) {
	recMissing, bodyMissing := renderError(t, domain.ErrAuthRequired)
	recFailed, bodyFailed := renderError(t, domain.ErrCouldNotAuthenticate)

	if recMissing.Code != http.StatusUnauthorized || recFailed.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", recMissing.Code, recFailed.Code)
	}
	if bodyMissing["error"] != bodyFailed["error"] || bodyMissing["message"] != bodyFailed["message"] {
		t.Fatalf("auth failure bodies differ: %v vs %v", bodyMissing, bodyFailed)
	}
	if _, hasFields := bodyMissing["errors"]; hasFields {
		t.Fatalf("401 must carry no field-level detail: %v", bodyMissing)
	}
}

func TestErrorHandler_ValidationError(t *testing.T) {
	rec, body := renderError(t, &domain.ValidationError{Fields: map[string]string{
		"offset": "offset must be an integer",
		"limit":  "limit must be an integer",
	}})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body["message"] != "validation error" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
	fields, ok := body["errors"].(map[string]any)
	if !ok || len(fields) != 2 {
		t.Fatalf("expected both fields in errors map, got %v", body["errors"])
	}
	if rec.Header().Get("X-Validation-Error") == "" {
		t.Fatalf("missing X-Validation-Error header")
	}
}

func TestErrorHandler_DomainMappings(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrPostNotFound, http.StatusNotFound},
		{domain.ErrCommentNotFound, http.StatusNotFound},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrEmailTaken, http.StatusBadRequest},
		{domain.ErrTooManyAttempts, http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		rec, _ := renderError(t, tt.err)
		if rec.Code != tt.code {
			t.Fatalf("%v: expected %d, got %d", tt.err, tt.code, rec.Code)
		}
	}
}

func TestErrorHandler_InternalErrorOpaque(t *testing.T) {
	rec, body := renderError(t, errors.New("pq: connection reset"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body["error"] != "internal error" || body["message"] != "please try again" {
		t.Fatalf("internal details must not leak: %v", body)
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	rec, _ := renderError(t, errors.Join(errors.New("find post"), domain.ErrPostNotFound))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected wrapped sentinel to resolve, got %d", rec.Code)
	}
}
