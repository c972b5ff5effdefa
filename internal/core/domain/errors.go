package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrAuthRequired signals a guarded route hit without any credentials.
	// At the HTTP boundary it renders identically to ErrCouldNotAuthenticate
	// so callers cannot probe which check rejected them.
	ErrAuthRequired = errors.New("authentication is required")

	// ErrCouldNotAuthenticate covers every credential failure: malformed or
	// expired tokens, wrong scope, and subjects that no longer exist.
	ErrCouldNotAuthenticate = errors.New("could not authenticate")

	ErrForbidden       = errors.New("forbidden")
	ErrUserNotFound    = errors.New("user not found")
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrEmailTaken      = errors.New("email is taken")
	ErrTooManyAttempts = errors.New("too many attempts")
)

// ValidationError aggregates every offending field of a request at once
// instead of failing on the first.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return "validation error: " + strings.Join(names, ", ")
}

// NewValidationError builds a single-field validation error.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: reason}}
}
