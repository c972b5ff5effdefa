package ports

import (
	"context"

	"github.com/chirpnet/social-api/internal/core/domain"
)

// SignupInput carries already-validated signup fields.
type SignupInput struct {
	Email       string
	Password    string
	DisplayName string
}

// IssuedToken pairs a signed token with its lifetime in seconds.
type IssuedToken struct {
	Token     string
	ExpiresIn int64
}

// TokenPair is the result of a successful login: a short-lived access token
// and a longer-lived refresh token.
type TokenPair struct {
	Bearer  IssuedToken
	Refresh IssuedToken
}

type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*TokenPair, error)
	Refresh(ctx context.Context, principal *domain.User) (*IssuedToken, error)
}
