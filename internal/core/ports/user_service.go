package ports

import (
	"context"

	"github.com/chirpnet/social-api/internal/core/domain"
)

// UpdateProfileInput carries already-validated profile fields.
type UpdateProfileInput struct {
	Email       string
	Password    string
	DisplayName string
}

type UserService interface {
	PublicProfile(ctx context.Context, uid string) (*domain.User, error)
	Posts(ctx context.Context, uid string, offset, limit int) ([]*domain.Post, error)
	Comments(ctx context.Context, uid string, offset, limit int) ([]*domain.Comment, error)
	Activity(ctx context.Context, principal *domain.User, offset, limit int) ([]*domain.Activity, error)
	UpdateProfile(ctx context.Context, principal *domain.User, in UpdateProfileInput) (*domain.User, error)
	DeleteAccount(ctx context.Context, principal *domain.User) error
}
