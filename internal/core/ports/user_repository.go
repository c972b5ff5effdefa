package ports

import (
	"context"

	"github.com/chirpnet/social-api/internal/core/domain"
)

// UserRepository is the credential store: it persists accounts and resolves
// principals by public uid or by email.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByUID(ctx context.Context, uid string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, uid string) error
}
