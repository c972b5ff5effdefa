package ports

import (
	"context"

	"github.com/chirpnet/social-api/internal/core/domain"
)

// PostService owns the post lifecycle and the post-scoped comment
// operations. Mutations require the acting principal; reads do not check
// ownership.
type PostService interface {
	Create(ctx context.Context, principal *domain.User, content string) (*domain.Post, error)
	Feed(ctx context.Context, offset, limit int) ([]*domain.Post, error)
	Get(ctx context.Context, uid string) (*domain.Post, error)
	Update(ctx context.Context, principal *domain.User, uid, content string) (*domain.Post, error)
	Delete(ctx context.Context, principal *domain.User, uid string) error
	AddComment(ctx context.Context, principal *domain.User, postUID, content string) (*domain.Comment, error)
	Comments(ctx context.Context, postUID string, offset, limit int) ([]*domain.Comment, error)
}
