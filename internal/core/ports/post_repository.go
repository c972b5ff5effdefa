package ports

import (
	"context"

	"github.com/chirpnet/social-api/internal/core/domain"
)

// PostRepository persists posts. List results are ordered newest first.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	FindByUID(ctx context.Context, uid string) (*domain.Post, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, uid string) error
	List(ctx context.Context, offset, limit int) ([]*domain.Post, error)
	ListByOwner(ctx context.Context, ownerUID string, offset, limit int) ([]*domain.Post, error)
	IncCommentCount(ctx context.Context, uid string, delta int64) error
	DeleteByOwner(ctx context.Context, ownerUID string) error
}
