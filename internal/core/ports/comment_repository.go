package ports

import (
	"context"

	"github.com/chirpnet/social-api/internal/core/domain"
)

// CommentRepository persists comments. ListByPost is ordered newest first.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	FindByUID(ctx context.Context, uid string) (*domain.Comment, error)
	Update(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, uid string) error
	ListByPost(ctx context.Context, postUID string, offset, limit int) ([]*domain.Comment, error)
	ListByOwner(ctx context.Context, ownerUID string, offset, limit int) ([]*domain.Comment, error)
	DeleteByPost(ctx context.Context, postUID string) error
	DeleteByOwner(ctx context.Context, ownerUID string) error
}
