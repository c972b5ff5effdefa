package ports

import (
	"context"

	"github.com/chirpnet/social-api/internal/core/domain"
)

type CommentService interface {
	Get(ctx context.Context, uid string) (*domain.Comment, error)
	Update(ctx context.Context, principal *domain.User, uid, content string) (*domain.Comment, error)
	Delete(ctx context.Context, principal *domain.User, uid string) error
}
