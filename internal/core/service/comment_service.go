package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/chirpnet/social-api/internal/core/domain"
	"github.com/chirpnet/social-api/internal/core/ports"
)

// CommentService implements standalone comment reads and mutations.
type CommentService struct {
	comments ports.CommentRepository
	posts    ports.PostRepository
	activity ports.ActivityRecorder
	log      zerolog.Logger
}

func NewCommentService(comments ports.CommentRepository, posts ports.PostRepository, activity ports.ActivityRecorder, log zerolog.Logger) *CommentService {
	return &CommentService{comments: comments, posts: posts, activity: activity, log: log}
}

func (s *CommentService) Get(ctx context.Context, uid string) (*domain.Comment, error) {
	return s.comments.FindByUID(ctx, uid)
}

func (s *CommentService) Update(ctx context.Context, principal *domain.User, uid, content string) (*domain.Comment, error) {
	comment, err := s.comments.FindByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if !domain.IsOwner(principal, comment) {
		return nil, domain.ErrForbidden
	}

	comment.Content = content
	comment.UpdatedAt = time.Now().UTC()
	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, err
	}

	s.activity.Enqueue(domain.Activity{
		ActorUID:   principal.UID,
		Verb:       domain.VerbCommentUpdated,
		SubjectUID: comment.UID,
		RecordedAt: time.Now().UTC(),
	})

	return comment, nil
}

func (s *CommentService) Delete(ctx context.Context, principal *domain.User, uid string) error {
	comment, err := s.comments.FindByUID(ctx, uid)
	if err != nil {
		return err
	}
	if !domain.IsOwner(principal, comment) {
		return domain.ErrForbidden
	}

	if err := s.comments.Delete(ctx, uid); err != nil {
		return err
	}
	if err := s.posts.IncCommentCount(ctx, comment.PostUID, -1); err != nil {
		s.log.Error().Err(err).Str("post", comment.PostUID).Msg("failed to decrement comment count")
	}

	s.activity.Enqueue(domain.Activity{
		ActorUID:   principal.UID,
		Verb:       domain.VerbCommentDeleted,
		SubjectUID: uid,
		RecordedAt: time.Now().UTC(),
	})

	return nil
}
