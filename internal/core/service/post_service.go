package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/chirpnet/social-api/internal/api/metrics"
	"github.com/chirpnet/social-api/internal/core/domain"
	"github.com/chirpnet/social-api/internal/core/ports"
)

// PostService implements the post lifecycle plus post-scoped comments.
type PostService struct {
	posts    ports.PostRepository
	comments ports.CommentRepository
	activity ports.ActivityRecorder
	log      zerolog.Logger
}

func NewPostService(posts ports.PostRepository, comments ports.CommentRepository, activity ports.ActivityRecorder, log zerolog.Logger) *PostService {
	return &PostService{posts: posts, comments: comments, activity: activity, log: log}
}

func (s *PostService) Create(ctx context.Context, principal *domain.User, content string) (*domain.Post, error) {
	now := time.Now().UTC()
	post := &domain.Post{
		UID:       newUID(),
		Owner:     domain.Owner{UID: principal.UID, DisplayName: principal.DisplayName},
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.posts.Create(ctx, post); err != nil {
		s.log.Error().Err(err).Msg("failed to create post")
		return nil, err
	}

	metrics.PostsCreatedTotal.Inc()
	s.record(principal.UID, domain.VerbPostCreated, post.UID)

	return post, nil
}

func (s *PostService) Feed(ctx context.Context, offset, limit int) ([]*domain.Post, error) {
	return s.posts.List(ctx, offset, limit)
}

func (s *PostService) Get(ctx context.Context, uid string) (*domain.Post, error) {
	return s.posts.FindByUID(ctx, uid)
}

func (s *PostService) Update(ctx context.Context, principal *domain.User, uid, content string) (*domain.Post, error) {
	post, err := s.posts.FindByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if !domain.IsOwner(principal, post) {
		return nil, domain.ErrForbidden
	}

	post.Content = content
	post.UpdatedAt = time.Now().UTC()
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}

	s.record(principal.UID, domain.VerbPostUpdated, post.UID)

	return post, nil
}

// Delete removes a post and every comment attached to it.
func (s *PostService) Delete(ctx context.Context, principal *domain.User, uid string) error {
	post, err := s.posts.FindByUID(ctx, uid)
	if err != nil {
		return err
	}
	if !domain.IsOwner(principal, post) {
		return domain.ErrForbidden
	}

	if err := s.posts.Delete(ctx, uid); err != nil {
		return err
	}
	if err := s.comments.DeleteByPost(ctx, uid); err != nil {
		s.log.Error().Err(err).Str("post", uid).Msg("failed to cascade comment deletion")
	}

	s.record(principal.UID, domain.VerbPostDeleted, uid)

	return nil
}

// AddComment attaches a comment to an existing post. Any authenticated
// principal may comment; ownership gates only mutation of the comment itself.
func (s *PostService) AddComment(ctx context.Context, principal *domain.User, postUID, content string) (*domain.Comment, error) {
	post, err := s.posts.FindByUID(ctx, postUID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	comment := &domain.Comment{
		UID:       newUID(),
		Owner:     domain.Owner{UID: principal.UID, DisplayName: principal.DisplayName},
		PostUID:   post.UID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	if err := s.posts.IncCommentCount(ctx, post.UID, 1); err != nil {
		s.log.Error().Err(err).Str("post", post.UID).Msg("failed to bump comment count")
	}

	metrics.CommentsCreatedTotal.Inc()
	s.record(principal.UID, domain.VerbCommentCreated, comment.UID)

	return comment, nil
}

func (s *PostService) Comments(ctx context.Context, postUID string, offset, limit int) ([]*domain.Comment, error) {
	if _, err := s.posts.FindByUID(ctx, postUID); err != nil {
		return nil, err
	}
	return s.comments.ListByPost(ctx, postUID, offset, limit)
}

func (s *PostService) record(actorUID, verb, subjectUID string) {
	s.activity.Enqueue(domain.Activity{
		ActorUID:   actorUID,
		Verb:       verb,
		SubjectUID: subjectUID,
		RecordedAt: time.Now().UTC(),
	})
}
