package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/chirpnet/social-api/internal/core/domain"
	"github.com/chirpnet/social-api/internal/core/ports"
)

// UserService implements profile reads, profile updates and account removal.
type UserService struct {
	users      ports.UserRepository
	posts      ports.PostRepository
	comments   ports.CommentRepository
	activities ports.ActivityRepository
	log        zerolog.Logger
}

func NewUserService(users ports.UserRepository, posts ports.PostRepository, comments ports.CommentRepository, activities ports.ActivityRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, posts: posts, comments: comments, activities: activities, log: log}
}

func (s *UserService) PublicProfile(ctx context.Context, uid string) (*domain.User, error) {
	return s.users.FindByUID(ctx, uid)
}

func (s *UserService) Posts(ctx context.Context, uid string, offset, limit int) ([]*domain.Post, error) {
	if _, err := s.users.FindByUID(ctx, uid); err != nil {
		return nil, err
	}
	return s.posts.ListByOwner(ctx, uid, offset, limit)
}

func (s *UserService) Comments(ctx context.Context, uid string, offset, limit int) ([]*domain.Comment, error) {
	if _, err := s.users.FindByUID(ctx, uid); err != nil {
		return nil, err
	}
	return s.comments.ListByOwner(ctx, uid, offset, limit)
}

func (s *UserService) Activity(ctx context.Context, principal *domain.User, offset, limit int) ([]*domain.Activity, error) {
	return s.activities.ListByActor(ctx, principal.UID, offset, limit)
}

// UpdateProfile replaces email, password and display name in one shot, the
// same all-fields-required contract the signup form uses.
func (s *UserService) UpdateProfile(ctx context.Context, principal *domain.User, in ports.UpdateProfileInput) (*domain.User, error) {
	email := strings.ToLower(in.Email)

	if existing, err := s.users.FindByEmail(ctx, email); err == nil {
		if existing.UID != principal.UID {
			return nil, domain.ErrEmailTaken
		}
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	principal.Email = email
	principal.PasswordHash = string(hash)
	principal.DisplayName = in.DisplayName
	principal.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, principal); err != nil {
		return nil, err
	}

	s.log.Info().Str("uid", principal.UID).Msg("profile updated")

	return principal, nil
}

// DeleteAccount removes the account and everything it owns. Outstanding
// tokens keep verifying cryptographically but die at the principal lookup,
// which is the system's only form of revocation.
func (s *UserService) DeleteAccount(ctx context.Context, principal *domain.User) error {
	if err := s.users.Delete(ctx, principal.UID); err != nil {
		return err
	}
	if err := s.posts.DeleteByOwner(ctx, principal.UID); err != nil {
		s.log.Error().Err(err).Str("uid", principal.UID).Msg("failed to cascade post deletion")
	}
	if err := s.comments.DeleteByOwner(ctx, principal.UID); err != nil {
		s.log.Error().Err(err).Str("uid", principal.UID).Msg("failed to cascade comment deletion")
	}

	s.log.Info().Str("uid", principal.UID).Msg("account deleted")

	return nil
}
