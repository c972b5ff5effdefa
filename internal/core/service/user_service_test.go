package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/chirpnet/social-api/internal/core/domain"
	"github.com/chirpnet/social-api/internal/core/ports"
)

type stubActivityRepo struct {
	activities []*domain.Activity
}

func (r *stubActivityRepo) Record(_ context.Context, activity *domain.Activity) error {
	clone := *activity
	r.activities = append(r.activities, &clone)
	return nil
}

func (r *stubActivityRepo) ListByActor(_ context.Context, actorUID string, offset, limit int) ([]*domain.Activity, error) {
	var out []*domain.Activity
	for _, a := range r.activities {
		if a.ActorUID == actorUID {
			out = append(out, a)
		}
	}
	return out, nil
}

func newUserFixture(t *testing.T) (*UserService, *stubUserRepo, *stubPostRepo, *stubCommentRepo, *domain.User) {
	t.Helper()

	users := newStubUserRepo()
	posts := newStubPostRepo()
	comments := newStubCommentRepo()

	authSvc, _ := newAuthService(users)
	principal, err := authSvc.Signup(context.Background(), ports.SignupInput{
		Email:       "frank@example.com",
		Password:    "Str0ng@pass",
		DisplayName: "frank",
	})
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	svc := NewUserService(users, posts, comments, &stubActivityRepo{}, zerolog.Nop())
	return svc, users, posts, comments, principal
}

func TestUserService_UpdateProfile(t *testing.T) {
	svc, users, _, _, principal := newUserFixture(t)

	updated, err := svc.UpdateProfile(context.Background(), principal, ports.UpdateProfileInput{
		Email:       "Frank.New@Example.com",
		Password:    "N3w@password",
		DisplayName: "franklin",
	})
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	if updated.Email != "frank.new@example.com" {
		t.Fatalf("email = %q, want lowercased", updated.Email)
	}
	if updated.DisplayName != "franklin" {
		t.Fatalf("display name = %q, want franklin", updated.DisplayName)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("N3w@password")); err != nil {
		t.Fatalf("stored hash does not match new password: %v", err)
	}

	stored, err := users.FindByUID(context.Background(), principal.UID)
	if err != nil {
		t.Fatalf("lookup after update failed: %v", err)
	}
	if stored.Email != "frank.new@example.com" {
		t.Fatalf("persisted email = %q, want frank.new@example.com", stored.Email)
	}
}

func TestUserService_UpdateProfile_KeepOwnEmail(t *testing.T) {
	svc, _, _, _, principal := newUserFixture(t)

	// Re-submitting the current email is not a conflict.
	if _, err := svc.UpdateProfile(context.Background(), principal, ports.UpdateProfileInput{
		Email:       principal.Email,
		Password:    "Str0ng@pass",
		DisplayName: "frank",
	}); err != nil {
		t.Fatalf("UpdateProfile with own email failed: %v", err)
	}
}

func TestUserService_UpdateProfile_EmailTaken(t *testing.T) {
	svc, users, _, _, principal := newUserFixture(t)

	authSvc, _ := newAuthService(users)
	if _, err := authSvc.Signup(context.Background(), ports.SignupInput{
		Email: "grace@example.com", Password: "Str0ng@pass", DisplayName: "grace",
	}); err != nil {
		t.Fatalf("second signup failed: %v", err)
	}

	if _, err := svc.UpdateProfile(context.Background(), principal, ports.UpdateProfileInput{
		Email:       "grace@example.com",
		Password:    "Str0ng@pass",
		DisplayName: "frank",
	}); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserService_DeleteAccount_Cascades(t *testing.T) {
	svc, users, posts, comments, principal := newUserFixture(t)

	recorder := &stubRecorder{}
	postSvc := NewPostService(posts, comments, recorder, zerolog.Nop())
	post, err := postSvc.Create(context.Background(), principal, "mine")
	if err != nil {
		t.Fatalf("post create failed: %v", err)
	}
	if _, err := postSvc.AddComment(context.Background(), principal, post.UID, "me too"); err != nil {
		t.Fatalf("comment create failed: %v", err)
	}

	if err := svc.DeleteAccount(context.Background(), principal); err != nil {
		t.Fatalf("DeleteAccount returned error: %v", err)
	}

	if _, err := users.FindByUID(context.Background(), principal.UID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected account gone, got %v", err)
	}
	if len(posts.posts) != 0 {
		t.Fatalf("posts not cascaded: %d remaining", len(posts.posts))
	}
	if len(comments.comments) != 0 {
		t.Fatalf("comments not cascaded: %d remaining", len(comments.comments))
	}
}

func TestUserService_Posts_UnknownUser(t *testing.T) {
	svc, _, _, _, _ := newUserFixture(t)

	if _, err := svc.Posts(context.Background(), "missing", 0, 20); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := svc.Comments(context.Background(), "missing", 0, 20); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
