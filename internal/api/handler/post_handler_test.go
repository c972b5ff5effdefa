package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/chirpnet/social-api/internal/core/domain"
)

type stubPostService struct {
	createFn     func(ctx context.Context, principal *domain.User, content string) (*domain.Post, error)
	feedFn       func(ctx context.Context, offset, limit int) ([]*domain.Post, error)
	getFn        func(ctx context.Context, uid string) (*domain.Post, error)
	updateFn     func(ctx context.Context, principal *domain.User, uid, content string) (*domain.Post, error)
	deleteFn     func(ctx context.Context, principal *domain.User, uid string) error
	addCommentFn func(ctx context.Context, principal *domain.User, postUID, content string) (*domain.Comment, error)
	commentsFn   func(ctx context.Context, postUID string, offset, limit int) ([]*domain.Comment, error)
}

func (s *stubPostService) Create(ctx context.Context, principal *domain.User, content string) (*domain.Post, error) {
	return s.createFn(ctx, principal, content)
}

func (s *stubPostService) Feed(ctx context.Context, offset, limit int) ([]*domain.Post, error) {
	return s.feedFn(ctx, offset, limit)
}

func (s *stubPostService) Get(ctx context.Context, uid string) (*domain.Post, error) {
	return s.getFn(ctx, uid)
}

func (s *stubPostService) Update(ctx context.Context, principal *domain.User, uid, content string) (*domain.Post, error) {
	return s.updateFn(ctx, principal, uid, content)
}

func (s *stubPostService) Delete(ctx context.Context, principal *domain.User, uid string) error {
	return s.deleteFn(ctx, principal, uid)
}

func (s *stubPostService) AddComment(ctx context.Context, principal *domain.User, postUID, content string) (*domain.Comment, error) {
	return s.addCommentFn(ctx, principal, postUID, content)
}

func (s *stubPostService) Comments(ctx context.Context, postUID string, offset, limit int) ([]*domain.Comment, error) {
	return s.commentsFn(ctx, postUID, offset, limit)
}

func newPostContext(t *testing.T, method, body string, principal *domain.User) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if principal != nil {
		c.Set("principal", principal)
	}
	return c, rec
}

func TestPostHandler_Get_ActionsReflectOwnership(t *testing.T) {
	post := &domain.Post{
		UID:     "p1",
		Owner:   domain.Owner{UID: "owner-1", DisplayName: "alice"},
		Content: "hello",
	}
	stub := &stubPostService{
		getFn: func(_ context.Context, uid string) (*domain.Post, error) {
			return post, nil
		},
	}
	h := NewPostHandler(stub)

	// Owner sees the full action set.
	c, rec := newPostContext(t, http.MethodGet, "", &domain.User{UID: "owner-1"})
	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if actions, _ := resp["actions"].([]any); len(actions) != 3 {
		t.Fatalf("owner actions = %v, want View/Edit/Delete", resp["actions"])
	}

	// Everyone else only views.
	c, rec = newPostContext(t, http.MethodGet, "", &domain.User{UID: "stranger"})
	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	resp = nil
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if actions, _ := resp["actions"].([]any); len(actions) != 1 || actions[0] != "View" {
		t.Fatalf("stranger actions = %v, want [View]", resp["actions"])
	}
}

func TestPostHandler_Create_ValidatesContent(t *testing.T) {
	stub := &stubPostService{
		createFn: func(context.Context, *domain.User, string) (*domain.Post, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewPostHandler(stub)

	c, _ := newPostContext(t, http.MethodPost, `{"content":""}`, &domain.User{UID: "u1"})
	err := h.Create(c)

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := verr.Fields["content"]; !ok {
		t.Fatalf("missing content field in %v", verr.Fields)
	}
}

func TestPostHandler_Update_PropagatesForbidden(t *testing.T) {
	stub := &stubPostService{
		updateFn: func(context.Context, *domain.User, string, string) (*domain.Post, error) {
			return nil, domain.ErrForbidden
		},
	}
	h := NewPostHandler(stub)

	c, _ := newPostContext(t, http.MethodPatch, `{"content":"edit"}`, &domain.User{UID: "u1"})
	if err := h.Update(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestPostHandler_Delete_NoBody(t *testing.T) {
	deleted := ""
	stub := &stubPostService{
		deleteFn: func(_ context.Context, _ *domain.User, uid string) error {
			deleted = uid
			return nil
		},
	}
	h := NewPostHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("post_id")
	c.SetParamValues("p1")
	c.Set("principal", &domain.User{UID: "u1"})

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if deleted != "p1" {
		t.Fatalf("deleted = %q, want p1", deleted)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
}

func TestPostHandler_RequiresPrincipal(t *testing.T) {
	h := NewPostHandler(&stubPostService{})

	c, _ := newPostContext(t, http.MethodGet, "", nil)
	if err := h.Feed(c); !errors.Is(err, domain.ErrCouldNotAuthenticate) {
		t.Fatalf("expected ErrCouldNotAuthenticate, got %v", err)
	}
}
