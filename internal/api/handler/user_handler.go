package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chirpnet/social-api/internal/api/middleware"
	"github.com/chirpnet/social-api/internal/core/ports"
)

// UserHandler handles HTTP requests for profiles and the current account.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Me handles GET /users/me — the caller's private profile.
func (h *UserHandler) Me(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newPrivateProfileResponse(principal))
}

// UpdateMe handles PATCH /users/me.
func (h *UserHandler) UpdateMe(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.UpdateProfile(c.Request().Context(), principal, ports.UpdateProfileInput{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newPrivateProfileResponse(user))
}

// DeleteMe handles DELETE /users/me. Outstanding tokens die with the account.
func (h *UserHandler) DeleteMe(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteAccount(c.Request().Context(), principal); err != nil {
		return err
	}

	return c.NoContent(http.StatusOK)
}

// Activity handles GET /users/me/activity, newest first.
func (h *UserHandler) Activity(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	offset, limit := middleware.Page(c)
	activities, err := h.service.Activity(c.Request().Context(), principal, offset, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newActivityListResponse(activities))
}

// PublicProfile handles GET /users/:user_id.
func (h *UserHandler) PublicProfile(c echo.Context) error {
	if _, err := ctxPrincipal(c); err != nil {
		return err
	}

	user, err := h.service.PublicProfile(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newPublicProfileResponse(user))
}

// Posts handles GET /users/:user_id/posts.
func (h *UserHandler) Posts(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	offset, limit := middleware.Page(c)
	posts, err := h.service.Posts(c.Request().Context(), c.Param("user_id"), offset, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newPostListResponse(posts, principal))
}

// Comments handles GET /users/:user_id/comments.
func (h *UserHandler) Comments(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	offset, limit := middleware.Page(c)
	comments, err := h.service.Comments(c.Request().Context(), c.Param("user_id"), offset, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newCommentListResponse(comments, principal))
}
