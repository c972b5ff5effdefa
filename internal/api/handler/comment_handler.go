package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chirpnet/social-api/internal/core/ports"
)

// CommentHandler handles HTTP requests for standalone comment operations.
type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// Get handles GET /comments/:comment_id.
func (h *CommentHandler) Get(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	comment, err := h.service.Get(c.Request().Context(), c.Param("comment_id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newCommentResponse(comment, principal))
}

// Update handles PATCH /comments/:comment_id. Owner only.
func (h *CommentHandler) Update(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.service.Update(c.Request().Context(), principal, c.Param("comment_id"), req.Content)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newCommentResponse(comment, principal))
}

// Delete handles DELETE /comments/:comment_id. Owner only.
func (h *CommentHandler) Delete(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), principal, c.Param("comment_id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusOK)
}
