package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chirpnet/social-api/internal/api/middleware"
	"github.com/chirpnet/social-api/internal/core/ports"
)

// PostHandler handles HTTP requests for the feed and post-scoped comments.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// Create handles POST /posts.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post content"
// @Success      201   {object}  postResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.service.Create(c.Request().Context(), principal, req.Content)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, newPostResponse(post, principal))
}

// Feed handles GET /posts, newest first.
//
// @Summary      Fetch the feed
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        offset  query     int  false  "Items to skip"
// @Param        limit   query     int  false  "Page size (max 20)"
// @Success      200     {array}   postResponse
// @Failure      401     {object}  map[string]string
// @Router       /posts [get]
func (h *PostHandler) Feed(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	offset, limit := middleware.Page(c)
	posts, err := h.service.Feed(c.Request().Context(), offset, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newPostListResponse(posts, principal))
}

// Get handles GET /posts/:post_id.
func (h *PostHandler) Get(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	post, err := h.service.Get(c.Request().Context(), c.Param("post_id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newPostResponse(post, principal))
}

// Update handles PATCH /posts/:post_id. Owner only.
func (h *PostHandler) Update(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.service.Update(c.Request().Context(), principal, c.Param("post_id"), req.Content)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newPostResponse(post, principal))
}

// Delete handles DELETE /posts/:post_id. Owner only.
func (h *PostHandler) Delete(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), principal, c.Param("post_id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusOK)
}

// AddComment handles POST /posts/:post_id/comments.
func (h *PostHandler) AddComment(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.service.AddComment(c.Request().Context(), principal, c.Param("post_id"), req.Content)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, newCommentResponse(comment, principal))
}

// Comments handles GET /posts/:post_id/comments, newest first.
func (h *PostHandler) Comments(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	offset, limit := middleware.Page(c)
	comments, err := h.service.Comments(c.Request().Context(), c.Param("post_id"), offset, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newCommentListResponse(comments, principal))
}
