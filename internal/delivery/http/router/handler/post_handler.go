package handler

import (
	"log/slog"
	"net/http"

	"pulse/internal/delivery/http/response"
	"pulse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PostHandler holds dependencies for post-related handlers.
type PostHandler struct {
	uc     usecase.PostUsecase
	logger *slog.Logger
}

// NewPostHandler is the constructor for PostHandler, injected by Fx.
func NewPostHandler(uc usecase.PostUsecase, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreatePostRequest represents the request body for publishing a post
type CreatePostRequest struct {
	Content string `json:"content" validate:"required"`
}

// UpdatePostRequest represents the request body for editing a post
type UpdatePostRequest struct {
	Content string `json:"content" validate:"required"`
}

// CreatePost handles the request to publish a new post.
func (h *PostHandler) CreatePost(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreatePostInput{Content: req.Content}

	post, err := h.uc.CreatePost(c.Request().Context(), actor, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, post, "Post created successfully")
}

// GetPost handles the request for a single post.
func (h *PostHandler) GetPost(c echo.Context) error {
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	post, err := h.uc.GetPost(c.Request().Context(), postID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, post, "")
}

// ListPosts handles the paginated post feed request, newest first.
func (h *PostHandler) ListPosts(c echo.Context) error {
	posts, err := h.uc.ListPosts(c.Request().Context(), listInput(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, posts, "")
}

// ListUserPosts handles the request for one user's posts.
func (h *PostHandler) ListUserPosts(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	posts, err := h.uc.ListUserPosts(c.Request().Context(), userID, listInput(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, posts, "")
}

// ListOwnPosts handles the request for the authenticated user's posts.
func (h *PostHandler) ListOwnPosts(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	posts, err := h.uc.ListUserPosts(c.Request().Context(), actor, listInput(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, posts, "")
}

// UpdatePost handles the request to edit a post's content.
func (h *PostHandler) UpdatePost(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdatePostInput{Content: req.Content}

	post, err := h.uc.UpdatePost(c.Request().Context(), actor, postID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, post, "Post updated successfully")
}

// DeletePost handles the request to delete a post.
func (h *PostHandler) DeletePost(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeletePost(c.Request().Context(), actor, postID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Post deleted successfully")
}
