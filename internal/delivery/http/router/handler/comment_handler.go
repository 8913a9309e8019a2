package handler

import (
	"log/slog"
	"net/http"

	"pulse/internal/delivery/http/response"
	"pulse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CommentHandler holds dependencies for comment-related handlers.
type CommentHandler struct {
	uc     usecase.CommentUsecase
	logger *slog.Logger
}

// NewCommentHandler is the constructor for CommentHandler, injected by Fx.
func NewCommentHandler(uc usecase.CommentUsecase, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateCommentRequest represents the request body for commenting on a post
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// UpdateCommentRequest represents the request body for editing a comment
type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// CreateComment handles the request to comment on a post.
func (h *CommentHandler) CreateComment(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateCommentInput{Content: req.Content}

	comment, err := h.uc.CreateComment(c.Request().Context(), actor, postID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, comment, "Comment created successfully")
}

// ListPostComments handles the request for a post's comments, oldest first.
func (h *CommentHandler) ListPostComments(c echo.Context) error {
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	comments, err := h.uc.ListPostComments(c.Request().Context(), postID, listInput(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, comments, "")
}

// ListOwnComments handles the request for the authenticated user's comments.
func (h *CommentHandler) ListOwnComments(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	comments, err := h.uc.ListUserComments(c.Request().Context(), actor, listInput(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, comments, "")
}

// UpdateComment handles the request to edit a comment.
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	commentID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateCommentInput{Content: req.Content}

	comment, err := h.uc.UpdateComment(c.Request().Context(), actor, commentID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, comment, "Comment updated successfully")
}

// DeleteComment handles the request to delete a comment.
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	commentID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteComment(c.Request().Context(), actor, commentID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Comment deleted successfully")
}
