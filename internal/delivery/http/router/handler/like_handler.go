package handler

import (
	"log/slog"
	"net/http"

	"pulse/internal/delivery/http/response"
	"pulse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LikeHandler holds dependencies for like-related handlers.
type LikeHandler struct {
	uc     usecase.LikeUsecase
	logger *slog.Logger
}

// NewLikeHandler is the constructor for LikeHandler, injected by Fx.
func NewLikeHandler(uc usecase.LikeUsecase, logger *slog.Logger) *LikeHandler {
	return &LikeHandler{
		uc:     uc,
		logger: logger,
	}
}

// ToggleLike handles the request to like or unlike a post. The response
// reports the resulting state and the post's current like count.
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	output, err := h.uc.ToggleLike(c.Request().Context(), actor, postID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Like toggled successfully")
}

// GetLikeStatus handles the request for a post's like count plus whether
// the authenticated user currently likes it.
func (h *LikeHandler) GetLikeStatus(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	output, err := h.uc.GetLikeStatus(c.Request().Context(), actor, postID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// ListOwnLikes handles the request for the authenticated user's likes.
func (h *LikeHandler) ListOwnLikes(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	likes, err := h.uc.ListUserLikes(c.Request().Context(), actor, listInput(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, likes, "")
}

// ListPostLikes handles the request for a post's likes, newest first.
func (h *LikeHandler) ListPostLikes(c echo.Context) error {
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	likes, err := h.uc.ListPostLikes(c.Request().Context(), postID, listInput(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, likes, "")
}

// CountPostLikes handles the request for a post's like count.
func (h *LikeHandler) CountPostLikes(c echo.Context) error {
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	count, err := h.uc.CountPostLikes(c.Request().Context(), postID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"count": count}, "")
}
