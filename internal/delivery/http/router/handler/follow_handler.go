package handler

import (
	"log/slog"
	"net/http"

	"pulse/internal/delivery/http/response"
	"pulse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FollowHandler holds dependencies for follow-graph handlers.
type FollowHandler struct {
	uc     usecase.FollowUsecase
	logger *slog.Logger
}

// NewFollowHandler is the constructor for FollowHandler, injected by Fx.
func NewFollowHandler(uc usecase.FollowUsecase, logger *slog.Logger) *FollowHandler {
	return &FollowHandler{
		uc:     uc,
		logger: logger,
	}
}

// Follow handles the request to follow another user.
func (h *FollowHandler) Follow(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	targetID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Follow(c.Request().Context(), actor, targetID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Followed successfully")
}

// Unfollow handles the request to unfollow a user.
func (h *FollowHandler) Unfollow(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	targetID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Unfollow(c.Request().Context(), actor, targetID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Unfollowed successfully")
}

// ListFollowers handles the request for a user's followers.
func (h *FollowHandler) ListFollowers(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	users, err := h.uc.ListFollowers(c.Request().Context(), userID, listInput(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserViews(users), "")
}

// ListFollowing handles the request for the users someone follows.
func (h *FollowHandler) ListFollowing(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	users, err := h.uc.ListFollowing(c.Request().Context(), userID, listInput(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserViews(users), "")
}

// ListOwnFollowers handles the request for the authenticated user's followers.
func (h *FollowHandler) ListOwnFollowers(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	users, err := h.uc.ListFollowers(c.Request().Context(), actor, listInput(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserViews(users), "")
}

// ListOwnFollowing handles the request for the users the authenticated user follows.
func (h *FollowHandler) ListOwnFollowing(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	users, err := h.uc.ListFollowing(c.Request().Context(), actor, listInput(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserViews(users), "")
}

// GetFollowStats handles the request for a user's follow counts.
func (h *FollowHandler) GetFollowStats(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	stats, err := h.uc.GetFollowStats(c.Request().Context(), actor, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}
