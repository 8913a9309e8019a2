package handler

import (
	"log/slog"
	"net/http"

	"pulse/internal/delivery/http/response"
	"pulse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StoryHandler holds dependencies for story-related handlers.
type StoryHandler struct {
	uc     usecase.StoryUsecase
	logger *slog.Logger
}

// NewStoryHandler is the constructor for StoryHandler, injected by Fx.
func NewStoryHandler(uc usecase.StoryUsecase, logger *slog.Logger) *StoryHandler {
	return &StoryHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateStoryRequest represents the request body for publishing a story
type CreateStoryRequest struct {
	ContentURL string `json:"content_url" validate:"required,url"`
}

// CreateStory handles the request to publish a new story.
func (h *StoryHandler) CreateStory(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req CreateStoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid story input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateStoryInput{ContentURL: req.ContentURL}

	story, err := h.uc.CreateStory(c.Request().Context(), actor, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, story, "Story created successfully")
}

// GetStory handles the request for a single story. Stories outside their
// visibility window respond with a 404.
func (h *StoryHandler) GetStory(c echo.Context) error {
	storyID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	story, err := h.uc.GetStory(c.Request().Context(), storyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, story, "")
}

// ListStories handles the request for all currently visible stories.
func (h *StoryHandler) ListStories(c echo.Context) error {
	stories, err := h.uc.ListStories(c.Request().Context(), listInput(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stories, "")
}

// ListUserStories handles the request for one user's visible stories.
func (h *StoryHandler) ListUserStories(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	stories, err := h.uc.ListUserStories(c.Request().Context(), userID, listInput(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stories, "")
}

// ListOwnStories handles the owner audit request: the authenticated user's
// stories in every state, expired and deleted included.
func (h *StoryHandler) ListOwnStories(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	stories, err := h.uc.ListOwnStories(c.Request().Context(), actor, listInput(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stories, "")
}

// DeleteStory handles the request to soft-delete a story.
func (h *StoryHandler) DeleteStory(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	storyID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteStory(c.Request().Context(), actor, storyID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Story deleted successfully")
}

// CleanupStories handles the request to sweep expired stories immediately,
// without waiting for the periodic sweeper. The sweep is idempotent and
// touches only already-expired rows, so the route carries no auth.
func (h *StoryHandler) CleanupStories(c echo.Context) error {
	output, err := h.uc.SweepExpiredStories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Expired stories cleaned up")
}
