// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"pulse/internal/domain/entity"
)

// --- Input DTOs ---

// CreateStoryInput defines the data required to publish a story.
type CreateStoryInput struct {
	ContentURL string
}

// --- Output DTOs ---

// SweepOutput reports the result of one expiry sweep pass.
type SweepOutput struct {
	Deactivated int64
}

// StoryUsecase defines the interface for story-related business operations.
//
// Stories are visible for a fixed window after creation. Reads apply the
// visibility predicate directly, so a story that expired a millisecond ago is
// already gone from every viewer-facing operation even before the sweep runs.
type StoryUsecase interface {
	CreateStory(ctx context.Context, actorID int64, input *CreateStoryInput) (*entity.Story, error)
	GetStory(ctx context.Context, storyID int64) (*entity.Story, error)
	ListStories(ctx context.Context, input *ListInput) ([]*entity.Story, error)
	ListUserStories(ctx context.Context, userID int64, input *ListInput) ([]*entity.Story, error)

	// ListOwnStories is the owner's audit view: it returns the acting
	// user's stories in every state, expired and soft-deleted included.
	ListOwnStories(ctx context.Context, actorID int64, input *ListInput) ([]*entity.Story, error)

	DeleteStory(ctx context.Context, actorID, storyID int64) error
	SweepExpiredStories(ctx context.Context) (*SweepOutput, error)
}
