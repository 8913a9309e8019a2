// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"pulse/internal/domain/entity"
)

// ErrStoryNotFound is returned when a story is not found.
var ErrStoryNotFound = errors.New("story not found")

// StoryRepository defines the operations for time-bounded story persistence.
//
// Every read method that serves viewers applies the visibility predicate
// (Active AND (no expiry OR now before expiry)) in the query itself, so
// results are correct whether or not the sweep has already run.
type StoryRepository interface {
	// Create persists a new story.
	Create(ctx context.Context, story *entity.Story) error

	// FindByID retrieves a single story by its unique ID regardless of
	// visibility; callers decide how to report invisible stories.
	FindByID(ctx context.Context, id int64) (*entity.Story, error)

	// ListVisible retrieves all stories visible at the given instant, newest first.
	ListVisible(ctx context.Context, now time.Time, offset, limit int) ([]*entity.Story, error)

	// ListVisibleByUserID retrieves one user's stories visible at the given instant.
	ListVisibleByUserID(ctx context.Context, userID int64, now time.Time, offset, limit int) ([]*entity.Story, error)

	// ListByUserID retrieves all of a user's stories regardless of visibility.
	// This is the owner's audit view.
	ListByUserID(ctx context.Context, userID int64, offset, limit int) ([]*entity.Story, error)

	// Deactivate flips a story to the Inactive state. The flip is monotonic
	// and irreversible.
	Deactivate(ctx context.Context, id int64) error

	// SweepExpired flips every Active story whose expiry has passed to
	// Inactive in one batch statement and returns the number of rows
	// affected. Running it again with no newly expired stories affects zero
	// rows.
	SweepExpired(ctx context.Context, now time.Time) (int64, error)
}
