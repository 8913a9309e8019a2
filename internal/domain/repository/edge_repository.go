// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"pulse/internal/domain/entity"
)

// Domain-specific errors for relational-edge persistence.
var (
	// ErrFollowNotFound is returned when a follow edge is not found.
	ErrFollowNotFound = errors.New("follow edge not found")
	// ErrLikeNotFound is returned when a like edge is not found.
	ErrLikeNotFound = errors.New("like edge not found")
	// ErrDuplicateEdge is returned when inserting an edge that already exists.
	// The database unique constraint on the (subject, object) pair is the
	// authoritative source of this error; pre-insert existence checks only
	// shape friendlier messages.
	ErrDuplicateEdge = errors.New("edge already exists")
)

// FollowRepository defines the operations for user→user follow edges.
type FollowRepository interface {
	// Create persists a new follow edge. Returns ErrDuplicateEdge when the
	// (follower, following) pair already exists.
	Create(ctx context.Context, follow *entity.Follow) error

	// Find retrieves the edge for a specific (follower, following) pair.
	Find(ctx context.Context, followerID, followingID int64) (*entity.Follow, error)

	// Delete removes the edge for a specific (follower, following) pair.
	Delete(ctx context.Context, followerID, followingID int64) error

	// ListFollowers retrieves the edges pointing at userID, newest first.
	ListFollowers(ctx context.Context, userID int64, offset, limit int) ([]*entity.Follow, error)

	// ListFollowing retrieves the edges originating from userID, newest first.
	ListFollowing(ctx context.Context, userID int64, offset, limit int) ([]*entity.Follow, error)

	// CountFollowers returns the number of users following userID.
	CountFollowers(ctx context.Context, userID int64) (int64, error)

	// CountFollowing returns the number of users userID follows.
	CountFollowing(ctx context.Context, userID int64) (int64, error)
}

// LikeRepository defines the operations for user→post like edges.
type LikeRepository interface {
	// Create persists a new like edge. Returns ErrDuplicateEdge when the
	// (user, post) pair already exists.
	Create(ctx context.Context, like *entity.Like) error

	// Find retrieves the edge for a specific (user, post) pair.
	Find(ctx context.Context, userID, postID int64) (*entity.Like, error)

	// Delete removes the edge for a specific (user, post) pair.
	Delete(ctx context.Context, userID, postID int64) error

	// ListByPostID retrieves a post's likes, newest first.
	ListByPostID(ctx context.Context, postID int64, offset, limit int) ([]*entity.Like, error)

	// ListByUserID retrieves a user's likes, newest first.
	ListByUserID(ctx context.Context, userID int64, offset, limit int) ([]*entity.Like, error)

	// CountByPostID returns the number of likes on a post.
	CountByPostID(ctx context.Context, postID int64) (int64, error)
}
