// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"pulse/internal/domain/entity"
)

// FollowUsecase defines the interface for follow-graph business operations.
// A user cannot follow themselves, cannot follow twice and cannot unfollow
// an edge that does not exist.
type FollowUsecase interface {
	Follow(ctx context.Context, actorID, targetID int64) error
	Unfollow(ctx context.Context, actorID, targetID int64) error
	ListFollowers(ctx context.Context, userID int64, input *ListInput) ([]*entity.User, error)
	ListFollowing(ctx context.Context, userID int64, input *ListInput) ([]*entity.User, error)
	GetFollowStats(ctx context.Context, actorID, userID int64) (*entity.FollowStats, error)
}

// --- Output DTOs ---

// ToggleLikeOutput reports the state of the like edge after a toggle.
type ToggleLikeOutput struct {
	Liked bool
	Count int64
}

// LikeStatusOutput pairs a post's like count with whether the acting user
// currently likes it.
type LikeStatusOutput struct {
	Liked bool
	Count int64
}

// LikeUsecase defines the interface for like-related business operations.
// Liking is a toggle: liking an already-liked post removes the like.
type LikeUsecase interface {
	ToggleLike(ctx context.Context, actorID, postID int64) (*ToggleLikeOutput, error)
	GetLikeStatus(ctx context.Context, actorID, postID int64) (*LikeStatusOutput, error)
	ListPostLikes(ctx context.Context, postID int64, input *ListInput) ([]*entity.Like, error)
	ListUserLikes(ctx context.Context, userID int64, input *ListInput) ([]*entity.Like, error)
	CountPostLikes(ctx context.Context, postID int64) (int64, error)
}
