// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"pulse/internal/domain/entity"
)

// --- Input DTOs ---

// CreatePostInput defines the data required to create a post.
type CreatePostInput struct {
	Content string
}

// UpdatePostInput defines the data required to update a post.
type UpdatePostInput struct {
	Content string
}

// CreateCommentInput defines the data required to comment on a post.
type CreateCommentInput struct {
	Content string
}

// UpdateCommentInput defines the data required to update a comment.
type UpdateCommentInput struct {
	Content string
}

// PostUsecase defines the interface for post-related business operations.
// Mutating operations take the acting user's ID; only the owner of a post
// may update or delete it.
type PostUsecase interface {
	CreatePost(ctx context.Context, actorID int64, input *CreatePostInput) (*entity.Post, error)
	GetPost(ctx context.Context, postID int64) (*entity.Post, error)
	ListPosts(ctx context.Context, input *ListInput) ([]*entity.Post, error)
	ListUserPosts(ctx context.Context, userID int64, input *ListInput) ([]*entity.Post, error)
	UpdatePost(ctx context.Context, actorID, postID int64, input *UpdatePostInput) (*entity.Post, error)
	DeletePost(ctx context.Context, actorID, postID int64) error
}

// CommentUsecase defines the interface for comment-related business operations.
// Only the owner of a comment may update or delete it.
type CommentUsecase interface {
	CreateComment(ctx context.Context, actorID, postID int64, input *CreateCommentInput) (*entity.Comment, error)
	ListPostComments(ctx context.Context, postID int64, input *ListInput) ([]*entity.Comment, error)
	ListUserComments(ctx context.Context, userID int64, input *ListInput) ([]*entity.Comment, error)
	UpdateComment(ctx context.Context, actorID, commentID int64, input *UpdateCommentInput) (*entity.Comment, error)
	DeleteComment(ctx context.Context, actorID, commentID int64) error
}
