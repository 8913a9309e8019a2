// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"pulse/internal/domain/entity"
)

// Domain-specific errors for content persistence.
var (
	// ErrPostNotFound is returned when a post is not found.
	ErrPostNotFound = errors.New("post not found")
	// ErrCommentNotFound is returned when a comment is not found.
	ErrCommentNotFound = errors.New("comment not found")
)

// PostRepository defines the standard operations for post persistence.
type PostRepository interface {
	// Create persists a new post.
	Create(ctx context.Context, post *entity.Post) error

	// FindByID retrieves a single post by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Post, error)

	// List retrieves posts ordered by creation time, newest first.
	List(ctx context.Context, offset, limit int) ([]*entity.Post, error)

	// ListByUserID retrieves a single user's posts, newest first.
	ListByUserID(ctx context.Context, userID int64, offset, limit int) ([]*entity.Post, error)

	// Update modifies an existing post.
	Update(ctx context.Context, post *entity.Post) error

	// Delete removes a post. The store cascades the delete to the post's
	// comments and likes.
	Delete(ctx context.Context, id int64) error
}

// CommentRepository defines the standard operations for comment persistence.
type CommentRepository interface {
	// Create persists a new comment.
	Create(ctx context.Context, comment *entity.Comment) error

	// FindByID retrieves a single comment by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Comment, error)

	// ListByPostID retrieves a post's comments, oldest first.
	ListByPostID(ctx context.Context, postID int64, offset, limit int) ([]*entity.Comment, error)

	// ListByUserID retrieves a user's comments, newest first.
	ListByUserID(ctx context.Context, userID int64, offset, limit int) ([]*entity.Comment, error)

	// Update modifies an existing comment.
	Update(ctx context.Context, comment *entity.Comment) error

	// Delete removes a comment.
	Delete(ctx context.Context, id int64) error
}
