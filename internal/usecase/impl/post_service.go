// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/usecase"

	"github.com/pkg/errors"
)

// postService implements the PostUsecase interface.
type postService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.PostUsecase {
	return &postService{
		txManager: txManager,
		logger:    logger,
	}
}

// CreatePost publishes a new post owned by the acting user.
func (srv *postService) CreatePost(ctx context.Context, actorID int64, input *usecase.CreatePostInput) (*entity.Post, error) {
	srv.logger.Debug("Creating post", "userID", actorID)

	var created *entity.Post

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		newPost := &entity.Post{
			UserID:  actorID,
			Content: input.Content,
		}

		if err := repoFactory.PostRepo().Create(ctx, newPost); err != nil {
			return errors.WithStack(err)
		}
		created = newPost

		return nil
	})

	if err != nil {
		srv.logger.Error("Failed to create post", "error", err, "userID", actorID)

		return nil, errors.Wrap(err, "failed to create post")
	}

	return created, nil
}

// GetPost retrieves a single post by ID.
func (srv *postService) GetPost(ctx context.Context, postID int64) (*entity.Post, error) {
	var post *entity.Post

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.PostRepo().FindByID(ctx, postID)
		if err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return errors.Wrap(domainerrors.ErrPostNotFound, "post not found")
			}

			return errors.Wrap(err, "failed to find post")
		}
		post = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get post")
	}

	return post, nil
}

// ListPosts retrieves posts ordered newest first.
func (srv *postService) ListPosts(ctx context.Context, input *usecase.ListInput) ([]*entity.Post, error) {
	var posts []*entity.Post

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.PostRepo().List(ctx, input.Offset, input.Limit)
		if err != nil {
			return errors.Wrap(err, "failed to list posts")
		}
		posts = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	return posts, nil
}

// ListUserPosts retrieves a single user's posts, newest first.
func (srv *postService) ListUserPosts(ctx context.Context, userID int64, input *usecase.ListInput) ([]*entity.Post, error) {
	var posts []*entity.Post

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// Listing an unknown user's posts is a not-found, not an empty list.
		if _, err := repoFactory.UserRepo().FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		found, err := repoFactory.PostRepo().ListByUserID(ctx, userID, input.Offset, input.Limit)
		if err != nil {
			return errors.Wrap(err, "failed to list posts by user")
		}
		posts = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list user posts")
	}

	return posts, nil
}

// UpdatePost replaces a post's content. Only the owner may update.
func (srv *postService) UpdatePost(ctx context.Context, actorID, postID int64, input *usecase.UpdatePostInput) (*entity.Post, error) {
	srv.logger.Debug("Updating post", "userID", actorID, "postID", postID)

	var updated *entity.Post

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		postRepo := repoFactory.PostRepo()

		post, err := postRepo.FindByID(ctx, postID)
		if err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return errors.Wrap(domainerrors.ErrPostNotFound, "post not found")
			}

			return errors.Wrap(err, "failed to find post")
		}

		if post.UserID != actorID {
			return errors.Wrap(domainerrors.ErrForbidden, "post belongs to another user")
		}

		post.Content = input.Content
		if err := postRepo.Update(ctx, post); err != nil {
			return errors.Wrap(err, "failed to update post")
		}
		updated = post

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update post")
	}

	return updated, nil
}

// DeletePost removes a post. Only the owner may delete; comments and likes
// cascade in the store.
func (srv *postService) DeletePost(ctx context.Context, actorID, postID int64) error {
	srv.logger.Debug("Deleting post", "userID", actorID, "postID", postID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		postRepo := repoFactory.PostRepo()

		post, err := postRepo.FindByID(ctx, postID)
		if err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return errors.Wrap(domainerrors.ErrPostNotFound, "post not found")
			}

			return errors.Wrap(err, "failed to find post")
		}

		if post.UserID != actorID {
			return errors.Wrap(domainerrors.ErrForbidden, "post belongs to another user")
		}

		if err := postRepo.Delete(ctx, postID); err != nil {
			return errors.Wrap(err, "failed to delete post")
		}

		return nil
	})

	if err != nil {
		srv.logger.Warn("Post deletion failed", "error", err.Error(), "postID", postID)

		return errors.Wrap(err, "failed to delete post")
	}

	return nil
}
