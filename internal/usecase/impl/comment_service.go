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

// commentService implements the CommentUsecase interface.
type commentService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.CommentUsecase {
	return &commentService{
		txManager: txManager,
		logger:    logger,
	}
}

// CreateComment attaches a new comment to an existing post.
func (srv *commentService) CreateComment(ctx context.Context, actorID, postID int64, input *usecase.CreateCommentInput) (*entity.Comment, error) {
	srv.logger.Debug("Creating comment", "userID", actorID, "postID", postID)

	var created *entity.Comment

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// Commenting on a missing post is a not-found.
		if _, err := repoFactory.PostRepo().FindByID(ctx, postID); err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return errors.Wrap(domainerrors.ErrPostNotFound, "post not found")
			}

			return errors.Wrap(err, "failed to find post")
		}

		newComment := &entity.Comment{
			UserID:  actorID,
			PostID:  postID,
			Content: input.Content,
		}

		if err := repoFactory.CommentRepo().Create(ctx, newComment); err != nil {
			return errors.WithStack(err)
		}
		created = newComment

		return nil
	})

	if err != nil {
		srv.logger.Error("Failed to create comment", "error", err, "postID", postID)

		return nil, errors.Wrap(err, "failed to create comment")
	}

	return created, nil
}

// ListPostComments retrieves a post's comments, oldest first.
func (srv *commentService) ListPostComments(ctx context.Context, postID int64, input *usecase.ListInput) ([]*entity.Comment, error) {
	var comments []*entity.Comment

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.PostRepo().FindByID(ctx, postID); err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return errors.Wrap(domainerrors.ErrPostNotFound, "post not found")
			}

			return errors.Wrap(err, "failed to find post")
		}

		found, err := repoFactory.CommentRepo().ListByPostID(ctx, postID, input.Offset, input.Limit)
		if err != nil {
			return errors.Wrap(err, "failed to list comments")
		}
		comments = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list post comments")
	}

	return comments, nil
}

// ListUserComments retrieves the comments one user has written, newest first.
func (srv *commentService) ListUserComments(ctx context.Context, userID int64, input *usecase.ListInput) ([]*entity.Comment, error) {
	var comments []*entity.Comment

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.UserRepo().FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		found, err := repoFactory.CommentRepo().ListByUserID(ctx, userID, input.Offset, input.Limit)
		if err != nil {
			return errors.Wrap(err, "failed to list comments by user")
		}
		comments = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list user comments")
	}

	return comments, nil
}

// UpdateComment replaces a comment's content. Only the owner may update.
func (srv *commentService) UpdateComment(ctx context.Context, actorID, commentID int64, input *usecase.UpdateCommentInput) (*entity.Comment, error) {
	srv.logger.Debug("Updating comment", "userID", actorID, "commentID", commentID)

	var updated *entity.Comment

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		commentRepo := repoFactory.CommentRepo()

		comment, err := commentRepo.FindByID(ctx, commentID)
		if err != nil {
			if errors.Is(err, repository.ErrCommentNotFound) {
				return errors.Wrap(domainerrors.ErrCommentNotFound, "comment not found")
			}

			return errors.Wrap(err, "failed to find comment")
		}

		if comment.UserID != actorID {
			return errors.Wrap(domainerrors.ErrForbidden, "comment belongs to another user")
		}

		comment.Content = input.Content
		if err := commentRepo.Update(ctx, comment); err != nil {
			return errors.Wrap(err, "failed to update comment")
		}
		updated = comment

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update comment")
	}

	return updated, nil
}

// DeleteComment removes a comment. Only the owner may delete.
func (srv *commentService) DeleteComment(ctx context.Context, actorID, commentID int64) error {
	srv.logger.Debug("Deleting comment", "userID", actorID, "commentID", commentID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		commentRepo := repoFactory.CommentRepo()

		comment, err := commentRepo.FindByID(ctx, commentID)
		if err != nil {
			if errors.Is(err, repository.ErrCommentNotFound) {
				return errors.Wrap(domainerrors.ErrCommentNotFound, "comment not found")
			}

			return errors.Wrap(err, "failed to find comment")
		}

		if comment.UserID != actorID {
			return errors.Wrap(domainerrors.ErrForbidden, "comment belongs to another user")
		}

		if err := commentRepo.Delete(ctx, commentID); err != nil {
			return errors.Wrap(err, "failed to delete comment")
		}

		return nil
	})

	if err != nil {
		srv.logger.Warn("Comment deletion failed", "error", err.Error(), "commentID", commentID)

		return errors.Wrap(err, "failed to delete comment")
	}

	return nil
}
