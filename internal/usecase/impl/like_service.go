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

// likeService implements the LikeUsecase interface.
type likeService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewLikeService is the constructor for likeService.
func NewLikeService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.LikeUsecase {
	return &likeService{
		txManager: txManager,
		logger:    logger,
	}
}

// ToggleLike flips the acting user's like on a post: absent edges are
// created, present edges are removed. The whole toggle runs in one
// transaction so concurrent toggles resolve to a consistent edge state.
func (srv *likeService) ToggleLike(ctx context.Context, actorID, postID int64) (*usecase.ToggleLikeOutput, error) {
	srv.logger.Debug("Toggling like", "userID", actorID, "postID", postID)

	var output *usecase.ToggleLikeOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		likeRepo := repoFactory.LikeRepo()

		if _, err := repoFactory.PostRepo().FindByID(ctx, postID); err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return errors.Wrap(domainerrors.ErrPostNotFound, "post not found")
			}

			return errors.Wrap(err, "failed to find post")
		}

		liked := false

		_, err := likeRepo.Find(ctx, actorID, postID)
		switch {
		case err == nil:
			// Edge exists, remove it.
			if err := likeRepo.Delete(ctx, actorID, postID); err != nil && !errors.Is(err, repository.ErrLikeNotFound) {
				return errors.Wrap(err, "failed to remove like")
			}
		case errors.Is(err, repository.ErrLikeNotFound):
			// Edge absent, create it. A concurrent toggle may have won the
			// race; the unique constraint reports that as a duplicate, which
			// still leaves the edge present.
			edge := &entity.Like{UserID: actorID, PostID: postID}
			if err := likeRepo.Create(ctx, edge); err != nil && !errors.Is(err, repository.ErrDuplicateEdge) {
				return errors.Wrap(err, "failed to create like")
			}
			liked = true
		default:
			return errors.Wrap(err, "failed to check like edge")
		}

		count, err := likeRepo.CountByPostID(ctx, postID)
		if err != nil {
			return errors.Wrap(err, "failed to count likes")
		}

		output = &usecase.ToggleLikeOutput{Liked: liked, Count: count}

		return nil
	})

	if err != nil {
		srv.logger.Warn("Like toggle failed", "error", err.Error(), "postID", postID)

		return nil, errors.Wrap(err, "failed to execute like toggle transaction")
	}

	return output, nil
}

// GetLikeStatus reports a post's like count and whether the acting user
// currently likes it, without changing anything.
func (srv *likeService) GetLikeStatus(ctx context.Context, actorID, postID int64) (*usecase.LikeStatusOutput, error) {
	var output *usecase.LikeStatusOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		likeRepo := repoFactory.LikeRepo()

		if _, err := repoFactory.PostRepo().FindByID(ctx, postID); err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return errors.Wrap(domainerrors.ErrPostNotFound, "post not found")
			}

			return errors.Wrap(err, "failed to find post")
		}

		liked := false
		_, err := likeRepo.Find(ctx, actorID, postID)
		switch {
		case err == nil:
			liked = true
		case errors.Is(err, repository.ErrLikeNotFound):
			// Not liked.
		default:
			return errors.Wrap(err, "failed to check like edge")
		}

		count, err := likeRepo.CountByPostID(ctx, postID)
		if err != nil {
			return errors.Wrap(err, "failed to count likes")
		}

		output = &usecase.LikeStatusOutput{Liked: liked, Count: count}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get like status")
	}

	return output, nil
}

// ListUserLikes retrieves the likes one user has placed, newest first.
func (srv *likeService) ListUserLikes(ctx context.Context, userID int64, input *usecase.ListInput) ([]*entity.Like, error) {
	var likes []*entity.Like

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.UserRepo().FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		found, err := repoFactory.LikeRepo().ListByUserID(ctx, userID, input.Offset, input.Limit)
		if err != nil {
			return errors.Wrap(err, "failed to list likes by user")
		}
		likes = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list user likes")
	}

	return likes, nil
}

// ListPostLikes retrieves a post's likes, newest first.
func (srv *likeService) ListPostLikes(ctx context.Context, postID int64, input *usecase.ListInput) ([]*entity.Like, error) {
	var likes []*entity.Like

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.PostRepo().FindByID(ctx, postID); err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return errors.Wrap(domainerrors.ErrPostNotFound, "post not found")
			}

			return errors.Wrap(err, "failed to find post")
		}

		found, err := repoFactory.LikeRepo().ListByPostID(ctx, postID, input.Offset, input.Limit)
		if err != nil {
			return errors.Wrap(err, "failed to list likes")
		}
		likes = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list post likes")
	}

	return likes, nil
}

// CountPostLikes returns the number of likes on a post.
func (srv *likeService) CountPostLikes(ctx context.Context, postID int64) (int64, error) {
	var count int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.PostRepo().FindByID(ctx, postID); err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return errors.Wrap(domainerrors.ErrPostNotFound, "post not found")
			}

			return errors.Wrap(err, "failed to find post")
		}

		found, err := repoFactory.LikeRepo().CountByPostID(ctx, postID)
		if err != nil {
			return errors.Wrap(err, "failed to count likes")
		}
		count = found

		return nil
	})

	if err != nil {
		return 0, errors.Wrap(err, "failed to count post likes")
	}

	return count, nil
}
