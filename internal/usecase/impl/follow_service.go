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

// followService implements the FollowUsecase interface.
type followService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewFollowService is the constructor for followService.
func NewFollowService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.FollowUsecase {
	return &followService{
		txManager: txManager,
		logger:    logger,
	}
}

// Follow creates a follow edge from the acting user to the target.
func (srv *followService) Follow(ctx context.Context, actorID, targetID int64) error {
	srv.logger.Debug("Creating follow edge", "followerID", actorID, "followingID", targetID)

	if actorID == targetID {
		return errors.Wrap(domainerrors.ErrCannotFollowSelf, "follow failed")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// Following a missing user is a not-found.
		if _, err := repoFactory.UserRepo().FindByID(ctx, targetID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "target user not found")
			}

			return errors.Wrap(err, "failed to find target user")
		}

		edge := &entity.Follow{
			FollowerID:  actorID,
			FollowingID: targetID,
		}

		// The unique constraint resolves concurrent duplicate follows.
		if err := repoFactory.FollowRepo().Create(ctx, edge); err != nil {
			if errors.Is(err, repository.ErrDuplicateEdge) {
				return errors.Wrap(domainerrors.ErrAlreadyFollowing, "follow failed")
			}

			return errors.Wrap(err, "failed to create follow edge")
		}

		return nil
	})

	if err != nil {
		srv.logger.Warn("Follow failed", "error", err.Error(), "followerID", actorID, "followingID", targetID)

		return errors.Wrap(err, "failed to execute follow transaction")
	}

	return nil
}

// Unfollow removes the follow edge from the acting user to the target.
func (srv *followService) Unfollow(ctx context.Context, actorID, targetID int64) error {
	srv.logger.Debug("Removing follow edge", "followerID", actorID, "followingID", targetID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.FollowRepo().Delete(ctx, actorID, targetID); err != nil {
			if errors.Is(err, repository.ErrFollowNotFound) {
				return errors.Wrap(domainerrors.ErrNotFollowing, "unfollow failed")
			}

			return errors.Wrap(err, "failed to delete follow edge")
		}

		return nil
	})

	if err != nil {
		srv.logger.Warn("Unfollow failed", "error", err.Error(), "followerID", actorID, "followingID", targetID)

		return errors.Wrap(err, "failed to execute unfollow transaction")
	}

	return nil
}

// ListFollowers resolves the users following userID, newest edge first.
func (srv *followService) ListFollowers(ctx context.Context, userID int64, input *usecase.ListInput) ([]*entity.User, error) {
	return srv.resolveEdgeUsers(ctx, userID, input, true)
}

// ListFollowing resolves the users userID follows, newest edge first.
func (srv *followService) ListFollowing(ctx context.Context, userID int64, input *usecase.ListInput) ([]*entity.User, error) {
	return srv.resolveEdgeUsers(ctx, userID, input, false)
}

// resolveEdgeUsers loads one side of the follow graph and resolves the edges
// to user profiles.
func (srv *followService) resolveEdgeUsers(ctx context.Context, userID int64, input *usecase.ListInput, followers bool) ([]*entity.User, error) {
	var users []*entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		followRepo := repoFactory.FollowRepo()

		if _, err := userRepo.FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		var edges []*entity.Follow
		var err error
		if followers {
			edges, err = followRepo.ListFollowers(ctx, userID, input.Offset, input.Limit)
		} else {
			edges, err = followRepo.ListFollowing(ctx, userID, input.Offset, input.Limit)
		}
		if err != nil {
			return errors.Wrap(err, "failed to list follow edges")
		}

		users = make([]*entity.User, 0, len(edges))
		for _, edge := range edges {
			otherID := edge.FollowerID
			if !followers {
				otherID = edge.FollowingID
			}

			user, err := userRepo.FindByID(ctx, otherID)
			if err != nil {
				// Edges cascade with users, so a missing user here is a
				// read racing a delete. Skip it.
				if errors.Is(err, repository.ErrUserNotFound) {
					continue
				}

				return errors.Wrap(err, "failed to resolve edge user")
			}
			users = append(users, user)
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve follow edges")
	}

	return users, nil
}

// GetFollowStats returns follower/following counts for userID and whether the
// acting user currently follows them.
func (srv *followService) GetFollowStats(ctx context.Context, actorID, userID int64) (*entity.FollowStats, error) {
	var stats *entity.FollowStats

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		followRepo := repoFactory.FollowRepo()

		if _, err := repoFactory.UserRepo().FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		followersCount, err := followRepo.CountFollowers(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count followers")
		}

		followingCount, err := followRepo.CountFollowing(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count following")
		}

		isFollowing := false
		if actorID != userID {
			_, err := followRepo.Find(ctx, actorID, userID)
			switch {
			case err == nil:
				isFollowing = true
			case errors.Is(err, repository.ErrFollowNotFound):
				// Not following.
			default:
				return errors.Wrap(err, "failed to check follow edge")
			}
		}

		stats = &entity.FollowStats{
			UserID:         userID,
			FollowersCount: followersCount,
			FollowingCount: followingCount,
			IsFollowing:    isFollowing,
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get follow stats")
	}

	return stats, nil
}
