// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"pulse/config"
	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/usecase"

	"github.com/pkg/errors"
)

// storyService implements the StoryUsecase interface.
type storyService struct {
	txManager repository.TransactionManager
	ttl       time.Duration
	logger    *slog.Logger
	now       func() time.Time
}

// NewStoryService is the constructor for storyService.
func NewStoryService(
	txManager repository.TransactionManager,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.StoryUsecase {
	return &storyService{
		txManager: txManager,
		ttl:       cfg.StoryTTL(),
		logger:    logger,
		now:       time.Now,
	}
}

// CreateStory publishes a new story owned by the acting user. The story is
// created Active with its expiry fixed at creation time plus the window.
func (srv *storyService) CreateStory(ctx context.Context, actorID int64, input *usecase.CreateStoryInput) (*entity.Story, error) {
	srv.logger.Debug("Creating story", "userID", actorID)

	expireAt := srv.now().Add(srv.ttl)

	var created *entity.Story

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		newStory := &entity.Story{
			UserID:     actorID,
			ContentURL: input.ContentURL,
			State:      entity.StateActive,
			ExpireAt:   &expireAt,
		}

		if err := repoFactory.StoryRepo().Create(ctx, newStory); err != nil {
			return errors.WithStack(err)
		}
		created = newStory

		return nil
	})

	if err != nil {
		srv.logger.Error("Failed to create story", "error", err, "userID", actorID)

		return nil, errors.Wrap(err, "failed to create story")
	}

	return created, nil
}

// GetStory retrieves a single story. A story outside its visibility window
// is reported exactly like a missing one, so the response does not reveal
// whether it ever existed.
func (srv *storyService) GetStory(ctx context.Context, storyID int64) (*entity.Story, error) {
	var story *entity.Story

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.StoryRepo().FindByID(ctx, storyID)
		if err != nil {
			if errors.Is(err, repository.ErrStoryNotFound) {
				return errors.Wrap(domainerrors.ErrStoryNotFound, "story not found")
			}

			return errors.Wrap(err, "failed to find story")
		}

		if !found.Visible(srv.now()) {
			return errors.Wrap(domainerrors.ErrStoryNotFound, "story not visible")
		}
		story = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get story")
	}

	return story, nil
}

// ListStories retrieves all currently visible stories, newest first.
func (srv *storyService) ListStories(ctx context.Context, input *usecase.ListInput) ([]*entity.Story, error) {
	var stories []*entity.Story

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.StoryRepo().ListVisible(ctx, srv.now(), input.Offset, input.Limit)
		if err != nil {
			return errors.Wrap(err, "failed to list visible stories")
		}
		stories = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list stories")
	}

	return stories, nil
}

// ListUserStories retrieves one user's currently visible stories.
func (srv *storyService) ListUserStories(ctx context.Context, userID int64, input *usecase.ListInput) ([]*entity.Story, error) {
	var stories []*entity.Story

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.UserRepo().FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		found, err := repoFactory.StoryRepo().ListVisibleByUserID(ctx, userID, srv.now(), input.Offset, input.Limit)
		if err != nil {
			return errors.Wrap(err, "failed to list visible stories by user")
		}
		stories = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list user stories")
	}

	return stories, nil
}

// ListOwnStories retrieves the acting user's stories in every state,
// expired and soft-deleted included. The visibility predicate does not
// apply here: owners audit their own history.
func (srv *storyService) ListOwnStories(ctx context.Context, actorID int64, input *usecase.ListInput) ([]*entity.Story, error) {
	var stories []*entity.Story

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.StoryRepo().ListByUserID(ctx, actorID, input.Offset, input.Limit)
		if err != nil {
			return errors.Wrap(err, "failed to list stories by owner")
		}
		stories = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list own stories")
	}

	return stories, nil
}

// DeleteStory soft-deletes a story by flipping it Inactive. Only the owner
// may delete. Deleting an already-inactive or already-expired story still
// succeeds; the flip is monotonic and idempotent.
func (srv *storyService) DeleteStory(ctx context.Context, actorID, storyID int64) error {
	srv.logger.Debug("Deleting story", "userID", actorID, "storyID", storyID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		storyRepo := repoFactory.StoryRepo()

		story, err := storyRepo.FindByID(ctx, storyID)
		if err != nil {
			if errors.Is(err, repository.ErrStoryNotFound) {
				return errors.Wrap(domainerrors.ErrStoryNotFound, "story not found")
			}

			return errors.Wrap(err, "failed to find story")
		}

		if story.UserID != actorID {
			return errors.Wrap(domainerrors.ErrForbidden, "story belongs to another user")
		}

		if err := storyRepo.Deactivate(ctx, storyID); err != nil {
			return errors.Wrap(err, "failed to deactivate story")
		}

		return nil
	})

	if err != nil {
		srv.logger.Warn("Story deletion failed", "error", err.Error(), "storyID", storyID)

		return errors.Wrap(err, "failed to delete story")
	}

	return nil
}

// SweepExpiredStories flips every active story past its expiry to Inactive
// and reports how many were flipped. The sweep is idempotent: a second pass
// with no newly expired stories flips zero. Reads never depend on the sweep;
// it only reconciles stored state with what the visibility predicate already
// enforces.
func (srv *storyService) SweepExpiredStories(ctx context.Context) (*usecase.SweepOutput, error) {
	var swept int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		count, err := repoFactory.StoryRepo().SweepExpired(ctx, srv.now())
		if err != nil {
			return errors.Wrap(err, "failed to sweep expired stories")
		}
		swept = count

		return nil
	})

	if err != nil {
		srv.logger.Error("Story sweep failed", "error", err)

		return nil, errors.Wrap(err, "failed to execute story sweep transaction")
	}

	if swept > 0 {
		srv.logger.Info("Expired stories swept", "count", swept)
	}

	return &usecase.SweepOutput{Deactivated: swept}, nil
}
