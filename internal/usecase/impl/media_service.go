// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/domain/service"
	"pulse/internal/usecase"

	"github.com/pkg/errors"
)

// mediaService implements the MediaUsecase interface.
type mediaService struct {
	txManager repository.TransactionManager
	storage   service.MediaStorage
	logger    *slog.Logger
}

// NewMediaService is the constructor for mediaService.
func NewMediaService(
	txManager repository.TransactionManager,
	storage service.MediaStorage,
	logger *slog.Logger,
) usecase.MediaUsecase {
	return &mediaService{
		txManager: txManager,
		storage:   storage,
		logger:    logger,
	}
}

// Upload stores a file under the given kind's policy and returns its URL.
func (srv *mediaService) Upload(ctx context.Context, kind service.MediaKind, input *usecase.UploadInput) (*usecase.UploadOutput, error) {
	srv.logger.Debug("Uploading media", "kind", string(kind), "filename", input.Filename)

	url, err := srv.storage.Save(ctx, kind, input.Filename, input.Data)
	if err != nil {
		srv.logger.Warn("Media upload rejected", "error", err.Error(), "filename", input.Filename)

		return nil, errors.Wrap(err, "failed to store media")
	}

	return &usecase.UploadOutput{URL: url}, nil
}

// UploadProfilePicture stores a profile image and updates the acting user's
// profile picture reference. The picture is written to storage first; the
// profile update then runs in its own transaction.
func (srv *mediaService) UploadProfilePicture(ctx context.Context, actorID int64, input *usecase.UploadInput) (*usecase.UploadOutput, error) {
	srv.logger.Debug("Uploading profile picture", "userID", actorID)

	url, err := srv.storage.Save(ctx, service.MediaKindProfile, input.Filename, input.Data)
	if err != nil {
		srv.logger.Warn("Profile picture upload rejected", "error", err.Error(), "userID", actorID)

		return nil, errors.Wrap(err, "failed to store profile picture")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, actorID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		user.ProfilePic = url
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update profile picture")
		}

		return nil
	})

	if err != nil {
		srv.logger.Error("Failed to update profile picture reference", "error", err, "userID", actorID)

		return nil, errors.Wrap(err, "failed to execute profile picture transaction")
	}

	return &usecase.UploadOutput{URL: url}, nil
}
