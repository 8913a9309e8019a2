// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"pulse/internal/domain/service"
)

// --- Input DTOs ---

// UploadInput defines an uploaded file's name and raw contents.
type UploadInput struct {
	Filename string
	Data     []byte
}

// --- Output DTOs ---

// UploadOutput returns the stable URL of the stored object.
type UploadOutput struct {
	URL string
}

// MediaUsecase defines the interface for media upload operations.
type MediaUsecase interface {
	// Upload stores a file under the given kind's policy.
	Upload(ctx context.Context, kind service.MediaKind, input *UploadInput) (*UploadOutput, error)

	// UploadProfilePicture stores a profile image and points the acting
	// user's profile at it in the same operation.
	UploadProfilePicture(ctx context.Context, actorID int64, input *UploadInput) (*UploadOutput, error)
}
