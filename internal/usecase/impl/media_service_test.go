package impl

import (
	"context"
	"testing"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/domain/service"
	mockRepo "pulse/internal/mocks/repository"
	mockSvc "pulse/internal/mocks/service"
	"pulse/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mediaServiceFixtures struct {
	t         *testing.T
	service   usecase.MediaUsecase
	txManager *mockRepo.MockTransactionManager
	storage   *mockSvc.MockMediaStorage
}

func createTestMediaService(t *testing.T) mediaServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	storage := mockSvc.NewMockMediaStorage(t)
	mediaService := NewMediaService(txManager, storage, newDiscardLogger())

	return mediaServiceFixtures{
		t:         t,
		service:   mediaService,
		txManager: txManager,
		storage:   storage,
	}
}

func (fx mediaServiceFixtures) onExecute(ctx context.Context, returnErr error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)
			_ = fn(factory)
		}).
		Return(returnErr)
}

func TestMediaService_Upload_Success(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()
	input := &usecase.UploadInput{Filename: "photo.png", Data: []byte("png-bytes")}

	fx.storage.EXPECT().
		Save(ctx, service.MediaKindImage, "photo.png", []byte("png-bytes")).
		Return("/uploads/images/abc.png", nil)

	output, err := fx.service.Upload(ctx, service.MediaKindImage, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "/uploads/images/abc.png", output.URL)
}

func TestMediaService_Upload_Rejected(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()
	input := &usecase.UploadInput{Filename: "malware.exe", Data: []byte("bytes")}

	fx.storage.EXPECT().
		Save(ctx, service.MediaKindImage, "malware.exe", []byte("bytes")).
		Return("", domainerrors.ErrFileTypeNotAllowed)

	output, err := fx.service.Upload(ctx, service.MediaKindImage, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrFileTypeNotAllowed))
}

func TestMediaService_Upload_TooLarge(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()
	input := &usecase.UploadInput{Filename: "huge.mp4", Data: []byte("bytes")}

	fx.storage.EXPECT().
		Save(ctx, service.MediaKindVideo, "huge.mp4", []byte("bytes")).
		Return("", domainerrors.ErrFileTooLarge)

	output, err := fx.service.Upload(ctx, service.MediaKindVideo, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrFileTooLarge))
}

func TestMediaService_UploadProfilePicture_Success(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()
	input := &usecase.UploadInput{Filename: "me.jpg", Data: []byte("jpg-bytes")}

	user := &entity.User{ID: 42, ProfilePic: "/uploads/profiles/old.jpg"}

	fx.storage.EXPECT().
		Save(ctx, service.MediaKindProfile, "me.jpg", []byte("jpg-bytes")).
		Return("/uploads/profiles/new.jpg", nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockUserRepo.EXPECT().FindByID(ctx, int64(42)).Return(user, nil)
		mockUserRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, updated *entity.User) {
				assert.Equal(t, "/uploads/profiles/new.jpg", updated.ProfilePic)
			}).
			Return(nil)
	})

	output, err := fx.service.UploadProfilePicture(ctx, 42, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "/uploads/profiles/new.jpg", output.URL)
}

func TestMediaService_UploadProfilePicture_Rejected(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()
	input := &usecase.UploadInput{Filename: "me.gif", Data: []byte("gif-bytes")}

	// The profile update never runs when storage rejects the file.
	fx.storage.EXPECT().
		Save(ctx, service.MediaKindProfile, "me.gif", []byte("gif-bytes")).
		Return("", domainerrors.ErrFileTypeNotAllowed)

	output, err := fx.service.UploadProfilePicture(ctx, 42, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrFileTypeNotAllowed))
}
