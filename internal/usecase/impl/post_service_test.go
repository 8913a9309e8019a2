package impl

import (
	"context"
	"testing"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	mockRepo "pulse/internal/mocks/repository"
	"pulse/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type postServiceFixtures struct {
	t         *testing.T
	service   usecase.PostUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestPostService(t *testing.T) postServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewPostService(txManager, newDiscardLogger())

	return postServiceFixtures{
		t:         t,
		service:   service,
		txManager: txManager,
	}
}

func (fx postServiceFixtures) onExecute(ctx context.Context, returnErr error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)
			_ = fn(factory)
		}).
		Return(returnErr)
}

func TestPostService_CreatePost_Success(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	input := &usecase.CreatePostInput{Content: "Hello world"}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockPostRepo := mockRepo.NewMockPostRepository(t)
		factory.EXPECT().PostRepo().Return(mockPostRepo)

		mockPostRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Post")).
			Run(func(ctx context.Context, post *entity.Post) {
				post.ID = 10
			}).
			Return(nil)
	})

	post, err := fx.service.CreatePost(ctx, 42, input)

	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, int64(10), post.ID)
	assert.Equal(t, int64(42), post.UserID)
	assert.Equal(t, "Hello world", post.Content)
}

func TestPostService_GetPost_NotFound(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrPostNotFound, "post not found"), func(factory *mockRepo.MockRepositoryFactory) {
		mockPostRepo := mockRepo.NewMockPostRepository(t)
		factory.EXPECT().PostRepo().Return(mockPostRepo)

		mockPostRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrPostNotFound)
	})

	post, err := fx.service.GetPost(ctx, 404)

	assert.Error(t, err)
	assert.Nil(t, post)
	assert.True(t, errors.Is(err, domainerrors.ErrPostNotFound))
}

func TestPostService_ListUserPosts_UserNotFound(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	input := &usecase.ListInput{Limit: 20}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrUserNotFound, "user not found"), func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockUserRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrUserNotFound)
	})

	posts, err := fx.service.ListUserPosts(ctx, 404, input)

	assert.Error(t, err)
	assert.Nil(t, posts)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestPostService_ListPosts_Success(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	input := &usecase.ListInput{Offset: 0, Limit: 20}
	expected := []*entity.Post{
		{ID: 2, UserID: 42, Content: "second"},
		{ID: 1, UserID: 42, Content: "first"},
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockPostRepo := mockRepo.NewMockPostRepository(t)
		factory.EXPECT().PostRepo().Return(mockPostRepo)

		mockPostRepo.EXPECT().List(ctx, 0, 20).Return(expected, nil)
	})

	posts, err := fx.service.ListPosts(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, expected, posts)
}

func TestPostService_UpdatePost_Forbidden(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	input := &usecase.UpdatePostInput{Content: "edited"}

	existing := &entity.Post{ID: 10, UserID: 99, Content: "original"}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrForbidden, "post belongs to another user"), func(factory *mockRepo.MockRepositoryFactory) {
		mockPostRepo := mockRepo.NewMockPostRepository(t)
		factory.EXPECT().PostRepo().Return(mockPostRepo)

		mockPostRepo.EXPECT().FindByID(ctx, int64(10)).Return(existing, nil)
	})

	post, err := fx.service.UpdatePost(ctx, 42, 10, input)

	assert.Error(t, err)
	assert.Nil(t, post)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestPostService_UpdatePost_Success(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	input := &usecase.UpdatePostInput{Content: "edited"}

	existing := &entity.Post{ID: 10, UserID: 42, Content: "original"}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockPostRepo := mockRepo.NewMockPostRepository(t)
		factory.EXPECT().PostRepo().Return(mockPostRepo)

		mockPostRepo.EXPECT().FindByID(ctx, int64(10)).Return(existing, nil)
		mockPostRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Post")).Return(nil)
	})

	post, err := fx.service.UpdatePost(ctx, 42, 10, input)

	require.NoError(t, err)
	assert.Equal(t, "edited", post.Content)
}

func TestPostService_DeletePost_Success(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()

	existing := &entity.Post{ID: 10, UserID: 42}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockPostRepo := mockRepo.NewMockPostRepository(t)
		factory.EXPECT().PostRepo().Return(mockPostRepo)

		mockPostRepo.EXPECT().FindByID(ctx, int64(10)).Return(existing, nil)
		mockPostRepo.EXPECT().Delete(ctx, int64(10)).Return(nil)
	})

	err := fx.service.DeletePost(ctx, 42, 10)

	require.NoError(t, err)
}

func TestPostService_DeletePost_Forbidden(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()

	existing := &entity.Post{ID: 10, UserID: 99}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrForbidden, "post belongs to another user"), func(factory *mockRepo.MockRepositoryFactory) {
		mockPostRepo := mockRepo.NewMockPostRepository(t)
		factory.EXPECT().PostRepo().Return(mockPostRepo)

		mockPostRepo.EXPECT().FindByID(ctx, int64(10)).Return(existing, nil)
	})

	err := fx.service.DeletePost(ctx, 42, 10)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}
