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

type likeServiceFixtures struct {
	t         *testing.T
	service   usecase.LikeUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestLikeService(t *testing.T) likeServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewLikeService(txManager, newDiscardLogger())

	return likeServiceFixtures{
		t:         t,
		service:   service,
		txManager: txManager,
	}
}

func (fx likeServiceFixtures) onExecute(ctx context.Context, returnErr error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)
			_ = fn(factory)
		}).
		Return(returnErr)
}

func TestLikeService_ToggleLike_CreatesEdge(t *testing.T) {
	fx := createTestLikeService(t)

	ctx := context.Background()
	post := &entity.Post{ID: 10, UserID: 7}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockPostRepo := mockRepo.NewMockPostRepository(t)
		mockLikeRepo := mockRepo.NewMockLikeRepository(t)
		factory.EXPECT().PostRepo().Return(mockPostRepo)
		factory.EXPECT().LikeRepo().Return(mockLikeRepo)

		mockPostRepo.EXPECT().FindByID(ctx, int64(10)).Return(post, nil)
		mockLikeRepo.EXPECT().Find(ctx, int64(42), int64(10)).Return(nil, repository.ErrLikeNotFound)
		mockLikeRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Like")).Return(nil)
		mockLikeRepo.EXPECT().CountByPostID(ctx, int64(10)).Return(int64(4), nil)
	})

	output, err := fx.service.ToggleLike(ctx, 42, 10)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.True(t, output.Liked)
	assert.Equal(t, int64(4), output.Count)
}

func TestLikeService_ToggleLike_RemovesEdge(t *testing.T) {
	fx := createTestLikeService(t)

	ctx := context.Background()
	post := &entity.Post{ID: 10, UserID: 7}
	edge := &entity.Like{ID: 1, UserID: 42, PostID: 10}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockPostRepo := mockRepo.NewMockPostRepository(t)
		mockLikeRepo := mockRepo.NewMockLikeRepository(t)
		factory.EXPECT().PostRepo().Return(mockPostRepo)
		factory.EXPECT().LikeRepo().Return(mockLikeRepo)

		mockPostRepo.EXPECT().FindByID(ctx, int64(10)).Return(post, nil)
		mockLikeRepo.EXPECT().Find(ctx, int64(42), int64(10)).Return(edge, nil)
		mockLikeRepo.EXPECT().Delete(ctx, int64(42), int64(10)).Return(nil)
		mockLikeRepo.EXPECT().CountByPostID(ctx, int64(10)).Return(int64(3), nil)
	})

	output, err := fx.service.ToggleLike(ctx, 42, 10)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.False(t, output.Liked)
	assert.Equal(t, int64(3), output.Count)
}

func TestLikeService_ToggleLike_DuplicateCreateRace(t *testing.T) {
	fx := createTestLikeService(t)

	ctx := context.Background()
	post := &entity.Post{ID: 10, UserID: 7}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockPostRepo := mockRepo.NewMockPostRepository(t)
		mockLikeRepo := mockRepo.NewMockLikeRepository(t)
		factory.EXPECT().PostRepo().Return(mockPostRepo)
		factory.EXPECT().LikeRepo().Return(mockLikeRepo)

		mockPostRepo.EXPECT().FindByID(ctx, int64(10)).Return(post, nil)
		mockLikeRepo.EXPECT().Find(ctx, int64(42), int64(10)).Return(nil, repository.ErrLikeNotFound)
		// A concurrent toggle won the create; the edge is still present.
		mockLikeRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Like")).Return(repository.ErrDuplicateEdge)
		mockLikeRepo.EXPECT().CountByPostID(ctx, int64(10)).Return(int64(4), nil)
	})

	output, err := fx.service.ToggleLike(ctx, 42, 10)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.True(t, output.Liked)
}

func TestLikeService_ToggleLike_PostNotFound(t *testing.T) {
	fx := createTestLikeService(t)

	ctx := context.Background()

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrPostNotFound, "post not found"), func(factory *mockRepo.MockRepositoryFactory) {
		mockPostRepo := mockRepo.NewMockPostRepository(t)
		mockLikeRepo := mockRepo.NewMockLikeRepository(t)
		factory.EXPECT().PostRepo().Return(mockPostRepo)
		factory.EXPECT().LikeRepo().Return(mockLikeRepo)

		mockPostRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrPostNotFound)
	})

	output, err := fx.service.ToggleLike(ctx, 42, 404)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPostNotFound))
}

func TestLikeService_GetLikeStatus_Liked(t *testing.T) {
	fx := createTestLikeService(t)

	ctx := context.Background()
	post := &entity.Post{ID: 10, UserID: 7}
	edge := &entity.Like{ID: 1, UserID: 42, PostID: 10}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockPostRepo := mockRepo.NewMockPostRepository(t)
		mockLikeRepo := mockRepo.NewMockLikeRepository(t)
		factory.EXPECT().PostRepo().Return(mockPostRepo)
		factory.EXPECT().LikeRepo().Return(mockLikeRepo)

		mockPostRepo.EXPECT().FindByID(ctx, int64(10)).Return(post, nil)
		mockLikeRepo.EXPECT().Find(ctx, int64(42), int64(10)).Return(edge, nil)
		mockLikeRepo.EXPECT().CountByPostID(ctx, int64(10)).Return(int64(5), nil)
	})

	output, err := fx.service.GetLikeStatus(ctx, 42, 10)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.True(t, output.Liked)
	assert.Equal(t, int64(5), output.Count)
}

func TestLikeService_GetLikeStatus_NotLiked(t *testing.T) {
	fx := createTestLikeService(t)

	ctx := context.Background()
	post := &entity.Post{ID: 10, UserID: 7}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockPostRepo := mockRepo.NewMockPostRepository(t)
		mockLikeRepo := mockRepo.NewMockLikeRepository(t)
		factory.EXPECT().PostRepo().Return(mockPostRepo)
		factory.EXPECT().LikeRepo().Return(mockLikeRepo)

		mockPostRepo.EXPECT().FindByID(ctx, int64(10)).Return(post, nil)
		mockLikeRepo.EXPECT().Find(ctx, int64(42), int64(10)).Return(nil, repository.ErrLikeNotFound)
		mockLikeRepo.EXPECT().CountByPostID(ctx, int64(10)).Return(int64(5), nil)
	})

	output, err := fx.service.GetLikeStatus(ctx, 42, 10)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.False(t, output.Liked)
	assert.Equal(t, int64(5), output.Count)
}

func TestLikeService_ListUserLikes_Success(t *testing.T) {
	fx := createTestLikeService(t)

	ctx := context.Background()
	input := &usecase.ListInput{Offset: 0, Limit: 20}

	user := &entity.User{ID: 42, Username: "alice", State: entity.StateActive}
	expected := []*entity.Like{
		{ID: 9, UserID: 42, PostID: 12},
		{ID: 4, UserID: 42, PostID: 10},
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockLikeRepo := mockRepo.NewMockLikeRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().LikeRepo().Return(mockLikeRepo)

		mockUserRepo.EXPECT().FindByID(ctx, int64(42)).Return(user, nil)
		mockLikeRepo.EXPECT().ListByUserID(ctx, int64(42), 0, 20).Return(expected, nil)
	})

	likes, err := fx.service.ListUserLikes(ctx, 42, input)

	require.NoError(t, err)
	assert.Equal(t, expected, likes)
}

func TestLikeService_ListPostLikes_Success(t *testing.T) {
	fx := createTestLikeService(t)

	ctx := context.Background()
	input := &usecase.ListInput{Offset: 0, Limit: 20}

	post := &entity.Post{ID: 10, UserID: 7}
	expected := []*entity.Like{
		{ID: 2, UserID: 43, PostID: 10},
		{ID: 1, UserID: 42, PostID: 10},
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockPostRepo := mockRepo.NewMockPostRepository(t)
		mockLikeRepo := mockRepo.NewMockLikeRepository(t)
		factory.EXPECT().PostRepo().Return(mockPostRepo)
		factory.EXPECT().LikeRepo().Return(mockLikeRepo)

		mockPostRepo.EXPECT().FindByID(ctx, int64(10)).Return(post, nil)
		mockLikeRepo.EXPECT().ListByPostID(ctx, int64(10), 0, 20).Return(expected, nil)
	})

	likes, err := fx.service.ListPostLikes(ctx, 10, input)

	require.NoError(t, err)
	assert.Equal(t, expected, likes)
}

func TestLikeService_CountPostLikes_Success(t *testing.T) {
	fx := createTestLikeService(t)

	ctx := context.Background()
	post := &entity.Post{ID: 10, UserID: 7}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockPostRepo := mockRepo.NewMockPostRepository(t)
		mockLikeRepo := mockRepo.NewMockLikeRepository(t)
		factory.EXPECT().PostRepo().Return(mockPostRepo)
		factory.EXPECT().LikeRepo().Return(mockLikeRepo)

		mockPostRepo.EXPECT().FindByID(ctx, int64(10)).Return(post, nil)
		mockLikeRepo.EXPECT().CountByPostID(ctx, int64(10)).Return(int64(12), nil)
	})

	count, err := fx.service.CountPostLikes(ctx, 10)

	require.NoError(t, err)
	assert.Equal(t, int64(12), count)
}
