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

type followServiceFixtures struct {
	t         *testing.T
	service   usecase.FollowUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestFollowService(t *testing.T) followServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewFollowService(txManager, newDiscardLogger())

	return followServiceFixtures{
		t:         t,
		service:   service,
		txManager: txManager,
	}
}

func (fx followServiceFixtures) onExecute(ctx context.Context, returnErr error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)
			_ = fn(factory)
		}).
		Return(returnErr)
}

func TestFollowService_Follow_Success(t *testing.T) {
	fx := createTestFollowService(t)

	ctx := context.Background()
	target := &entity.User{ID: 7, Username: "target"}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockFollowRepo := mockRepo.NewMockFollowRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().FollowRepo().Return(mockFollowRepo)

		mockUserRepo.EXPECT().FindByID(ctx, int64(7)).Return(target, nil)
		mockFollowRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Follow")).Return(nil)
	})

	err := fx.service.Follow(ctx, 42, 7)

	require.NoError(t, err)
}

func TestFollowService_Follow_Self(t *testing.T) {
	fx := createTestFollowService(t)

	ctx := context.Background()

	// No transaction is started; the self check happens first.
	err := fx.service.Follow(ctx, 42, 42)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCannotFollowSelf))
}

func TestFollowService_Follow_AlreadyFollowing(t *testing.T) {
	fx := createTestFollowService(t)

	ctx := context.Background()
	target := &entity.User{ID: 7, Username: "target"}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrAlreadyFollowing, "follow failed"), func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockFollowRepo := mockRepo.NewMockFollowRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().FollowRepo().Return(mockFollowRepo)

		mockUserRepo.EXPECT().FindByID(ctx, int64(7)).Return(target, nil)
		mockFollowRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Follow")).Return(repository.ErrDuplicateEdge)
	})

	err := fx.service.Follow(ctx, 42, 7)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyFollowing))
}

func TestFollowService_Follow_TargetNotFound(t *testing.T) {
	fx := createTestFollowService(t)

	ctx := context.Background()

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrUserNotFound, "target user not found"), func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockUserRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrUserNotFound)
	})

	err := fx.service.Follow(ctx, 42, 404)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestFollowService_Unfollow_Success(t *testing.T) {
	fx := createTestFollowService(t)

	ctx := context.Background()

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockFollowRepo := mockRepo.NewMockFollowRepository(t)
		factory.EXPECT().FollowRepo().Return(mockFollowRepo)

		mockFollowRepo.EXPECT().Delete(ctx, int64(42), int64(7)).Return(nil)
	})

	err := fx.service.Unfollow(ctx, 42, 7)

	require.NoError(t, err)
}

func TestFollowService_Unfollow_NotFollowing(t *testing.T) {
	fx := createTestFollowService(t)

	ctx := context.Background()

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrNotFollowing, "unfollow failed"), func(factory *mockRepo.MockRepositoryFactory) {
		mockFollowRepo := mockRepo.NewMockFollowRepository(t)
		factory.EXPECT().FollowRepo().Return(mockFollowRepo)

		mockFollowRepo.EXPECT().Delete(ctx, int64(42), int64(7)).Return(repository.ErrFollowNotFound)
	})

	err := fx.service.Unfollow(ctx, 42, 7)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFollowing))
}

func TestFollowService_ListFollowers_Success(t *testing.T) {
	fx := createTestFollowService(t)

	ctx := context.Background()
	input := &usecase.ListInput{Offset: 0, Limit: 20}

	subject := &entity.User{ID: 7, Username: "subject"}
	follower := &entity.User{ID: 42, Username: "fan"}
	edges := []*entity.Follow{{ID: 1, FollowerID: 42, FollowingID: 7}}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockFollowRepo := mockRepo.NewMockFollowRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().FollowRepo().Return(mockFollowRepo)

		mockUserRepo.EXPECT().FindByID(ctx, int64(7)).Return(subject, nil)
		mockFollowRepo.EXPECT().ListFollowers(ctx, int64(7), 0, 20).Return(edges, nil)
		mockUserRepo.EXPECT().FindByID(ctx, int64(42)).Return(follower, nil)
	})

	users, err := fx.service.ListFollowers(ctx, 7, input)

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, follower, users[0])
}

func TestFollowService_ListFollowing_SkipsDeletedUsers(t *testing.T) {
	fx := createTestFollowService(t)

	ctx := context.Background()
	input := &usecase.ListInput{Offset: 0, Limit: 20}

	subject := &entity.User{ID: 42, Username: "subject"}
	followed := &entity.User{ID: 7, Username: "kept"}
	edges := []*entity.Follow{
		{ID: 1, FollowerID: 42, FollowingID: 7},
		{ID: 2, FollowerID: 42, FollowingID: 8},
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockFollowRepo := mockRepo.NewMockFollowRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().FollowRepo().Return(mockFollowRepo)

		mockUserRepo.EXPECT().FindByID(ctx, int64(42)).Return(subject, nil)
		mockFollowRepo.EXPECT().ListFollowing(ctx, int64(42), 0, 20).Return(edges, nil)
		mockUserRepo.EXPECT().FindByID(ctx, int64(7)).Return(followed, nil)
		mockUserRepo.EXPECT().FindByID(ctx, int64(8)).Return(nil, repository.ErrUserNotFound)
	})

	users, err := fx.service.ListFollowing(ctx, 42, input)

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, followed, users[0])
}

func TestFollowService_GetFollowStats_Success(t *testing.T) {
	fx := createTestFollowService(t)

	ctx := context.Background()
	subject := &entity.User{ID: 7, Username: "subject"}
	edge := &entity.Follow{ID: 1, FollowerID: 42, FollowingID: 7}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockFollowRepo := mockRepo.NewMockFollowRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().FollowRepo().Return(mockFollowRepo)

		mockUserRepo.EXPECT().FindByID(ctx, int64(7)).Return(subject, nil)
		mockFollowRepo.EXPECT().CountFollowers(ctx, int64(7)).Return(int64(3), nil)
		mockFollowRepo.EXPECT().CountFollowing(ctx, int64(7)).Return(int64(5), nil)
		mockFollowRepo.EXPECT().Find(ctx, int64(42), int64(7)).Return(edge, nil)
	})

	stats, err := fx.service.GetFollowStats(ctx, 42, 7)

	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, int64(7), stats.UserID)
	assert.Equal(t, int64(3), stats.FollowersCount)
	assert.Equal(t, int64(5), stats.FollowingCount)
	assert.True(t, stats.IsFollowing)
}

func TestFollowService_GetFollowStats_OwnProfile(t *testing.T) {
	fx := createTestFollowService(t)

	ctx := context.Background()
	subject := &entity.User{ID: 42, Username: "subject"}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockFollowRepo := mockRepo.NewMockFollowRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().FollowRepo().Return(mockFollowRepo)

		mockUserRepo.EXPECT().FindByID(ctx, int64(42)).Return(subject, nil)
		mockFollowRepo.EXPECT().CountFollowers(ctx, int64(42)).Return(int64(3), nil)
		mockFollowRepo.EXPECT().CountFollowing(ctx, int64(42)).Return(int64(5), nil)
		// No Find call: the edge check is skipped when looking at your own profile.
	})

	stats, err := fx.service.GetFollowStats(ctx, 42, 42)

	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.False(t, stats.IsFollowing)
}
