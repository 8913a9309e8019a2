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

type commentServiceFixtures struct {
	t         *testing.T
	service   usecase.CommentUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestCommentService(t *testing.T) commentServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewCommentService(txManager, newDiscardLogger())

	return commentServiceFixtures{
		t:         t,
		service:   service,
		txManager: txManager,
	}
}

func (fx commentServiceFixtures) onExecute(ctx context.Context, returnErr error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)
			_ = fn(factory)
		}).
		Return(returnErr)
}

func TestCommentService_CreateComment_Success(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	input := &usecase.CreateCommentInput{Content: "Nice post"}

	post := &entity.Post{ID: 10, UserID: 7}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockPostRepo := mockRepo.NewMockPostRepository(t)
		mockCommentRepo := mockRepo.NewMockCommentRepository(t)
		factory.EXPECT().PostRepo().Return(mockPostRepo)
		factory.EXPECT().CommentRepo().Return(mockCommentRepo)

		mockPostRepo.EXPECT().FindByID(ctx, int64(10)).Return(post, nil)
		mockCommentRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Comment")).
			Run(func(ctx context.Context, comment *entity.Comment) {
				comment.ID = 100
			}).
			Return(nil)
	})

	comment, err := fx.service.CreateComment(ctx, 42, 10, input)

	require.NoError(t, err)
	require.NotNil(t, comment)
	assert.Equal(t, int64(100), comment.ID)
	assert.Equal(t, int64(42), comment.UserID)
	assert.Equal(t, int64(10), comment.PostID)
	assert.Equal(t, "Nice post", comment.Content)
}

func TestCommentService_CreateComment_PostNotFound(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	input := &usecase.CreateCommentInput{Content: "Nice post"}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrPostNotFound, "post not found"), func(factory *mockRepo.MockRepositoryFactory) {
		mockPostRepo := mockRepo.NewMockPostRepository(t)
		factory.EXPECT().PostRepo().Return(mockPostRepo)

		mockPostRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrPostNotFound)
	})

	comment, err := fx.service.CreateComment(ctx, 42, 404, input)

	assert.Error(t, err)
	assert.Nil(t, comment)
	assert.True(t, errors.Is(err, domainerrors.ErrPostNotFound))
}

func TestCommentService_ListPostComments_Success(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	input := &usecase.ListInput{Offset: 0, Limit: 20}

	post := &entity.Post{ID: 10, UserID: 7}
	expected := []*entity.Comment{
		{ID: 1, UserID: 42, PostID: 10, Content: "first"},
		{ID: 2, UserID: 43, PostID: 10, Content: "second"},
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockPostRepo := mockRepo.NewMockPostRepository(t)
		mockCommentRepo := mockRepo.NewMockCommentRepository(t)
		factory.EXPECT().PostRepo().Return(mockPostRepo)
		factory.EXPECT().CommentRepo().Return(mockCommentRepo)

		mockPostRepo.EXPECT().FindByID(ctx, int64(10)).Return(post, nil)
		mockCommentRepo.EXPECT().ListByPostID(ctx, int64(10), 0, 20).Return(expected, nil)
	})

	comments, err := fx.service.ListPostComments(ctx, 10, input)

	require.NoError(t, err)
	assert.Equal(t, expected, comments)
}

func TestCommentService_ListUserComments_Success(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	input := &usecase.ListInput{Offset: 0, Limit: 20}

	user := &entity.User{ID: 42, Username: "alice", State: entity.StateActive}
	expected := []*entity.Comment{
		{ID: 8, UserID: 42, PostID: 11, Content: "later"},
		{ID: 3, UserID: 42, PostID: 10, Content: "earlier"},
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockCommentRepo := mockRepo.NewMockCommentRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().CommentRepo().Return(mockCommentRepo)

		mockUserRepo.EXPECT().FindByID(ctx, int64(42)).Return(user, nil)
		mockCommentRepo.EXPECT().ListByUserID(ctx, int64(42), 0, 20).Return(expected, nil)
	})

	comments, err := fx.service.ListUserComments(ctx, 42, input)

	require.NoError(t, err)
	assert.Equal(t, expected, comments)
}

func TestCommentService_UpdateComment_Forbidden(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	input := &usecase.UpdateCommentInput{Content: "edited"}

	existing := &entity.Comment{ID: 100, UserID: 99, PostID: 10, Content: "original"}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrForbidden, "comment belongs to another user"), func(factory *mockRepo.MockRepositoryFactory) {
		mockCommentRepo := mockRepo.NewMockCommentRepository(t)
		factory.EXPECT().CommentRepo().Return(mockCommentRepo)

		mockCommentRepo.EXPECT().FindByID(ctx, int64(100)).Return(existing, nil)
	})

	comment, err := fx.service.UpdateComment(ctx, 42, 100, input)

	assert.Error(t, err)
	assert.Nil(t, comment)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestCommentService_UpdateComment_Success(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	input := &usecase.UpdateCommentInput{Content: "edited"}

	existing := &entity.Comment{ID: 100, UserID: 42, PostID: 10, Content: "original"}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockCommentRepo := mockRepo.NewMockCommentRepository(t)
		factory.EXPECT().CommentRepo().Return(mockCommentRepo)

		mockCommentRepo.EXPECT().FindByID(ctx, int64(100)).Return(existing, nil)
		mockCommentRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Comment")).Return(nil)
	})

	comment, err := fx.service.UpdateComment(ctx, 42, 100, input)

	require.NoError(t, err)
	assert.Equal(t, "edited", comment.Content)
}

func TestCommentService_DeleteComment_NotFound(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrCommentNotFound, "comment not found"), func(factory *mockRepo.MockRepositoryFactory) {
		mockCommentRepo := mockRepo.NewMockCommentRepository(t)
		factory.EXPECT().CommentRepo().Return(mockCommentRepo)

		mockCommentRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrCommentNotFound)
	})

	err := fx.service.DeleteComment(ctx, 42, 404)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCommentNotFound))
}

func TestCommentService_DeleteComment_Success(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()

	existing := &entity.Comment{ID: 100, UserID: 42, PostID: 10}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockCommentRepo := mockRepo.NewMockCommentRepository(t)
		factory.EXPECT().CommentRepo().Return(mockCommentRepo)

		mockCommentRepo.EXPECT().FindByID(ctx, int64(100)).Return(existing, nil)
		mockCommentRepo.EXPECT().Delete(ctx, int64(100)).Return(nil)
	})

	err := fx.service.DeleteComment(ctx, 42, 100)

	require.NoError(t, err)
}
