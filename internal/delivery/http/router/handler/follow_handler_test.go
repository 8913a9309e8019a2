package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "pulse/internal/delivery/context"
	"pulse/internal/domain/entity"
	"pulse/internal/domain/repository"
	mockRepo "pulse/internal/mocks/repository"
	"pulse/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// TestFollowHandler_ListOwnFollowers resolves the follower list from the
// authenticated user's own ID, no path parameter involved.
func TestFollowHandler_ListOwnFollowers(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	txManager := mockRepo.NewMockTransactionManager(t)
	handler := NewFollowHandler(impl.NewFollowService(txManager, logger), logger)

	owner := &entity.User{ID: 42, Username: "alice", State: entity.StateActive}
	follower := &entity.User{ID: 7, Username: "bob", State: entity.StateActive}

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockFollowRepo := mockRepo.NewMockFollowRepository(t)
			factory.EXPECT().UserRepo().Return(mockUserRepo)
			factory.EXPECT().FollowRepo().Return(mockFollowRepo)

			mockUserRepo.EXPECT().FindByID(ctx, int64(42)).Return(owner, nil)
			mockFollowRepo.EXPECT().ListFollowers(ctx, int64(42), 0, 20).Return([]*entity.Follow{
				{ID: 1, FollowerID: 7, FollowingID: 42},
			}, nil)
			mockUserRepo.EXPECT().FindByID(ctx, int64(7)).Return(follower, nil)
			_ = fn(factory)
		}).
		Return(nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/me/followers", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetActorID(c, 42)

	err := handler.ListOwnFollowers(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"bob"`)
}
