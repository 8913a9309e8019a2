package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pulse/config"
	deliverycontext "pulse/internal/delivery/context"
	"pulse/internal/delivery/http/validator"
	"pulse/internal/domain/entity"
	"pulse/internal/domain/repository"
	mockRepo "pulse/internal/mocks/repository"
	"pulse/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type storyHandlerFixtures struct {
	t         *testing.T
	handler   *StoryHandler
	txManager *mockRepo.MockTransactionManager
	echo      *echo.Echo
}

func createTestStoryHandler(t *testing.T) storyHandlerFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	txManager := mockRepo.NewMockTransactionManager(t)
	service := impl.NewStoryService(txManager, &config.Config{}, logger)

	e := echo.New()
	e.Validator = validator.New()

	return storyHandlerFixtures{
		t:         t,
		handler:   NewStoryHandler(service, logger),
		txManager: txManager,
		echo:      e,
	}
}

func (fx storyHandlerFixtures) postJSON(path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return fx.echo.NewContext(req, rec), rec
}

func TestStoryHandler_CreateStory_NullBody(t *testing.T) {
	fx := createTestStoryHandler(t)

	c, rec := fx.postJSON("/stories", `null`)
	deliverycontext.SetActorID(c, 1)

	var err error
	require.NotPanics(t, func() {
		err = fx.handler.CreateStory(c)
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestStoryHandler_CreateStory_MissingContentURL(t *testing.T) {
	fx := createTestStoryHandler(t)

	c, rec := fx.postJSON("/stories", `{}`)
	deliverycontext.SetActorID(c, 1)

	err := fx.handler.CreateStory(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStoryHandler_CreateStory_Success(t *testing.T) {
	fx := createTestStoryHandler(t)

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			mockStoryRepo := mockRepo.NewMockStoryRepository(t)
			factory.EXPECT().StoryRepo().Return(mockStoryRepo)
			mockStoryRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Story")).
				Run(func(ctx context.Context, story *entity.Story) {
					story.ID = 5
				}).
				Return(nil)
			_ = fn(factory)
		}).
		Return(nil)

	c, rec := fx.postJSON("/stories", `{"content_url":"https://cdn.example.com/s/5.jpg"}`)
	deliverycontext.SetActorID(c, 1)

	err := fx.handler.CreateStory(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

// The cleanup sweep requires no bearer token: it only flips rows that are
// already past their expiry, and the periodic sweeper runs the very same
// operation with no caller identity at all.
func TestStoryHandler_CleanupStories_NoAuth(t *testing.T) {
	fx := createTestStoryHandler(t)

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			mockStoryRepo := mockRepo.NewMockStoryRepository(t)
			factory.EXPECT().StoryRepo().Return(mockStoryRepo)
			mockStoryRepo.EXPECT().SweepExpired(ctx, mock.AnythingOfType("time.Time")).Return(int64(2), nil)
			_ = fn(factory)
		}).
		Return(nil)

	c, rec := fx.postJSON("/stories/cleanup", "")

	err := fx.handler.CleanupStories(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
