package impl

import (
	"context"
	"testing"
	"time"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	mockRepo "pulse/internal/mocks/repository"
	mockSvc "pulse/internal/mocks/service"
	"pulse/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	t            *testing.T
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	service := NewUserService(txManager, hasher, tokenService, newDiscardLogger())

	return userServiceFixtures{
		t:            t,
		service:      service,
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func (fx userServiceFixtures) onExecute(ctx context.Context, returnErr error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)
			_ = fn(factory)
		}).
		Return(returnErr)
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Username: "testuser",
		Email:    "test@example.com",
		Password: "StrongPass123",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
		mockUserRepo.EXPECT().FindByUsername(ctx, input.Username).Return(nil, repository.ErrUserNotFound)
		mockUserRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, user *entity.User) {
				user.ID = 1
			}).
			Return(nil)
	})

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, int64(1), output.User.ID)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	assert.True(t, output.User.State.Active())
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Username: "testuser",
		Email:    "taken@example.com",
		Password: "StrongPass123",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	existing := &entity.User{ID: 7, Email: input.Email}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrUserAlreadyExists, "user registration failed"), func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(existing, nil)
	})

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Register_UsernameTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Username: "taken",
		Email:    "test@example.com",
		Password: "StrongPass123",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	existing := &entity.User{ID: 7, Username: input.Username}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrUsernameTaken, "user registration failed"), func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
		mockUserRepo.EXPECT().FindByUsername(ctx, input.Username).Return(existing, nil)
	})

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
}

func TestUserService_Register_WeakPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Username: "testuser",
		Email:    "test@example.com",
		Password: "weak",
	}

	// The transaction is never started for a weak password.
	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(domainerrors.ErrPasswordStrength)

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "StrongPass123",
	}

	user := &entity.User{
		ID:           42,
		Email:        input.Email,
		PasswordHash: "hashed_password",
		State:        entity.StateActive,
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	})
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().GenerateToken(user.ID).Return("signed_token", nil)
	fx.tokenService.EXPECT().AccessTokenTTL().Return(time.Hour)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed_token", output.AccessToken)
	assert.Equal(t, "bearer", output.TokenType)
	assert.Equal(t, int64(3600), output.ExpiresIn)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "WrongPass123",
	}

	user := &entity.User{
		ID:           42,
		Email:        input.Email,
		PasswordHash: "hashed_password",
		State:        entity.StateActive,
	}

	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(false)

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed"), func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	})

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "StrongPass123",
	}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed"), func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	})

	output, err := fx.service.Login(ctx, input)

	// Unknown email and wrong password surface the same error.
	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_InactiveAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "StrongPass123",
	}

	user := &entity.User{
		ID:           42,
		Email:        input.Email,
		PasswordHash: "hashed_password",
		State:        entity.StateInactive,
	}

	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed"), func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	})

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_GetUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	expectedUser := &entity.User{
		ID:       42,
		Username: "testuser",
		Email:    "test@example.com",
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockUserRepo.EXPECT().FindByID(ctx, int64(42)).Return(expectedUser, nil)
	})

	user, err := fx.service.GetUser(ctx, 42)

	require.NoError(t, err)
	assert.Equal(t, expectedUser, user)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrUserNotFound, "user not found"), func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockUserRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrUserNotFound)
	})

	user, err := fx.service.GetUser(ctx, 404)

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_UpdateProfile_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	newBio := "New bio"
	input := &usecase.UpdateProfileInput{Bio: &newBio}

	existingUser := &entity.User{
		ID:  42,
		Bio: "Old bio",
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockUserRepo.EXPECT().FindByID(ctx, int64(42)).Return(existingUser, nil)
		mockUserRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	})

	user, err := fx.service.UpdateProfile(ctx, 42, input)

	require.NoError(t, err)
	assert.Equal(t, "New bio", user.Bio)
}

func TestUserService_UpdateProfile_ChangeUsername(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	newUsername := "alice_v2"
	input := &usecase.UpdateProfileInput{Username: &newUsername}

	existingUser := &entity.User{
		ID:       42,
		Username: "alice",
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockUserRepo.EXPECT().FindByID(ctx, int64(42)).Return(existingUser, nil)
		mockUserRepo.EXPECT().FindByUsername(ctx, "alice_v2").Return(nil, repository.ErrUserNotFound)
		mockUserRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	})

	user, err := fx.service.UpdateProfile(ctx, 42, input)

	require.NoError(t, err)
	assert.Equal(t, "alice_v2", user.Username)
}

func TestUserService_UpdateProfile_UsernameTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	newUsername := "bob"
	input := &usecase.UpdateProfileInput{Username: &newUsername}

	existingUser := &entity.User{
		ID:       42,
		Username: "alice",
	}
	otherUser := &entity.User{
		ID:       7,
		Username: "bob",
	}

	fx.onExecute(ctx, domainerrors.ErrUsernameTaken.WrapMessage("profile update failed"), func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockUserRepo.EXPECT().FindByID(ctx, int64(42)).Return(existingUser, nil)
		mockUserRepo.EXPECT().FindByUsername(ctx, "bob").Return(otherUser, nil)
	})

	user, err := fx.service.UpdateProfile(ctx, 42, input)

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
}

func TestUserService_ChangePassword_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.ChangePasswordInput{
		CurrentPassword: "OldPass123",
		NewPassword:     "NewPass456",
	}

	existingUser := &entity.User{
		ID:           42,
		PasswordHash: "old_hash",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.NewPassword).Return(nil)
	fx.hasher.EXPECT().Hash(input.NewPassword).Return("new_hash", nil)
	fx.hasher.EXPECT().Check(input.CurrentPassword, "old_hash").Return(true)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockUserRepo.EXPECT().FindByID(ctx, int64(42)).Return(existingUser, nil)
		mockUserRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	})

	err := fx.service.ChangePassword(ctx, 42, input)

	require.NoError(t, err)
	assert.Equal(t, "new_hash", existingUser.PasswordHash)
}

func TestUserService_ChangePassword_WrongCurrent(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.ChangePasswordInput{
		CurrentPassword: "WrongPass123",
		NewPassword:     "NewPass456",
	}

	existingUser := &entity.User{
		ID:           42,
		PasswordHash: "old_hash",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.NewPassword).Return(nil)
	fx.hasher.EXPECT().Hash(input.NewPassword).Return("new_hash", nil)
	fx.hasher.EXPECT().Check(input.CurrentPassword, "old_hash").Return(false)

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrInvalidCredentials, "current password mismatch"), func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockUserRepo.EXPECT().FindByID(ctx, int64(42)).Return(existingUser, nil)
	})

	err := fx.service.ChangePassword(ctx, 42, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	assert.Equal(t, "old_hash", existingUser.PasswordHash)
}

func TestUserService_DeleteAccount_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockUserRepo.EXPECT().Delete(ctx, int64(42)).Return(nil)
	})

	err := fx.service.DeleteAccount(ctx, 42)

	require.NoError(t, err)
}
