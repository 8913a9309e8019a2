// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"pulse/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name     string
	Username string
	Email    string
	Password string
	Phone    string
	Address  string
	Bio      string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput defines the mutable profile fields. Nil pointers leave
// the corresponding field untouched. A new username is re-checked for
// uniqueness before the update.
type UpdateProfileInput struct {
	Name     *string
	Username *string
	Address  *string
	Bio      *string
}

// ChangePasswordInput defines the data required to change a password.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// ListInput defines offset/limit pagination shared by list operations.
type ListInput struct {
	Offset int
	Limit  int
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated token after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64
	User        *entity.User
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GetUser(ctx context.Context, userID int64) (*entity.User, error)
	ListUsers(ctx context.Context, input *ListInput) ([]*entity.User, error)
	UpdateProfile(ctx context.Context, userID int64, input *UpdateProfileInput) (*entity.User, error)
	ChangePassword(ctx context.Context, userID int64, input *ChangePasswordInput) error
	DeleteAccount(ctx context.Context, userID int64) error
}
