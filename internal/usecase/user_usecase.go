// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/ajlevin/csc365-final-project/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Age      int    `json:"age" validate:"gte=0"`
	Password string `json:"password" validate:"required"`
}

// LoginInput is the per-request credential: the email must belong to the
// same row as the target user id, and the password must verify against the
// stored digest.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserInput carries the credential plus the replacement profile
// fields. Only name, email and age are mutable; the password digest and the
// id never change through this path.
type UpdateUserInput struct {
	Login   LoginInput         `json:"login" validate:"required"`
	Profile UpdateProfileInput `json:"profile" validate:"required"`
}

// UpdateProfileInput is the full replacement profile.
type UpdateProfileInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Age   int    `json:"age" validate:"gte=0"`
}

// --- Output DTOs ---

// RegisterOutput returns the database-generated identifier of the new user.
type RegisterOutput struct {
	UserID int64 `json:"user_id"`
}

// UserOutput is the non-sensitive projection of a user returned to callers.
// The password digest deliberately has no field here.
type UserOutput struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Age    int    `json:"age"`
}

// NewUserOutput maps a domain user to its API projection.
func NewUserOutput(user *entity.User) *UserOutput {
	if user == nil {
		return nil
	}

	return &UserOutput{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Age:    user.Age,
	}
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// RegisterUser hashes the password and persists a new user. Creation is
	// not gated by per-user authentication.
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)

	// AuthenticateUser verifies the credential against the user identified
	// by userID. Unknown id, mismatched email and wrong password all fail
	// with the same invalid-credentials error.
	AuthenticateUser(ctx context.Context, userID int64, login *LoginInput) (*UserOutput, error)

	// UpdateUser authenticates against the target user, then overwrites
	// name, email and age. Both steps run in one transaction.
	UpdateUser(ctx context.Context, userID int64, input *UpdateUserInput) error
}
