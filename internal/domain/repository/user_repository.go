// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"github.com/ajlevin/csc365-final-project/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// Create persists a new user and sets the generated ID and timestamps
	// on the passed entity.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their numeric ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByIDAndEmail retrieves the user matching BOTH id and email in a
	// single query. This is the authentication lookup: requiring the id to
	// match the row doubles as authorization.
	FindByIDAndEmail(ctx context.Context, id int64, email string) (*entity.User, error)

	// UpdateProfile overwrites name, email and age for an existing user.
	// The password digest and the id are immutable through this path.
	UpdateProfile(ctx context.Context, id int64, name, email string, age int) error
}
