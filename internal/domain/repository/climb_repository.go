package repository

import (
	"context"
	"errors"

	"github.com/ajlevin/csc365-final-project/internal/domain/entity"
)

// ErrClimbInvalidReference is returned when a climb references a user or
// route that does not exist.
var ErrClimbInvalidReference = errors.New("climb references missing user or route")

// ClimbRepository defines the standard operations for climb persistence.
// Climbs are append-only; there is no update or delete.
type ClimbRepository interface {
	// Create persists a new climb record and sets the generated ID on the
	// passed entity.
	Create(ctx context.Context, climb *entity.Climb) error

	// ListByUser returns all climbs logged by one user, newest first.
	ListByUser(ctx context.Context, userID int64) ([]*entity.Climb, error)
}
