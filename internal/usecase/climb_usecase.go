package usecase

import (
	"context"
	"time"

	"github.com/ajlevin/csc365-final-project/internal/domain/entity"
)

// LogClimbInput defines the data required to log one ascent.
type LogClimbInput struct {
	UserID  int64 `json:"user_id" validate:"required,gt=0"`
	RouteID int64 `json:"route_id" validate:"required,gt=0"`
}

// LogClimbOutput returns the generated climb identifier.
type LogClimbOutput struct {
	ClimbingID int64 `json:"climbing_id"`
}

// ClimbOutput is the API projection of a climb record.
type ClimbOutput struct {
	ClimbingID int64     `json:"climbing_id"`
	UserID     int64     `json:"user_id"`
	RouteID    int64     `json:"route_id"`
	ClimbedAt  time.Time `json:"climbed_at"`
}

// NewClimbOutput maps a domain climb to its API projection.
func NewClimbOutput(climb *entity.Climb) *ClimbOutput {
	if climb == nil {
		return nil
	}

	return &ClimbOutput{
		ClimbingID: climb.ID,
		UserID:     climb.UserID,
		RouteID:    climb.RouteID,
		ClimbedAt:  climb.ClimbedAt,
	}
}

// ClimbUsecase defines the interface for climb-related business operations.
type ClimbUsecase interface {
	// LogClimb appends one immutable climb record.
	LogClimb(ctx context.Context, input *LogClimbInput) (*LogClimbOutput, error)

	// ListUserClimbs returns every climb logged by one user, newest first.
	ListUserClimbs(ctx context.Context, userID int64) ([]*ClimbOutput, error)
}
