package usecase

import (
	"context"

	"github.com/ajlevin/csc365-final-project/internal/domain/entity"
)

// LeaderboardUsecase defines the interface for leaderboard computation.
type LeaderboardUsecase interface {
	// GetLeaderboard returns the full ranked climber list. An empty sortBy
	// defaults to total_climbs; anything other than the two allowed keys is
	// a validation error.
	GetLeaderboard(ctx context.Context, sortBy string) ([]*entity.LeaderboardEntry, error)
}
