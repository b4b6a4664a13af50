package repository

import (
	"context"

	"github.com/ajlevin/csc365-final-project/internal/domain/entity"
)

// LeaderboardRepository computes the ranked climber list. It is a read-only
// view over users, climbing and routes; nothing is ever cached or persisted.
type LeaderboardRepository interface {
	// ListEntries aggregates climb counts and hardest grades per user,
	// ordered by the given sort key descending with the other field as
	// descending tie-break. "Hardest" compares the raw grade text
	// lexicographically, not ordinally, so "5.9" ranks above "5.12a".
	// Users whose only climbs are on ungraded routes are absent from
	// the result.
	ListEntries(ctx context.Context, sortBy entity.SortKey) ([]*entity.LeaderboardEntry, error)
}
