package entity

// SortKey selects the primary ordering of the leaderboard. It is a closed
// enum so the persistence layer can map it to a fixed set of query variants
// instead of interpolating caller input into SQL.
type SortKey string

const (
	// SortByTotalClimbs orders by climb count, hardest grade as tie-break.
	SortByTotalClimbs SortKey = "total_climbs"

	// SortByHardestGrade orders by hardest grade, climb count as tie-break.
	SortByHardestGrade SortKey = "hardest_grade"
)

// Valid reports whether the sort key is one of the allowed values.
func (k SortKey) Valid() bool {
	return k == SortByTotalClimbs || k == SortByHardestGrade
}

// LeaderboardEntry is a derived, never-persisted ranking row. An entry only
// exists for a user with at least one climb on a graded route.
type LeaderboardEntry struct {
	UserID       int64  `json:"user_id"`
	Name         string `json:"name"`
	TotalClimbs  int64  `json:"total_climbs"`
	HardestGrade string `json:"hardest_grade"`
}
