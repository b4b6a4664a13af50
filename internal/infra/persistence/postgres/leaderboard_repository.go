package postgres

import (
	"context"

	"github.com/ajlevin/csc365-final-project/internal/domain/entity"
	domainerrors "github.com/ajlevin/csc365-final-project/internal/domain/errors"
	"github.com/ajlevin/csc365-final-project/internal/domain/repository"

	"gorm.io/gorm"
)

// leaderboardBaseQuery aggregates every user with at least one climb on a
// graded route. Climbs on grade-NULL routes fall out of the join filter, so
// such users never get an entry.
const leaderboardBaseQuery = `
SELECT
    u.user_id,
    u.name,
    COUNT(c.climbing_id) AS total_climbs,
    MAX(r.grade)         AS hardest_grade
FROM users u
JOIN climbing c ON u.user_id = c.user_id
JOIN routes r   ON c.route_id = r.route_id
WHERE r.grade IS NOT NULL
GROUP BY u.user_id, u.name
`

// leaderboardOrderClauses is the closed set of ORDER BY variants. The sort
// key enum indexes into it; caller input is never interpolated into SQL.
var leaderboardOrderClauses = map[entity.SortKey]string{
	entity.SortByTotalClimbs:  "ORDER BY total_climbs DESC, hardest_grade DESC",
	entity.SortByHardestGrade: "ORDER BY hardest_grade DESC, total_climbs DESC",
}

// leaderboardRepository implements the domain's LeaderboardRepository over raw SQL.
type leaderboardRepository struct {
	db *gorm.DB
}

// NewLeaderboardRepository is the constructor for leaderboardRepository.
func NewLeaderboardRepository(db *gorm.DB) repository.LeaderboardRepository {
	return &leaderboardRepository{db: db}
}

// ListEntries computes the full ranking in one aggregate query. The result
// is recomputed on every call; nothing is cached.
func (repo *leaderboardRepository) ListEntries(ctx context.Context, sortBy entity.SortKey) ([]*entity.LeaderboardEntry, error) {
	orderClause, ok := leaderboardOrderClauses[sortBy]
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown leaderboard sort key")
	}

	var entries []*entity.LeaderboardEntry
	err := repo.db.WithContext(ctx).
		Raw(leaderboardBaseQuery + orderClause).
		Scan(&entries).Error

	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to query leaderboard")
	}

	return entries, nil
}
