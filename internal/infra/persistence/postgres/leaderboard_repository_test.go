package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/ajlevin/csc365-final-project/internal/domain/entity"
	domainerrors "github.com/ajlevin/csc365-final-project/internal/domain/errors"
	"github.com/ajlevin/csc365-final-project/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newLeaderboardTestDB opens an in-memory database with the real schema so
// the aggregate query runs as written, not against mocks.
func newLeaderboardTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A second pooled connection would see a fresh empty :memory: database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.UserModel{}, &model.RouteModel{}, &model.ClimbModel{}))

	return db
}

func gradeRef(grade string) *string {
	return &grade
}

// seedLeaderboardFixture loads four climbers and one bystander:
//   - carol: 3 graded climbs, hardest 5.11a
//   - alice: 3 graded climbs, hardest 5.10c, plus one climb on an ungraded
//     route that must not count
//   - eve:   2 graded climbs, hardest 5.12a
//   - bob:   1 graded climb, hardest 5.12a
//   - dave:  climbs only on the ungraded route, so he never ranks
func seedLeaderboardFixture(t *testing.T, db *gorm.DB) {
	t.Helper()

	users := []model.UserModel{
		{UserID: 1, Name: "alice", Email: "alice@example.com", Age: 30, Password: "x"},
		{UserID: 2, Name: "bob", Email: "bob@example.com", Age: 31, Password: "x"},
		{UserID: 3, Name: "carol", Email: "carol@example.com", Age: 32, Password: "x"},
		{UserID: 4, Name: "dave", Email: "dave@example.com", Age: 33, Password: "x"},
		{UserID: 5, Name: "eve", Email: "eve@example.com", Age: 34, Password: "x"},
	}
	require.NoError(t, db.Create(&users).Error)

	routes := []model.RouteModel{
		{RouteID: 1, Name: "Slab One", Location: "Bishop", Grade: gradeRef("5.10a")},
		{RouteID: 2, Name: "Crimp Ladder", Location: "Bishop", Grade: gradeRef("5.10c")},
		{RouteID: 3, Name: "Overhang", Location: "Smith Rock", Grade: gradeRef("5.11a")},
		{RouteID: 4, Name: "The Proj", Location: "Smith Rock", Grade: gradeRef("5.12a")},
		{RouteID: 5, Name: "Unrated Traverse", Location: "Gym", Grade: nil},
	}
	require.NoError(t, db.Create(&routes).Error)

	now := time.Now()
	climbs := []model.ClimbModel{
		// alice: three graded climbs topping out at 5.10c, one ungraded.
		{UserID: 1, RouteID: 1, CreatedAt: now},
		{UserID: 1, RouteID: 1, CreatedAt: now},
		{UserID: 1, RouteID: 2, CreatedAt: now},
		{UserID: 1, RouteID: 5, CreatedAt: now},
		// bob: a single 5.12a send.
		{UserID: 2, RouteID: 4, CreatedAt: now},
		// carol: three graded climbs topping out at 5.11a.
		{UserID: 3, RouteID: 1, CreatedAt: now},
		{UserID: 3, RouteID: 2, CreatedAt: now},
		{UserID: 3, RouteID: 3, CreatedAt: now},
		// dave: only the ungraded traverse.
		{UserID: 4, RouteID: 5, CreatedAt: now},
		{UserID: 4, RouteID: 5, CreatedAt: now},
		// eve: two graded climbs topping out at 5.12a.
		{UserID: 5, RouteID: 3, CreatedAt: now},
		{UserID: 5, RouteID: 4, CreatedAt: now},
	}
	require.NoError(t, db.Create(&climbs).Error)
}

func entryNames(entries []*entity.LeaderboardEntry) []string {
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name)
	}

	return names
}

func TestLeaderboardRepository_ListEntries_SortByTotalClimbs(t *testing.T) {
	db := newLeaderboardTestDB(t)
	seedLeaderboardFixture(t, db)
	repo := NewLeaderboardRepository(db)

	entries, err := repo.ListEntries(context.Background(), entity.SortByTotalClimbs)

	require.NoError(t, err)
	// carol and alice tie at three climbs; carol's harder grade breaks it.
	assert.Equal(t, []string{"carol", "alice", "eve", "bob"}, entryNames(entries))

	carol := entries[0]
	assert.Equal(t, int64(3), carol.TotalClimbs)
	assert.Equal(t, "5.11a", carol.HardestGrade)

	// alice's ungraded climb is not counted.
	alice := entries[1]
	assert.Equal(t, int64(3), alice.TotalClimbs)
	assert.Equal(t, "5.10c", alice.HardestGrade)
}

func TestLeaderboardRepository_ListEntries_SortByHardestGrade(t *testing.T) {
	db := newLeaderboardTestDB(t)
	seedLeaderboardFixture(t, db)
	repo := NewLeaderboardRepository(db)

	entries, err := repo.ListEntries(context.Background(), entity.SortByHardestGrade)

	require.NoError(t, err)
	// eve and bob tie at 5.12a; eve's climb count breaks it.
	assert.Equal(t, []string{"eve", "bob", "carol", "alice"}, entryNames(entries))
	assert.Equal(t, "5.12a", entries[0].HardestGrade)
	assert.Equal(t, int64(2), entries[0].TotalClimbs)
	assert.Equal(t, int64(1), entries[1].TotalClimbs)
}

func TestLeaderboardRepository_ListEntries_ExcludesUngradedOnlyClimbers(t *testing.T) {
	db := newLeaderboardTestDB(t)
	seedLeaderboardFixture(t, db)
	repo := NewLeaderboardRepository(db)

	entries, err := repo.ListEntries(context.Background(), entity.SortByTotalClimbs)

	require.NoError(t, err)
	assert.NotContains(t, entryNames(entries), "dave")
}

func TestLeaderboardRepository_ListEntries_UnknownSortKey(t *testing.T) {
	db := newLeaderboardTestDB(t)
	repo := NewLeaderboardRepository(db)

	entries, err := repo.ListEntries(context.Background(), entity.SortKey("shoe_size"))

	assert.Error(t, err)
	assert.Nil(t, entries)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
