package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/ajlevin/csc365-final-project/internal/domain/entity"
	domainerrors "github.com/ajlevin/csc365-final-project/internal/domain/errors"
	mockRepo "github.com/ajlevin/csc365-final-project/internal/mocks/repository"
	"github.com/ajlevin/csc365-final-project/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type leaderboardServiceFixtures struct {
	service         usecase.LeaderboardUsecase
	leaderboardRepo *mockRepo.MockLeaderboardRepository
}

func createTestLeaderboardService(t *testing.T) leaderboardServiceFixtures {
	leaderboardRepo := mockRepo.NewMockLeaderboardRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewLeaderboardService(LeaderboardServiceParams{
		LeaderboardRepo: leaderboardRepo,
		Logger:          logger,
	})

	return leaderboardServiceFixtures{
		service:         service,
		leaderboardRepo: leaderboardRepo,
	}
}

func TestLeaderboardService_GetLeaderboard_DefaultSort(t *testing.T) {
	fx := createTestLeaderboardService(t)

	ctx := context.Background()
	want := []*entity.LeaderboardEntry{
		{UserID: 1, Name: "Alex", TotalClimbs: 12, HardestGrade: "5.12a"},
		{UserID: 2, Name: "Lynn", TotalClimbs: 9, HardestGrade: "5.14a"},
	}

	fx.leaderboardRepo.EXPECT().
		ListEntries(ctx, entity.SortByTotalClimbs).
		Return(want, nil)

	entries, err := fx.service.GetLeaderboard(ctx, "")

	require.NoError(t, err)
	assert.Equal(t, want, entries)
}

func TestLeaderboardService_GetLeaderboard_SortByHardestGrade(t *testing.T) {
	fx := createTestLeaderboardService(t)

	ctx := context.Background()
	want := []*entity.LeaderboardEntry{
		{UserID: 2, Name: "Lynn", TotalClimbs: 9, HardestGrade: "5.14a"},
		{UserID: 1, Name: "Alex", TotalClimbs: 12, HardestGrade: "5.12a"},
	}

	fx.leaderboardRepo.EXPECT().
		ListEntries(ctx, entity.SortByHardestGrade).
		Return(want, nil)

	entries, err := fx.service.GetLeaderboard(ctx, "hardest_grade")

	require.NoError(t, err)
	assert.Equal(t, want, entries)
}

func TestLeaderboardService_GetLeaderboard_InvalidSortKey(t *testing.T) {
	fx := createTestLeaderboardService(t)

	entries, err := fx.service.GetLeaderboard(context.Background(), "shoe_size")

	assert.Error(t, err)
	assert.Nil(t, entries)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestLeaderboardService_GetLeaderboard_Empty(t *testing.T) {
	fx := createTestLeaderboardService(t)

	ctx := context.Background()
	fx.leaderboardRepo.EXPECT().
		ListEntries(ctx, entity.SortByTotalClimbs).
		Return([]*entity.LeaderboardEntry{}, nil)

	entries, err := fx.service.GetLeaderboard(ctx, "total_climbs")

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLeaderboardService_GetLeaderboard_RepositoryError(t *testing.T) {
	fx := createTestLeaderboardService(t)

	ctx := context.Background()
	fx.leaderboardRepo.EXPECT().
		ListEntries(ctx, entity.SortByTotalClimbs).
		Return(nil, errors.New("connection reset"))

	entries, err := fx.service.GetLeaderboard(ctx, "")

	assert.Error(t, err)
	assert.Nil(t, entries)
}
