package handler

import (
	"net/http"
	"testing"

	"github.com/ajlevin/csc365-final-project/internal/domain/entity"
	mockUsecase "github.com/ajlevin/csc365-final-project/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLeaderboardHandler_GetLeaderboard_DefaultSort(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockLeaderboardUsecase(t)
	h := NewLeaderboardHandler(uc, discardLogger())

	c, rec := newJSONContext(e, http.MethodGet, "/leaderboard", "")

	uc.EXPECT().
		GetLeaderboard(mock.Anything, "").
		Return([]*entity.LeaderboardEntry{
			{UserID: 1, Name: "Alex", TotalClimbs: 12, HardestGrade: "5.12a"},
			{UserID: 2, Name: "Lynn", TotalClimbs: 9, HardestGrade: "5.14a"},
		}, nil)

	err := h.GetLeaderboard(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_climbs":12`)
	assert.Contains(t, rec.Body.String(), `"hardest_grade":"5.14a"`)
}

func TestLeaderboardHandler_GetLeaderboard_SortParamForwarded(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockLeaderboardUsecase(t)
	h := NewLeaderboardHandler(uc, discardLogger())

	c, rec := newJSONContext(e, http.MethodGet, "/leaderboard?sort_by=hardest_grade", "")

	uc.EXPECT().
		GetLeaderboard(mock.Anything, "hardest_grade").
		Return([]*entity.LeaderboardEntry{}, nil)

	err := h.GetLeaderboard(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
