package handler

import (
	"log/slog"
	"net/http"

	"github.com/ajlevin/csc365-final-project/internal/delivery/http/response"
	"github.com/ajlevin/csc365-final-project/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LeaderboardHandler holds dependencies for the leaderboard endpoint.
type LeaderboardHandler struct {
	uc     usecase.LeaderboardUsecase
	logger *slog.Logger
}

// NewLeaderboardHandler is the constructor for LeaderboardHandler, injected by Fx.
func NewLeaderboardHandler(uc usecase.LeaderboardUsecase, logger *slog.Logger) *LeaderboardHandler {
	return &LeaderboardHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetLeaderboard returns the ranked climber list. The optional sort_by
// query parameter selects the ordering; it defaults to total_climbs.
func (h *LeaderboardHandler) GetLeaderboard(c echo.Context) error {
	sortBy := c.QueryParam("sort_by")

	entries, err := h.uc.GetLeaderboard(c.Request().Context(), sortBy)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "Leaderboard computed successfully")
}
