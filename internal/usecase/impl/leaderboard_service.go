package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/ajlevin/csc365-final-project/internal/delivery/context"
	"github.com/ajlevin/csc365-final-project/internal/domain/entity"
	domainerrors "github.com/ajlevin/csc365-final-project/internal/domain/errors"
	"github.com/ajlevin/csc365-final-project/internal/domain/repository"
	"github.com/ajlevin/csc365-final-project/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// leaderboardService implements the LeaderboardUsecase interface.
type leaderboardService struct {
	leaderboardRepo repository.LeaderboardRepository
	logger          *slog.Logger
}

// LeaderboardServiceParams holds dependencies for leaderboardService, injected by Fx.
type LeaderboardServiceParams struct {
	fx.In

	LeaderboardRepo repository.LeaderboardRepository
	Logger          *slog.Logger
}

// NewLeaderboardService is the constructor for leaderboardService.
func NewLeaderboardService(params LeaderboardServiceParams) usecase.LeaderboardUsecase {
	return &leaderboardService{
		leaderboardRepo: params.LeaderboardRepo,
		logger:          params.Logger,
	}
}

func (srv *leaderboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetLeaderboard validates the sort key and delegates to the aggregate
// query. The result is recomputed on every call.
func (srv *leaderboardService) GetLeaderboard(ctx context.Context, sortBy string) ([]*entity.LeaderboardEntry, error) {
	key := entity.SortByTotalClimbs
	if sortBy != "" {
		key = entity.SortKey(sortBy)
	}
	if !key.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("sort_by must be total_climbs or hardest_grade")
	}

	entries, err := srv.leaderboardRepo.ListEntries(ctx, key)
	if err != nil {
		srv.log(ctx).Error("Failed to compute leaderboard", slog.String("sortBy", string(key)), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to compute leaderboard")
	}

	srv.log(ctx).Debug("Leaderboard computed", slog.String("sortBy", string(key)), slog.Int("entries", len(entries)))

	return entries, nil
}
