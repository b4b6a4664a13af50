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

// climbService implements the ClimbUsecase interface.
type climbService struct {
	txManager repository.TransactionManager
	climbRepo repository.ClimbRepository
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// ClimbServiceParams holds dependencies for climbService, injected by Fx.
type ClimbServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	ClimbRepo repository.ClimbRepository
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewClimbService is the constructor for climbService.
func NewClimbService(params ClimbServiceParams) usecase.ClimbUsecase {
	return &climbService{
		txManager: params.TxManager,
		climbRepo: params.ClimbRepo,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

func (srv *climbService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// LogClimb appends one climb record. The database's foreign keys arbitrate
// whether the referenced user and route exist.
func (srv *climbService) LogClimb(ctx context.Context, input *usecase.LogClimbInput) (*usecase.LogClimbOutput, error) {
	srv.log(ctx).Info("Logging climb", slog.Int64("userID", input.UserID), slog.Int64("routeID", input.RouteID))

	newClimb := &entity.Climb{
		UserID:  input.UserID,
		RouteID: input.RouteID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ClimbRepo().Create(ctx, newClimb)
	})

	if err != nil {
		if errors.Is(err, repository.ErrClimbInvalidReference) {
			return nil, errors.Wrap(domainerrors.ErrClimbInvalidReference, "unknown user or route")
		}

		srv.log(ctx).Warn("Failed to log climb", slog.Int64("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to log climb")
	}

	return &usecase.LogClimbOutput{ClimbingID: newClimb.ID}, nil
}

// ListUserClimbs returns every climb logged by one user, newest first.
// An unknown user is a not-found error, not an empty list.
func (srv *climbService) ListUserClimbs(ctx context.Context, userID int64) ([]*usecase.ClimbOutput, error) {
	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "unknown user")
		}

		return nil, errors.Wrap(err, "failed to look up user")
	}

	climbs, err := srv.climbRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user climbs")
	}

	outputs := make([]*usecase.ClimbOutput, 0, len(climbs))
	for _, climb := range climbs {
		outputs = append(outputs, usecase.NewClimbOutput(climb))
	}

	return outputs, nil
}
