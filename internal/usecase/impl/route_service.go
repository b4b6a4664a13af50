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

// routeService implements the RouteUsecase interface.
type routeService struct {
	txManager repository.TransactionManager
	routeRepo repository.RouteRepository
	logger    *slog.Logger
}

// RouteServiceParams holds dependencies for routeService, injected by Fx.
type RouteServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	RouteRepo repository.RouteRepository
	Logger    *slog.Logger
}

// NewRouteService is the constructor for routeService.
func NewRouteService(params RouteServiceParams) usecase.RouteUsecase {
	return &routeService{
		txManager: params.TxManager,
		routeRepo: params.RouteRepo,
		logger:    params.Logger,
	}
}

func (srv *routeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateRoute persists a new route. Grade may be nil for ungraded routes.
func (srv *routeService) CreateRoute(ctx context.Context, input *usecase.CreateRouteInput) (*usecase.CreateRouteOutput, error) {
	srv.log(ctx).Info("Creating route", slog.String("name", input.Name))

	newRoute := &entity.Route{
		Name:     input.Name,
		Location: input.Location,
		Grade:    input.Grade,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.RouteRepo().Create(ctx, newRoute)
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to create route", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create route")
	}

	return &usecase.CreateRouteOutput{RouteID: newRoute.ID}, nil
}

// GetRoute returns a single route by id.
func (srv *routeService) GetRoute(ctx context.Context, routeID int64) (*usecase.RouteOutput, error) {
	route, err := srv.routeRepo.FindByID(ctx, routeID)
	if err != nil {
		if errors.Is(err, repository.ErrRouteNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRouteNotFound, "unknown route")
		}

		return nil, errors.Wrap(err, "failed to find route")
	}

	return usecase.NewRouteOutput(route), nil
}

// ListRoutes returns all routes.
func (srv *routeService) ListRoutes(ctx context.Context) ([]*usecase.RouteOutput, error) {
	routes, err := srv.routeRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list routes")
	}

	outputs := make([]*usecase.RouteOutput, 0, len(routes))
	for _, route := range routes {
		outputs = append(outputs, usecase.NewRouteOutput(route))
	}

	return outputs, nil
}
