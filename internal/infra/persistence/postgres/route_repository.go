package postgres

import (
	"context"

	"github.com/ajlevin/csc365-final-project/internal/domain/entity"
	domainerrors "github.com/ajlevin/csc365-final-project/internal/domain/errors"
	"github.com/ajlevin/csc365-final-project/internal/domain/repository"
	"github.com/ajlevin/csc365-final-project/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// routeRepository implements the domain's RouteRepository interface using GORM.
type routeRepository struct {
	db *gorm.DB
}

// NewRouteRepository is the constructor for routeRepository.
func NewRouteRepository(db *gorm.DB) repository.RouteRepository {
	return &routeRepository{db: db}
}

// Create persists a new route.
func (repo *routeRepository) Create(ctx context.Context, route *entity.Route) error {
	routeM := fromRouteDomain(route)

	if err := repo.db.WithContext(ctx).Create(routeM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrRouteCreationFailed.WrapMessage("missing required route information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create route")
	}

	route.ID = routeM.RouteID
	route.CreatedAt = routeM.CreatedAt

	return nil
}

// FindByID retrieves a single route by its numeric ID.
func (repo *routeRepository) FindByID(ctx context.Context, id int64) (*entity.Route, error) {
	var routeM model.RouteModel
	err := repo.db.WithContext(ctx).
		Where("route_id = ?", id).
		First(&routeM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRouteNotFound
		}

		return nil, errors.Wrap(err, "failed to find route by id")
	}

	return toRouteDomain(&routeM), nil
}

// List returns all routes ordered by id.
func (repo *routeRepository) List(ctx context.Context) ([]*entity.Route, error) {
	var routeMs []model.RouteModel
	err := repo.db.WithContext(ctx).
		Order("route_id").
		Find(&routeMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list routes")
	}

	routes := make([]*entity.Route, 0, len(routeMs))
	for i := range routeMs {
		routes = append(routes, toRouteDomain(&routeMs[i]))
	}

	return routes, nil
}

func toRouteDomain(data *model.RouteModel) *entity.Route {
	if data == nil {
		return nil
	}

	return &entity.Route{
		ID:        data.RouteID,
		Name:      data.Name,
		Location:  data.Location,
		Grade:     data.Grade,
		CreatedAt: data.CreatedAt,
	}
}

func fromRouteDomain(data *entity.Route) *model.RouteModel {
	if data == nil {
		return nil
	}

	return &model.RouteModel{
		RouteID:  data.ID,
		Name:     data.Name,
		Location: data.Location,
		Grade:    data.Grade,
	}
}
