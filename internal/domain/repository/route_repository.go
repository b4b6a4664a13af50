package repository

import (
	"context"
	"errors"

	"github.com/ajlevin/csc365-final-project/internal/domain/entity"
)

// ErrRouteNotFound is a domain-specific error returned when a route is not found.
var ErrRouteNotFound = errors.New("route not found")

// RouteRepository defines the standard operations for route persistence.
type RouteRepository interface {
	// Create persists a new route and sets the generated ID on the passed entity.
	Create(ctx context.Context, route *entity.Route) error

	// FindByID retrieves a single route by its numeric ID.
	FindByID(ctx context.Context, id int64) (*entity.Route, error)

	// List returns all routes.
	List(ctx context.Context) ([]*entity.Route, error)
}
