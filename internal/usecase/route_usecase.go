package usecase

import (
	"context"

	"github.com/ajlevin/csc365-final-project/internal/domain/entity"
)

// CreateRouteInput defines the data required to create a climbing route.
// Grade is optional; ungraded routes are excluded from the leaderboard.
type CreateRouteInput struct {
	Name     string  `json:"name" validate:"required"`
	Location string  `json:"location"`
	Grade    *string `json:"grade,omitempty"`
}

// CreateRouteOutput returns the generated route identifier.
type CreateRouteOutput struct {
	RouteID int64 `json:"route_id"`
}

// RouteOutput is the API projection of a route.
type RouteOutput struct {
	RouteID  int64   `json:"route_id"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Grade    *string `json:"grade"`
}

// NewRouteOutput maps a domain route to its API projection.
func NewRouteOutput(route *entity.Route) *RouteOutput {
	if route == nil {
		return nil
	}

	return &RouteOutput{
		RouteID:  route.ID,
		Name:     route.Name,
		Location: route.Location,
		Grade:    route.Grade,
	}
}

// RouteUsecase defines the interface for route-related business operations.
type RouteUsecase interface {
	CreateRoute(ctx context.Context, input *CreateRouteInput) (*CreateRouteOutput, error)
	GetRoute(ctx context.Context, routeID int64) (*RouteOutput, error)
	ListRoutes(ctx context.Context) ([]*RouteOutput, error)
}
