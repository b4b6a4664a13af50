package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ajlevin/csc365-final-project/internal/delivery/http/response"
	"github.com/ajlevin/csc365-final-project/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RouteHandler holds dependencies for route-related handlers.
type RouteHandler struct {
	uc     usecase.RouteUsecase
	logger *slog.Logger
}

// NewRouteHandler is the constructor for RouteHandler, injected by Fx.
func NewRouteHandler(uc usecase.RouteUsecase, logger *slog.Logger) *RouteHandler {
	return &RouteHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateRoute handles the route creation request.
func (h *RouteHandler) CreateRoute(c echo.Context) error {
	var input usecase.CreateRouteInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid route input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.CreateRoute(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Route created successfully")
}

// GetRoute returns a single route by id.
func (h *RouteHandler) GetRoute(c echo.Context) error {
	routeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || routeID <= 0 {
		return response.BadRequest(c, "INVALID_ROUTE_ID", "route id must be a positive integer")
	}

	route, err := h.uc.GetRoute(c.Request().Context(), routeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, route, "Route retrieved successfully")
}

// ListRoutes returns all routes.
func (h *RouteHandler) ListRoutes(c echo.Context) error {
	routes, err := h.uc.ListRoutes(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, routes, "Routes listed successfully")
}
