// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/ajlevin/csc365-final-project/internal/delivery/http/middleware"
	"github.com/ajlevin/csc365-final-project/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler        *handler.UserHandler
	LeaderboardHandler *handler.LeaderboardHandler
	RouteHandler       *handler.RouteHandler
	ClimbHandler       *handler.ClimbHandler
	APIKeyMiddleware   *middleware.APIKeyMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler        *handler.UserHandler
	leaderboardHandler *handler.LeaderboardHandler
	routeHandler       *handler.RouteHandler
	climbHandler       *handler.ClimbHandler
	apiKeyMiddleware   *middleware.APIKeyMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:        params.UserHandler,
		leaderboardHandler: params.LeaderboardHandler,
		routeHandler:       params.RouteHandler,
		climbHandler:       params.ClimbHandler,
		apiKeyMiddleware:   params.APIKeyMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Mutating endpoints require an API key; read-only endpoints are open.
func (r *router) RegisterRoutes(e *echo.Echo) {
	requireKey := r.apiKeyMiddleware.Require

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// User routes
	userGroup := e.Group("/users")
	{
		userGroup.POST("", r.userHandler.RegisterUser, requireKey)
		userGroup.PUT("/:id", r.userHandler.UpdateUser, requireKey)
		userGroup.POST("/:id/authenticate", r.userHandler.Authenticate, requireKey)
		userGroup.GET("/:id/climbs", r.climbHandler.ListUserClimbs)
	}

	// Route routes
	routeGroup := e.Group("/routes")
	{
		routeGroup.POST("", r.routeHandler.CreateRoute, requireKey)
		routeGroup.GET("", r.routeHandler.ListRoutes)
		routeGroup.GET("/:id", r.routeHandler.GetRoute)
	}

	// Climb routes
	e.POST("/climbs", r.climbHandler.LogClimb, requireKey)

	// Leaderboard
	e.GET("/leaderboard", r.leaderboardHandler.GetLeaderboard)
}
