package handler

import (
	"log/slog"
	"net/http"

	"github.com/ajlevin/csc365-final-project/internal/delivery/http/response"
	"github.com/ajlevin/csc365-final-project/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ClimbHandler holds dependencies for climb-related handlers.
type ClimbHandler struct {
	uc     usecase.ClimbUsecase
	logger *slog.Logger
}

// NewClimbHandler is the constructor for ClimbHandler, injected by Fx.
func NewClimbHandler(uc usecase.ClimbUsecase, logger *slog.Logger) *ClimbHandler {
	return &ClimbHandler{
		uc:     uc,
		logger: logger,
	}
}

// LogClimb handles the climb logging request.
func (h *ClimbHandler) LogClimb(c echo.Context) error {
	var input usecase.LogClimbInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid climb input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.LogClimb(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Climb logged successfully")
}

// ListUserClimbs returns every climb logged by the user in the path.
func (h *ClimbHandler) ListUserClimbs(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_USER_ID", err.Error())
	}

	climbs, err := h.uc.ListUserClimbs(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, climbs, "Climbs listed successfully")
}
