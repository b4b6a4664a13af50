// Package handler contains the HTTP handlers for the application.
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

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// userIDParam parses the :id path segment into a user id.
func userIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("user id must be a positive integer")
	}

	return id, nil
}

// RegisterUser handles the user registration request.
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var input usecase.RegisterUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.RegisterUser(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "User registered successfully")
}

// UpdateUser handles the authenticated profile update request.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_USER_ID", err.Error())
	}

	var input usecase.UpdateUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.UpdateUser(c.Request().Context(), userID, &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"user_id": userID}, "User updated successfully")
}

// Authenticate handles the credential check request.
func (h *UserHandler) Authenticate(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_USER_ID", err.Error())
	}

	var login usecase.LoginInput
	if err := c.Bind(&login); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&login); err != nil {
		return err
	}

	output, err := h.uc.AuthenticateUser(c.Request().Context(), userID, &login)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Authentication successful")
}
