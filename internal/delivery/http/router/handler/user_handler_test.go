package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ajlevin/csc365-final-project/internal/delivery/http/validator"
	mockUsecase "github.com/ajlevin/csc365-final-project/internal/mocks/usecase"
	"github.com/ajlevin/csc365-final-project/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestUserHandler_RegisterUser_Success(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, discardLogger())

	body := `{"name":"Alex","email":"alex@example.com","age":38,"password":"freesolo"}`
	c, rec := newJSONContext(e, http.MethodPost, "/users", body)

	uc.EXPECT().
		RegisterUser(mock.Anything, mock.AnythingOfType("*usecase.RegisterUserInput")).
		Run(func(ctx context.Context, input *usecase.RegisterUserInput) {
			assert.Equal(t, "alex@example.com", input.Email)
		}).
		Return(&usecase.RegisterOutput{UserID: 42}, nil)

	err := h.RegisterUser(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_id":42`)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestUserHandler_RegisterUser_MissingFields(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, discardLogger())

	// No password: validation fails before the usecase is touched.
	body := `{"name":"Alex","email":"alex@example.com"}`
	c, _ := newJSONContext(e, http.MethodPost, "/users", body)

	err := h.RegisterUser(c)

	require.Error(t, err)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestUserHandler_UpdateUser_Success(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, discardLogger())

	body := `{
		"login": {"email":"alex@example.com","password":"freesolo"},
		"profile": {"name":"Alexander","email":"alexander@example.com","age":39}
	}`
	c, rec := newJSONContext(e, http.MethodPut, "/users/7", body)
	c.SetParamNames("id")
	c.SetParamValues("7")

	uc.EXPECT().
		UpdateUser(mock.Anything, int64(7), mock.AnythingOfType("*usecase.UpdateUserInput")).
		Return(nil)

	err := h.UpdateUser(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserHandler_UpdateUser_BadUserID(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, discardLogger())

	c, rec := newJSONContext(e, http.MethodPut, "/users/abc", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.UpdateUser(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_USER_ID")
}

func TestUserHandler_Authenticate_Success(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, discardLogger())

	body := `{"email":"alex@example.com","password":"freesolo"}`
	c, rec := newJSONContext(e, http.MethodPost, "/users/7/authenticate", body)
	c.SetParamNames("id")
	c.SetParamValues("7")

	uc.EXPECT().
		AuthenticateUser(mock.Anything, int64(7), mock.AnythingOfType("*usecase.LoginInput")).
		Return(&usecase.UserOutput{UserID: 7, Name: "Alex", Email: "alex@example.com", Age: 38}, nil)

	err := h.Authenticate(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"alex@example.com"`)
	assert.NotContains(t, rec.Body.String(), "password")
}
