package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ajlevin/csc365-final-project/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAPIKeyMiddleware(keys ...string) *APIKeyMiddleware {
	cfg := &config.Config{}
	cfg.API.Keys = keys
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewAPIKeyMiddleware(cfg, logger)
}

func invokeWithKey(t *testing.T, m *APIKeyMiddleware, key string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/users", nil)
	if key != "" {
		req.Header.Set(HeaderAPIKey, key)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	require.NoError(t, m.Require(next)(c))

	return rec
}

func TestAPIKeyMiddleware_ValidKey(t *testing.T) {
	m := newAPIKeyMiddleware("secret-one", "secret-two")

	rec := invokeWithKey(t, m, "secret-two")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPIKeyMiddleware_MissingKey(t *testing.T) {
	m := newAPIKeyMiddleware("secret-one")

	rec := invokeWithKey(t, m, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_API_KEY")
}

func TestAPIKeyMiddleware_InvalidKey(t *testing.T) {
	m := newAPIKeyMiddleware("secret-one")

	rec := invokeWithKey(t, m, "wrong")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_API_KEY")
}
