package middleware

import (
	"crypto/subtle"
	"log/slog"

	"github.com/ajlevin/csc365-final-project/config"
	"github.com/ajlevin/csc365-final-project/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HeaderAPIKey is the header carrying the caller's API key.
const HeaderAPIKey = "X-API-Key"

// APIKeyMiddleware gates mutating endpoints behind a static API key.
// Read-only endpoints are registered without it.
type APIKeyMiddleware struct {
	keys   []string
	logger *slog.Logger
}

// NewAPIKeyMiddleware creates a new API key middleware from the configured
// key list.
func NewAPIKeyMiddleware(cfg *config.Config, logger *slog.Logger) *APIKeyMiddleware {
	return &APIKeyMiddleware{
		keys:   cfg.API.Keys,
		logger: logger,
	}
}

// Require rejects requests whose X-API-Key header matches none of the
// configured keys. The comparison is constant-time per key.
func (m *APIKeyMiddleware) Require(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		provided := c.Request().Header.Get(HeaderAPIKey)
		if provided == "" {
			return response.Unauthorized(c, "MISSING_API_KEY", "API key required")
		}

		for _, key := range m.keys {
			if subtle.ConstantTimeCompare([]byte(provided), []byte(key)) == 1 {
				return next(c)
			}
		}

		m.logger.Warn("Rejected request with invalid API key",
			slog.String("path", c.Request().URL.Path),
			slog.String("remote_ip", c.RealIP()),
		)

		return response.Unauthorized(c, "INVALID_API_KEY", "Invalid API key")
	}
}
