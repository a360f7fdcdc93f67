package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	ctxpkg "github.com/rumbus/shuttle/internal/pkg/context"
	jwtpkg "github.com/rumbus/shuttle/internal/pkg/jwt"
	"github.com/rumbus/shuttle/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	e := echo.New()
	var seen string
	handler := RequestIDMiddleware()(func(c echo.Context) error {
		seen = ctxpkg.GetRequestID(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})

	t.Run("propagates incoming header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderXRequestID, "req-abc")
		rec := httptest.NewRecorder()

		require.NoError(t, handler(e.NewContext(req, rec)))
		assert.Equal(t, "req-abc", seen)
		assert.Equal(t, "req-abc", rec.Header().Get(echo.HeaderXRequestID))
	})

	t.Run("generates when missing", func(t *testing.T) {
		rec := httptest.NewRecorder()

		require.NoError(t, handler(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)))
		_, err := uuid.Parse(seen)
		assert.NoError(t, err)
		assert.Equal(t, seen, rec.Header().Get(echo.HeaderXRequestID))
	})
}

func TestJWTAuthMiddleware(t *testing.T) {
	cfg := models.JWTConfig{Secret: "admin-secret", Issuer: "rumbus"}
	adminToken, _, err := jwtpkg.GenerateToken("dispatcher-1", jwtpkg.RoleAdmin, cfg, time.Hour)
	require.NoError(t, err)
	driverToken, _, err := jwtpkg.GenerateToken("driver-1", "driver", cfg, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		query  string
		status int
	}{
		{"missing token", "", "", http.StatusUnauthorized},
		{"bad format", "Token " + adminToken, "", http.StatusUnauthorized},
		{"invalid token", "Bearer nope", "", http.StatusUnauthorized},
		{"wrong role", "Bearer " + driverToken, "", http.StatusForbidden},
		{"header token", "Bearer " + adminToken, "", http.StatusOK},
		{"query token", "", adminToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.GET("/socket/admin", func(c echo.Context) error {
				assert.Equal(t, "dispatcher-1", c.Get("subject"))
				return c.NoContent(http.StatusOK)
			}, JWTAuthMiddleware(cfg))

			target := "/socket/admin"
			if tt.query != "" {
				target += "?token=" + tt.query
			}
			req := httptest.NewRequest(http.MethodGet, target, nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
