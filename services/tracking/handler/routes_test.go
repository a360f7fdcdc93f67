package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	gorilla "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rumbus/shuttle/internal/pkg/constants"
	jwtpkg "github.com/rumbus/shuttle/internal/pkg/jwt"
	"github.com/rumbus/shuttle/internal/pkg/metrics"
	"github.com/rumbus/shuttle/internal/pkg/models"
	"github.com/rumbus/shuttle/services/tracking/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHandler(t *testing.T, secret string) (*httptest.Server, *Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	cfg := &models.Config{JWT: models.JWTConfig{Secret: secret, Issuer: "rumbus"}}
	h := NewHandler(mocks.NewMockTrackingUC(ctrl), cfg, metrics.NewCollector())

	e := echo.New()
	h.RegisterRoutes(e)
	srv := httptest.NewServer(e)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = h.Close(ctx)
		srv.Close()
	})
	return srv, h
}

func wsURL(srv *httptest.Server, path string) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + path
}

func TestRegisterRoutes_AdminRequiresToken(t *testing.T) {
	srv, _ := startHandler(t, "secret")

	_, resp, err := gorilla.DefaultDialer.Dial(wsURL(srv, constants.NamespaceAdmin), nil)

	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRegisterRoutes_AdminRejectsNonAdminRole(t *testing.T) {
	cfg := models.JWTConfig{Secret: "secret", Issuer: "rumbus"}
	srv, _ := startHandler(t, cfg.Secret)

	token, _, err := jwtpkg.GenerateToken("driver-1", "driver", cfg, time.Minute)
	require.NoError(t, err)

	_, resp, err := gorilla.DefaultDialer.Dial(wsURL(srv, constants.NamespaceAdmin)+"?token="+token, nil)

	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRegisterRoutes_AdminWithToken(t *testing.T) {
	cfg := models.JWTConfig{Secret: "secret", Issuer: "rumbus"}
	srv, _ := startHandler(t, cfg.Secret)

	token, _, err := jwtpkg.GenerateToken("ops-1", jwtpkg.RoleAdmin, cfg, time.Minute)
	require.NoError(t, err)

	conn, _, err := gorilla.DefaultDialer.Dial(wsURL(srv, constants.NamespaceAdmin)+"?token="+token, nil)
	require.NoError(t, err)
	defer conn.Close()

	var msg models.WSMessage
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, constants.EventInitialData, msg.Event)
}

func TestRegisterRoutes_TripIsPublic(t *testing.T) {
	srv, _ := startHandler(t, "secret")

	conn, _, err := gorilla.DefaultDialer.Dial(wsURL(srv, constants.NamespaceTrip), nil)
	require.NoError(t, err)
	defer conn.Close()

	var msg models.WSMessage
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, constants.EventInitialData, msg.Event)
}
