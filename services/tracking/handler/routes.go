package handler

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/rumbus/shuttle/internal/pkg/constants"
	"github.com/rumbus/shuttle/internal/pkg/logger"
	"github.com/rumbus/shuttle/internal/pkg/metrics"
	"github.com/rumbus/shuttle/internal/pkg/middleware"
	"github.com/rumbus/shuttle/internal/pkg/models"
	ws "github.com/rumbus/shuttle/internal/pkg/websocket"
	"github.com/rumbus/shuttle/services/tracking"
	"github.com/rumbus/shuttle/services/tracking/handler/websocket"
)

// Handler coordinates the live channel namespaces
type Handler struct {
	tripHub      *ws.Hub
	adminHub     *ws.Hub
	tripHandler  *websocket.TripHandler
	adminHandler *websocket.AdminHandler
	jwtCfg       models.JWTConfig
}

// NewHandler creates both namespaces and wires their handlers
func NewHandler(trackingUC tracking.TrackingUC, cfg *models.Config, m *metrics.Collector) *Handler {
	opts := ws.HubOptions{
		SendQueueSize: cfg.Tracking.SendQueueSize,
		MaxInflight:   cfg.Tracking.MaxInflight,
		Metrics:       m,
	}

	h := &Handler{
		tripHub:      ws.NewHub(constants.NamespaceTrip, opts),
		adminHub:     ws.NewHub(constants.NamespaceAdmin, opts),
		tripHandler:  websocket.NewTripHandler(trackingUC, cfg.Tracking, m),
		adminHandler: websocket.NewAdminHandler(),
		jwtCfg:       cfg.JWT,
	}
	h.tripHandler.Register(h.tripHub)
	h.adminHandler.Register(h.adminHub)

	return h
}

// RegisterRoutes mounts the two namespaces. The admin namespace requires an admin
// token unless no JWT secret is configured.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET(constants.NamespaceTrip, h.tripHub.ServeEcho)

	if h.jwtCfg.Secret == "" {
		logger.Warn("JWT secret not configured, admin channel is unauthenticated")
		e.GET(constants.NamespaceAdmin, h.adminHub.ServeEcho)
		return
	}
	e.GET(constants.NamespaceAdmin, h.adminHub.ServeEcho, middleware.JWTAuthMiddleware(h.jwtCfg))
}

// Close disconnects every session in both namespaces
func (h *Handler) Close(ctx context.Context) error {
	if err := h.tripHub.Close(ctx); err != nil {
		return err
	}
	return h.adminHub.Close(ctx)
}
