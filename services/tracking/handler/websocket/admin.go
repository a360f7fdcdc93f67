package websocket

import (
	"github.com/rumbus/shuttle/internal/pkg/health"
	"github.com/rumbus/shuttle/internal/pkg/logger"
	ws "github.com/rumbus/shuttle/internal/pkg/websocket"
)

// AdminHandler serves the administrative namespace
type AdminHandler struct {
	hostname string
}

// NewAdminHandler creates the admin namespace handler
func NewAdminHandler() *AdminHandler {
	return &AdminHandler{hostname: health.Hostname()}
}

// Register wires the handler into the admin hub
func (h *AdminHandler) Register(hub *ws.Hub) {
	hub.OnOpen(func(s *ws.Session) {
		logger.Info("Admin client connected",
			logger.String("session_id", s.ID()),
			logger.Any("subject", s.Get("subject")))
		sendInitialData(s, h.hostname)
	})
}
