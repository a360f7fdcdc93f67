package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rumbus/shuttle/internal/pkg/logger"
	"github.com/rumbus/shuttle/internal/pkg/metrics"
	"github.com/rumbus/shuttle/internal/pkg/models"
)

const (
	defaultSendQueueSize = 32
	defaultMaxInflight   = 4
)

// EventHandler handles one inbound event of a session
type EventHandler func(s *Session, data json.RawMessage)

// HubOptions configures a Hub
type HubOptions struct {
	SendQueueSize int
	Metrics       *metrics.Collector

	// MaxInflight caps the functions a session may run concurrently with Session.Go
	MaxInflight int

	// CheckOrigin defaults to accepting every origin
	CheckOrigin func(r *http.Request) bool
}

// Hub owns the sessions of one namespace. Sends never leave the hub.
type Hub struct {
	namespace   string
	upgrader    websocket.Upgrader
	queueSize   int
	maxInflight int
	metrics     *metrics.Collector

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.RWMutex
	sessions map[string]*Session
	handlers map[string]EventHandler
	onOpen   []func(s *Session)
	onClose  []func(s *Session)
}

// NewHub creates the hub for namespace
func NewHub(namespace string, opts HubOptions) *Hub {
	if opts.SendQueueSize <= 0 {
		opts.SendQueueSize = defaultSendQueueSize
	}
	if opts.MaxInflight <= 0 {
		opts.MaxInflight = defaultMaxInflight
	}
	if opts.CheckOrigin == nil {
		opts.CheckOrigin = func(r *http.Request) bool { return true }
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		namespace:   namespace,
		upgrader:    websocket.Upgrader{CheckOrigin: opts.CheckOrigin},
		queueSize:   opts.SendQueueSize,
		maxInflight: opts.MaxInflight,
		metrics:     opts.Metrics,
		ctx:         ctx,
		cancel:      cancel,
		sessions:    make(map[string]*Session),
		handlers:    make(map[string]EventHandler),
	}
}

// Namespace returns the hub namespace
func (h *Hub) Namespace() string {
	return h.namespace
}

// Handle registers the handler for an inbound event name
func (h *Hub) Handle(event string, handler EventHandler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handlers[event] = handler
}

// OnOpen registers a callback run once a session is open
func (h *Hub) OnOpen(fn func(s *Session)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onOpen = append(h.onOpen, fn)
}

// OnClose registers a callback run after a session is closed
func (h *Hub) OnClose(fn func(s *Session)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onClose = append(h.onClose, fn)
}

// ServeEcho upgrades the request and serves the session until it closes
func (h *Hub) ServeEcho(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// the upgrader has already written the HTTP error
		logger.Warn("WebSocket upgrade failed",
			logger.String("namespace", h.namespace),
			logger.Err(err))
		return nil
	}

	s := newSession(h.ctx, uuid.New().String(), h.namespace, conn, h.queueSize, h.maxInflight)
	if subject, ok := c.Get("subject").(string); ok {
		s.Set("subject", subject)
	}

	h.register(s)
	defer h.unregister(s)

	go s.writePump()
	s.open()

	logger.Info("WebSocket client connected",
		logger.String("namespace", h.namespace),
		logger.String("session_id", s.ID()),
		logger.String("remote_addr", c.RealIP()))

	h.mu.RLock()
	onOpen := append([]func(*Session){}, h.onOpen...)
	h.mu.RUnlock()
	for _, fn := range onOpen {
		fn(s)
	}

	s.readPump(func(raw []byte) { h.dispatch(s, raw) })

	logger.Info("WebSocket client disconnected",
		logger.String("namespace", h.namespace),
		logger.String("session_id", s.ID()))

	return nil
}

func (h *Hub) dispatch(s *Session, raw []byte) {
	var msg models.WSMessage
	if err := json.Unmarshal(raw, &msg); err != nil || msg.Event == "" {
		h.metrics.IncInvalidFrame(h.namespace)
		logger.DebugCtx(s.Context(), "Ignoring malformed frame")
		return
	}

	h.mu.RLock()
	handler, ok := h.handlers[msg.Event]
	h.mu.RUnlock()

	if !ok {
		h.metrics.IncInvalidFrame(h.namespace)
		logger.DebugCtx(s.Context(), "Ignoring unknown event", logger.String("event", msg.Event))
		return
	}

	handler(s, msg.Data)
}

func (h *Hub) register(s *Session) {
	h.mu.Lock()
	h.sessions[s.ID()] = s
	h.mu.Unlock()
	h.metrics.SessionOpened(h.namespace)
}

func (h *Hub) unregister(s *Session) {
	s.Close()

	h.mu.Lock()
	delete(h.sessions, s.ID())
	onClose := append([]func(*Session){}, h.onClose...)
	h.mu.Unlock()
	h.metrics.SessionClosed(h.namespace)

	for _, fn := range onClose {
		fn(s)
	}
}

// Count returns the number of sessions in the hub
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// Close closes every session and waits for in-flight work until ctx expires
func (h *Hub) Close(ctx context.Context) error {
	h.cancel()

	h.mu.RLock()
	sessions := make([]*Session, 0, len(h.sessions))
	for _, s := range h.sessions {
		sessions = append(sessions, s)
	}
	h.mu.RUnlock()

	for _, s := range sessions {
		s.Close()
	}

	done := make(chan struct{})
	go func() {
		for _, s := range sessions {
			s.Wait()
		}
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
