package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rumbus/shuttle/internal/pkg/constants"
	"github.com/rumbus/shuttle/internal/pkg/health"
	"github.com/rumbus/shuttle/internal/pkg/logger"
	"github.com/rumbus/shuttle/internal/pkg/metrics"
	"github.com/rumbus/shuttle/internal/pkg/models"
	ws "github.com/rumbus/shuttle/internal/pkg/websocket"
	"github.com/rumbus/shuttle/internal/utils"
	"github.com/rumbus/shuttle/services/tracking"
)

const defaultEvaluationTimeout = 5 * time.Second

// client is the part of a session the handlers talk to
type client interface {
	ID() string
	Send(event string, data interface{}) error
	Go(fn func(ctx context.Context)) bool
}

// NearStopMessage is the payload of near_stop
type NearStopMessage struct {
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Name string  `json:"name"`
}

// TripHandler serves the tracking namespace
type TripHandler struct {
	trackingUC  tracking.TrackingUC
	metrics     *metrics.Collector
	evalTimeout time.Duration
	hostname    string
}

// NewTripHandler creates the tracking namespace handler
func NewTripHandler(trackingUC tracking.TrackingUC, cfg models.TrackingConfig, m *metrics.Collector) *TripHandler {
	timeout := defaultEvaluationTimeout
	if cfg.EvaluationTimeoutMs > 0 {
		timeout = time.Duration(cfg.EvaluationTimeoutMs) * time.Millisecond
	}

	return &TripHandler{
		trackingUC:  trackingUC,
		metrics:     m,
		evalTimeout: timeout,
		hostname:    health.Hostname(),
	}
}

// Register wires the handler into the tracking hub
func (h *TripHandler) Register(hub *ws.Hub) {
	hub.OnOpen(func(s *ws.Session) { h.sendInitialData(s) })
	hub.Handle(constants.EventLocationChanged, func(s *ws.Session, data json.RawMessage) {
		h.handleLocationChanged(s, data)
	})
}

func (h *TripHandler) sendInitialData(c client) {
	sendInitialData(c, h.hostname)
}

func sendInitialData(c client, hostname string) {
	if err := c.Send(constants.EventInitialData, models.InitialData{ServerHostname: hostname}); err != nil {
		logger.Warn("Failed to send initial data",
			logger.String("session_id", c.ID()),
			logger.Err(err))
	}
}

// handleLocationChanged validates the update and evaluates it off the read loop.
// Rejected updates are only logged and counted; the client never gets an error event.
func (h *TripHandler) handleLocationChanged(c client, data json.RawMessage) {
	h.metrics.IncLocationEvent()

	update, err := parseLocationUpdate(data)
	if err != nil {
		h.metrics.IncEvaluationFailure(metrics.ReasonMalformed)
		logger.Debug("Rejected location update",
			logger.String("session_id", c.ID()),
			logger.Err(err))
		return
	}

	started := c.Go(func(ctx context.Context) {
		h.evaluate(ctx, c, update)
	})
	if !started {
		h.metrics.IncEvaluationFailure(metrics.ReasonOverloaded)
		logger.Debug("Dropped location update",
			logger.String("session_id", c.ID()))
	}
}

func (h *TripHandler) evaluate(sessionCtx context.Context, c client, update *models.LocationUpdate) {
	ctx, cancel := context.WithTimeout(sessionCtx, h.evalTimeout)
	defer cancel()

	stop, err := h.trackingUC.EvaluateLocation(ctx, c.ID(), update)

	// the session went away while evaluating
	if sessionCtx.Err() != nil {
		return
	}

	if err != nil {
		logger.WarnCtx(ctx, "Location evaluation failed",
			logger.Point("position", *update.Lat, *update.Lon),
			logger.Err(err))
		return
	}
	if stop == nil {
		return
	}

	msg := NearStopMessage{Lat: stop.Lat, Lon: stop.Lon, Name: stop.Name}
	if err := c.Send(constants.EventNearStop, msg); err != nil && !errors.Is(err, ws.ErrSessionClosed) {
		logger.WarnCtx(ctx, "Failed to send near_stop", logger.Err(err))
	}
}

func parseLocationUpdate(data json.RawMessage) (*models.LocationUpdate, error) {
	var update models.LocationUpdate
	if err := json.Unmarshal(data, &update); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrMalformedLocation, err)
	}
	if err := utils.ValidateStruct(&update); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrMalformedLocation, err)
	}
	update.DropUnknownReadings()
	return &update, nil
}
