package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rumbus/shuttle/internal/pkg/constants"
	"github.com/rumbus/shuttle/internal/pkg/logger"
	"github.com/rumbus/shuttle/internal/pkg/models"
	natspkg "github.com/rumbus/shuttle/internal/pkg/nats"
	nrpkg "github.com/rumbus/shuttle/internal/pkg/newrelic"
	"github.com/rumbus/shuttle/services/history"
)

// LocationHandler records live location events into trip histories
type LocationHandler struct {
	historyUC  history.HistoryUC
	natsClient *natspkg.Client
	nrApp      *newrelic.Application
	subs       []*nats.Subscription
}

// NewLocationHandler creates a new history NATS handler
func NewLocationHandler(historyUC history.HistoryUC, client *natspkg.Client, nrApp *newrelic.Application) *LocationHandler {
	return &LocationHandler{
		historyUC:  historyUC,
		natsClient: client,
		nrApp:      nrApp,
		subs:       make([]*nats.Subscription, 0),
	}
}

// InitNATSConsumers joins the trip-history queue group so each event is recorded once
// across tracker instances
func (h *LocationHandler) InitNATSConsumers() error {
	sub, err := h.natsClient.Subscribe(constants.SubjectVehicleLocation, constants.QueueTripHistory, h.handleLocation)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", constants.SubjectVehicleLocation, err)
	}
	h.subs = append(h.subs, sub)

	logger.Info("Subscribed to location events",
		logger.String("subject", constants.SubjectVehicleLocation),
		logger.String("queue_group", constants.QueueTripHistory))
	return nil
}

// Close removes the subscriptions
func (h *LocationHandler) Close() {
	for _, sub := range h.subs {
		_ = sub.Unsubscribe()
	}
	h.subs = nil
}

func (h *LocationHandler) handleLocation(data []byte) error {
	ctx, end := nrpkg.StartBackgroundTransaction(context.Background(), h.nrApp, "nats/"+constants.SubjectVehicleLocation)
	defer end()

	var event models.LocationEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to unmarshal location event: %w", err)
	}

	if err := h.historyUC.RecordLocation(ctx, event); err != nil {
		nrpkg.NoticeError(ctx, err)
		return fmt.Errorf("failed to record location for trip %s: %w", event.TripID, err)
	}

	return nil
}
