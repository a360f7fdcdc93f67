package nats

import (
	"context"

	"github.com/rumbus/shuttle/internal/pkg/constants"
	"github.com/rumbus/shuttle/internal/pkg/logger"
	"github.com/rumbus/shuttle/internal/pkg/metrics"
	"github.com/rumbus/shuttle/internal/pkg/models"
	natspkg "github.com/rumbus/shuttle/internal/pkg/nats"
)

// NATSGateway publishes tracking events for sibling consumers
type NATSGateway struct {
	natsClient *natspkg.Client
	metrics    *metrics.Collector
}

// NewNATSGateway creates a new NATS gateway instance
func NewNATSGateway(client *natspkg.Client, m *metrics.Collector) *NATSGateway {
	return &NATSGateway{
		natsClient: client,
		metrics:    m,
	}
}

// PublishLocation publishes a location event to vehicle.location.received
func (g *NATSGateway) PublishLocation(ctx context.Context, event models.LocationEvent) error {
	return g.publish(ctx, constants.SubjectVehicleLocation, event)
}

func (g *NATSGateway) publish(ctx context.Context, subject string, event interface{}) error {
	if err := g.natsClient.PublishJSON(subject, event); err != nil {
		g.metrics.IncPublishError()
		logger.WarnCtx(ctx, "Failed to publish event",
			logger.String("subject", subject),
			logger.Err(err))
		return err
	}
	return nil
}
