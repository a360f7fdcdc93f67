package gateway

import (
	"context"

	"github.com/rumbus/shuttle/internal/pkg/models"
)

// Distances forwards to the OSRM routing client
func (g *TrackingGW) Distances(ctx context.Context, origin models.Coordinate, destinations []models.Coordinate) ([]float64, error) {
	return g.routing.Distances(ctx, origin, destinations)
}

// PublishLocation forwards to the NATS gateway implementation
func (g *TrackingGW) PublishLocation(ctx context.Context, event models.LocationEvent) error {
	return g.natsGateway.PublishLocation(ctx, event)
}
