package tracking

import (
	"context"

	"github.com/rumbus/shuttle/internal/pkg/models"
)

// TrackingGW defines the outbound calls of the tracking core
type TrackingGW interface {
	// Distances returns the road distance in metres from origin to each destination, in
	// destination order. Unroutable pairs are +Inf.
	Distances(ctx context.Context, origin models.Coordinate, destinations []models.Coordinate) ([]float64, error)
	// PublishLocation hands a trip location to the history recorder
	PublishLocation(ctx context.Context, event models.LocationEvent) error
}
