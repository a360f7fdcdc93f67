package history

import (
	"context"

	"github.com/rumbus/shuttle/internal/pkg/models"
)

// HistoryRepo defines the interface for trip history storage
type HistoryRepo interface {
	// AppendGeoPoints adds points to the end of the trip's recorded path
	AppendGeoPoints(ctx context.Context, tripID string, points []models.GeoPoint) error
	GetGeoPoints(ctx context.Context, tripID string) ([]models.GeoPoint, error)
}
