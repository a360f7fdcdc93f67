package history

import (
	"context"

	"github.com/rumbus/shuttle/internal/pkg/models"
)

// HistoryUC defines the trip history business logic
type HistoryUC interface {
	RecordLocation(ctx context.Context, event models.LocationEvent) error
	AddGeoPoints(ctx context.Context, tripID string, req *models.TripHistoryRequest) (int, error)
	GetTripHistory(ctx context.Context, tripID string) (*models.TripHistory, error)
}
