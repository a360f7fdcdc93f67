package stops

import (
	"context"

	"github.com/rumbus/shuttle/internal/pkg/models"
)

// StopRepo defines the interface for stop data access operations
type StopRepo interface {
	// ListStops returns every stop in registration order
	ListStops(ctx context.Context) ([]*models.Stop, error)
	GetStop(ctx context.Context, lat, lon float64) (*models.Stop, error)
	CreateStop(ctx context.Context, stop *models.Stop) error
	UpdateStopName(ctx context.Context, lat, lon float64, name string) error
	DeleteStop(ctx context.Context, lat, lon float64) error
}
