package stops

import (
	"context"

	"github.com/rumbus/shuttle/internal/pkg/models"
)

// StopUC defines the interface for the stop directory business logic
type StopUC interface {
	ListStops(ctx context.Context) ([]*models.Stop, error)
	GetStop(ctx context.Context, lat, lon float64) (*models.Stop, error)
	CreateStop(ctx context.Context, req *models.CreateStopRequest) (*models.Stop, error)
	UpdateStop(ctx context.Context, lat, lon float64, req *models.UpdateStopRequest) error
	DeleteStop(ctx context.Context, lat, lon float64) error
}
