package tracking

import (
	"context"

	"github.com/rumbus/shuttle/internal/pkg/models"
)

// TrackingUC defines the live location evaluation logic
type TrackingUC interface {
	// EvaluateLocation returns the first stop within the proximity threshold of the
	// update, or nil when no stop qualifies
	EvaluateLocation(ctx context.Context, sessionID string, update *models.LocationUpdate) (*models.Stop, error)
}
