package usecase

import (
	"context"
	"time"

	"github.com/rumbus/shuttle/internal/pkg/logger"
	"github.com/rumbus/shuttle/internal/pkg/metrics"
	"github.com/rumbus/shuttle/internal/pkg/models"
	"github.com/rumbus/shuttle/services/stops"
	"github.com/rumbus/shuttle/services/tracking"
)

// DefaultProximityThreshold is the stop proximity radius in metres
const DefaultProximityThreshold = 10.0

// TrackingUC implements tracking.TrackingUC
type TrackingUC struct {
	stopUC    stops.StopUC
	gateway   tracking.TrackingGW
	metrics   *metrics.Collector
	threshold float64
	now       func() time.Time
}

// NewTrackingUC creates a new tracking use case
func NewTrackingUC(stopUC stops.StopUC, gateway tracking.TrackingGW, cfg models.TrackingConfig, m *metrics.Collector) tracking.TrackingUC {
	threshold := cfg.ProximityThresholdM
	if threshold <= 0 {
		threshold = DefaultProximityThreshold
	}

	return &TrackingUC{
		stopUC:    stopUC,
		gateway:   gateway,
		metrics:   m,
		threshold: threshold,
		now:       models.Now,
	}
}

// EvaluateLocation reads the stop directory, asks the routing engine for the road distance
// to every stop and returns the first stop closer than the threshold.
// Updates that carry a trip id are also published for the history recorder.
func (uc *TrackingUC) EvaluateLocation(ctx context.Context, sessionID string, update *models.LocationUpdate) (*models.Stop, error) {
	position := update.Coordinate()

	if update.TripID != "" {
		// fire-and-forget: failures are logged by the gateway
		_ = uc.gateway.PublishLocation(ctx, models.LocationEvent{
			SessionID: sessionID,
			TripID:    update.TripID,
			Lat:       position.Lat,
			Lon:       position.Lon,
			Accuracy:  update.Accuracy,
			Bearing:   update.Bearing,
			Timestamp: uc.now(),
		})
	}

	directory, err := uc.stopUC.ListStops(ctx)
	if err != nil {
		uc.metrics.IncEvaluationFailure(metrics.ReasonStorage)
		return nil, err
	}
	if len(directory) == 0 {
		return nil, nil
	}

	destinations := make([]models.Coordinate, len(directory))
	for i, stop := range directory {
		destinations[i] = stop.Coordinate()
	}

	distances, err := uc.gateway.Distances(ctx, position, destinations)
	if err != nil {
		uc.metrics.IncEvaluationFailure(metrics.ReasonRouting)
		return nil, err
	}

	nearest := NearestWithinThreshold(distances, directory, uc.threshold)
	if nearest == nil {
		return nil, nil
	}

	uc.metrics.IncNearStop()
	logger.DebugCtx(ctx, "Vehicle near stop",
		logger.String("stop", nearest.Name),
		logger.Point("position", position.Lat, position.Lon))

	return nearest, nil
}
