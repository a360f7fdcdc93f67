package usecase

import (
	"context"
	"fmt"

	"github.com/rumbus/shuttle/internal/pkg/logger"
	"github.com/rumbus/shuttle/internal/pkg/metrics"
	"github.com/rumbus/shuttle/internal/pkg/models"
	nrpkg "github.com/rumbus/shuttle/internal/pkg/newrelic"
	"github.com/rumbus/shuttle/internal/utils"
	"github.com/rumbus/shuttle/services/history"
)

// HistoryUC implements history.HistoryUC
type HistoryUC struct {
	repo    history.HistoryRepo
	metrics *metrics.Collector
}

// NewHistoryUC creates a new trip history use case
func NewHistoryUC(repo history.HistoryRepo, m *metrics.Collector) history.HistoryUC {
	return &HistoryUC{
		repo:    repo,
		metrics: m,
	}
}

// RecordLocation appends one live location event to its trip
func (uc *HistoryUC) RecordLocation(ctx context.Context, event models.LocationEvent) error {
	if event.TripID == "" {
		return fmt.Errorf("%w: trip_id is required", models.ErrInvalidGeoPoint)
	}

	ts := event.Timestamp
	if ts.IsZero() {
		ts = models.Now()
	}
	lat, lon, accuracy, bearing := event.Lat, event.Lon, event.Accuracy, event.Bearing
	point := models.GeoPoint{
		Lat:       &lat,
		Lon:       &lon,
		Timestamp: &ts,
		Accuracy:  &accuracy,
		Bearing:   &bearing,
	}

	if _, err := uc.append(ctx, event.TripID, []models.GeoPoint{point}); err != nil {
		return err
	}
	return nil
}

// AddGeoPoints validates and appends a batch of points to a trip
func (uc *HistoryUC) AddGeoPoints(ctx context.Context, tripID string, req *models.TripHistoryRequest) (int, error) {
	if tripID == "" {
		return 0, fmt.Errorf("%w: trip_id is required", models.ErrInvalidGeoPoint)
	}
	if err := utils.ValidateStruct(req); err != nil {
		return 0, fmt.Errorf("%w: %v", models.ErrInvalidGeoPoint, err)
	}

	return uc.append(ctx, tripID, req.GeoPoints)
}

// GetTripHistory returns the recorded path of a trip with its length in km
func (uc *HistoryUC) GetTripHistory(ctx context.Context, tripID string) (*models.TripHistory, error) {
	points, err := uc.repo.GetGeoPoints(ctx, tripID)
	if err != nil {
		return nil, err
	}

	path := make([]models.Coordinate, 0, len(points))
	for i := range points {
		if points[i].Lat == nil || points[i].Lon == nil {
			continue
		}
		path = append(path, points[i].Coordinate())
	}

	return &models.TripHistory{
		TripID:     tripID,
		GeoPoints:  points,
		DistanceKm: utils.PathDistance(path),
	}, nil
}

func (uc *HistoryUC) append(ctx context.Context, tripID string, points []models.GeoPoint) (int, error) {
	for i := range points {
		if points[i].Lat == nil || points[i].Lon == nil {
			return 0, fmt.Errorf("%w: geopoint without coordinates", models.ErrInvalidGeoPoint)
		}
		points[i].Geohash = utils.EncodeLocation(points[i].Coordinate(), utils.GeohashPrecision)
	}

	err := nrpkg.WithSegment(ctx, "HistoryRepo.AppendGeoPoints", func() error {
		return uc.repo.AppendGeoPoints(ctx, tripID, points)
	})
	if err != nil {
		logger.WarnCtx(ctx, "Failed to append trip history",
			logger.String("trip_id", tripID),
			logger.Err(err))
		return 0, err
	}

	uc.metrics.AddHistoryPoints(len(points))
	return len(points), nil
}
