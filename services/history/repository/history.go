package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rumbus/shuttle/internal/pkg/constants"
	"github.com/rumbus/shuttle/internal/pkg/database"
	"github.com/rumbus/shuttle/internal/pkg/models"
	"github.com/rumbus/shuttle/services/history"
)

// HistoryRepo implements history.HistoryRepo on redis lists
type HistoryRepo struct {
	redisClient *database.RedisClient
}

// NewHistoryRepo creates a new trip history repository
func NewHistoryRepo(redisClient *database.RedisClient) history.HistoryRepo {
	return &HistoryRepo{redisClient: redisClient}
}

// AppendGeoPoints pushes the points to trip:history:{trip_id} and refreshes its TTL
func (r *HistoryRepo) AppendGeoPoints(ctx context.Context, tripID string, points []models.GeoPoint) error {
	if len(points) == 0 {
		return nil
	}

	values := make([]interface{}, 0, len(points))
	for _, p := range points {
		data, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("failed to marshal geopoint: %w", err)
		}
		values = append(values, data)
	}

	key := fmt.Sprintf(constants.KeyTripHistory, tripID)
	if err := r.redisClient.RPushWithTTL(ctx, key, constants.TripHistoryTTL, values...); err != nil {
		return fmt.Errorf("%w: failed to append trip history: %v", models.ErrStorageUnavailable, err)
	}

	return nil
}

// GetGeoPoints returns the recorded points of a trip in arrival order
func (r *HistoryRepo) GetGeoPoints(ctx context.Context, tripID string) ([]models.GeoPoint, error) {
	key := fmt.Sprintf(constants.KeyTripHistory, tripID)
	raw, err := r.redisClient.LRange(ctx, key, 0, -1)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read trip history: %v", models.ErrStorageUnavailable, err)
	}

	points := make([]models.GeoPoint, 0, len(raw))
	for _, item := range raw {
		var p models.GeoPoint
		if err := json.Unmarshal([]byte(item), &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal geopoint: %w", err)
		}
		points = append(points, p)
	}

	return points, nil
}
