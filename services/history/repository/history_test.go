package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/rumbus/shuttle/internal/pkg/constants"
	"github.com/rumbus/shuttle/internal/pkg/database"
	"github.com/rumbus/shuttle/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHistoryRepo(t *testing.T) (*HistoryRepo, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	repo := NewHistoryRepo(&database.RedisClient{Client: client}).(*HistoryRepo)
	return repo, mr
}

func geoPoint(lat, lon float64, ts time.Time) models.GeoPoint {
	accuracy, bearing := 4.0, 90.0
	return models.GeoPoint{Lat: &lat, Lon: &lon, Timestamp: &ts, Accuracy: &accuracy, Bearing: &bearing, Geohash: "de0x"}
}

func TestAppendAndGetGeoPoints(t *testing.T) {
	repo, mr := setupHistoryRepo(t)
	ctx := context.Background()
	ts := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	require.NoError(t, repo.AppendGeoPoints(ctx, "trip-42", []models.GeoPoint{geoPoint(18.2145, -67.14, ts)}))
	require.NoError(t, repo.AppendGeoPoints(ctx, "trip-42", []models.GeoPoint{geoPoint(18.2110, -67.141, ts.Add(time.Second))}))

	points, err := repo.GetGeoPoints(ctx, "trip-42")

	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, 18.2145, *points[0].Lat)
	assert.Equal(t, 18.2110, *points[1].Lat)
	assert.True(t, ts.Equal(*points[0].Timestamp))
	assert.Equal(t, "de0x", points[0].Geohash)

	key := "trip:history:trip-42"
	assert.True(t, mr.Exists(key))
	assert.Equal(t, constants.TripHistoryTTL, mr.TTL(key))
}

func TestAppendGeoPoints_EmptyIsNoop(t *testing.T) {
	repo, mr := setupHistoryRepo(t)

	require.NoError(t, repo.AppendGeoPoints(context.Background(), "trip-42", nil))
	assert.False(t, mr.Exists("trip:history:trip-42"))
}

func TestGetGeoPoints_UnknownTrip(t *testing.T) {
	repo, _ := setupHistoryRepo(t)

	points, err := repo.GetGeoPoints(context.Background(), "nope")

	require.NoError(t, err)
	assert.NotNil(t, points)
	assert.Empty(t, points)
}

func TestGetGeoPoints_CorruptEntry(t *testing.T) {
	repo, mr := setupHistoryRepo(t)
	_, err := mr.RPush("trip:history:trip-42", "{not json")
	require.NoError(t, err)

	_, err = repo.GetGeoPoints(context.Background(), "trip-42")

	assert.Error(t, err)
}

func TestHistoryRepo_StorageUnavailable(t *testing.T) {
	repo, mr := setupHistoryRepo(t)
	mr.Close()

	err := repo.AppendGeoPoints(context.Background(), "trip-42", []models.GeoPoint{geoPoint(1, 2, time.Now())})
	assert.ErrorIs(t, err, models.ErrStorageUnavailable)

	_, err = repo.GetGeoPoints(context.Background(), "trip-42")
	assert.ErrorIs(t, err, models.ErrStorageUnavailable)
}
