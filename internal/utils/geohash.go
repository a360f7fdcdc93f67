package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/rumbus/shuttle/internal/pkg/models"
)

// GeohashPrecision is the geohash length stored with trip history points (about 1.2 m cells)
const GeohashPrecision uint = 9

// EncodeLocation converts a coordinate to a geohash string
func EncodeLocation(location models.Coordinate, precision uint) string {
	return geohash.EncodeWithPrecision(location.Lat, location.Lon, precision)
}

// DecodeGeohash converts a geohash string to the center of its cell
func DecodeGeohash(hash string) models.Coordinate {
	lat, lon := geohash.Decode(hash)
	return models.Coordinate{Lat: lat, Lon: lon}
}

// CalculateDistance calculates the distance between two points in kilometers using the Haversine formula
func CalculateDistance(point1, point2 models.Coordinate) float64 {
	// Earth's radius in kilometers
	const earthRadius = 6371.0

	lat1 := point1.Lat * math.Pi / 180.0
	lon1 := point1.Lon * math.Pi / 180.0
	lat2 := point2.Lat * math.Pi / 180.0
	lon2 := point2.Lon * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// PathDistance sums the haversine length of consecutive segments in kilometers
func PathDistance(points []models.Coordinate) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += CalculateDistance(points[i-1], points[i])
	}
	return total
}
