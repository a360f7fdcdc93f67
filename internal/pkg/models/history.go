package models

import "time"

// GeoPoint is one recorded position of a trip
type GeoPoint struct {
	Lat       *float64   `json:"lat" validate:"required,latitude"`
	Lon       *float64   `json:"lon" validate:"required,longitude"`
	Timestamp *time.Time `json:"timestamp" validate:"required"`
	Accuracy  *float64   `json:"accuracy" validate:"required,gte=0"`
	Bearing   *float64   `json:"bearing" validate:"required,gte=0,lte=360"`
	Geohash   string     `json:"geohash,omitempty"`
}

// TripHistoryRequest is the body of POST /trips/:trip_id/history
type TripHistoryRequest struct {
	GeoPoints []GeoPoint `json:"geopoints" validate:"required,min=1,dive"`
}

// TripHistory is the recorded path of a trip
type TripHistory struct {
	TripID     string     `json:"trip_id"`
	GeoPoints  []GeoPoint `json:"geopoints"`
	DistanceKm float64    `json:"distance_km"`
}

// Coordinate returns the point position. Callers must only use it on validated points.
func (g *GeoPoint) Coordinate() Coordinate {
	return Coordinate{Lat: *g.Lat, Lon: *g.Lon}
}
