package models

import "time"

// Coordinate is a WGS84 point
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// LocationUpdate is the payload of a location_changed event sent by a tracking client.
// Near is a client-supplied hint used by test fixtures only; it never affects evaluation.
type LocationUpdate struct {
	Lat      *float64 `json:"lat" validate:"required,latitude"`
	Lon      *float64 `json:"lon" validate:"required,longitude"`
	Near     string   `json:"near,omitempty"`
	TripID   string   `json:"trip_id,omitempty"`
	Accuracy float64  `json:"accuracy,omitempty"`
	Bearing  float64  `json:"bearing,omitempty"`
}

// DropUnknownReadings zeroes accuracy and bearing values that devices use to mean
// "unknown" (negative, or a bearing outside [0, 360]). They never reject an update.
func (u *LocationUpdate) DropUnknownReadings() {
	if u.Accuracy < 0 {
		u.Accuracy = 0
	}
	if u.Bearing < 0 || u.Bearing > 360 {
		u.Bearing = 0
	}
}

// Coordinate returns the validated point of the update
func (u *LocationUpdate) Coordinate() Coordinate {
	return Coordinate{Lat: *u.Lat, Lon: *u.Lon}
}

// LocationEvent is published for every valid location update that belongs to a trip
type LocationEvent struct {
	SessionID string    `json:"session_id"`
	TripID    string    `json:"trip_id"`
	Lat       float64   `json:"lat"`
	Lon       float64   `json:"lon"`
	Accuracy  float64   `json:"accuracy"`
	Bearing   float64   `json:"bearing"`
	Timestamp time.Time `json:"timestamp"`
}
