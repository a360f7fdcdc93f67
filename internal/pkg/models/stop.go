package models

// Stop is a registered shuttle stop. (Lat, Lon) is its identity.
type Stop struct {
	Lat  float64 `json:"lat" db:"lat"`
	Lon  float64 `json:"lon" db:"lon"`
	Name string  `json:"name" db:"name"`
}

// Coordinate returns the stop position
func (s *Stop) Coordinate() Coordinate {
	return Coordinate{Lat: s.Lat, Lon: s.Lon}
}

// CreateStopRequest is the body of POST /stops
type CreateStopRequest struct {
	Name string   `json:"name" validate:"required"`
	Lat  *float64 `json:"lat" validate:"required,latitude"`
	Lon  *float64 `json:"lon" validate:"required,longitude"`
}

// UpdateStopRequest is the body of PUT /stops/:lat/:lon
type UpdateStopRequest struct {
	Name string `json:"name" validate:"required"`
}
