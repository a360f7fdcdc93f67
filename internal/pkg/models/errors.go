package models

import (
	"errors"
	"fmt"
)

var (
	// ErrStorageUnavailable is returned when the backing store cannot be reached
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrRoutingService is matched by every RoutingServiceError
	ErrRoutingService = errors.New("routing service error")
	// ErrMalformedLocation is returned for location payloads without numeric, in-range lat/lon
	ErrMalformedLocation = errors.New("malformed location")
	// ErrStopNotFound is returned when no stop exists at the given coordinates
	ErrStopNotFound = errors.New("stop not found")
	// ErrStopConflict is returned when a stop already exists at the given coordinates
	ErrStopConflict = errors.New("stop already exists")
	// ErrInvalidStop is returned for stop bodies with a missing or blank field
	ErrInvalidStop = errors.New("invalid stop")
	// ErrInvalidGeoPoint is returned for trip history points with a missing or out-of-range field
	ErrInvalidGeoPoint = errors.New("invalid geopoint")
)

// RoutingServiceError describes a failed round-trip to the routing engine
type RoutingServiceError struct {
	StatusCode int
	Detail     string
	Err        error
}

func (e *RoutingServiceError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("routing service error (status %d): %s", e.StatusCode, e.Detail)
	}
	if e.Err != nil {
		return fmt.Sprintf("routing service error: %s: %v", e.Detail, e.Err)
	}
	return fmt.Sprintf("routing service error: %s", e.Detail)
}

func (e *RoutingServiceError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrRoutingService) hold for any RoutingServiceError
func (e *RoutingServiceError) Is(target error) bool {
	return target == ErrRoutingService
}
