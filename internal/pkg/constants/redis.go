package constants

import "time"

// Redis key formats
const (
	KeyTripHistory = "trip:history:%s" // Format: trip:history:{trip_id}
)

// TripHistoryTTL is how long recorded geopoints are kept after the last append
const TripHistoryTTL = 7 * 24 * time.Hour
