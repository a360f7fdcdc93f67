package constants

// WebSocket namespaces. Each namespace is served by its own hub.
const (
	NamespaceTrip  = "/socket/trip"
	NamespaceAdmin = "/socket/admin"
)

// WebSocket event types
const (
	EventInitialData = "initial_data"

	// Trip channel events
	EventLocationChanged = "location_changed"
	EventNearStop        = "near_stop"
)
