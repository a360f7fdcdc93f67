package constants

// NATS Subjects
const (
	SubjectVehicleLocation = "vehicle.location.received"
)

// NATS queue groups
const (
	QueueTripHistory = "trip-history"
)
