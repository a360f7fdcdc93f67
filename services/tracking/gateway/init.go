package gateway

import (
	"github.com/rumbus/shuttle/internal/pkg/metrics"
	"github.com/rumbus/shuttle/internal/pkg/models"
	natspkg "github.com/rumbus/shuttle/internal/pkg/nats"
	"github.com/rumbus/shuttle/services/tracking"
	gateway_nats "github.com/rumbus/shuttle/services/tracking/gateway/nats"
)

// TrackingGW combines the routing engine client and the NATS event publisher
type TrackingGW struct {
	natsGateway *gateway_nats.NATSGateway
	routing     *RoutingClient
}

// NewTrackingGW creates the unified tracking gateway
func NewTrackingGW(natsClient *natspkg.Client, osrm models.OSRMConfig, m *metrics.Collector) tracking.TrackingGW {
	return &TrackingGW{
		natsGateway: gateway_nats.NewNATSGateway(natsClient, m),
		routing:     NewRoutingClient(osrm, NewRoutingBreaker(), m),
	}
}
