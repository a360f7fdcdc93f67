package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Evaluation failure reasons
const (
	ReasonStorage   = "storage"
	ReasonRouting   = "routing"
	ReasonMalformed = "malformed"

	// dropped because the session already had too many evaluations in flight
	ReasonOverloaded = "overloaded"
)

// Collector holds the tracker metrics on a private registry.
// All methods are safe on a nil Collector so metrics can be disabled.
type Collector struct {
	reg *prometheus.Registry

	LocationEvents     prometheus.Counter
	NearStopHits       prometheus.Counter
	EvaluationFailures *prometheus.CounterVec // reason label
	RoutingLatency     prometheus.Histogram
	ActiveSessions     *prometheus.GaugeVec   // namespace label
	InvalidFrames      *prometheus.CounterVec // namespace label
	HistoryPoints      prometheus.Counter
	NATSPublishErrs    prometheus.Counter
}

// NewCollector registers the tracker metrics and the Go runtime collectors on a fresh registry
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		LocationEvents: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tracker_location_events_total",
			Help: "Total location_changed events received.",
		}),
		NearStopHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tracker_near_stop_total",
			Help: "Total near_stop notifications sent.",
		}),
		EvaluationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tracker_evaluation_failures_total",
			Help: "Location evaluations aborted, by reason.",
		}, []string{"reason"}),
		RoutingLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tracker_routing_request_duration_seconds",
			Help:    "Duration of distance table requests to the routing engine.",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
		}),
		ActiveSessions: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "tracker_active_sessions",
			Help: "Open live channel sessions per namespace.",
		}, []string{"namespace"}),
		InvalidFrames: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tracker_invalid_frames_total",
			Help: "Inbound frames ignored for bad format or unknown event, per namespace.",
		}, []string{"namespace"}),
		HistoryPoints: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tracker_history_points_appended_total",
			Help: "Total geopoints appended to trip histories.",
		}),
		NATSPublishErrs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tracker_nats_publish_errors_total",
			Help: "Total NATS publish errors.",
		}),
	}

	reg.MustRegister(
		c.LocationEvents, c.NearStopHits, c.EvaluationFailures,
		c.RoutingLatency, c.ActiveSessions, c.InvalidFrames, c.HistoryPoints, c.NATSPublishErrs,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return c
}

// Handler exposes the collector registry in the prometheus text format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{Registry: c.reg})
}

// Registry returns the underlying registry
func (c *Collector) Registry() *prometheus.Registry {
	return c.reg
}

// IncLocationEvent counts a received location_changed event
func (c *Collector) IncLocationEvent() {
	if c != nil {
		c.LocationEvents.Inc()
	}
}

// IncNearStop counts a proximity hit
func (c *Collector) IncNearStop() {
	if c != nil {
		c.NearStopHits.Inc()
	}
}

// IncEvaluationFailure counts an aborted evaluation under reason
func (c *Collector) IncEvaluationFailure(reason string) {
	if c != nil {
		c.EvaluationFailures.WithLabelValues(reason).Inc()
	}
}

// ObserveRoutingLatency records the time elapsed since start
func (c *Collector) ObserveRoutingLatency(start time.Time) {
	if c != nil {
		c.RoutingLatency.Observe(time.Since(start).Seconds())
	}
}

// SessionOpened increments the open sessions of namespace
func (c *Collector) SessionOpened(namespace string) {
	if c != nil {
		c.ActiveSessions.WithLabelValues(namespace).Inc()
	}
}

// SessionClosed decrements the open sessions of namespace
func (c *Collector) SessionClosed(namespace string) {
	if c != nil {
		c.ActiveSessions.WithLabelValues(namespace).Dec()
	}
}

// AddHistoryPoints counts n appended geopoints
func (c *Collector) AddHistoryPoints(n int) {
	if c != nil {
		c.HistoryPoints.Add(float64(n))
	}
}

// IncPublishError counts a failed NATS publish
func (c *Collector) IncPublishError() {
	if c != nil {
		c.NATSPublishErrs.Inc()
	}
}

// IncInvalidFrame counts an ignored inbound frame on namespace
func (c *Collector) IncInvalidFrame(namespace string) {
	if c != nil {
		c.InvalidFrames.WithLabelValues(namespace).Inc()
	}
}
