package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Counters(t *testing.T) {
	c := NewCollector()

	c.IncLocationEvent()
	c.IncLocationEvent()
	c.IncNearStop()
	c.IncEvaluationFailure(ReasonRouting)
	c.IncEvaluationFailure(ReasonRouting)
	c.IncEvaluationFailure(ReasonStorage)
	c.AddHistoryPoints(3)
	c.IncPublishError()
	c.IncInvalidFrame("/socket/trip")
	c.IncEvaluationFailure(ReasonOverloaded)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.LocationEvents))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.NearStopHits))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.EvaluationFailures.WithLabelValues(ReasonRouting)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.EvaluationFailures.WithLabelValues(ReasonStorage)))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.HistoryPoints))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.NATSPublishErrs))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.InvalidFrames.WithLabelValues("/socket/trip")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.EvaluationFailures.WithLabelValues(ReasonOverloaded)))
}

func TestCollector_SessionsPerNamespace(t *testing.T) {
	c := NewCollector()

	c.SessionOpened("/socket/trip")
	c.SessionOpened("/socket/trip")
	c.SessionOpened("/socket/admin")
	c.SessionClosed("/socket/trip")

	assert.Equal(t, 1.0, testutil.ToFloat64(c.ActiveSessions.WithLabelValues("/socket/trip")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.ActiveSessions.WithLabelValues("/socket/admin")))
}

func TestCollector_Handler(t *testing.T) {
	c := NewCollector()
	c.ObserveRoutingLatency(time.Now().Add(-20 * time.Millisecond))
	c.IncNearStop()

	srv := httptest.NewServer(c.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), "tracker_near_stop_total 1")
	assert.Contains(t, string(body), "tracker_routing_request_duration_seconds_count 1")
}

func TestCollector_NilIsNoop(t *testing.T) {
	var c *Collector

	assert.NotPanics(t, func() {
		c.IncLocationEvent()
		c.IncNearStop()
		c.IncEvaluationFailure(ReasonMalformed)
		c.ObserveRoutingLatency(time.Now())
		c.SessionOpened("/socket/trip")
		c.SessionClosed("/socket/trip")
		c.AddHistoryPoints(1)
		c.IncPublishError()
	})
}
