package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rumbus/shuttle/internal/pkg/circuitbreaker"
	httpclient "github.com/rumbus/shuttle/internal/pkg/http"
	"github.com/rumbus/shuttle/internal/pkg/metrics"
	"github.com/rumbus/shuttle/internal/pkg/models"
)

const (
	defaultProfile  = "driving"
	defaultTimeout  = 3 * time.Second
	maxResponseBody = 1 << 20
	osrmCodeOk      = "Ok"
)

type tableResponse struct {
	Code      string       `json:"code"`
	Message   string       `json:"message"`
	Distances [][]*float64 `json:"distances"`
}

// RoutingClient queries the OSRM table service for one-to-many road distances
type RoutingClient struct {
	client  *httpclient.Client
	profile string
	timeout time.Duration
	metrics *metrics.Collector
}

// NewRoutingClient creates an OSRM client. cb and m may be nil.
func NewRoutingClient(cfg models.OSRMConfig, cb *circuitbreaker.CircuitBreaker, m *metrics.Collector) *RoutingClient {
	timeout := defaultTimeout
	if cfg.TimeoutMs > 0 {
		timeout = time.Duration(cfg.TimeoutMs) * time.Millisecond
	}
	profile := cfg.Profile
	if profile == "" {
		profile = defaultProfile
	}

	client := httpclient.NewClient(httpclient.Config{BaseURL: cfg.BaseURL, Timeout: timeout})
	if cb != nil {
		client.WithCircuitBreaker(cb)
	}

	return &RoutingClient{
		client:  client,
		profile: profile,
		timeout: timeout,
		metrics: m,
	}
}

// NewRoutingBreaker returns the circuit breaker used in front of the routing engine.
// Cancelled evaluations are not held against the engine.
func NewRoutingBreaker() *circuitbreaker.CircuitBreaker {
	cfg := circuitbreaker.DefaultConfig("osrm")
	cfg.IsFailure = func(err error) bool {
		return err != nil && !errors.Is(err, context.Canceled)
	}
	return circuitbreaker.New(cfg, nil)
}

// Distances returns distances[0][1..] of the table for origin followed by destinations
func (r *RoutingClient) Distances(ctx context.Context, origin models.Coordinate, destinations []models.Coordinate) ([]float64, error) {
	if len(destinations) == 0 {
		return []float64{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	coords := make([]string, 0, len(destinations)+1)
	coords = append(coords, formatCoordinate(origin))
	for _, d := range destinations {
		coords = append(coords, formatCoordinate(d))
	}

	path := fmt.Sprintf("/table/v1/%s/%s", r.profile, strings.Join(coords, ";"))
	query := url.Values{}
	query.Set("sources", "0")
	query.Set("annotations", "distance")

	start := time.Now()
	resp, err := r.client.Get(ctx, path, query)
	r.metrics.ObserveRoutingLatency(start)
	if err != nil {
		if httpErr, ok := httpclient.IsHTTPError(err); ok {
			return nil, &models.RoutingServiceError{StatusCode: httpErr.StatusCode, Detail: httpErr.Message, Err: err}
		}
		if errors.Is(err, circuitbreaker.ErrCircuitBreakerOpen) || errors.Is(err, circuitbreaker.ErrTooManyRequests) {
			return nil, &models.RoutingServiceError{Detail: "routing engine temporarily disabled", Err: err}
		}
		return nil, &models.RoutingServiceError{Detail: "request failed", Err: err}
	}
	defer resp.Body.Close()

	var table tableResponse
	decodeErr := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBody)).Decode(&table)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		detail := table.Message
		if detail == "" {
			detail = http.StatusText(resp.StatusCode)
		}
		return nil, &models.RoutingServiceError{StatusCode: resp.StatusCode, Detail: detail}
	}
	if decodeErr != nil {
		return nil, &models.RoutingServiceError{Detail: "malformed response", Err: decodeErr}
	}
	if table.Code != osrmCodeOk {
		return nil, &models.RoutingServiceError{Detail: fmt.Sprintf("%s: %s", table.Code, table.Message)}
	}
	if len(table.Distances) == 0 || len(table.Distances[0]) < len(destinations)+1 {
		return nil, &models.RoutingServiceError{Detail: "distance matrix shorter than requested"}
	}

	row := table.Distances[0][1 : len(destinations)+1]
	result := make([]float64, len(row))
	for i, cell := range row {
		if cell == nil {
			result[i] = math.Inf(1)
			continue
		}
		result[i] = *cell
	}

	return result, nil
}

// formatCoordinate renders a point the way OSRM expects it: lon,lat
func formatCoordinate(c models.Coordinate) string {
	return strconv.FormatFloat(c.Lon, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lat, 'f', -1, 64)
}
