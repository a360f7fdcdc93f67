package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rumbus/shuttle/internal/pkg/circuitbreaker"
	nrpkg "github.com/rumbus/shuttle/internal/pkg/newrelic"
)

// maxErrorBody bounds how much of a failed response body is kept in HTTPError
const maxErrorBody = 512

// Config holds the upstream service endpoint configuration
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client is a generic HTTP client for communicating with an upstream service
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *circuitbreaker.CircuitBreaker
}

// HTTPError represents a 5xx answer from the upstream service
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, e.Message)
}

// NewClient creates a new HTTP client
func NewClient(config Config) *Client {
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}

	return &Client{
		baseURL: config.BaseURL,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// WithCircuitBreaker guards every request with cb. Transport errors and 5xx answers count as failures.
func (c *Client) WithCircuitBreaker(cb *circuitbreaker.CircuitBreaker) *Client {
	c.breaker = cb
	return c
}

// BaseURL returns the configured base URL without a trailing slash
func (c *Client) BaseURL() string {
	return strings.TrimRight(c.baseURL, "/")
}

// Get issues a GET request for path relative to the base URL. Any non-5xx response is
// returned to the caller, who owns closing its body. Paths are used verbatim, so callers
// escape their own segments.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	target := c.BaseURL() + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	var resp *http.Response
	do := func(ctx context.Context) error {
		resp, err = nrpkg.InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
			return c.httpClient.Do(req)
		})
		if err != nil {
			return err
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
			resp.Body.Close()
			httpErr := &HTTPError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
			resp = nil
			return httpErr
		}

		return nil
	}

	if c.breaker == nil {
		err = do(ctx)
	} else {
		err = c.breaker.Execute(ctx, do)
	}
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// IsHTTPError reports whether err carries an upstream 5xx status
func IsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
