package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rumbus/shuttle/internal/pkg/logger"
)

var (
	ErrCircuitBreakerOpen = errors.New("circuit breaker is open")
	ErrTooManyRequests    = errors.New("circuit breaker trial call already in flight")
)

// State is the position of the breaker
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

var stateNames = [...]string{"closed", "open", "half-open"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Config decides when the breaker trips and how long it stays open
type Config struct {
	Name string

	// consecutive failures that open a closed breaker
	FailureThreshold int

	// how long an open breaker rejects calls before letting one trial through
	Cooldown time.Duration

	// nil counts every non-nil error
	IsFailure func(err error) bool
}

// DefaultConfig trips after five straight failures. Location updates arrive every
// few seconds, so the cooldown stays short.
func DefaultConfig(name string) Config {
	return Config{
		Name:             name,
		FailureThreshold: 5,
		Cooldown:         15 * time.Second,
	}
}

// CircuitBreaker fails fast while an upstream keeps failing. After the cooldown a
// single trial call decides whether it closes again.
type CircuitBreaker struct {
	cfg Config
	log *logger.ZapLogger
	now func() time.Time

	mu       sync.Mutex
	state    State
	failures int
	openedAt time.Time
	trial    bool
}

// New creates a closed breaker. l may be nil.
func New(cfg Config, l *logger.ZapLogger) *CircuitBreaker {
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = 1
	}
	if cfg.IsFailure == nil {
		cfg.IsFailure = func(err error) bool { return err != nil }
	}
	if l == nil {
		l = logger.NewNopLogger()
	}
	return &CircuitBreaker{cfg: cfg, log: l, now: time.Now}
}

// Execute runs fn unless the breaker is open
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func(context.Context) error) error {
	if err := cb.admit(); err != nil {
		return err
	}
	err := fn(ctx)
	cb.record(err)
	return err
}

// State reports the current position
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *CircuitBreaker) admit() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateOpen:
		if cb.now().Sub(cb.openedAt) < cb.cfg.Cooldown {
			return ErrCircuitBreakerOpen
		}
		cb.moveTo(StateHalfOpen)
	case StateHalfOpen:
		if cb.trial {
			return ErrTooManyRequests
		}
	}

	if cb.state == StateHalfOpen {
		cb.trial = true
	}
	return nil
}

func (cb *CircuitBreaker) record(err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	failed := cb.cfg.IsFailure(err)
	if cb.state == StateHalfOpen {
		cb.trial = false
		switch {
		case failed:
			cb.trip()
		case err == nil:
			cb.failures = 0
			cb.moveTo(StateClosed)
		}
		// an ignored error gives no verdict, the next call becomes the trial
		return
	}

	if !failed {
		if err == nil {
			cb.failures = 0
		}
		return
	}
	cb.failures++
	if cb.failures >= cb.cfg.FailureThreshold {
		cb.trip()
	}
}

func (cb *CircuitBreaker) trip() {
	cb.openedAt = cb.now()
	cb.moveTo(StateOpen)
}

func (cb *CircuitBreaker) moveTo(state State) {
	if cb.state == state {
		return
	}
	cb.log.Info("Circuit breaker state changed",
		logger.String("name", cb.cfg.Name),
		logger.String("from", cb.state.String()),
		logger.String("to", state.String()),
		logger.Int("consecutive_failures", cb.failures))
	cb.state = state
}
