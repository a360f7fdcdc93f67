package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	ctxpkg "github.com/rumbus/shuttle/internal/pkg/context"
	"github.com/rumbus/shuttle/internal/pkg/logger"
	"github.com/rumbus/shuttle/internal/pkg/models"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

var (
	// ErrSessionClosed is returned when sending to a session that is no longer open
	ErrSessionClosed = errors.New("session closed")
	// ErrSendQueueFull is returned when the session's outbound queue is saturated
	ErrSendQueueFull = errors.New("send queue full")
)

// State is the lifecycle state of a session
type State int32

const (
	StateConnecting State = iota
	StateOpen
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Session is one live connection inside a hub namespace.
// All writes go through the send queue, drained by a single writer goroutine.
type Session struct {
	id        string
	namespace string
	conn      *websocket.Conn
	send      chan []byte

	ctx    context.Context
	cancel context.CancelFunc

	state     atomic.Int32
	closeOnce sync.Once
	done      chan struct{}

	// lifeMu orders Go against Close so no work is added once Wait may run
	lifeMu   sync.Mutex
	inflight sync.WaitGroup
	slots    chan struct{}

	mu     sync.RWMutex
	values map[string]interface{}
}

func newSession(parent context.Context, id, namespace string, conn *websocket.Conn, queueSize, maxInflight int) *Session {
	ctx, cancel := context.WithCancel(ctxpkg.WithSession(parent, namespace, id))
	s := &Session{
		id:        id,
		namespace: namespace,
		conn:      conn,
		send:      make(chan []byte, queueSize),
		ctx:       ctx,
		cancel:    cancel,
		done:      make(chan struct{}),
		slots:     make(chan struct{}, maxInflight),
		values:    make(map[string]interface{}),
	}
	s.state.Store(int32(StateConnecting))
	return s
}

// ID returns the session identifier
func (s *Session) ID() string {
	return s.id
}

// Namespace returns the namespace the session belongs to
func (s *Session) Namespace() string {
	return s.namespace
}

// Context is cancelled when the session closes
func (s *Session) Context() context.Context {
	return s.ctx
}

// State returns the current lifecycle state
func (s *Session) State() State {
	return State(s.state.Load())
}

// Set stores a value on the session, e.g. the authenticated subject
func (s *Session) Set(key string, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Get returns a value stored with Set
func (s *Session) Get(key string) interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key]
}

// Send queues an event for this session only. It never blocks.
func (s *Session) Send(event string, data interface{}) error {
	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}

	payload, err := json.Marshal(models.WSMessage{Event: event, Data: rawData})
	if err != nil {
		return fmt.Errorf("error marshaling message: %w", err)
	}

	return s.enqueue(payload)
}

func (s *Session) enqueue(payload []byte) error {
	if s.State() == StateClosed {
		return ErrSessionClosed
	}

	select {
	case <-s.done:
		return ErrSessionClosed
	case s.send <- payload:
		return nil
	default:
		return ErrSendQueueFull
	}
}

// Go runs fn in its own goroutine bound to the session context. It returns false
// without running fn when the session is closed or already runs its maximum of
// concurrent functions.
func (s *Session) Go(fn func(ctx context.Context)) bool {
	s.lifeMu.Lock()
	if s.State() == StateClosed {
		s.lifeMu.Unlock()
		return false
	}
	select {
	case s.slots <- struct{}{}:
	default:
		s.lifeMu.Unlock()
		return false
	}
	s.inflight.Add(1)
	s.lifeMu.Unlock()

	go func() {
		defer func() {
			<-s.slots
			s.inflight.Done()
		}()
		fn(s.ctx)
	}()
	return true
}

// Wait blocks until every goroutine started with Go has returned
func (s *Session) Wait() {
	s.inflight.Wait()
}

// Close moves the session to Closed, cancels its context and stops the writer
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.lifeMu.Lock()
		s.state.Store(int32(StateClosed))
		s.lifeMu.Unlock()

		s.cancel()
		close(s.done)
	})
}

func (s *Session) open() {
	s.state.CompareAndSwap(int32(StateConnecting), int32(StateOpen))
}

// writePump drains the send queue. It is the only goroutine writing to conn.
func (s *Session) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case payload := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				logger.WarnCtx(s.ctx, "Error writing websocket message", logger.Err(err))
				s.Close()
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				s.Close()
				return
			}
		case <-s.done:
			_ = s.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return
		}
	}
}

// readPump reads frames until the peer goes away and hands each one to dispatch
func (s *Session) readPump(dispatch func(raw []byte)) {
	s.conn.SetReadLimit(maxMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseNoStatusReceived) {
				logger.WarnCtx(s.ctx, "Unexpected websocket close", logger.Err(err))
			}
			return
		}
		if s.State() == StateClosed {
			return
		}
		dispatch(raw)
	}
}
