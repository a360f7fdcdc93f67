package context

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestConstants(t *testing.T) {
	assert.Equal(t, "request_id", string(RequestIDKey))
	assert.Equal(t, "session_id", string(SessionIDKey))
	assert.Equal(t, "namespace", string(NamespaceKey))
}

func TestWithRequestID(t *testing.T) {
	tests := []struct {
		name      string
		requestID string
		expected  func(string) bool
	}{
		{
			name:      "Valid request ID",
			requestID: "req-123-456",
			expected: func(result string) bool {
				return result == "req-123-456"
			},
		},
		{
			name:      "Empty request ID generates UUID",
			requestID: "",
			expected: func(result string) bool {
				_, err := uuid.Parse(result)
				return err == nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := WithRequestID(context.Background(), tt.requestID)
			assert.True(t, tt.expected(GetRequestID(ctx)))
		})
	}
}

func TestGetRequestID_Missing(t *testing.T) {
	assert.Empty(t, GetRequestID(context.Background()))
	assert.Empty(t, GetRequestID(context.WithValue(context.Background(), RequestIDKey, 42)))
}

func TestWithSession(t *testing.T) {
	ctx := WithSession(context.Background(), "/socket/trip", "sess-1")

	assert.Equal(t, "sess-1", GetSessionID(ctx))
	assert.Equal(t, "/socket/trip", GetNamespace(ctx))
	assert.Empty(t, GetSessionID(context.Background()))
	assert.Empty(t, GetNamespace(context.Background()))
}

func TestWithSession_Cancellation(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	ctx := WithSession(parent, "/socket/admin", "sess-2")

	cancel()

	assert.ErrorIs(t, ctx.Err(), context.Canceled)
	assert.Equal(t, "sess-2", GetSessionID(ctx))
}
