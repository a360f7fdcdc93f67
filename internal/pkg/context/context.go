package context

import (
	"context"

	"github.com/google/uuid"
)

// ContextKey represents a key for context values
type ContextKey string

const (
	// RequestIDKey is the key for request ID in context
	RequestIDKey ContextKey = "request_id"
	// SessionIDKey is the key for the live channel session ID in context
	SessionIDKey ContextKey = "session_id"
	// NamespaceKey is the key for the live channel namespace in context
	NamespaceKey ContextKey = "namespace"
)

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		requestID = uuid.New().String()
	}
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetRequestID retrieves the request ID from context
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// WithSession tags the context with the namespace and session it belongs to
func WithSession(ctx context.Context, namespace, sessionID string) context.Context {
	ctx = context.WithValue(ctx, NamespaceKey, namespace)
	return context.WithValue(ctx, SessionIDKey, sessionID)
}

// GetSessionID retrieves the session ID from context
func GetSessionID(ctx context.Context) string {
	if sessionID, ok := ctx.Value(SessionIDKey).(string); ok {
		return sessionID
	}
	return ""
}

// GetNamespace retrieves the namespace from context
func GetNamespace(ctx context.Context) string {
	if ns, ok := ctx.Value(NamespaceKey).(string); ok {
		return ns
	}
	return ""
}
