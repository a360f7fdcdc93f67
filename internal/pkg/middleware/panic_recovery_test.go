package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rumbus/shuttle/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (*logger.ZapLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return &logger.ZapLogger{Logger: zap.New(core)}, logs
}

func TestPanicRecoveryWithZapMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		panicValue interface{}
		panicType  string
	}{
		{"string panic", "test panic message", "string"},
		{"error panic", fmt.Errorf("test error panic"), "*errors.errorString"},
		{"int panic", 42, "int"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zl, logs := newObservedLogger()
			e := echo.New()

			handler := PanicRecoveryWithZapMiddleware(zl)(func(c echo.Context) error {
				panic(tt.panicValue)
			})

			req := httptest.NewRequest(http.MethodGet, "/stops", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.Response().Header().Set(echo.HeaderXRequestID, "req-1")

			err := handler(c)
			assert.NoError(t, err)
			assert.Equal(t, http.StatusInternalServerError, rec.Code)

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, "Internal Server Error", response["error"])
			assert.Equal(t, "req-1", response["request_id"])

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, "Panic recovered during request processing", entry.Message)
			assert.Equal(t, tt.panicType, entry.ContextMap()["panic_type"])
			assert.Equal(t, "/stops", entry.ContextMap()["path"])
			assert.Contains(t, entry.ContextMap()["stack_trace"], "goroutine")
		})
	}
}

func TestPanicRecovery_WithNewRelicTransaction(t *testing.T) {
	zl, logs := newObservedLogger()
	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName("test-app"),
		newrelic.ConfigLicense("0000000000000000000000000000000000000000"),
		newrelic.ConfigEnabled(false),
	)
	require.NoError(t, err)

	e := echo.New()
	handler := PanicRecoveryWithZapMiddleware(zl)(func(c echo.Context) error {
		panic("new relic panic test")
	})

	txn := app.StartTransaction("test-transaction")
	defer txn.End()
	req := httptest.NewRequest(http.MethodPost, "/stops", nil)
	req = req.WithContext(newrelic.NewContext(req.Context(), txn))
	rec := httptest.NewRecorder()

	assert.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, 1, logs.Len())
}

func TestPanicRecovery_CommittedResponse(t *testing.T) {
	zl, _ := newObservedLogger()
	e := echo.New()
	handler := PanicRecoveryWithZapMiddleware(zl)(func(c echo.Context) error {
		_ = c.String(http.StatusAccepted, "partial")
		panic("after write")
	})

	rec := httptest.NewRecorder()
	assert.NoError(t, handler(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "partial", rec.Body.String())
}

func TestPanicRecovery_RequiresLogger(t *testing.T) {
	assert.Panics(t, func() {
		PanicRecoveryWithZapMiddleware(nil)
	})
}

func TestNoPanic_PassesThrough(t *testing.T) {
	zl, logs := newObservedLogger()
	e := echo.New()
	handler := PanicRecoveryWithZapMiddleware(zl)(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	assert.NoError(t, handler(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 0, logs.Len())
}
