package newrelic

import (
	"context"
	"errors"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestWithSegment_NoTransaction(t *testing.T) {
	called := false
	err := WithSegment(context.Background(), "segment", func() error {
		called = true
		return errors.New("boom")
	})

	assert.True(t, called)
	assert.EqualError(t, err, "boom")
}

func TestNoticeError_NoTransaction(t *testing.T) {
	assert.NotPanics(t, func() {
		NoticeError(context.Background(), errors.New("boom"))
	})
}

func TestStartBackgroundTransaction_NilApp(t *testing.T) {
	ctx, end := StartBackgroundTransaction(context.Background(), nil, "job")
	defer end()

	assert.Nil(t, FromContext(ctx))
}

func TestEchoMiddleware_NilAppPassesThrough(t *testing.T) {
	called := false
	next := func(c echo.Context) error {
		called = true
		return nil
	}

	assert.NoError(t, EchoMiddleware(nil)(next)(nil))
	assert.True(t, called)
}
