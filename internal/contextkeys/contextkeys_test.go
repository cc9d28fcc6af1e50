package contextkeys

import (
	"context"
	"testing"

	"listing-service/internal/core/port"

	"github.com/stretchr/testify/assert"
)

type recordingLogger struct {
	noopLogger
	name string
}

func (r recordingLogger) WithFields(port.Fields) port.LoggerPort { return r }

func TestLoggerFromContextFallsBackToNoop(t *testing.T) {
	logger := LoggerFromContext(context.Background())
	assert.NotNil(t, logger)
	assert.NotPanics(t, func() {
		logger.WithFields(port.Fields{"k": "v"}).Error("msg", nil, nil)
	})
}

func TestLoggerRoundTrip(t *testing.T) {
	ctx := ContextWithLogger(context.Background(), recordingLogger{name: "request"})
	got, ok := LoggerFromContext(ctx).(recordingLogger)
	assert.True(t, ok)
	assert.Equal(t, "request", got.name)
}

func TestTraceID(t *testing.T) {
	assert.Equal(t, "", TraceIDFromContext(context.Background()))
	ctx := ContextWithTraceID(context.Background(), "abc-123")
	assert.Equal(t, "abc-123", TraceIDFromContext(ctx))
}
