package contextkeys

import (
	"context"
	"listing-service/internal/core/port"
)

type loggerKeyType struct{}
type traceIDKeyType struct{}

var (
	loggerKey  = loggerKeyType{}
	traceIDKey = traceIDKeyType{}
)

// ContextWithLogger кладет в контекст логгер запроса
func ContextWithLogger(ctx context.Context, logger port.LoggerPort) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext достает логгер из контекста.
// Если его там нет (тесты, фоновые задачи), возвращает логгер, который ничего не пишет.
func LoggerFromContext(ctx context.Context) port.LoggerPort {
	if logger, ok := ctx.Value(loggerKey).(port.LoggerPort); ok {
		return logger
	}
	return noopLogger{}
}

func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

// TraceIDFromContext возвращает пустую строку, если trace_id не задан
func TraceIDFromContext(ctx context.Context) string {
	if traceID, ok := ctx.Value(traceIDKey).(string); ok {
		return traceID
	}
	return ""
}

type noopLogger struct{}

func (noopLogger) Debug(string, port.Fields)                {}
func (noopLogger) Info(string, port.Fields)                 {}
func (noopLogger) Warn(string, port.Fields)                 {}
func (noopLogger) Error(string, error, port.Fields)         {}
func (n noopLogger) WithFields(port.Fields) port.LoggerPort { return n }
