// Package observability provides logging, metrics, and tracing.
package observability

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger to provide specialized logging methods.
type Logger struct {
	*slog.Logger
}

// GlobalLogger is the default logger instance for the application.
var GlobalLogger *Logger

func init() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	GlobalLogger = &Logger{Logger: slog.New(handler)}
}

// LogContextKey is a type for context keys used by the logging package.
type LogContextKey string

// Context keys for logging
const (
	CorrelationID LogContextKey = "correlation_id"
	SpanID        LogContextKey = "span_id"
	TraceID       LogContextKey = "trace_id"
)

// LoggingConfig defines which types of automated logging are enabled.
type LoggingConfig struct {
	EnableCorrelationID bool
	EnableClientLogging bool
}

var (
	// Config holds the current logging configuration.
	Config = LoggingConfig{
		EnableCorrelationID: true,
		EnableClientLogging: true,
	}
)

// WithCorrelationID returns a new context with the given correlation ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CorrelationID, id)
}

// ExtractCorrelationID retrieves the correlation ID from the context.
func ExtractCorrelationID(ctx context.Context) string {
	if id := ctx.Value(CorrelationID); id != nil {
		return id.(string)
	}
	return ""
}

// ClientLogger provides structured logging for remote resource operations.
type ClientLogger struct {
	resource string
	logger   *Logger
}

// NewClientLogger creates a new ClientLogger for the given resource.
func NewClientLogger(resource string) *ClientLogger {
	return &ClientLogger{
		resource: resource,
		logger:   GlobalLogger,
	}
}

// Resource returns the resource name this logger is bound to.
func (l *ClientLogger) Resource() string {
	return l.resource
}

// LogRequest logs an outgoing resource request.
func (l *ClientLogger) LogRequest(ctx context.Context, op, method, url string) {
	if !Config.EnableClientLogging {
		return
	}
	l.logger.InfoContext(ctx, "resource request",
		slog.String("resource", l.resource),
		slog.String("operation", op),
		slog.String("method", method),
		slog.String("url", url),
		slog.String("correlation_id", ExtractCorrelationID(ctx)),
	)
}

// LogResponse logs a completed resource request.
func (l *ClientLogger) LogResponse(ctx context.Context, op string, status int, fields map[string]interface{}) {
	if !Config.EnableClientLogging {
		return
	}
	attrs := []any{
		slog.String("resource", l.resource),
		slog.String("operation", op),
		slog.Int("status", status),
		slog.String("correlation_id", ExtractCorrelationID(ctx)),
	}
	for k, v := range fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	l.logger.InfoContext(ctx, "resource response", attrs...)
}

// LogError logs a failed resource request.
func (l *ClientLogger) LogError(ctx context.Context, err error, op string) {
	if !Config.EnableClientLogging {
		return
	}
	l.logger.ErrorContext(ctx, "resource error",
		slog.String("resource", l.resource),
		slog.String("operation", op),
		slog.String("correlation_id", ExtractCorrelationID(ctx)),
		slog.String("error", err.Error()),
	)
}
