// Package logger provides structured logging infrastructure for the application.
// This is part of the platform layer and contains no business logic.
package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

// Context key types for storing values in context
type contextKey string

const (
	// RequestIDKey is the context key for request ID
	RequestIDKey contextKey = "request_id"
)

// Logger wraps slog.Logger for structured logging
type Logger struct {
	*slog.Logger
}

// New creates a new logger based on environment
func New(env string) *Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	if strings.EqualFold(env, "development") {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewWithHandler wraps an arbitrary handler. Tests use it to capture or discard output.
func NewWithHandler(handler slog.Handler) *Logger {
	return &Logger{Logger: slog.New(handler)}
}

// WithContext returns a logger with the request ID from context attached.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if ctx == nil {
		return l
	}

	if requestID, ok := ctx.Value(RequestIDKey).(string); ok && requestID != "" {
		return l.WithRequestID(requestID)
	}

	return l
}

// WithRequestID returns a logger with request ID
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{
		Logger: l.With(slog.String("request_id", requestID)),
	}
}

// HTTPRequest logs an HTTP request
func (l *Logger) HTTPRequest(method, path string, status int, latencyMs float64, clientIP string) {
	l.Info("http_request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.Float64("latency_ms", latencyMs),
		slog.String("client_ip", clientIP),
	)
}

// LeadReceived logs an inbound lead before any gate runs.
func (l *Logger) LeadReceived(firstName, lastName, postalCode string) {
	l.Info("lead_received",
		slog.String("first_name", firstName),
		slog.String("last_name", lastName),
		slog.String("postal_code", postalCode),
	)
}

// LeadSkipped logs an ineligible lead. Skips are expected outcomes, not failures.
func (l *Logger) LeadSkipped(reason string, attrs ...any) {
	l.Info("lead_skipped", append([]any{slog.String("reason", reason)}, attrs...)...)
}

// LeadAccepted logs a lead that passed every gate and is about to be forwarded.
func (l *Logger) LeadAccepted(postalCode, uniqueID string) {
	l.Info("lead_accepted",
		slog.String("postal_code", postalCode),
		slog.String("unique_id", uniqueID),
	)
}

// UpstreamError logs a failed call to an external service.
func (l *Logger) UpstreamError(service string, status int, err error, body string) {
	l.Error("upstream_error",
		slog.String("service", service),
		slog.Int("status", status),
		slog.String("error", err.Error()),
		slog.String("body", body),
	)
}
