package postgresengine

import (
	"context"
	"time"

	"github.com/bookstacks/book-catalog-go/catalog"
)

// Logger interface for SQL query logging, operational metrics, warnings, and error reporting.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// MetricsCollector interface for collecting CatalogStore performance and operational metrics.
type MetricsCollector interface {
	RecordDuration(metric string, duration time.Duration, labels map[string]string)
	IncrementCounter(metric string, labels map[string]string)
	RecordValue(metric string, value float64, labels map[string]string)
}

// SpanContext represents an active tracing span that can be finished and updated with attributes.
type SpanContext = catalog.SpanContext

// TracingCollector interface for collecting distributed tracing information from CatalogStore operations.
type TracingCollector interface {
	StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, SpanContext)
	FinishSpan(spanCtx SpanContext, status string, attrs map[string]string)
}

// ContextualLogger interface for context-aware logging with automatic trace correlation.
type ContextualLogger interface {
	DebugContext(ctx context.Context, msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)
	WarnContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

// Option defines a functional option for configuring CatalogStore.
type Option func(*CatalogStore) error

// WithTableName sets the books table name for the CatalogStore.
func WithTableName(tableName string) Option {
	return func(cs *CatalogStore) error {
		if tableName == "" {
			return catalog.ErrEmptyBooksTableName
		}

		cs.booksTableName = tableName

		return nil
	}
}

// WithLogger sets the logger for the CatalogStore.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: SQL queries with execution timing (development use)
// Info level: Result counts, durations (production-safe)
// Warn level: Non-critical issues like cleanup failures
// Error level: Critical failures that cause operation failures.
func WithLogger(logger Logger) Option {
	return func(cs *CatalogStore) error {
		cs.logger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the CatalogStore.
// The metrics collector will receive performance and operational metrics including
// search/add durations, result counts, and database errors.
func WithMetrics(collector MetricsCollector) Option {
	return func(cs *CatalogStore) error {
		cs.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the CatalogStore.
// The tracing collector will receive distributed tracing information including
// span creation for search/add operations, context propagation, and error tracking.
func WithTracing(collector TracingCollector) Option {
	return func(cs *CatalogStore) error {
		cs.tracingCollector = collector
		return nil
	}
}

// WithContextualLogger sets the contextual logger for the CatalogStore.
// The contextual logger will receive log messages with context information including
// automatic trace/span correlation when tracing is enabled, enabling unified observability.
func WithContextualLogger(logger ContextualLogger) Option {
	return func(cs *CatalogStore) error {
		cs.contextualLogger = logger
		return nil
	}
}
