package postgresengine

import (
	"context"
	"math"
	"time"
)

const (
	spanNameSearch = "catalogstore.search"
	spanNameAdd    = "catalogstore.add"

	operationSearch = "search"
	operationAdd    = "add"

	statusSuccess = "success"
	statusError   = "error"

	metricOperationDuration = "catalogstore_operation_duration_seconds"
	metricOperationTotal    = "catalogstore_operations_total"

	labelOperation = "operation"
	labelStatus    = "status"

	logMsgSQLExecutedFor = "executed sql for: "
	logMsgOperation      = "catalogstore operation: "
)

// startSpan begins a tracing span for an operation if a tracing collector is configured.
// It returns the (possibly enriched) context and the span, which may be nil.
func (cs CatalogStore) startSpan(ctx context.Context, name string) (context.Context, SpanContext) {
	if cs.tracingCollector == nil {
		return ctx, nil
	}

	return cs.tracingCollector.StartSpan(ctx, name, map[string]string{"table": cs.booksTableName})
}

// finishSpan completes a span with the given status.
func (cs CatalogStore) finishSpan(span SpanContext, status string) {
	if cs.tracingCollector == nil || span == nil {
		return
	}

	cs.tracingCollector.FinishSpan(span, status, nil)
}

// finishSpanWithError completes a span with error status and the error message attached.
func (cs CatalogStore) finishSpanWithError(span SpanContext, err error) {
	if cs.tracingCollector == nil || span == nil {
		return
	}

	cs.tracingCollector.FinishSpan(span, statusError, map[string]string{logAttrError: err.Error()})
}

// recordOperationOutcome records duration and outcome counters for an operation
// if a metrics collector is configured.
func (cs CatalogStore) recordOperationOutcome(ctx context.Context, operation string, status string, duration time.Duration) {
	if cs.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		labelOperation: operation,
		labelStatus:    status,
	}

	if contextual, ok := cs.metricsCollector.(interface {
		RecordDurationContext(ctx context.Context, metric string, duration time.Duration, labels map[string]string)
		IncrementCounterContext(ctx context.Context, metric string, labels map[string]string)
	}); ok {
		contextual.RecordDurationContext(ctx, metricOperationDuration, duration, labels)
		contextual.IncrementCounterContext(ctx, metricOperationTotal, labels)

		return
	}

	cs.metricsCollector.RecordDuration(metricOperationDuration, duration, labels)
	cs.metricsCollector.IncrementCounter(metricOperationTotal, labels)
}

// logQueryWithDuration logs SQL queries with execution time at debug level if a logger is configured.
func (cs CatalogStore) logQueryWithDuration(ctx context.Context, sqlQuery string, operation string, duration time.Duration) {
	if cs.contextualLogger != nil {
		cs.contextualLogger.DebugContext(ctx, logMsgSQLExecutedFor+operation,
			logAttrDurationMS, durationToMilliseconds(duration), logAttrQuery, sqlQuery)

		return
	}

	if cs.logger != nil {
		cs.logger.Debug(logMsgSQLExecutedFor+operation,
			logAttrDurationMS, durationToMilliseconds(duration), logAttrQuery, sqlQuery)
	}
}

// logOperation logs operational information at info level if a logger is configured.
func (cs CatalogStore) logOperation(ctx context.Context, action string, args ...any) {
	if cs.contextualLogger != nil {
		cs.contextualLogger.InfoContext(ctx, logMsgOperation+action, args...)

		return
	}

	if cs.logger != nil {
		cs.logger.Info(logMsgOperation+action, args...)
	}
}

// logWarn logs non-critical issues at warn level if a logger is configured.
func (cs CatalogStore) logWarn(ctx context.Context, msg string, args ...any) {
	if cs.contextualLogger != nil {
		cs.contextualLogger.WarnContext(ctx, msg, args...)

		return
	}

	if cs.logger != nil {
		cs.logger.Warn(msg, args...)
	}
}

// logError logs critical failures at error level if a logger is configured.
func (cs CatalogStore) logError(ctx context.Context, msg string, args ...any) {
	if cs.contextualLogger != nil {
		cs.contextualLogger.ErrorContext(ctx, msg, args...)

		return
	}

	if cs.logger != nil {
		cs.logger.Error(msg, args...)
	}
}

// durationToMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func durationToMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
