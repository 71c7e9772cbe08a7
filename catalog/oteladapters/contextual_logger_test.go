package oteladapters_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bookstacks/book-catalog-go/catalog/oteladapters"
)

// recordingHandler captures slog records for assertions.
type recordingHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, record slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.records = append(h.records, record)
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func (h *recordingHandler) messages() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	msgs := make([]string, 0, len(h.records))
	for _, record := range h.records {
		msgs = append(msgs, record.Message)
	}

	return msgs
}

func Test_SlogBridgeLogger_WithHandler_ForwardsAllLevels(t *testing.T) {
	handler := &recordingHandler{}
	logger := oteladapters.NewSlogBridgeLoggerWithHandler(handler)
	ctx := context.Background()

	logger.DebugContext(ctx, "debug message", "key", "value")
	logger.InfoContext(ctx, "info message")
	logger.WarnContext(ctx, "warn message")
	logger.ErrorContext(ctx, "error message")

	assert.Equal(t, []string{
		"debug message",
		"info message",
		"warn message",
		"error message",
	}, handler.messages())
}

func Test_SlogBridgeLogger_WithHandler_CarriesAttributes(t *testing.T) {
	handler := &recordingHandler{}
	logger := oteladapters.NewSlogBridgeLoggerWithHandler(handler)

	logger.InfoContext(context.Background(), "search completed", "book_count", 3)

	assert.Len(t, handler.records, 1)

	found := false
	handler.records[0].Attrs(func(attr slog.Attr) bool {
		if attr.Key == "book_count" {
			found = true
			assert.Equal(t, int64(3), attr.Value.Int64())
		}
		return true
	})
	assert.True(t, found)
}
