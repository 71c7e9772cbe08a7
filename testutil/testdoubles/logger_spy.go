// Package testdoubles provides spy implementations of the catalog
// observability interfaces for use in tests.
package testdoubles

import (
	"context"
	"sync"
)

// LogEntry is one recorded log call.
type LogEntry struct {
	Level string
	Msg   string
	Args  []any
}

// LoggerSpy implements catalog.Logger and catalog.ContextualLogger,
// recording every call for later inspection. Safe for concurrent use.
type LoggerSpy struct {
	mu      sync.Mutex
	entries []LogEntry
}

// NewLoggerSpy creates an empty LoggerSpy.
func NewLoggerSpy() *LoggerSpy {
	return &LoggerSpy{}
}

func (l *LoggerSpy) record(level, msg string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, LogEntry{Level: level, Msg: msg, Args: args})
}

func (l *LoggerSpy) Debug(msg string, args ...any) { l.record("debug", msg, args...) }
func (l *LoggerSpy) Info(msg string, args ...any)  { l.record("info", msg, args...) }
func (l *LoggerSpy) Warn(msg string, args ...any)  { l.record("warn", msg, args...) }
func (l *LoggerSpy) Error(msg string, args ...any) { l.record("error", msg, args...) }

func (l *LoggerSpy) DebugContext(_ context.Context, msg string, args ...any) {
	l.record("debug", msg, args...)
}

func (l *LoggerSpy) InfoContext(_ context.Context, msg string, args ...any) {
	l.record("info", msg, args...)
}

func (l *LoggerSpy) WarnContext(_ context.Context, msg string, args ...any) {
	l.record("warn", msg, args...)
}

func (l *LoggerSpy) ErrorContext(_ context.Context, msg string, args ...any) {
	l.record("error", msg, args...)
}

// Entries returns a copy of all recorded log calls.
func (l *LoggerSpy) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]LogEntry, len(l.entries))
	copy(out, l.entries)

	return out
}

// HasMessage reports whether any recorded entry has the given message.
func (l *LoggerSpy) HasMessage(msg string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, entry := range l.entries {
		if entry.Msg == msg {
			return true
		}
	}

	return false
}
