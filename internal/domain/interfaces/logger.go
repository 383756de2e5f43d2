// Package interfaces defines core domain contracts.
//
//nolint:revive // Package name 'interfaces' is intentional for domain layer
package interfaces

import (
	"fmt"
	"strings"
	"sync"
)

// Logger defines the interface for structured logging
type Logger interface {
	// Debug logs debug-level messages
	Debug(msg string, fields ...Field)

	// Info logs informational messages
	Info(msg string, fields ...Field)

	// Warn logs warning messages
	Warn(msg string, fields ...Field)

	// Error logs error messages
	Error(msg string, fields ...Field)
}

// Field represents a structured log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a new Field (convenience function)
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// NoOpLogger is a logger that does nothing (useful for tests)
type NoOpLogger struct{}

// Debug does nothing (no-op implementation)
func (n *NoOpLogger) Debug(_ string, _ ...Field) {}

// Info does nothing (no-op implementation)
func (n *NoOpLogger) Info(_ string, _ ...Field) {}

// Warn does nothing (no-op implementation)
func (n *NoOpLogger) Warn(_ string, _ ...Field) {}

// Error does nothing (no-op implementation)
func (n *NoOpLogger) Error(_ string, _ ...Field) {}

// LogEntry is one message captured by RecordingLogger
type LogEntry struct {
	Level   string
	Message string
	Fields  []Field
}

// String renders the entry as "LEVEL: msg key=value ..."
func (e LogEntry) String() string {
	var b strings.Builder
	b.WriteString(e.Level + ": " + e.Message)
	for _, f := range e.Fields {
		fmt.Fprintf(&b, " %s=%v", f.Key, f.Value)
	}
	return b.String()
}

// RecordingLogger keeps every message in memory (useful for tests)
type RecordingLogger struct {
	mu      sync.Mutex
	entries []LogEntry
}

// Debug records a debug-level message
func (r *RecordingLogger) Debug(msg string, fields ...Field) {
	r.record("DEBUG", msg, fields)
}

// Info records an informational message
func (r *RecordingLogger) Info(msg string, fields ...Field) {
	r.record("INFO", msg, fields)
}

// Warn records a warning message
func (r *RecordingLogger) Warn(msg string, fields ...Field) {
	r.record("WARN", msg, fields)
}

// Error records an error message
func (r *RecordingLogger) Error(msg string, fields ...Field) {
	r.record("ERROR", msg, fields)
}

// Entries returns the recorded messages at the given level ("" for all)
func (r *RecordingLogger) Entries(level string) []LogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []LogEntry
	for _, e := range r.entries {
		if level == "" || e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

func (r *RecordingLogger) record(level, msg string, fields []Field) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, LogEntry{Level: level, Message: msg, Fields: fields})
}
