// Package interfaces defines core domain contracts.
//
//nolint:revive // Package name 'interfaces' is intentional for domain layer
package interfaces

import "sync"

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

// Err creates the conventional "error" field
func Err(err error) Field {
	return Field{Key: "error", Value: err}
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

// LogEntry is a single message captured by MemoryLogger
type LogEntry struct {
	Level  string
	Msg    string
	Fields []Field
}

// Field returns the value of the named field and whether it was present
func (e LogEntry) Field(key string) (interface{}, bool) {
	for _, f := range e.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// MemoryLogger keeps every message in memory so tests can assert on them
type MemoryLogger struct {
	mu      sync.Mutex
	entries []LogEntry
}

// Debug records a debug-level message
func (m *MemoryLogger) Debug(msg string, fields ...Field) { m.record("debug", msg, fields) }

// Info records an informational message
func (m *MemoryLogger) Info(msg string, fields ...Field) { m.record("info", msg, fields) }

// Warn records a warning message
func (m *MemoryLogger) Warn(msg string, fields ...Field) { m.record("warn", msg, fields) }

// Error records an error message
func (m *MemoryLogger) Error(msg string, fields ...Field) { m.record("error", msg, fields) }

// Entries returns a copy of the recorded messages
func (m *MemoryLogger) Entries() []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]LogEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// AtLevel returns the recorded messages of one level
func (m *MemoryLogger) AtLevel(level string) []LogEntry {
	var out []LogEntry
	for _, e := range m.Entries() {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

func (m *MemoryLogger) record(level, msg string, fields []Field) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, LogEntry{Level: level, Msg: msg, Fields: fields})
}
