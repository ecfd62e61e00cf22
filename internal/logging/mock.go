package logging

import "sync"

// LogEntry records a single logged message for assertions in tests.
type LogEntry struct {
	Level   string
	Message string
	Fields  map[string]interface{}
	Error   error
}

// MockLogger is a Logger implementation that captures log entries in memory.
// Loggers derived via WithError/WithField/WithFields share the same entry
// store, so a test can inspect everything logged through any derived logger.
type MockLogger struct {
	mu      *sync.Mutex
	entries *[]LogEntry

	fields map[string]interface{}
	err    error
}

// NewMockLogger creates a MockLogger with an empty entry store.
func NewMockLogger() *MockLogger {
	entries := make([]LogEntry, 0)
	return &MockLogger{
		mu:      &sync.Mutex{},
		entries: &entries,
		fields:  make(map[string]interface{}),
	}
}

// Entries returns a copy of all captured log entries.
func (m *MockLogger) Entries() []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]LogEntry, len(*m.entries))
	copy(out, *m.entries)
	return out
}

// HasMessage reports whether any entry was logged with the given message.
func (m *MockLogger) HasMessage(msg string) bool {
	for _, e := range m.Entries() {
		if e.Message == msg {
			return true
		}
	}
	return false
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	m.mu.Lock()
	defer m.mu.Unlock()

	merged := make(map[string]interface{}, len(m.fields)+len(fields))
	for k, v := range m.fields {
		merged[k] = v
	}
	for _, f := range fields {
		merged[f.Key] = f.Value
	}
	*m.entries = append(*m.entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  merged,
		Error:   m.err,
	})
}

func (m *MockLogger) derive() *MockLogger {
	fields := make(map[string]interface{}, len(m.fields))
	for k, v := range m.fields {
		fields[k] = v
	}
	return &MockLogger{
		mu:      m.mu,
		entries: m.entries,
		fields:  fields,
		err:     m.err,
	}
}

func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("debug", msg, fields) }
func (m *MockLogger) Info(msg string, fields ...Field)  { m.record("info", msg, fields) }
func (m *MockLogger) Warn(msg string, fields ...Field)  { m.record("warn", msg, fields) }
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("error", msg, fields) }

func (m *MockLogger) WithError(err error) Logger {
	d := m.derive()
	d.err = err
	return d
}

func (m *MockLogger) WithField(key string, value interface{}) Logger {
	d := m.derive()
	d.fields[key] = value
	return d
}

func (m *MockLogger) WithFields(fields ...Field) Logger {
	d := m.derive()
	for _, f := range fields {
		d.fields[f.Key] = f.Value
	}
	return d
}

// Fatal records the entry but does not exit, so tests can assert on it.
func (m *MockLogger) Fatal(msg string, fields ...Field) { m.record("fatal", msg, fields) }

func (m *MockLogger) Fatalf(msg string, args ...interface{}) { m.record("fatal", msg, nil) }
