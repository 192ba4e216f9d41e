package dbor

// Fields is a minimal structured field map for logs.
type Fields map[string]any

// Logger is a tiny leveled logger. Decoder logs at Debug only, when
// IgnoreValue skips a value and when a byte string is read through the
// chunked owned-copy path; nothing is logged on the hot single-borrow
// path, and Encoder accepts a Logger but does not log. If no Logger is
// configured via WithLogger, logging is disabled.
type Logger interface {
	Debug(msg string, f Fields)
	Info(msg string, f Fields)
	Warn(msg string, f Fields)
	Error(msg string, f Fields)
}

// NopLogger discards everything. It is the default when no Logger is
// configured.
type NopLogger struct{}

func (NopLogger) Debug(string, Fields) {}
func (NopLogger) Info(string, Fields)  {}
func (NopLogger) Warn(string, Fields)  {}
func (NopLogger) Error(string, Fields) {}
