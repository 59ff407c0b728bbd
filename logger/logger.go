package logger

import (
	"github.com/philipp01105/fanlog/core"
	"github.com/philipp01105/fanlog/handler"
)

// Logger delegates every log call to its handlers (immutable). The zero
// value is a Logger with no handlers.
type Logger struct {
	fanout *handler.MultiHandler
}

var _ handler.Handler = (*Logger)(nil)

// New creates a Logger over a copy of handlers. The list may be empty.
func New(handlers ...handler.Handler) *Logger {
	return &Logger{fanout: handler.NewMultiHandler(handlers...)}
}

// Log delivers the call to every handler in registration order. A nil ctx
// is replaced by an empty Context, and all handlers receive the same map.
// The first handler error stops delivery and is returned as is.
func (l *Logger) Log(level core.Level, message string, ctx core.Context) error {
	if ctx == nil {
		ctx = core.Context{}
	}
	return l.fanout.Log(level, message, ctx)
}

// Emergency logs that the system is unusable
func (l *Logger) Emergency(message string, ctx ...core.Context) error {
	return l.Log(core.EmergencyLevel, message, contextOf(ctx))
}

// Alert logs that action must be taken immediately.
//
// Example: entire website down, database unavailable. This should trigger
// the pager and wake somebody up.
func (l *Logger) Alert(message string, ctx ...core.Context) error {
	return l.Log(core.AlertLevel, message, contextOf(ctx))
}

// Critical logs critical conditions such as an unavailable component or an
// unexpected failure
func (l *Logger) Critical(message string, ctx ...core.Context) error {
	return l.Log(core.CriticalLevel, message, contextOf(ctx))
}

// Error logs runtime errors that do not require immediate action but
// should be monitored
func (l *Logger) Error(message string, ctx ...core.Context) error {
	return l.Log(core.ErrorLevel, message, contextOf(ctx))
}

// Warning logs exceptional occurrences that are not errors, such as use of
// deprecated APIs
func (l *Logger) Warning(message string, ctx ...core.Context) error {
	return l.Log(core.WarningLevel, message, contextOf(ctx))
}

// Notice logs normal but significant events
func (l *Logger) Notice(message string, ctx ...core.Context) error {
	return l.Log(core.NoticeLevel, message, contextOf(ctx))
}

// Info logs interesting events such as a user login
func (l *Logger) Info(message string, ctx ...core.Context) error {
	return l.Log(core.InfoLevel, message, contextOf(ctx))
}

// Debug logs detailed debug information
func (l *Logger) Debug(message string, ctx ...core.Context) error {
	return l.Log(core.DebugLevel, message, contextOf(ctx))
}

// Handlers returns a copy of the registered handlers
func (l *Logger) Handlers() []handler.Handler {
	return l.fanout.Handlers()
}

// Close closes every handler that implements io.Closer and combines
// their errors. Every closer runs even when an earlier one fails.
func (l *Logger) Close() error {
	return l.fanout.Close()
}

// contextOf resolves the optional context argument of the level methods.
// A single context is passed through untouched; several are merged.
func contextOf(ctx []core.Context) core.Context {
	switch len(ctx) {
	case 0:
		return nil
	case 1:
		return ctx[0]
	default:
		return core.Merge(ctx...)
	}
}
