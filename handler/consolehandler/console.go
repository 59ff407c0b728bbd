package consolehandler

import (
	"io"
	"os"
	"reflect"

	"github.com/philipp01105/fanlog/core"
	"github.com/philipp01105/fanlog/formatter"
	"github.com/philipp01105/fanlog/handler"
	"github.com/philipp01105/fanlog/handler/internal/levelmap"
	"github.com/philipp01105/fanlog/handler/streamhandler"
)

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Stdout receives warning and lower levels (default: os.Stdout)
	Stdout io.Writer
	// Stderr receives error and higher levels (default: os.Stderr)
	Stderr io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Stderr == nil {
		cfg.Stderr = os.Stderr
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter()
	}
}

// ConsoleHandler writes every log call to one of two terminal streams.
// Emergency, alert, critical and error go to Stderr, everything else to
// Stdout. Nothing is dropped.
type ConsoleHandler struct {
	out *streamhandler.StreamHandler
	err *streamhandler.StreamHandler
}

var (
	_ handler.Handler       = (*ConsoleHandler)(nil)
	_ handler.StatsProvider = (*ConsoleHandler)(nil)
)

// NewConsoleHandler creates a new console handler. Both writers are
// wrapped with streamhandler.Synchronized; when Stdout and Stderr are the
// same writer they share one wrapper, and so one lock.
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	applyConsoleDefaults(&cfg)
	opt := streamhandler.WithFormatter(cfg.Formatter)

	stdout := streamhandler.Synchronized(cfg.Stdout)
	stderr := stdout
	if !sameWriter(cfg.Stdout, cfg.Stderr) {
		stderr = streamhandler.Synchronized(cfg.Stderr)
	}
	return &ConsoleHandler{
		out: streamhandler.New(stdout, opt),
		err: streamhandler.New(stderr, opt),
	}
}

// sameWriter reports whether a and b are the same writer. Writers of
// uncomparable types are never considered the same.
func sameWriter(a, b io.Writer) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

// Log writes the rendered line to the stream selected by level
func (h *ConsoleHandler) Log(level core.Level, message string, ctx core.Context) error {
	if levelmap.Classify(level) == levelmap.Error {
		return h.err.Log(level, message, ctx)
	}
	return h.out.Log(level, message, ctx)
}

// Stats returns the combined statistics of both streams
func (h *ConsoleHandler) Stats() handler.Snapshot {
	out, err := h.out.Stats(), h.err.Stats()
	return handler.Snapshot{
		ProcessedTotal: out.ProcessedTotal + err.ProcessedTotal,
		FailedTotal:    out.FailedTotal + err.FailedTotal,
	}
}
