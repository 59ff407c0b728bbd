package streamhandler

import (
	"io"

	"github.com/pkg/errors"

	"github.com/philipp01105/fanlog/core"
	"github.com/philipp01105/fanlog/formatter"
	"github.com/philipp01105/fanlog/handler"
)

// StreamHandler writes one "[<level>] <message>\n" line per log call to a
// sink. It adds no locking of its own: concurrent callers need a sink that
// tolerates concurrent Write calls (see Synchronized).
type StreamHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	stats           *handler.Stats
}

var (
	_ handler.Handler       = (*StreamHandler)(nil)
	_ handler.StatsProvider = (*StreamHandler)(nil)
)

// Option configures a StreamHandler
type Option func(*StreamHandler)

// WithFormatter replaces the default TextFormatter
func WithFormatter(f formatter.Formatter) Option {
	return func(h *StreamHandler) {
		if f != nil {
			h.formatter = f
		}
	}
}

// New creates a stream handler writing to w
func New(w io.Writer, opts ...Option) *StreamHandler {
	h := &StreamHandler{
		writer:    w,
		formatter: formatter.NewTextFormatter(),
		stats:     handler.NewStats(),
	}
	for _, opt := range opts {
		opt(h)
	}

	// Cache WriterFormatter for zero-alloc path
	h.writerFormatter, _ = h.formatter.(formatter.WriterFormatter)
	return h
}

// Log renders the call and writes it to the sink in a single Write. Sink
// failures are returned wrapped; the original error stays reachable with
// errors.Is and errors.Cause.
func (h *StreamHandler) Log(level core.Level, message string, ctx core.Context) error {
	if ctx == nil {
		ctx = core.Context{}
	}

	var err error
	if h.writerFormatter != nil {
		err = h.writerFormatter.FormatTo(level, message, ctx, h.writer)
	} else {
		_, err = h.writer.Write(h.formatter.Format(level, message, ctx))
	}
	h.stats.Observe(err)

	if err != nil {
		return errors.Wrap(err, "stream handler: write")
	}
	return nil
}

// Writer returns the sink
func (h *StreamHandler) Writer() io.Writer {
	return h.writer
}

// Stats returns a snapshot of the current statistics
func (h *StreamHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}
