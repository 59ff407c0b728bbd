package zerologhandler

import (
	"github.com/rs/zerolog"

	"github.com/philipp01105/fanlog/core"
	"github.com/philipp01105/fanlog/formatter"
	"github.com/philipp01105/fanlog/handler"
	"github.com/philipp01105/fanlog/handler/internal/levelmap"
)

// ZerologHandler forwards log calls to a zerolog.Logger
type ZerologHandler struct {
	logger zerolog.Logger
}

var _ handler.Handler = (*ZerologHandler)(nil)

// New creates a handler forwarding to l
func New(l zerolog.Logger) *ZerologHandler {
	return &ZerologHandler{logger: l}
}

// Log emits one zerolog event with the interpolated message. Context
// entries become event fields, errors are encoded with zerolog's error
// marshaler, and a "severity" field carries the original level.
func (h *ZerologHandler) Log(level core.Level, message string, ctx core.Context) error {
	// WithLevel never exits or panics, whatever the level.
	e := h.logger.WithLevel(zerologLevel(level))
	if e == nil {
		return nil
	}

	e = e.Str(levelmap.SeverityKey, level.String())
	for _, k := range ctx.Keys() {
		if err, ok := ctx[k].(error); ok {
			e = e.AnErr(k, err)
			continue
		}
		e = e.Interface(k, ctx[k])
	}
	e.Msg(formatter.Interpolate(message, ctx))
	return nil
}

func zerologLevel(level core.Level) zerolog.Level {
	switch levelmap.Classify(level) {
	case levelmap.Error:
		return zerolog.ErrorLevel
	case levelmap.Warn:
		return zerolog.WarnLevel
	case levelmap.Debug:
		return zerolog.DebugLevel
	default:
		return zerolog.InfoLevel
	}
}
