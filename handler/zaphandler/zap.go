package zaphandler

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/fanlog/core"
	"github.com/philipp01105/fanlog/formatter"
	"github.com/philipp01105/fanlog/handler"
	"github.com/philipp01105/fanlog/handler/internal/levelmap"
)

// ZapHandler forwards log calls to a *zap.Logger
type ZapHandler struct {
	logger *zap.Logger
}

var _ handler.Handler = (*ZapHandler)(nil)

// New creates a handler forwarding to l. A nil logger is replaced by
// zap.NewNop().
func New(l *zap.Logger) *ZapHandler {
	if l == nil {
		l = zap.NewNop()
	}
	return &ZapHandler{logger: l}
}

// Log writes the interpolated message with every context entry as a zap
// field plus a "severity" field carrying the original level. Whether the
// entry is emitted is up to the zap core's own level.
func (h *ZapHandler) Log(level core.Level, message string, ctx core.Context) error {
	ce := h.logger.Check(zapLevel(level), formatter.Interpolate(message, ctx))
	if ce == nil {
		return nil
	}
	ce.Write(fields(level, ctx)...)
	return nil
}

// Sync flushes any buffered zap output
func (h *ZapHandler) Sync() error {
	return h.logger.Sync()
}

func fields(level core.Level, ctx core.Context) []zap.Field {
	out := make([]zap.Field, 0, len(ctx)+1)
	out = append(out, zap.String(levelmap.SeverityKey, level.String()))
	for _, k := range ctx.Keys() {
		if err, ok := ctx[k].(error); ok {
			out = append(out, zap.NamedError(k, err))
			continue
		}
		out = append(out, zap.Any(k, ctx[k]))
	}
	return out
}

// zapLevel never returns DPanic, Panic, or Fatal, which would make zap
// panic or exit.
func zapLevel(level core.Level) zapcore.Level {
	switch levelmap.Classify(level) {
	case levelmap.Error:
		return zapcore.ErrorLevel
	case levelmap.Warn:
		return zapcore.WarnLevel
	case levelmap.Debug:
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}
