package logrushandler

import (
	"github.com/sirupsen/logrus"

	"github.com/philipp01105/fanlog/core"
	"github.com/philipp01105/fanlog/formatter"
	"github.com/philipp01105/fanlog/handler"
	"github.com/philipp01105/fanlog/handler/internal/levelmap"
)

// LogrusHandler forwards log calls to a logrus.FieldLogger
type LogrusHandler struct {
	logger logrus.FieldLogger
}

var _ handler.Handler = (*LogrusHandler)(nil)

// New creates a handler forwarding to l. A nil logger is replaced by
// logrus.StandardLogger().
func New(l logrus.FieldLogger) *LogrusHandler {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &LogrusHandler{logger: l}
}

// Log emits one logrus entry carrying the context as fields and the
// original level under "severity".
func (h *LogrusHandler) Log(level core.Level, message string, ctx core.Context) error {
	fields := make(logrus.Fields, len(ctx)+1)
	for k, v := range ctx {
		fields[k] = v
	}
	fields[levelmap.SeverityKey] = level.String()

	h.logger.WithFields(fields).Log(logrusLevel(level), formatter.Interpolate(message, ctx))
	return nil
}

// logrusLevel never returns Panic or Fatal; Entry.Log panics on the
// former.
func logrusLevel(level core.Level) logrus.Level {
	switch levelmap.Classify(level) {
	case levelmap.Error:
		return logrus.ErrorLevel
	case levelmap.Warn:
		return logrus.WarnLevel
	case levelmap.Debug:
		return logrus.DebugLevel
	default:
		return logrus.InfoLevel
	}
}
