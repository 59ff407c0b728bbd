package sloghandler

import (
	"context"
	"log/slog"
	"time"

	"github.com/philipp01105/fanlog/core"
	"github.com/philipp01105/fanlog/formatter"
	"github.com/philipp01105/fanlog/handler"
	"github.com/philipp01105/fanlog/handler/internal/levelmap"
)

// slog levels for the fanlog severities that slog has no name for
const (
	LevelNotice    = slog.LevelInfo + 2
	LevelCritical  = slog.LevelError + 4
	LevelAlert     = slog.LevelError + 8
	LevelEmergency = slog.LevelError + 12
)

// SlogHandler forwards fanlog log calls to a slog.Handler
type SlogHandler struct {
	handler slog.Handler
}

var _ handler.Handler = (*SlogHandler)(nil)

// New creates a handler forwarding to h
func New(h slog.Handler) *SlogHandler {
	return &SlogHandler{handler: h}
}

// Log builds a slog.Record with the interpolated message and one attribute
// per context entry, in key order, plus a "severity" attribute. The
// record is dropped when the slog handler is not enabled for its level;
// errors returned by the slog handler are passed back.
func (s *SlogHandler) Log(level core.Level, message string, ctx core.Context) error {
	lvl := SlogLevel(level)
	if !s.handler.Enabled(context.Background(), lvl) {
		return nil
	}

	record := slog.NewRecord(time.Now(), lvl, formatter.Interpolate(message, ctx), 0)
	record.AddAttrs(slog.String(levelmap.SeverityKey, level.String()))
	for _, k := range ctx.Keys() {
		record.AddAttrs(slog.Any(k, ctx[k]))
	}
	return s.handler.Handle(context.Background(), record)
}

// SlogLevel converts a fanlog level to a slog level
func SlogLevel(level core.Level) slog.Level {
	switch level {
	case core.EmergencyLevel:
		return LevelEmergency
	case core.AlertLevel:
		return LevelAlert
	case core.CriticalLevel:
		return LevelCritical
	case core.ErrorLevel:
		return slog.LevelError
	case core.WarningLevel:
		return slog.LevelWarn
	case core.NoticeLevel:
		return LevelNotice
	case core.DebugLevel:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// CoreLevel converts a slog level to the closest fanlog level at or below it
func CoreLevel(level slog.Level) core.Level {
	switch {
	case level >= LevelEmergency:
		return core.EmergencyLevel
	case level >= LevelAlert:
		return core.AlertLevel
	case level >= LevelCritical:
		return core.CriticalLevel
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarningLevel
	case level >= LevelNotice:
		return core.NoticeLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}
