package logger

import (
	"github.com/philipp01105/fanlog/core"
)

// Level is an alias of core.Level
type Level = core.Level

// Context is an alias of core.Context
type Context = core.Context

const (
	EmergencyLevel = core.EmergencyLevel
	AlertLevel     = core.AlertLevel
	CriticalLevel  = core.CriticalLevel
	ErrorLevel     = core.ErrorLevel
	WarningLevel   = core.WarningLevel
	NoticeLevel    = core.NoticeLevel
	InfoLevel      = core.InfoLevel
	DebugLevel     = core.DebugLevel
)

// ErrorKey is the context key whose error value adds a trace to stream output
const ErrorKey = core.ErrorKey

// ParseLevel converts a case-insensitive level name to a Level
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}
