package core

import (
	"strings"

	"github.com/pkg/errors"
)

// Level represents the severity level of a log call.
//
// Levels carry no ranking: two levels are either the same level or not.
type Level string

const (
	// EmergencyLevel means the system is unusable
	EmergencyLevel Level = "emergency"
	// AlertLevel means action must be taken immediately
	AlertLevel Level = "alert"
	// CriticalLevel for critical conditions such as an unavailable component
	CriticalLevel Level = "critical"
	// ErrorLevel for runtime errors that do not require immediate action
	ErrorLevel Level = "error"
	// WarningLevel for exceptional occurrences that are not errors
	WarningLevel Level = "warning"
	// NoticeLevel for normal but significant events
	NoticeLevel Level = "notice"
	// InfoLevel for interesting events
	InfoLevel Level = "info"
	// DebugLevel for detailed debug information
	DebugLevel Level = "debug"
)

var levels = [...]Level{
	EmergencyLevel,
	AlertLevel,
	CriticalLevel,
	ErrorLevel,
	WarningLevel,
	NoticeLevel,
	InfoLevel,
	DebugLevel,
}

// String returns the string representation of the level
func (l Level) String() string {
	return string(l)
}

// Levels returns all eight levels, most urgent first.
func Levels() []Level {
	out := make([]Level, len(levels))
	copy(out, levels[:])
	return out
}

// ParseLevel converts a case-insensitive level name to a Level.
func ParseLevel(s string) (Level, error) {
	name := Level(strings.ToLower(strings.TrimSpace(s)))
	for _, l := range levels {
		if l == name {
			return l, nil
		}
	}
	return "", errors.Errorf("unknown log level %q", s)
}
