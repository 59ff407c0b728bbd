// Package levelmap groups the eight fanlog levels into the four-level
// scheme shared by zap, zerolog, and logrus.
package levelmap

import "github.com/philipp01105/fanlog/core"

// Class is a coarse severity understood by every bridged library
type Class int

const (
	Debug Class = iota
	Info
	Warn
	Error
)

// Classify maps a level to its coarse class. Unknown levels are Info.
func Classify(level core.Level) Class {
	switch level {
	case core.EmergencyLevel, core.AlertLevel, core.CriticalLevel, core.ErrorLevel:
		return Error
	case core.WarningLevel:
		return Warn
	case core.DebugLevel:
		return Debug
	default:
		return Info
	}
}

// SeverityKey is the field name that carries the original fanlog level
// in bridged output.
const SeverityKey = "severity"
