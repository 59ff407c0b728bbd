package handler

import (
	"github.com/philipp01105/fanlog/core"
)

// Handler defines the interface for log handlers
type Handler interface {
	// Log performs the handler's side effect for one log call. ctx is
	// never nil when called by a Logger. A returned error aborts the
	// remaining fan-out of the log call and reaches the original caller.
	Log(level core.Level, message string, ctx core.Context) error
}

// HandlerFunc adapts an ordinary function to the Handler interface
type HandlerFunc func(level core.Level, message string, ctx core.Context) error

// Log calls f(level, message, ctx)
func (f HandlerFunc) Log(level core.Level, message string, ctx core.Context) error {
	return f(level, message, ctx)
}

// Discard is a Handler that does nothing
var Discard Handler = HandlerFunc(func(core.Level, string, core.Context) error { return nil })
