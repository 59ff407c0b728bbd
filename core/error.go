package core

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrorKey is the reserved context key for an error attached to a log call
const ErrorKey = "error"

// DefaultErrorName is used for errors that do not expose a Name method
const DefaultErrorName = "Error"

// Namer is implemented by errors that expose a human-readable type name.
type Namer interface {
	Name() string
}

// Tracer is implemented by errors that carry their own trace text. The
// first line of the trace is a header ("name: message") and the remaining
// lines are frames.
type Tracer interface {
	Trace() string
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// Err returns the error stored under ErrorKey, or nil when the key is
// absent, holds something that is not an error, or holds a typed nil.
func (c Context) Err() error {
	err, ok := c[ErrorKey].(error)
	if !ok || isNil(err) {
		return nil
	}
	return err
}

// ErrorName returns the display name of err
func ErrorName(err error) string {
	var n Namer
	if errors.As(err, &n) {
		return n.Name()
	}
	return DefaultErrorName
}

// ErrorFrames returns the trace lines of err without the header line.
//
// Errors implementing Tracer are used first. Otherwise the deepest
// github.com/pkg/errors stack trace in the chain is rendered one frame per
// line pair (function, then tab-indented file:line). Errors without any
// trace yield an empty string.
func ErrorFrames(err error) string {
	var tr Tracer
	if errors.As(err, &tr) {
		return stripFirstLine(tr.Trace())
	}

	if trace := deepestStack(err); len(trace) > 0 {
		return strings.TrimPrefix(fmt.Sprintf("%+v", trace), "\n")
	}
	return ""
}

// deepestStack walks the unwrap chain and keeps the last stack seen,
// which is the one recorded closest to where the error was created.
func deepestStack(err error) errors.StackTrace {
	var trace errors.StackTrace
	for err != nil {
		if st, ok := err.(stackTracer); ok {
			trace = st.StackTrace()
		}
		err = errors.Unwrap(err)
	}
	return trace
}

// stripFirstLine drops everything up to and including the first newline.
// A single-line trace is returned unchanged.
func stripFirstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}
