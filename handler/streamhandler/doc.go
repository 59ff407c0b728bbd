// Package streamhandler provides the handler that writes rendered log
// lines to any io.Writer.
//
// Each log call produces exactly one Write of the form
//
//	[<level>] <message>\n
//
// where <message> has its {placeholders} substituted from the context
// and, when the context carries an error under the "error" key, is
// prefixed by the error name and followed by the error's trace frames.
//
// StreamHandler does not lock, buffer, or retry. Write failures are
// returned to the caller. Wrap a sink with Synchronized when several
// goroutines log through the same handler.
package streamhandler
