// Package logger is the public API of fanlog. Most users only need to
// import this package.
//
// A Logger owns an ordered list of handlers, fixed at construction, and
// forwards every log call to each of them in turn with identical
// arguments. A Logger is itself a handler, so loggers nest:
//
//	log := logger.NewBuilder().
//	    AddHandler(streamhandler.New(os.Stderr)).
//	    AddHandler(audit).
//	    Build()
//
//	log.Info("user {user} logged in", logger.Context{"user": "alice"})
//
// There is no level filtering and no fault isolation. The first handler
// that returns an error aborts delivery to the rest, and the error comes
// back to the caller unchanged. A panicking handler panics through Log.
//
// The package initializes a default Logger writing to stdout in init().
// The package-level functions Info, Error, Debug, etc. delegate to it.
package logger
