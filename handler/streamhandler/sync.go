package streamhandler

import (
	"io"
	"os"
	"sync"
)

// lockedWriter wraps an io.Writer with a mutex, acquiring the lock only
// for Write calls.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (lw *lockedWriter) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	n, err = lw.w.Write(p)
	lw.mu.Unlock()
	return
}

// isConcurrentSafeWriter returns true if the writer is known to be safe for
// concurrent Write calls.
func isConcurrentSafeWriter(w io.Writer) bool {
	if w == io.Discard {
		return true
	}
	switch w.(type) {
	case *os.File, *lockedWriter:
		return true
	}
	return false
}

// Synchronized returns a writer that serializes Write calls to w. Writers
// already known to be safe for concurrent use (*os.File, io.Discard, or a
// writer returned by Synchronized) are returned unchanged.
func Synchronized(w io.Writer) io.Writer {
	if isConcurrentSafeWriter(w) {
		return w
	}
	return &lockedWriter{w: w}
}
