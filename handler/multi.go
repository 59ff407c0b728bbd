package handler

import (
	"io"

	"go.uber.org/multierr"

	"github.com/philipp01105/fanlog/core"
)

// MultiHandler sends every log call to an ordered, fixed list of handlers.
// A nil *MultiHandler behaves as one with no handlers.
type MultiHandler struct {
	handlers []Handler
}

// NewMultiHandler creates a new multi-handler. The list is copied, so
// later changes to the caller's slice do not affect the handler.
func NewMultiHandler(handlers ...Handler) *MultiHandler {
	hs := make([]Handler, len(handlers))
	copy(hs, handlers)
	return &MultiHandler{handlers: hs}
}

// Log invokes every handler in order with the same arguments. The first
// handler error stops the fan-out and is returned unchanged; handlers
// after it are not called for this log call.
func (h *MultiHandler) Log(level core.Level, message string, ctx core.Context) error {
	if h == nil {
		return nil
	}
	for _, handler := range h.handlers {
		if err := handler.Log(level, message, ctx); err != nil {
			return err
		}
	}
	return nil
}

// Handlers returns a copy of the handler list
func (h *MultiHandler) Handlers() []Handler {
	if h == nil {
		return []Handler{}
	}
	hs := make([]Handler, len(h.handlers))
	copy(hs, h.handlers)
	return hs
}

// Len returns the number of handlers
func (h *MultiHandler) Len() int {
	if h == nil {
		return 0
	}
	return len(h.handlers)
}

// Close closes every handler that implements io.Closer. All closers are
// called even if some fail; failures are combined.
func (h *MultiHandler) Close() error {
	if h == nil {
		return nil
	}
	var err error
	for _, handler := range h.handlers {
		if c, ok := handler.(io.Closer); ok {
			err = multierr.Append(err, c.Close())
		}
	}
	return err
}
