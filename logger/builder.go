package logger

import (
	"github.com/philipp01105/fanlog/handler"
)

// Builder accumulates handlers for a Logger. It is not safe for concurrent
// use.
type Builder struct {
	handlers []handler.Handler
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{}
}

// AddHandler appends h to the handler list and returns the same builder
func (b *Builder) AddHandler(h handler.Handler) *Builder {
	b.handlers = append(b.handlers, h)
	return b
}

// Build creates a Logger with the handlers added so far. The builder keeps
// its list, and handlers added later do not affect Loggers already built.
func (b *Builder) Build() *Logger {
	return New(b.handlers...)
}
