// Package benchmark holds micro-benchmarks for fanlog and comparisons
// against zap, zerolog, logrus and log/slog.
package benchmark

import (
	"github.com/philipp01105/fanlog/core"
	"github.com/philipp01105/fanlog/handler"
)

type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Log(_ core.Level, message string, _ core.Context) error {
	_ = len(message)
	return nil
}
