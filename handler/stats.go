package handler

import (
	"go.uber.org/atomic"
)

// Stats tracks handler write statistics
type Stats struct {
	// ProcessedTotal counts lines written successfully
	ProcessedTotal atomic.Uint64
	// FailedTotal counts lines the sink rejected
	FailedTotal atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	s.ProcessedTotal.Inc()
}

// IncrementFailed atomically increments the failed counter
func (s *Stats) IncrementFailed() {
	s.FailedTotal.Inc()
}

// Observe records the outcome of one write
func (s *Stats) Observe(err error) {
	if err != nil {
		s.IncrementFailed()
		return
	}
	s.IncrementProcessed()
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	s.ProcessedTotal.Store(0)
	s.FailedTotal.Store(0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	ProcessedTotal uint64
	FailedTotal    uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		ProcessedTotal: s.ProcessedTotal.Load(),
		FailedTotal:    s.FailedTotal.Load(),
	}
}

// StatsProvider is implemented by handlers that expose write statistics
type StatsProvider interface {
	Stats() Snapshot
}
