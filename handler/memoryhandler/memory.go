package memoryhandler

import (
	"sync"

	"github.com/philipp01105/fanlog/core"
	"github.com/philipp01105/fanlog/handler"
)

// Record is one log call captured by a Recorder
type Record struct {
	Level   core.Level
	Message string
	Context core.Context
}

// Recorder accumulates log calls in memory. It is safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	records []Record
	err     error
}

var _ handler.Handler = (*Recorder)(nil)

// New creates an empty Recorder
func New() *Recorder {
	return &Recorder{}
}

// Log appends the call to the recorded list. The context map is stored as
// received, not copied. When a failure has been injected with FailWith the
// call is still recorded and the injected error is returned.
func (r *Recorder) Log(level core.Level, message string, ctx core.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, Record{Level: level, Message: message, Context: ctx})
	return r.err
}

// FailWith makes every subsequent Log call return err. Pass nil to stop
// failing.
func (r *Recorder) FailWith(err error) {
	r.mu.Lock()
	r.err = err
	r.mu.Unlock()
}

// Records returns a copy of the recorded calls in arrival order
func (r *Recorder) Records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}

// Len returns the number of recorded calls
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// Reset drops all recorded calls
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.records = nil
	r.mu.Unlock()
}
