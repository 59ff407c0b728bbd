package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/philipp01105/fanlog/core"
)

// Formatter defines the interface for log line formatters
type Formatter interface {
	// Format renders one log call into a complete, terminated line
	Format(level core.Level, message string, ctx core.Context) []byte
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without intermediate byte slice allocation.
// Implementations must issue exactly one Write per line.
type WriterFormatter interface {
	// FormatTo renders one log call and writes it to w
	FormatTo(level core.Level, message string, ctx core.Context, w io.Writer) error
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
