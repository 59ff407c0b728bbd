package formatter

import (
	"bytes"
	"io"

	"github.com/philipp01105/fanlog/core"
)

// TextFormatter renders log calls as "[<level>] <message>\n" lines
type TextFormatter struct{}

// NewTextFormatter creates a new text formatter
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Format formats a log call as text
func (f *TextFormatter) Format(level core.Level, message string, ctx core.Context) []byte {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(level, message, ctx, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result
}

// FormatTo formats a log call and writes it to the writer in one Write
func (f *TextFormatter) FormatTo(level core.Level, message string, ctx core.Context, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(level, message, ctx, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// formatToBuffer writes the formatted line into the given buffer
func (f *TextFormatter) formatToBuffer(level core.Level, message string, ctx core.Context, buf *bytes.Buffer) {
	buf.WriteByte('[')
	buf.WriteString(string(level))
	buf.WriteString("] ")
	buf.WriteString(Render(message, ctx))
	buf.WriteByte('\n')
}
