// Package formatter renders log calls into text lines.
//
// Interpolate replaces {key} placeholders with context values, one
// occurrence per key, and Render adds the error header and trace frames
// when the context carries an error under the reserved "error" key.
//
// TextFormatter produces the "[<level>] <message>\n" line written by the
// stream handler. It implements both Formatter, which returns a []byte, and
// WriterFormatter, which writes directly to an io.Writer. Handlers check for
// WriterFormatter at construction time and prefer it so that each line
// reaches the sink in a single Write.
//
// A pooled bytes.Buffer is used internally. Buffers larger than 64 KiB are
// not returned to the pool to prevent a single large log line from
// permanently inflating memory usage.
package formatter
