// Package filehandler provides a handler that appends rendered log lines
// to a file.
//
// NewFileHandler creates missing parent directories, opens the file in
// append mode, and writes through a streamhandler.StreamHandler, so the
// line format is identical to any other stream. *os.File accepts
// concurrent writes, so no extra locking is applied.
//
// The handler never rotates, truncates, or buffers the file. Compose a
// rotating writer under streamhandler.New when rotation is needed.
package filehandler
