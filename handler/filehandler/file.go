package filehandler

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/philipp01105/fanlog/core"
	"github.com/philipp01105/fanlog/formatter"
	"github.com/philipp01105/fanlog/handler"
	"github.com/philipp01105/fanlog/handler/streamhandler"
)

// FileConfig holds configuration for file handler
type FileConfig struct {
	// Filename is the path to the log file
	Filename string
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// DirMode is used when creating missing parent directories (default: 0755)
	DirMode os.FileMode
	// FileMode is used when creating the file (default: 0644)
	FileMode os.FileMode
}

// applyFileDefaults fills in zero-value fields with defaults.
func applyFileDefaults(cfg *FileConfig) {
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter()
	}
	if cfg.DirMode == 0 {
		cfg.DirMode = 0755
	}
	if cfg.FileMode == 0 {
		cfg.FileMode = 0644
	}
}

// FileHandler appends rendered log lines to a file
type FileHandler struct {
	*streamhandler.StreamHandler
	filename string
	file     *os.File
	mu       sync.Mutex
	closed   bool
}

var _ handler.Handler = (*FileHandler)(nil)

// NewFileHandler opens (or creates) the file in append mode, creating
// missing parent directories.
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	if cfg.Filename == "" {
		return nil, errors.New("filename is required")
	}
	applyFileDefaults(&cfg)

	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(cfg.Filename), cfg.DirMode); err != nil {
		return nil, errors.Wrap(err, "create log directory")
	}

	file, err := os.OpenFile(cfg.Filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, cfg.FileMode)
	if err != nil {
		return nil, errors.Wrap(err, "open log file")
	}

	return &FileHandler{
		StreamHandler: streamhandler.New(file, streamhandler.WithFormatter(cfg.Formatter)),
		filename:      cfg.Filename,
		file:          file,
	}, nil
}

// Log writes one line to the file. Writing after Close returns an error.
func (h *FileHandler) Log(level core.Level, message string, ctx core.Context) error {
	return h.StreamHandler.Log(level, message, ctx)
}

// Filename returns the path of the log file
func (h *FileHandler) Filename() string {
	return h.filename
}

// Close syncs and closes the file. It is safe to call Close multiple times.
func (h *FileHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true

	return multierr.Combine(
		errors.Wrap(h.file.Sync(), "sync log file"),
		errors.Wrap(h.file.Close(), "close log file"),
	)
}
