package logger

import (
	"os"
	"sync"

	"github.com/philipp01105/fanlog/core"
	"github.com/philipp01105/fanlog/handler/streamhandler"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// Initialize default logger with a stream handler on stdout
	defaultLogger = NewBuilder().
		AddHandler(streamhandler.New(streamhandler.Synchronized(os.Stdout))).
		Build()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger. A nil logger is replaced by one with
// no handlers.
func SetDefault(l *Logger) {
	if l == nil {
		l = New()
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Log logs at an arbitrary level using the default logger
func Log(level core.Level, message string, ctx core.Context) error {
	return Default().Log(level, message, ctx)
}

// Emergency logs an emergency message using the default logger
func Emergency(message string, ctx ...core.Context) error {
	return Default().Emergency(message, ctx...)
}

// Alert logs an alert message using the default logger
func Alert(message string, ctx ...core.Context) error {
	return Default().Alert(message, ctx...)
}

// Critical logs a critical message using the default logger
func Critical(message string, ctx ...core.Context) error {
	return Default().Critical(message, ctx...)
}

// Error logs an error message using the default logger
func Error(message string, ctx ...core.Context) error {
	return Default().Error(message, ctx...)
}

// Warning logs a warning message using the default logger
func Warning(message string, ctx ...core.Context) error {
	return Default().Warning(message, ctx...)
}

// Notice logs a notice message using the default logger
func Notice(message string, ctx ...core.Context) error {
	return Default().Notice(message, ctx...)
}

// Info logs an info message using the default logger
func Info(message string, ctx ...core.Context) error {
	return Default().Info(message, ctx...)
}

// Debug logs a debug message using the default logger
func Debug(message string, ctx ...core.Context) error {
	return Default().Debug(message, ctx...)
}
