package main

import (
	"io"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/philipp01105/fanlog/handler"
	"github.com/philipp01105/fanlog/handler/consolehandler"
	"github.com/philipp01105/fanlog/handler/logrushandler"
	"github.com/philipp01105/fanlog/handler/sloghandler"
	"github.com/philipp01105/fanlog/handler/streamhandler"
	"github.com/philipp01105/fanlog/handler/zaphandler"
	"github.com/philipp01105/fanlog/handler/zerologhandler"
	"github.com/philipp01105/fanlog/internal/config"
	"github.com/philipp01105/fanlog/logger"
)

// buildLogger registers handlers in config order: stdout, console, file,
// then bridges. Bridges write JSON to stdout. The returned func releases
// the rotating file.
func buildLogger(cfg *config.Config, stdout, stderr io.Writer) (*logger.Logger, func() error, error) {
	var closers []func() error
	closeAll := func() error {
		var err error
		for _, c := range closers {
			err = multierr.Append(err, c())
		}
		return err
	}

	stdout = streamhandler.Synchronized(stdout)
	b := logger.NewBuilder()

	if cfg.Stdout {
		b.AddHandler(streamhandler.New(stdout))
	}

	if cfg.Console {
		b.AddHandler(consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
			Stdout: stdout,
			Stderr: stderr,
		}))
	}

	if cfg.File.Enabled() {
		sink := newRotatingFile(cfg.File)
		closers = append(closers, sink.Close)
		b.AddHandler(streamhandler.New(streamhandler.Synchronized(sink)))
	}

	for _, name := range cfg.Bridges {
		h, closer, err := newBridge(name, stdout)
		if err != nil {
			return nil, nil, multierr.Append(err, closeAll())
		}
		if closer != nil {
			closers = append(closers, closer)
		}
		b.AddHandler(h)
	}

	return b.Build(), closeAll, nil
}

func newRotatingFile(cfg config.FileConfig) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
}

// newBridge creates the named bridge handler writing JSON to w
func newBridge(name string, w io.Writer) (handler.Handler, func() error, error) {
	switch name {
	case config.BridgeZap:
		enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		// the io core writes through, so no Sync is needed on exit
		l := zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), zap.DebugLevel))
		return zaphandler.New(l), nil, nil
	case config.BridgeZerolog:
		l := zerolog.New(w).With().Timestamp().Logger().Level(zerolog.DebugLevel)
		return zerologhandler.New(l), nil, nil
	case config.BridgeLogrus:
		l := logrus.New()
		l.SetOutput(w)
		l.SetFormatter(&logrus.JSONFormatter{})
		l.SetLevel(logrus.DebugLevel)
		return logrushandler.New(l), nil, nil
	case config.BridgeSlog:
		return sloghandler.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})), nil, nil
	default:
		return nil, nil, errors.Errorf("unknown bridge %q", name)
	}
}
