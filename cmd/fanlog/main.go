package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/philipp01105/fanlog/core"
	"github.com/philipp01105/fanlog/handler/streamhandler"
	"github.com/philipp01105/fanlog/internal/config"
	"github.com/philipp01105/fanlog/logger"
)

const usage = `fanlog - write one log line through the configured handlers

Usage:
  fanlog [flags] <message> [key=value ...]

Flags:
  -config   Path to a YAML config file (default: stdout only)
  -level    Severity: emergency|alert|critical|error|warning|notice|info|debug
            (default: the config's level, info)

Placeholders of the form {key} in the message are replaced by the value
of the matching key=value argument.

Config:
  level: info
  stdout: true
  console: false          # errors to stderr, the rest to stdout
  file:
    path: /var/log/app.log
    max_size_mb: 100
    max_backups: 3
    max_age_days: 28
    compress: false
  bridges: [zap, zerolog, logrus, slog]

Examples:
  fanlog "service {name} started" name=api
  fanlog -level error -config fanlog.yaml "disk {disk} full" disk=sda1
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	diag := logger.New(streamhandler.New(streamhandler.Synchronized(stderr)))

	fs := flag.NewFlagSet("fanlog", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
	}

	var (
		configPath string
		levelName  string
	)
	fs.StringVar(&configPath, "config", "", "Path to YAML config file")
	fs.StringVar(&levelName, "level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if fs.NArg() < 1 {
		fs.Usage()
		return 2
	}

	if err := execute(configPath, levelName, fs.Args(), stdout, stderr); err != nil {
		_ = diag.Error("fanlog: {reason}", core.Context{"reason": err.Error()})
		return 1
	}
	return 0
}

func execute(configPath, levelName string, args []string, stdout, stderr io.Writer) (err error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if levelName == "" {
		levelName = cfg.Level
	}
	level, err := core.ParseLevel(levelName)
	if err != nil {
		return err
	}

	ctx, err := parseContext(args[1:])
	if err != nil {
		return err
	}

	log, closeAll, err := buildLogger(cfg, stdout, stderr)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeAll(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return log.Log(level, args[0], ctx)
}

// parseContext turns key=value arguments into a context. Later duplicates
// win. Values stay strings.
func parseContext(pairs []string) (core.Context, error) {
	ctx := make(core.Context, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, errors.Errorf("invalid context argument %q, want key=value", pair)
		}
		ctx[key] = value
	}
	return ctx, nil
}
