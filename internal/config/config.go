// Package config loads the YAML configuration of the fanlog command.
package config

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/philipp01105/fanlog/core"
)

// Bridge names accepted in Config.Bridges
const (
	BridgeZap     = "zap"
	BridgeZerolog = "zerolog"
	BridgeLogrus  = "logrus"
	BridgeSlog    = "slog"
)

// Config selects the handlers the command registers, in this order:
// stdout, console, file, then bridges in list order.
type Config struct {
	// Level used when the -level flag is absent
	Level string `yaml:"level" validate:"fanlog_level"`
	// Stdout writes every line to standard output
	Stdout bool `yaml:"stdout"`
	// Console splits lines between stdout and stderr by severity
	Console bool `yaml:"console"`
	// File appends lines to a size-rotated file when Path is set
	File FileConfig `yaml:"file"`
	// Bridges forwards every call to the named third-party loggers
	Bridges []string `yaml:"bridges" validate:"unique,dive,oneof=zap zerolog logrus slog"`
}

// FileConfig configures the rotating file sink
type FileConfig struct {
	Path       string `yaml:"path"`
	MaxSizeMB  int    `yaml:"max_size_mb" validate:"gte=0"`
	MaxBackups int    `yaml:"max_backups" validate:"gte=0"`
	MaxAgeDays int    `yaml:"max_age_days" validate:"gte=0"`
	Compress   bool   `yaml:"compress"`
}

// Enabled reports whether a file path is configured
func (f FileConfig) Enabled() bool {
	return f.Path != ""
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Level:  core.InfoLevel.String(),
		Stdout: true,
		File: FileConfig{
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load reads the YAML file at path on top of Default and validates the
// result. An empty path returns the defaults. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: read %s", path)
	}

	if err = Decode(data, cfg); err != nil {
		return nil, errors.WithMessagef(err, "config: %s", path)
	}
	if err = Validate(cfg); err != nil {
		return nil, errors.WithMessagef(err, "config: %s", path)
	}
	return cfg, nil
}

// Decode unmarshals YAML into cfg, keeping the existing value of every key
// the document does not mention. An empty document is not an error.
func Decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrap(err, "decode yaml")
	}
	return nil
}

var (
	validate *validator.Validate
	once     sync.Once
)

// Validate checks cfg against its struct tags
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("nil config")
	}

	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// registration only fails for an empty tag or a nil func
		_ = validate.RegisterValidation("fanlog_level", func(fl validator.FieldLevel) bool {
			_, err := core.ParseLevel(fl.Field().String())
			return err == nil
		})
	})

	if err := validate.Struct(cfg); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}
