// Package logging builds the process logger.
package logging

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"shuriken/internal/buildinfo"
)

// Config selects level, encoding and destination of log output.
type Config struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"` // console or json
	Output   string `yaml:"output"`   // stderr, stdout or a file path
}

// Default logs info and above to stderr in console encoding.
func Default() Config {
	return Config{Level: "info", Encoding: "console", Output: "stderr"}
}

// ParseLevel maps a level name to a zap level.
func ParseLevel(s string) (zapcore.Level, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(s)))); err != nil {
		return zap.InfoLevel, fmt.Errorf("log level %q: %w", s, err)
	}
	return lvl, nil
}

// New builds a logger tagged with the build version and a fresh run id.
func New(cfg Config) (*zap.Logger, error) {
	lvl, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	encoding := cfg.Encoding
	if encoding == "" {
		encoding = "console"
	}
	output := cfg.Output
	if output == "" {
		output = "stderr"
	}

	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	if encoding == "console" {
		enc.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	zc := zap.Config{
		Level:       zap.NewAtomicLevelAt(lvl),
		Development: false,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		Encoding:         encoding,
		EncoderConfig:    enc,
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	log, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return log.With(
		zap.String("version", buildinfo.Short()),
		zap.String("run", uuid.NewString()),
	), nil
}
