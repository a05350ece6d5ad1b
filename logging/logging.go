// Package logging builds the zap loggers used by the command-line tools
// and examples. The engine itself only accepts a *zap.Logger and never
// builds one.
package logging

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

var (
	// ErrUnknownLevel indicates a level name zap does not recognize.
	ErrUnknownLevel = errors.New("logging: unknown level")

	// ErrUnknownFormat indicates a format other than json or console.
	ErrUnknownFormat = errors.New("logging: unknown format")
)

// New builds a logger writing to stdout. level is debug, info, warn or
// error (empty means info); format is json (production encoder, ISO8601
// "timestamp" key) or console (development encoder).
func New(level, format string) (*zap.Logger, error) {
	return NewWithOutput(level, format, "stdout")
}

// NewWithOutput is New with explicit zap output paths.
func NewWithOutput(level, format string, paths ...string) (*zap.Logger, error) {
	lvl := zapcore.InfoLevel
	if strings.TrimSpace(level) != "" {
		var err error
		if lvl, err = zapcore.ParseLevel(level); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
		}
	}

	var cfg zap.Config
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON, "":
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	case FormatConsole:
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	if len(paths) > 0 {
		cfg.OutputPaths = paths
	}
	cfg.ErrorOutputPaths = []string{"stderr"}

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build: %w", err)
	}

	return l.With(zap.String("component", "cinemath")), nil
}
