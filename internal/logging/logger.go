// Package logging provides config-driven categorized logging for t21dir.
// The interactive browser owns the terminal, so logs go to a file; with no
// file configured nothing is written.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"t21dir/internal/config"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot   Category = "boot"   // Startup, config, CLI
	CategoryLoader Category = "loader" // Three-table load
	CategorySource Category = "source" // Backend requests and queries
	CategoryStore  Category = "store"  // Dispatched actions
	CategoryBrowse Category = "browse" // Interactive browser events
)

// Logger hands out one named zap logger per category.
type Logger struct {
	base *zap.Logger
	cfg  config.LoggingConfig
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{base: zap.NewNop()}
}

// New builds a JSON file logger from cfg. verbose forces debug level.
func New(cfg config.LoggingConfig, verbose bool) (*Logger, error) {
	if cfg.File == "" {
		return &Logger{base: zap.NewNop(), cfg: cfg}, nil
	}

	level, err := config.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = "debug"
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.OutputPaths = []string{cfg.File}
	zcfg.ErrorOutputPaths = []string{cfg.File}
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	base, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return &Logger{base: base, cfg: cfg}, nil
}

// For returns the logger of a category, or a no-op logger when the
// category is disabled in config.
func (l *Logger) For(cat Category) *zap.Logger {
	if !l.cfg.IsCategoryEnabled(string(cat)) {
		return zap.NewNop()
	}
	return l.base.Named(string(cat))
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.base.Sync()
}
