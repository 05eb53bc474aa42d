// Package logging provides config-driven categorized logging for tokenfield.
// The terminal UI owns stdout, so logs go to a file, and only in debug mode.
// When debug_mode is false every category logger is a no-op.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"tokenfield/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot   Category = "boot"   // Startup, config resolution
	CategoryField  Category = "field"  // Token commits and removals
	CategoryUI     Category = "ui"     // bubbletea model, layout, input
	CategoryConfig Category = "config" // Config load and hot reload
	CategoryCLI    Category = "cli"    // Command execution
)

var (
	mu      sync.RWMutex
	root    = zap.NewNop()
	cfg     config.LoggingConfig
	loggers = make(map[Category]*zap.Logger)
	logPath string
)

// Initialize sets up logging from cfg. dir overrides cfg.Dir when non-empty.
// With debug mode off this is a silent no-op and every category stays
// disabled. Calling Initialize again replaces the previous setup.
func Initialize(c config.LoggingConfig, dir string) error {
	mu.Lock()
	defer mu.Unlock()

	_ = root.Sync()
	root = zap.NewNop()
	loggers = make(map[Category]*zap.Logger)
	logPath = ""
	cfg = c

	if !c.DebugMode {
		return nil
	}

	if dir == "" {
		dir = c.Dir
	}
	if dir == "" {
		cache, err := os.UserCacheDir()
		if err != nil {
			return fmt.Errorf("failed to resolve log directory: %w", err)
		}
		dir = filepath.Join(cache, "tokenfield")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	file := c.File
	if file == "" {
		file = "tokenfield.log"
	}
	path := filepath.Join(dir, file)

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(parseLevel(c.Level))
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}
	zc.Sampling = nil
	if c.Format == "console" || c.Format == "text" {
		zc.Encoding = "console"
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	root = l
	logPath = path

	root.Named(string(CategoryBoot)).Info("logging initialized",
		zap.String("path", path),
		zap.String("level", c.Level),
		zap.Int("categories", len(c.Categories)),
	)
	return nil
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Get returns (or creates) the logger for a category.
// Returns a no-op logger if debug mode is disabled or the category is off.
func Get(category Category) *zap.Logger {
	mu.RLock()
	if l, ok := loggers[category]; ok {
		mu.RUnlock()
		return l
	}
	enabled := cfg.IsCategoryEnabled(string(category))
	mu.RUnlock()

	if !enabled {
		return zap.NewNop()
	}

	mu.Lock()
	defer mu.Unlock()

	// Double-check after acquiring write lock
	if l, ok := loggers[category]; ok {
		return l
	}
	l := root.Named(string(category))
	loggers[category] = l
	return l
}

// IsDebugMode returns whether debug logging is enabled
func IsDebugMode() bool {
	mu.RLock()
	defer mu.RUnlock()
	return cfg.DebugMode
}

// Path returns the active log file, or "" when logging is off.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}

// Sync flushes buffered log entries.
func Sync() error {
	mu.RLock()
	l := root
	mu.RUnlock()
	return l.Sync()
}
