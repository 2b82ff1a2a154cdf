// Package logging provides named, leveled loggers for the library and CLI.
package logging

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// --------------------------------------------------------------------------
// Shared zap core
// --------------------------------------------------------------------------

var (
	mu      sync.Mutex
	level   = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	root    *zap.Logger
	loggers = map[string]*zap.SugaredLogger{}
)

// build creates the shared root logger. Called lazily under mu.
func build() *zap.Logger {
	if root != nil {
		return root
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = level
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true

	logger, err := cfg.Build()
	if err != nil {
		// The production config cannot fail to build with these settings;
		// fall back to a no-op logger rather than panic in a library.
		logger = zap.NewNop()
	}
	root = logger
	return root
}

// --------------------------------------------------------------------------
// Logger Factory
// --------------------------------------------------------------------------

// GetLogger returns the logger for the given component name. Loggers are
// cached, so repeated calls with the same name return the same instance.
func GetLogger(component string) *zap.SugaredLogger {
	mu.Lock()
	defer mu.Unlock()

	if logger, ok := loggers[component]; ok {
		return logger
	}
	logger := build().Named(component).Sugar()
	loggers[component] = logger
	return logger
}

// SetLevel changes the level of all loggers, existing and future.
// Accepted levels: debug, info, warn, error.
func SetLevel(name string) error {
	parsed, err := ParseLevel(name)
	if err != nil {
		return err
	}
	level.SetLevel(parsed)
	return nil
}

// ParseLevel converts a string level to a zapcore.Level.
func ParseLevel(name string) (zapcore.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warning", "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InvalidLevel, fmt.Errorf("invalid log level: %s. must be one of debug, info, warn, error", name)
	}
}
