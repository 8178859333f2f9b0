// Package logger provides the process-wide structured logger.
package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu  sync.RWMutex
	log *zap.SugaredLogger
)

// Initialize sets up the global logger. With debug enabled the logger uses
// the human-readable development encoder at debug level; otherwise JSON at
// info level.
func Initialize(debug bool) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	built, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		// Construction only fails on invalid config; fall back to a
		// no-op logger rather than crashing before main runs.
		built = zap.NewNop()
	}

	mu.Lock()
	log = built.Sugar()
	mu.Unlock()
}

// Sync flushes any buffered log entries.
func Sync() {
	if l := get(); l != nil {
		_ = l.Sync()
	}
}

func get() *zap.SugaredLogger {
	mu.RLock()
	l := log
	mu.RUnlock()
	if l == nil {
		Initialize(false)
		mu.RLock()
		l = log
		mu.RUnlock()
	}
	return l
}

// Debug logs at debug level.
func Debug(args ...any) { get().Debug(args...) }

// Debugf logs a formatted message at debug level.
func Debugf(format string, args ...any) { get().Debugf(format, args...) }

// Info logs at info level.
func Info(args ...any) { get().Info(args...) }

// Infof logs a formatted message at info level.
func Infof(format string, args ...any) { get().Infof(format, args...) }

// Warn logs at warn level.
func Warn(args ...any) { get().Warn(args...) }

// Warnf logs a formatted message at warn level.
func Warnf(format string, args ...any) { get().Warnf(format, args...) }

// Error logs at error level.
func Error(args ...any) { get().Error(args...) }

// Errorf logs a formatted message at error level.
func Errorf(format string, args ...any) { get().Errorf(format, args...) }

// Fatalf logs a formatted message and exits.
func Fatalf(format string, args ...any) { get().Fatalf(format, args...) }
