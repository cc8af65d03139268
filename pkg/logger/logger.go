// Package logger provides a thin structured-logging facade over zap.
//
// Components take a [Logger] via constructor arguments or functional
// options and scope it with With("component", name). The process-wide
// default is installed once in main via [SetDefault] and reached through
// [Default] by code that was not handed an explicit logger.
package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging contract used across the application.
// Keys and values alternate in keysAndValues, zap-sugar style.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)

	// With returns a child logger with the given key/value pairs
	// attached to every message.
	With(keysAndValues ...any) Logger
}

type zapLogger struct {
	s *zap.SugaredLogger
}

var _ Logger = (*zapLogger)(nil)

func (l *zapLogger) Debug(msg string, kv ...any) { l.s.Debugw(msg, kv...) }
func (l *zapLogger) Info(msg string, kv ...any)  { l.s.Infow(msg, kv...) }
func (l *zapLogger) Warn(msg string, kv ...any)  { l.s.Warnw(msg, kv...) }
func (l *zapLogger) Error(msg string, kv ...any) { l.s.Errorw(msg, kv...) }

func (l *zapLogger) With(kv ...any) Logger {
	return &zapLogger{s: l.s.With(kv...)}
}

// MustProduction builds a production logger (JSON, ISO8601 timestamps,
// info level). Panics if the underlying zap build fails.
func MustProduction() Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return &zapLogger{s: zap.Must(cfg.Build()).Sugar()}
}

// MustDevelopment builds a human-readable console logger at debug level.
// Panics if the underlying zap build fails.
func MustDevelopment() Logger {
	return &zapLogger{s: zap.Must(zap.NewDevelopment()).Sugar()}
}

// NewNop returns a logger that discards everything. Useful in tests.
func NewNop() Logger {
	return &zapLogger{s: zap.NewNop().Sugar()}
}

var (
	mu  sync.RWMutex
	def Logger = NewNop()
)

// Default returns the process-wide default logger.
func Default() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return def
}

// SetDefault installs the process-wide default logger.
func SetDefault(l Logger) {
	if l == nil {
		return
	}
	mu.Lock()
	def = l
	mu.Unlock()
}

// SyncDefault flushes any buffered log entries on the default logger.
// Call it from a defer in main.
func SyncDefault() {
	if zl, ok := Default().(*zapLogger); ok {
		_ = zl.s.Sync()
	}
}

// Fatal logs a message on the default logger and exits the process.
func Fatal(msg string, keysAndValues ...any) {
	if zl, ok := Default().(*zapLogger); ok {
		zl.s.Fatalw(msg, keysAndValues...)
		return
	}
	Default().Error(msg, keysAndValues...)
}
