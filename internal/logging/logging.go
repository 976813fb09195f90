// Package logging adapts zap to the rmapi.Logger interface.
package logging

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is an rmapi.Logger backed by zap.
type Logger struct {
	zap *zap.Logger
}

// New builds a production logger writing to stderr. verbose lowers the level
// to debug, which also shows HTTP traffic and fetched pages.
func New(verbose bool) (*Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return NewFromZap(logger), nil
}

// NewFromZap wraps an existing zap logger. A nil logger discards everything.
func NewFromZap(logger *zap.Logger) *Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Logger{zap: logger}
}

// Zap returns the underlying zap logger.
func (l *Logger) Zap() *zap.Logger {
	return l.zap
}

// Enabled reports whether entries at level are written.
func (l *Logger) Enabled(level zapcore.Level) bool {
	return l.zap.Core().Enabled(level)
}

func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.zap.Debug(msg, zapFields(fields)...)
}

func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.zap.Info(msg, zapFields(fields)...)
}

func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.zap.Warn(msg, zapFields(fields)...)
}

func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.zap.Error(msg, zapFields(fields)...)
}

// Sync flushes buffered entries. Errors from syncing a terminal are ignored.
func (l *Logger) Sync() {
	_ = l.zap.Sync()
}

// zapFields converts a field map in key order so output is deterministic.
func zapFields(fields map[string]interface{}) []zap.Field {
	if len(fields) == 0 {
		return nil
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	converted := make([]zap.Field, 0, len(keys))

	for _, key := range keys {
		value := fields[key]
		if err, ok := value.(error); ok {
			converted = append(converted, zap.NamedError(key, err))

			continue
		}

		converted = append(converted, zap.Any(key, value))
	}

	return converted
}
