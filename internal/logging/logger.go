// Package logging provides the runtime.Logger used across the game packages.
//
// Everything logs through the nakama runtime.Logger contract with printf-style
// messages; this package backs it with log/slog so the simulator can run
// outside a Nakama server.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"strings"

	"github.com/heroiclabs/nakama-common/runtime"
)

// Logger implements runtime.Logger on top of slog.
type Logger struct {
	handler slog.Handler
	fields  map[string]interface{}
}

var _ runtime.Logger = (*Logger)(nil)

// ParseLevel maps a config string to a slog level. Unknown values mean info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New returns a text logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *Logger {
	return &Logger{
		handler: slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}),
		fields:  map[string]interface{}{},
	}
}

// Discard returns a logger that drops everything. Handy in tests.
func Discard() *Logger {
	return New(io.Discard, slog.LevelError+1)
}

func (l *Logger) Debug(format string, v ...interface{}) { l.log(slog.LevelDebug, format, v...) }
func (l *Logger) Info(format string, v ...interface{})  { l.log(slog.LevelInfo, format, v...) }
func (l *Logger) Warn(format string, v ...interface{})  { l.log(slog.LevelWarn, format, v...) }
func (l *Logger) Error(format string, v ...interface{}) { l.log(slog.LevelError, format, v...) }

// WithField returns a child logger carrying one more field.
func (l *Logger) WithField(key string, v interface{}) runtime.Logger {
	return l.WithFields(map[string]interface{}{key: v})
}

// WithFields returns a child logger carrying the given fields.
func (l *Logger) WithFields(fields map[string]interface{}) runtime.Logger {
	merged := maps.Clone(l.fields)
	if merged == nil {
		merged = map[string]interface{}{}
	}
	maps.Copy(merged, fields)
	return &Logger{handler: l.handler, fields: merged}
}

// Fields returns a copy of the fields attached to this logger.
func (l *Logger) Fields() map[string]interface{} {
	return maps.Clone(l.fields)
}

func (l *Logger) log(level slog.Level, format string, v ...interface{}) {
	ctx := context.Background()
	if !l.handler.Enabled(ctx, level) {
		return
	}
	logger := slog.New(l.handler)
	if len(l.fields) > 0 {
		args := make([]any, 0, len(l.fields)*2)
		for _, key := range sortedKeys(l.fields) {
			args = append(args, key, l.fields[key])
		}
		logger = logger.With(args...)
	}
	logger.Log(ctx, level, fmt.Sprintf(format, v...))
}
