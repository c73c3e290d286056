package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	defaultLogger *slog.Logger
	once          sync.Once
)

// Initialize sets up the structured logger. Output goes to a rotating log
// file rather than stdout, because stdout belongs to the TUI while the
// program runs.
func Initialize() {
	once.Do(func() {
		handler := slog.NewJSONHandler(logWriter(), &slog.HandlerOptions{
			Level:     slog.LevelInfo,
			AddSource: false,
		})
		defaultLogger = slog.New(handler)
	})
}

// logWriter returns the destination for log output. The path comes from
// the log.file config key, defaulting to ~/.config/sniffscope/sniffscope.log.
func logWriter() io.Writer {
	path := viper.GetString("log.file")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return os.Stderr
		}
		path = filepath.Join(home, ".config", "sniffscope", "sniffscope.log")
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     14, // days
	}
}

// Get returns the default structured logger
func Get() *slog.Logger {
	Initialize() // Always call Initialize, sync.Once ensures it only runs once
	return defaultLogger
}

// Info logs an info level message
func Info(msg string, args ...any) {
	Get().Info(msg, args...)
}

// InfoContext logs an info level message with context
func InfoContext(ctx context.Context, msg string, args ...any) {
	Get().InfoContext(ctx, msg, args...)
}

// Warn logs a warning level message
func Warn(msg string, args ...any) {
	Get().Warn(msg, args...)
}

// WarnContext logs a warning level message with context
func WarnContext(ctx context.Context, msg string, args ...any) {
	Get().WarnContext(ctx, msg, args...)
}

// Error logs an error level message
func Error(msg string, args ...any) {
	Get().Error(msg, args...)
}

// ErrorContext logs an error level message with context
func ErrorContext(ctx context.Context, msg string, args ...any) {
	Get().ErrorContext(ctx, msg, args...)
}

// Debug logs a debug level message
func Debug(msg string, args ...any) {
	Get().Debug(msg, args...)
}

// DebugContext logs a debug level message with context
func DebugContext(ctx context.Context, msg string, args ...any) {
	Get().DebugContext(ctx, msg, args...)
}

// With returns a logger with the given attributes
func With(args ...any) *slog.Logger {
	return Get().With(args...)
}
