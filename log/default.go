package log

import (
	"context"
	"log/slog"
	"os"
)

// DefaultContextProvider returns the [context.Context] used by the
// non-Context logging methods and package-level functions when no context
// is supplied explicitly. It defaults to [context.TODO] and may be
// reassigned to thread a process-wide context (for example one carrying a
// trace ID) through every call site that does not pass its own context.
var DefaultContextProvider = context.TODO

// defaultLog is the package-level [Logger] used by the package-level
// logging functions below. It writes to [os.Stderr] using the package
// defaults until reconfigured with [Config].
var defaultLog = Make(os.Stderr)

// Config reconfigures the package-level default logger using the provided
// options and returns it. Call it once during program startup, typically
// from a CLI's root command, before any package-level logging function is
// used from other goroutines.
func Config(opts ...Option) Logger {
	defaultLog = Make(os.Stderr, opts...)

	return defaultLog
}

// Default returns the package-level default [Logger].
func Default() Logger { return defaultLog }

// Trace logs a message at Trace level using the default logger.
func Trace(msg string, attrs ...slog.Attr) { defaultLog.Trace(msg, attrs...) }

// TraceContext logs a message at Trace level with ctx using the default
// logger.
func TraceContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	defaultLog.TraceContext(ctx, msg, attrs...)
}

// Debug logs a message at Debug level using the default logger.
func Debug(msg string, attrs ...slog.Attr) { defaultLog.Debug(msg, attrs...) }

// DebugContext logs a message at Debug level with ctx using the default
// logger.
func DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	defaultLog.DebugContext(ctx, msg, attrs...)
}

// Info logs a message at Info level using the default logger.
func Info(msg string, attrs ...slog.Attr) { defaultLog.Info(msg, attrs...) }

// InfoContext logs a message at Info level with ctx using the default
// logger.
func InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	defaultLog.InfoContext(ctx, msg, attrs...)
}

// Warn logs a message at Warn level using the default logger.
func Warn(msg string, attrs ...slog.Attr) { defaultLog.Warn(msg, attrs...) }

// WarnContext logs a message at Warn level with ctx using the default
// logger.
func WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	defaultLog.WarnContext(ctx, msg, attrs...)
}

// Error logs a message at Error level using the default logger.
func Error(msg string, attrs ...slog.Attr) { defaultLog.Error(msg, attrs...) }

// ErrorContext logs a message at Error level with ctx using the default
// logger.
func ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	defaultLog.ErrorContext(ctx, msg, attrs...)
}
