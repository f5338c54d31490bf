package logging

import (
	"context"
	"log/slog"
)

// Info logs an info message on the context-scoped logger, or fallback.
func Info(ctx context.Context, fallback *slog.Logger, msg string, args ...any) {
	if logger := FromContext(ctx, fallback); logger != nil {
		logger.InfoContext(ctx, msg, args...)
	}
}

// Warn logs a warning on the context-scoped logger, or fallback.
func Warn(ctx context.Context, fallback *slog.Logger, msg string, args ...any) {
	if logger := FromContext(ctx, fallback); logger != nil {
		logger.WarnContext(ctx, msg, args...)
	}
}

// Error logs an error on the context-scoped logger, or fallback.
func Error(ctx context.Context, fallback *slog.Logger, msg string, err error, args ...any) {
	logger := FromContext(ctx, fallback)
	if logger == nil {
		return
	}
	if err != nil {
		args = append(args, "error", err)
	}
	logger.ErrorContext(ctx, msg, args...)
}
