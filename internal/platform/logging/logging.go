// Package logging builds the service's slog loggers and carries the
// request-scoped logger through context.
//
//	logger := logging.FromConfig(cfg.Log, os.Stderr, slog.String("service", "todolists-api"))
//	ctx = logging.WithLogger(ctx, logger)
//	logger = logging.FromContext(ctx)
//
// Services log failures with the operation, the entity ids and the error:
//
//	logger.ErrorContext(ctx, "todo item operation failed",
//	    slog.String("operation", "complete"),
//	    slog.Int64("item_id", id),
//	    slog.Any("error", err),
//	)
//
// Behind the logging middleware the context logger already carries
// request_id and correlation_id.
package logging

import (
	"context"
	"io"
	"log/slog"

	"github.com/jsamuelsen11/todolists-api/internal/platform/config"
)

type contextKey struct{}

// FromConfig creates a logger from the log section of the service config.
func FromConfig(cfg config.LogConfig, w io.Writer, attrs ...slog.Attr) *slog.Logger {
	return New(cfg.Level, cfg.Format, w, attrs...)
}

// New creates a logger writing to w. Level is any name slog understands
// ("debug", "INFO", "warn+2"); anything else means info. Format "text"
// selects the text handler and everything else JSON. Debug loggers add the
// source location. Every record passes through the masq redactor and carries
// attrs.
func New(level, format string, w io.Writer, attrs ...slog.Attr) *slog.Logger {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	var handler slog.Handler
	if format == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	if len(attrs) > 0 {
		handler = handler.WithAttrs(attrs)
	}

	return slog.New(handler)
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	return FromContextOr(ctx, slog.Default())
}

// FromContextOr returns the logger stored by WithLogger, or fallback when the
// context carries none.
func FromContextOr(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return fallback
}

func parseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
