// Package slog configures the log/slog loggers used throughout quicgate.
package slog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LogLevelNone is a log level that disables all logging.
const LogLevelNone slog.Level = slog.LevelError + 1

// ComponentKey is the slog attribute key used to identify the component.
const ComponentKey = "component"

const logEnv = "QUICGATE_LOG_LEVEL"

// parseLogLevel parses a log level string into a slog.Level.
func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return LogLevelNone, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level: %s", s)
	}
}

type levelFilterHandler struct {
	slog.Handler
	Level slog.Level
}

var _ slog.Handler = &levelFilterHandler{}

func (h *levelFilterHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.Level
}

func (h *levelFilterHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.Handler.Handle(ctx, r)
}

func (h *levelFilterHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelFilterHandler{Handler: h.Handler.WithAttrs(attrs), Level: h.Level}
}

func (h *levelFilterHandler) WithGroup(name string) slog.Handler {
	return &levelFilterHandler{Handler: h.Handler.WithGroup(name), Level: h.Level}
}

// NewLogger creates a logger writing to w, filtered to the level configured
// in the QUICGATE_LOG_LEVEL environment variable. Logging is disabled if the
// variable is not set.
func NewLogger(w io.Writer) *slog.Logger {
	level, err := parseLogLevel(os.Getenv(logEnv))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse %s: %v\n", logEnv, err)
		level = LogLevelNone
	}
	return slog.New(&levelFilterHandler{
		Handler: slog.NewTextHandler(w, &slog.HandlerOptions{
			// allow all levels through, filtering is done by levelFilterHandler
			Level: slog.LevelDebug,
		}),
		Level: level,
	})
}
