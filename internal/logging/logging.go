package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Environment variables consulted for defaults when flags are not given.
const (
	EnvLevel  = "MS_LOG_LEVEL"
	EnvFormat = "MS_LOG_FORMAT"
)

// DefaultLevel keeps conversions quiet unless a lower level is asked for.
const DefaultLevel = slog.LevelWarn

type loggerKey struct{}

// New builds a logger writing to w. An empty level means DefaultLevel and an
// empty format means text.
func New(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unsupported log format: %s", format)
	}
}

// ParseLevel maps debug, info, warn or error (any case, optional offset such
// as "info+2") to a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	level = strings.TrimSpace(level)
	if level == "" {
		return DefaultLevel, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return lvl, nil
}

// WithContext returns a copy of ctx carrying l.
func WithContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// FromContext returns the logger carried by ctx, falling back to slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, _ := ctx.Value(loggerKey{}).(*slog.Logger); l != nil {
			return l
		}
	}
	return slog.Default()
}
