package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format represents logger output format.
type Format string

const (
	// FormatJSON outputs structured logs for aggregation systems.
	FormatJSON Format = "json"
	// FormatText outputs human-readable logs for development.
	FormatText Format = "text"
)

// Config holds logger settings sourced from the environment.
type Config struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format Format `env:"LOG_FORMAT" envDefault:"json"`
}

type settings struct {
	level  slog.Level
	format Format
	output io.Writer
	attrs  []slog.Attr
}

// Option configures logger creation.
type Option func(*settings)

// WithLevel sets the minimum level of emitted records.
func WithLevel(l slog.Level) Option {
	return func(s *settings) { s.level = l }
}

// WithFormat sets output format. Panics for unknown formats so
// misconfiguration fails at startup, not at first log call.
func WithFormat(f Format) Option {
	return func(s *settings) {
		switch f {
		case FormatJSON, FormatText:
			s.format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

// WithOutput sets a custom output destination; nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(s *settings) {
		if w != nil {
			s.output = w
		}
	}
}

// WithAttr adds static attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(s *settings) {
		s.attrs = append(s.attrs, attrs...)
	}
}

// New creates a slog.Logger with the given options. Defaults: info
// level, JSON format, stdout.
func New(opts ...Option) *slog.Logger {
	s := &settings{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}

	handlerOpts := &slog.HandlerOptions{Level: s.level}

	var handler slog.Handler
	switch s.format {
	case FormatText:
		handler = slog.NewTextHandler(s.output, handlerOpts)
	default:
		handler = slog.NewJSONHandler(s.output, handlerOpts)
	}

	if len(s.attrs) > 0 {
		handler = handler.WithAttrs(s.attrs)
	}
	return slog.New(handler)
}

// NewFromConfig creates a logger from environment-backed configuration.
func NewFromConfig(cfg Config, opts ...Option) *slog.Logger {
	base := []Option{WithLevel(parseLevel(cfg.Level))}
	if cfg.Format != "" {
		base = append(base, WithFormat(cfg.Format))
	}
	return New(append(base, opts...)...)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
