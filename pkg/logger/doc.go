// Package logger builds log/slog loggers with consistent defaults and
// provides typed attribute helpers so log keys stay uniform across
// components (account_id, username, component, step).
package logger
