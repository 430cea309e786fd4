package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// AccountID records the account identifier under the key "account_id".
// If id is nil, it returns an empty Attr.
func AccountID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("account_id", id)
}

// Username records the (already lowercased) username under "username".
func Username(name string) slog.Attr {
	return slog.String("username", name)
}

// Component records the emitting component under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Step records an onboarding/redirect step under the key "step".
func Step(step string) slog.Attr {
	return slog.String("step", step)
}

// Duration records an elapsed duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
