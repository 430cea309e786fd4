package ratelimiter

import "errors"

var (
	// ErrInvalidConfig indicates the bucket configuration is invalid.
	ErrInvalidConfig = errors.New("invalid rate limiter config")

	// ErrInvalidTokenCount indicates a non-positive token count was requested.
	ErrInvalidTokenCount = errors.New("token count must be positive")

	// ErrContextCancelled indicates the operation was cancelled by context.
	ErrContextCancelled = errors.New("context cancelled")
)
