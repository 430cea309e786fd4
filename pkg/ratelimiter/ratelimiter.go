package ratelimiter

import (
	"context"
	"fmt"
	"time"
)

// Config defines the token bucket parameters.
type Config struct {
	Capacity       int           // maximum tokens the bucket holds (burst limit)
	RefillRate     int           // tokens added per refill interval
	RefillInterval time.Duration // how often tokens are added
}

func (c Config) validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	}
	if c.RefillRate <= 0 {
		return fmt.Errorf("%w: refill rate must be positive, got %d", ErrInvalidConfig, c.RefillRate)
	}
	if c.RefillInterval <= 0 {
		return fmt.Errorf("%w: refill interval must be positive, got %v", ErrInvalidConfig, c.RefillInterval)
	}
	return nil
}

// Result contains the outcome of a rate limit check.
type Result struct {
	Limit     int       // bucket capacity
	Remaining int       // tokens remaining; negative means denied
	ResetAt   time.Time // when tokens are next refilled
}

// Allowed reports whether the request may proceed.
func (r *Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter returns how long to wait before retrying.
// Returns 0 if the request was allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed() {
		return 0
	}
	return time.Until(r.ResetAt)
}

// Store defines the storage backend for bucket state.
type Store interface {
	// ConsumeTokens attempts to consume tokens for the key. A negative
	// remaining count means the request should be denied.
	ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (remaining int, resetAt time.Time, err error)

	// Reset clears the bucket state for the key.
	Reset(ctx context.Context, key string) error
}

// Bucket implements a token bucket rate limiter over a Store.
type Bucket struct {
	store  Store
	config Config
}

// NewBucket creates a token bucket limiter with the given backend.
func NewBucket(store Store, config Config) (*Bucket, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &Bucket{store: store, config: config}, nil
}

// Allow consumes a single token for the key.
func (b *Bucket) Allow(ctx context.Context, key string) (*Result, error) {
	remaining, resetAt, err := b.store.ConsumeTokens(ctx, key, 1, b.config)
	if err != nil {
		return nil, err
	}
	return &Result{Limit: b.config.Capacity, Remaining: remaining, ResetAt: resetAt}, nil
}

// Reset clears the bucket for the key, e.g. after a successful login.
func (b *Bucket) Reset(ctx context.Context, key string) error {
	return b.store.Reset(ctx, key)
}
