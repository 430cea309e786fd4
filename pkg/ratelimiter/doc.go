// Package ratelimiter provides a token bucket rate limiter with a
// pluggable storage backend.
//
// A Bucket consumes tokens from a Store per key. Keys that exhaust
// their tokens are denied until the next refill interval. The package
// ships an in-memory store suitable for single-process deployments.
//
// Usage:
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       5,
//		RefillRate:     5,
//		RefillInterval: time.Minute,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := limiter.Allow(ctx, username)
//	if err != nil {
//		return err
//	}
//	if !result.Allowed() {
//		return fmt.Errorf("try again in %v", result.RetryAfter())
//	}
package ratelimiter
