package ratelimiter

import (
	"context"
	"sync"
	"time"
)

const cleanupInterval = 5 * time.Minute

type bucketState struct {
	tokens     int
	lastRefill time.Time
	lastAccess time.Time
}

// MemoryStore is an in-memory Store backed by a mutex-protected map.
// Stale buckets are evicted by a background goroutine; call Close to
// stop it.
type MemoryStore struct {
	mu          sync.Mutex
	buckets     map[string]*bucketState
	stopCleanup chan struct{}
	closeOnce   sync.Once
}

// NewMemoryStore creates an in-memory bucket store.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		buckets:     make(map[string]*bucketState),
		stopCleanup: make(chan struct{}),
	}
	go s.cleanupLoop()
	return s
}

func (s *MemoryStore) ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (int, time.Time, error) {
	if err := ctx.Err(); err != nil {
		return 0, time.Time{}, ErrContextCancelled
	}
	if tokens <= 0 {
		return 0, time.Time{}, ErrInvalidTokenCount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	b, ok := s.buckets[key]
	if !ok {
		b = &bucketState{tokens: config.Capacity, lastRefill: now}
		s.buckets[key] = b
	} else {
		s.refill(b, now, config)
	}
	b.lastAccess = now

	resetAt := b.lastRefill.Add(config.RefillInterval)
	if b.tokens < tokens {
		return b.tokens - tokens, resetAt, nil
	}
	b.tokens -= tokens
	return b.tokens, resetAt, nil
}

func (s *MemoryStore) Reset(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return ErrContextCancelled
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.buckets, key)
	return nil
}

// Close stops the background cleanup goroutine.
func (s *MemoryStore) Close() {
	s.closeOnce.Do(func() {
		close(s.stopCleanup)
	})
}

func (s *MemoryStore) refill(b *bucketState, now time.Time, config Config) {
	elapsed := now.Sub(b.lastRefill)
	if elapsed < config.RefillInterval {
		return
	}
	intervals := int(elapsed / config.RefillInterval)
	b.tokens += intervals * config.RefillRate
	if b.tokens > config.Capacity {
		b.tokens = config.Capacity
	}
	b.lastRefill = b.lastRefill.Add(time.Duration(intervals) * config.RefillInterval)
}

func (s *MemoryStore) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stopCleanup:
			return
		case <-ticker.C:
			s.evictStale()
		}
	}
}

func (s *MemoryStore) evictStale() {
	cutoff := time.Now().Add(-cleanupInterval)
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, b := range s.buckets {
		if b.lastAccess.Before(cutoff) {
			delete(s.buckets, key)
		}
	}
}
