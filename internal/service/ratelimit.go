package service

import (
	"sync"
	"time"
)

// TokenBucket is an in-memory per-key token bucket limiter, used to
// throttle login attempts per email address. It is safe for concurrent
// use; buckets idle for twice the cleanup interval are dropped.
type TokenBucket struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	rate     float64 // tokens added per second
	capacity float64 // maximum tokens
	sweep    time.Duration
}

type bucket struct {
	tokens float64
	last   time.Time
}

// NewTokenBucket creates a limiter that allows up to capacity calls per
// key in a burst, refilling at rate tokens per second. A background
// goroutine sweeps idle buckets every sweep interval.
func NewTokenBucket(rate, capacity float64, sweep time.Duration) *TokenBucket {
	tb := &TokenBucket{
		buckets:  make(map[string]*bucket),
		rate:     rate,
		capacity: capacity,
		sweep:    sweep,
	}
	go tb.cleanup()
	return tb
}

// Allow reports whether the given key may proceed, consuming one token.
func (tb *TokenBucket) Allow(key string) bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	b, ok := tb.buckets[key]
	if !ok {
		b = &bucket{tokens: tb.capacity, last: time.Now()}
		tb.buckets[key] = b
	}

	now := time.Now()
	elapsed := now.Sub(b.last).Seconds()
	b.tokens = min(b.tokens+elapsed*tb.rate, tb.capacity)
	b.last = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

func (tb *TokenBucket) cleanup() {
	ticker := time.NewTicker(tb.sweep)
	for range ticker.C {
		tb.mu.Lock()
		cutoff := time.Now().Add(-2 * tb.sweep)
		for key, b := range tb.buckets {
			if b.last.Before(cutoff) {
				delete(tb.buckets, key)
			}
		}
		tb.mu.Unlock()
	}
}
