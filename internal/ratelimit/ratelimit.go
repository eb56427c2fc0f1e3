// Package ratelimit provides a keyed token-bucket rate limiter.
// Each key (typically a client IP) gets an independent bucket.
package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// KeyedLimiter manages one token bucket per key.
type KeyedLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// New creates a keyed limiter allowing rps requests per second with the
// given burst per key.
func New(rps float64, burst int) *KeyedLimiter {
	return &KeyedLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(rps),
		burst:    burst,
	}
}

// Allow reports whether a request for key may proceed right now.
func (kl *KeyedLimiter) Allow(key string) bool {
	return kl.limiter(key).Allow()
}

// Wait blocks until a request for key is allowed or ctx is canceled.
func (kl *KeyedLimiter) Wait(ctx context.Context, key string) error {
	return kl.limiter(key).Wait(ctx)
}

func (kl *KeyedLimiter) limiter(key string) *rate.Limiter {
	kl.mu.RLock()
	lim, ok := kl.limiters[key]
	kl.mu.RUnlock()
	if ok {
		return lim
	}

	kl.mu.Lock()
	defer kl.mu.Unlock()
	if lim, ok = kl.limiters[key]; ok {
		return lim
	}
	lim = rate.NewLimiter(kl.limit, kl.burst)
	kl.limiters[key] = lim
	return lim
}
