package middleware

import (
	"sync"
	"time"
)

// rateBucket tracks admitted requests for one client identity within the
// current fixed window.
type rateBucket struct {
	count       int
	windowStart time.Time
}

// RateLimiter admits a fixed number of requests per identity per window.
// Buckets live for the process lifetime; a bucket is replaced when its
// window has elapsed.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rateBucket
	window  time.Duration
	max     int
	now     func() time.Time
}

// NewRateLimiter creates a fixed-window rate limiter.
func NewRateLimiter(window time.Duration, max int) *RateLimiter {
	return &RateLimiter{
		buckets: make(map[string]*rateBucket),
		window:  window,
		max:     max,
		now:     time.Now,
	}
}

// Admit reports whether a request from the given identity is allowed. The
// first request of a new or expired window always is; at the threshold the
// request is rejected without incrementing the counter.
func (rl *RateLimiter) Admit(identity string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	bucket, ok := rl.buckets[identity]
	if !ok || now.Sub(bucket.windowStart) >= rl.window {
		rl.buckets[identity] = &rateBucket{count: 1, windowStart: now}
		return true
	}

	if bucket.count >= rl.max {
		return false
	}

	bucket.count++
	return true
}
