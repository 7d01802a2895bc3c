// Package ratelimiter throttles repeated operations to a fixed rate.
package ratelimiter

import (
	"log"
	"time"
)

// RateLimiterInterface limits how often an operation may run.
type RateLimiterInterface interface {
	WaitIfNeeded()
}

// RateLimiter caps the number of operations per interval by sleeping when
// the cap is reached. It is meant for single-goroutine batch loops.
type RateLimiter struct {
	limit     int           // calls allowed per interval
	interval  time.Duration // window after which the counter resets
	count     int
	lastReset time.Time
}

// NewRateLimiter creates a new RateLimiter.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
	}
}

// WaitIfNeeded blocks until the current window has room for one more call.
func (rl *RateLimiter) WaitIfNeeded() {
	now := time.Now()
	// Reset the counter once the interval has passed
	if now.Sub(rl.lastReset) >= rl.interval {
		rl.count = 0
		rl.lastReset = now
	}

	rl.count++
	if rl.count > rl.limit {
		sleep := rl.interval - now.Sub(rl.lastReset)
		if sleep > 0 {
			log.Printf("[RATE LIMIT] hit %d calls, sleeping for %v...", rl.limit, sleep)
			time.Sleep(sleep)
		}
		// Reset
		rl.count = 1
		rl.lastReset = time.Now()
	}
}
