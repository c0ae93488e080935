package gemini

import (
	"context"
	"sync"
	"time"
)

// tokenBucket is a small rate limiter with an injected clock so tests can
// drive it deterministically. One token is one provider call.
type tokenBucket struct {
	mu     sync.Mutex
	tokens float64
	cap    float64
	refill float64 // tokens per second
	last   time.Time
	nowFn  func() time.Time
}

func newTokenBucket(capacity int, refillPerSecond float64, nowFn func() time.Time) *tokenBucket {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &tokenBucket{
		tokens: float64(capacity),
		cap:    float64(capacity),
		refill: refillPerSecond,
		last:   nowFn(),
		nowFn:  nowFn,
	}
}

// take removes one token if available, otherwise returns how long the
// caller must wait before retrying.
func (b *tokenBucket) take() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.nowFn()
	elapsed := now.Sub(b.last).Seconds()
	if elapsed > 0 {
		b.tokens += elapsed * b.refill
		if b.tokens > b.cap {
			b.tokens = b.cap
		}
		b.last = now
	}
	if b.tokens >= 1 {
		b.tokens--
		return 0
	}
	missing := 1 - b.tokens
	return time.Duration(missing / b.refill * float64(time.Second))
}

// Wait blocks until a token is available or the context is done.
func (b *tokenBucket) Wait(ctx context.Context) error {
	for {
		wait := b.take()
		if wait <= 0 {
			return nil
		}
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
