package crawl

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// RunLimiter spaces page fetches within a single crawl run. Every fetch,
// static or rendered, waits on it before touching the network.
type RunLimiter struct {
	limiter *rate.Limiter
}

// NewRunLimiter creates a limiter allowing one fetch per delay. A
// non-positive delay disables limiting.
func NewRunLimiter(delay time.Duration) *RunLimiter {
	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}
	return &RunLimiter{limiter: rate.NewLimiter(limit, 1)}
}

// Wait blocks until the next fetch is permitted or ctx is canceled.
func (l *RunLimiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
