package docsearch

import (
	"context"
	"time"
)

// DefaultRetryAttempts is the default retry budget for transient failures.
const DefaultRetryAttempts = 3

// DefaultRetryBaseDelay is the default delay before the first retry.
// Subsequent retries double it.
const DefaultRetryBaseDelay = 1 * time.Second

// BackoffDelays returns the exponential delay sequence used between retry
// attempts: baseDelay, 2×baseDelay, 4×baseDelay, ... one entry per retry.
func BackoffDelays(maxAttempts int, baseDelay time.Duration) []time.Duration {
	if maxAttempts < 1 {
		return nil
	}
	delays := make([]time.Duration, maxAttempts)
	for i := range delays {
		delays[i] = baseDelay << i
	}
	return delays
}

// Retry runs op and retries it on transient failure up to maxAttempts more
// times, sleeping baseDelay×2^(n-1) before retry n. Non-transient errors
// (see Transient) and the final transient error are returned as-is, so the
// caller always sees the operation's own terminal error kind.
func Retry(ctx context.Context, maxAttempts int, baseDelay time.Duration, op func(context.Context) error) error {
	delays := BackoffDelays(maxAttempts, baseDelay)

	var err error
	for attempt := 0; ; attempt++ {
		err = op(ctx)
		if err == nil || !Transient(err) {
			return err
		}
		if attempt >= len(delays) {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}
}
