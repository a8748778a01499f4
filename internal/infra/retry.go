package infra

import (
	"context"
	"time"
)

const (
	maxStoreAttempts = 3
	retryBaseDelay   = 100 * time.Millisecond
)

// Retry re-runs fn for transient store failures only, with short exponential
// backoff. Conflicts and client errors surface immediately; the caller owns
// those.
func Retry(ctx context.Context, fn func() error) error {
	var err error
	delay := retryBaseDelay

	for attempt := 0; attempt < maxStoreAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}

		err = fn()
		if err == nil || !IsTransient(err) {
			return err
		}
	}
	return err
}
