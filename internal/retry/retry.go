package retry

import (
	"context"
	"fmt"
	"time"
)

// Do invokes op up to attempts times, sleeping delay between failures.
// It returns nil as soon as op succeeds. If every attempt fails it returns
// the last error wrapped with the attempt count. Cancelling ctx stops
// retrying between attempts.
func Do(ctx context.Context, attempts int, delay time.Duration, op func(context.Context) error) error {
	if attempts < 1 {
		return fmt.Errorf("retry: attempts must be at least 1, got %d", attempts)
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		if err := ctx.Err(); err != nil {
			if lastErr != nil {
				return fmt.Errorf("retry cancelled after %d attempts: %w", i, lastErr)
			}
			return err
		}

		if lastErr = op(ctx); lastErr == nil {
			return nil
		}

		if i < attempts-1 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return fmt.Errorf("retry cancelled after %d attempts: %w", i+1, lastErr)
			}
		}
	}
	return fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}
