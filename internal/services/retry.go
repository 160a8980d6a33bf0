package services

import (
	"context"
	"errors"
	"time"
)

// unavailableBudget caps how many times a call failing with storage
// unavailability is attempted; contention gets the full attempt budget.
const unavailableBudget = 2

// Retrier re-runs ledger calls that failed transiently. It is a plain bounded
// loop with a linearly increasing delay between attempts; terminal errors
// (validation, not-found, limit) surface immediately.
type Retrier struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

func NewRetrier(maxAttempts int, baseDelay time.Duration) Retrier {
	return Retrier{MaxAttempts: maxAttempts, BaseDelay: baseDelay}
}

func (r Retrier) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	attempts := r.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error
	unavailable := 0
	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if !Retryable(lastErr) {
			return lastErr
		}
		if errors.Is(lastErr, ErrStorageUnavailable) {
			unavailable++
			if unavailable >= unavailableBudget {
				return lastErr
			}
		}
		if attempt == attempts {
			break
		}
		delay := r.BaseDelay * time.Duration(attempt)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return lastErr
}
