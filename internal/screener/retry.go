// Package screener implements the candidate screening pipeline:
// fetch, filter, classify, enrich, batch-process.
package screener

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// RetryPolicy controls pacing of upstream-failure retries.
// The zero Multiplier/Jitter values give the fixed-interval behaviour the
// pipeline defaults to; MaxAttempts 0 retries forever.
type RetryPolicy struct {
	Interval    time.Duration // delay before each retry
	MaxAttempts int           // total attempts allowed, 0 means unlimited
	Multiplier  float64       // >1 grows the delay exponentially
	MaxInterval time.Duration // cap for grown delays, 0 means uncapped
	Jitter      float64       // fraction of the delay added randomly, 0 disables
}

// Default policies match the batch job's fixed-interval behaviour.
var (
	DefaultFetchPolicy  = RetryPolicy{Interval: 10 * time.Second}
	DefaultEnrichPolicy = RetryPolicy{Interval: 5 * time.Second}
)

// Exhausted reports whether attempt (1-based count of failures so far)
// has used up the policy's budget.
func (p RetryPolicy) Exhausted(attempt int) bool {
	return p.MaxAttempts > 0 && attempt >= p.MaxAttempts
}

// Wait blocks for the delay owed after the attempt-th failure, or returns
// early when ctx is cancelled.
func (p RetryPolicy) Wait(ctx context.Context, attempt int) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(p.delay(attempt)):
		return nil
	}
}

// delay computes the backoff owed after the attempt-th failure.
func (p RetryPolicy) delay(attempt int) time.Duration {
	d := p.Interval
	if p.Multiplier > 1 {
		for i := 1; i < attempt; i++ {
			d = time.Duration(float64(d) * p.Multiplier)
			if p.MaxInterval > 0 && d > p.MaxInterval {
				d = p.MaxInterval
				break
			}
		}
	}
	if p.Jitter > 0 {
		d += time.Duration(rand.Float64() * p.Jitter * float64(d))
	}
	return d
}

// ErrRetriesExhausted wraps the last upstream error once a bounded policy
// runs out of attempts.
type ErrRetriesExhausted struct {
	Attempts int
	Last     error
}

func (e *ErrRetriesExhausted) Error() string {
	return fmt.Sprintf("retries exhausted after %d attempts: %v", e.Attempts, e.Last)
}

func (e *ErrRetriesExhausted) Unwrap() error {
	return e.Last
}
