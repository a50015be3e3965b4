package pipeline

import (
	"context"
	"time"
)

// DelayClass names the reason the pipeline is waiting. Every sleep the
// pipeline takes is attributed to exactly one class, which is what makes the
// rate-limit compliance testable.
type DelayClass string

const (
	// DelayPagination is the wait before requesting a continuation page;
	// page tokens are not immediately valid on the Places API.
	DelayPagination DelayClass = "pagination"
	// DelayRateLimit is the fixed wait after an OVER_QUERY_LIMIT response.
	DelayRateLimit DelayClass = "rate_limit"
	// DelayRetry is the linear-backoff wait between detail fetch attempts.
	DelayRetry DelayClass = "retry"
	// DelayBatch is the wait between consecutive batches.
	DelayBatch DelayClass = "batch"
)

// DelayPolicy maps delay classes to base durations. DelayRetry scales
// linearly with the attempt number; the other classes are fixed.
type DelayPolicy struct {
	Pagination time.Duration
	RateLimit  time.Duration
	Retry      time.Duration
	Batch      time.Duration
}

// DefaultDelayPolicy returns the production delays.
func DefaultDelayPolicy() DelayPolicy {
	return DelayPolicy{
		Pagination: 2 * time.Second,
		RateLimit:  2 * time.Second,
		Retry:      time.Second,
		Batch:      time.Second,
	}
}

// For returns the base duration of a delay class.
func (p DelayPolicy) For(class DelayClass) time.Duration {
	switch class {
	case DelayPagination:
		return p.Pagination
	case DelayRateLimit:
		return p.RateLimit
	case DelayRetry:
		return p.Retry
	case DelayBatch:
		return p.Batch
	default:
		return 0
	}
}

// Sleeper waits for a duration attributed to a delay class. Tests substitute
// a recording implementation so runs take no wall-clock time and can assert
// which class was waited on.
type Sleeper interface {
	Sleep(ctx context.Context, class DelayClass, d time.Duration) error
}

// realSleeper blocks on a timer, honoring context cancellation.
type realSleeper struct{}

// NewSleeper returns the wall-clock Sleeper.
func NewSleeper() Sleeper {
	return realSleeper{}
}

func (realSleeper) Sleep(ctx context.Context, _ DelayClass, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	select {
	case <-ctx.Done():
		timer.Stop()
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
