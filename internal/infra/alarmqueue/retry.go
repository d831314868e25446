package alarmqueue

import (
	"context"
	"math"
	"time"
)

const defaultMaxRetries = 3

func backoff(attempt int) time.Duration {
	return time.Duration(math.Pow(2, float64(attempt-1))) * 100 * time.Millisecond
}

func sleepContext(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// permanentError stops the retry loop.
type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }
