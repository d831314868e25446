package alarmqueue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
)

type BreakerConfig struct {
	MaxFailures uint32
	OpenTimeout time.Duration
}

// BreakerQueue fails fast with domain.ErrAlarmServiceUnavailable while the
// wrapped queue keeps failing.
type BreakerQueue struct {
	next AlarmQueue
	cb   *gobreaker.CircuitBreaker[*TaskResponse]
}

func NewBreakerQueue(next AlarmQueue, cfg BreakerConfig) *BreakerQueue {
	maxFailures := cfg.MaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}
	openTimeout := cfg.OpenTimeout
	if openTimeout <= 0 {
		openTimeout = 30 * time.Second
	}

	cb := gobreaker.NewCircuitBreaker[*TaskResponse](gobreaker.Settings{
		Name:        "alarm-queue",
		MaxRequests: 1,
		Timeout:     openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: func(err error) bool {
			// Precision refusals are answers from a healthy backend.
			return err == nil ||
				errors.Is(err, domain.ErrExactAlarmUnsupported) ||
				errors.Is(err, domain.ErrSchedulingPermissionDenied) ||
				errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("alarm queue circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &BreakerQueue{next: next, cb: cb}
}

func (b *BreakerQueue) SupportsExact() bool {
	return b.next.SupportsExact()
}

func (b *BreakerQueue) Schedule(ctx context.Context, task *AlarmTask) (*TaskResponse, error) {
	resp, err := b.cb.Execute(func() (*TaskResponse, error) {
		return b.next.Schedule(ctx, task)
	})
	return resp, mapBreakerError(err)
}

func (b *BreakerQueue) Cancel(ctx context.Context, name string) error {
	_, err := b.cb.Execute(func() (*TaskResponse, error) {
		return nil, b.next.Cancel(ctx, name)
	})
	return mapBreakerError(err)
}

// Has delegates to the wrapped queue. Queues that cannot tell are assumed to
// hold the task.
func (b *BreakerQueue) Has(name string) bool {
	if pc, ok := b.next.(PendingChecker); ok {
		return pc.Has(name)
	}
	return true
}

func (b *BreakerQueue) State() gobreaker.State {
	return b.cb.State()
}

func mapBreakerError(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %w", domain.ErrAlarmServiceUnavailable, err)
	}
	return err
}
