package maintenance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
	"github.com/KasumiMercury/primind-medication-reminder/internal/service/alarm"
)

const defaultRunTimeout = 2 * time.Minute

type AlarmScheduler interface {
	ScheduleAllAlarms(ctx context.Context, now time.Time) (*alarm.ScheduleResult, error)
}

// Runner periodically re-plans every alarm so that missed callbacks and
// clock changes are repaired.
type Runner struct {
	cron      *cron.Cron
	scheduler AlarmScheduler
	clock     domain.Clock
	spec      string
	timeout   time.Duration
}

func NewRunner(scheduler AlarmScheduler, clock domain.Clock, spec string) (*Runner, error) {
	if _, err := cron.ParseStandard(spec); err != nil {
		return nil, fmt.Errorf("invalid maintenance schedule %q: %w", spec, err)
	}

	return &Runner{
		cron:      cron.New(cron.WithLocation(clock.Location())),
		scheduler: scheduler,
		clock:     clock,
		spec:      spec,
		timeout:   defaultRunTimeout,
	}, nil
}

func (r *Runner) Start(ctx context.Context) error {
	if _, err := r.cron.AddFunc(r.spec, func() { r.RunOnce(ctx) }); err != nil {
		return fmt.Errorf("failed to register maintenance job: %w", err)
	}

	r.cron.Start()

	slog.InfoContext(ctx, "maintenance runner started",
		slog.String("schedule", r.spec),
		slog.Time("next_run", r.Next()),
	)
	return nil
}

// Stop halts the cron loop and waits for a running pass to finish.
func (r *Runner) Stop(ctx context.Context) {
	select {
	case <-r.cron.Stop().Done():
	case <-ctx.Done():
		slog.WarnContext(ctx, "maintenance runner stop timed out")
	}
}

func (r *Runner) Next() time.Time {
	entries := r.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}

func (r *Runner) RunOnce(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	now := r.clock.Now()
	result, err := r.scheduler.ScheduleAllAlarms(ctx, now)
	if err != nil {
		slog.ErrorContext(ctx, "maintenance scheduling pass failed",
			slog.String("error", err.Error()),
		)
		return
	}

	slog.InfoContext(ctx, "maintenance scheduling pass finished",
		slog.Time("now", now),
		slog.Bool("disabled", result.Disabled),
		slog.Int("scheduled", result.Scheduled),
		slog.Int("unchanged", result.Unchanged),
		slog.Int("cancelled", result.Cancelled),
	)
}
