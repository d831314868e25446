package alarmqueue

import "context"

//go:generate mockgen -source=alarm_queue.go -destination=mock.go -package=alarmqueue

// AlarmQueue delivers a fire callback at a scheduled instant.
type AlarmQueue interface {
	// Schedule registers task. It returns domain.ErrExactAlarmUnsupported or
	// domain.ErrSchedulingPermissionDenied when the requested precision
	// cannot be granted, and domain.ErrAlarmServiceUnavailable when the
	// backend cannot be reached.
	Schedule(ctx context.Context, task *AlarmTask) (*TaskResponse, error)
	// Cancel removes a pending task. Unknown names are not an error.
	Cancel(ctx context.Context, name string) error
	SupportsExact() bool
}

// PendingChecker is implemented by queues that can report whether a task is
// still armed. In-process queues lose their tasks on restart, so a registry
// entry alone does not prove the alarm will fire.
type PendingChecker interface {
	Has(name string) bool
}
