package alarmqueue

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// FireHandler receives the payload of an alarm when it goes off.
type FireHandler func(ctx context.Context, payload FirePayload) error

// LocalQueue keeps alarms as in-process timers. It is used when no task
// backend is configured; pending alarms do not survive a restart.
type LocalQueue struct {
	ctx context.Context

	mu      sync.Mutex
	timers  map[string]*time.Timer
	handler FireHandler
}

func NewLocalQueue(ctx context.Context) *LocalQueue {
	return &LocalQueue{
		ctx:    ctx,
		timers: make(map[string]*time.Timer),
	}
}

func (q *LocalQueue) SetHandler(handler FireHandler) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.handler = handler
}

func (q *LocalQueue) SupportsExact() bool {
	return true
}

func (q *LocalQueue) Schedule(ctx context.Context, task *AlarmTask) (*TaskResponse, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	resp := &TaskResponse{
		Name:         task.Name,
		ScheduleTime: task.FireAt,
		CreateTime:   time.Now(),
	}

	if _, exists := q.timers[task.Name]; exists {
		return resp, nil
	}

	delay := max(time.Until(task.FireAt), 0)
	name, payload := task.Name, task.Payload
	q.timers[name] = time.AfterFunc(delay, func() {
		q.fire(name, payload)
	})

	slog.DebugContext(ctx, "local alarm armed",
		slog.String("task_name", name),
		slog.Duration("delay", delay),
	)

	return resp, nil
}

func (q *LocalQueue) Cancel(_ context.Context, name string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if timer, ok := q.timers[name]; ok {
		timer.Stop()
		delete(q.timers, name)
	}
	return nil
}

// Has reports whether a timer for name is still armed.
func (q *LocalQueue) Has(name string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	_, ok := q.timers[name]
	return ok
}

func (q *LocalQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.timers)
}

func (q *LocalQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for name, timer := range q.timers {
		timer.Stop()
		delete(q.timers, name)
	}
	return nil
}

func (q *LocalQueue) fire(name string, payload FirePayload) {
	q.mu.Lock()
	delete(q.timers, name)
	handler := q.handler
	q.mu.Unlock()

	if handler == nil {
		slog.WarnContext(q.ctx, "local alarm fired without handler",
			slog.String("task_name", name),
		)
		return
	}

	var lastErr error
	for attempt := 1; attempt <= defaultMaxRetries; attempt++ {
		if attempt > 1 {
			if err := sleepContext(q.ctx, backoff(attempt-1)); err != nil {
				return
			}
		}

		if lastErr = handler(q.ctx, payload); lastErr == nil {
			return
		}

		slog.WarnContext(q.ctx, "local alarm handler failed",
			slog.String("task_name", name),
			slog.Int("attempt", attempt),
			slog.String("error", lastErr.Error()),
		)
	}

	slog.ErrorContext(q.ctx, "local alarm dropped after retries",
		slog.String("task_name", name),
		slog.String("error", lastErr.Error()),
	)
}
