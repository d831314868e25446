package alarmqueue

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func localTask(name string, fireAt time.Time) *AlarmTask {
	return &AlarmTask{
		Name:   name,
		FireAt: fireAt,
		Exact:  true,
		Payload: FirePayload{
			Key:          "occ-test",
			MedicationID: 1,
			TimeOfDay:    "08:00",
			Date:         "2024-03-10",
			Kind:         "normal",
		},
	}
}

func TestLocalQueueFires(t *testing.T) {
	q := NewLocalQueue(context.Background())
	t.Cleanup(func() { _ = q.Close() })

	fired := make(chan FirePayload, 1)
	q.SetHandler(func(_ context.Context, payload FirePayload) error {
		fired <- payload
		return nil
	})

	_, err := q.Schedule(context.Background(), localTask("a", time.Now().Add(10*time.Millisecond)))
	require.NoError(t, err)

	select {
	case payload := <-fired:
		assert.Equal(t, int64(1), payload.MedicationID)
		assert.Equal(t, "08:00", payload.TimeOfDay)
	case <-time.After(2 * time.Second):
		t.Fatal("alarm did not fire")
	}

	assert.Eventually(t, func() bool { return q.Pending() == 0 }, time.Second, 5*time.Millisecond)
}

func TestLocalQueueCancel(t *testing.T) {
	q := NewLocalQueue(context.Background())
	t.Cleanup(func() { _ = q.Close() })

	var calls atomic.Int32
	q.SetHandler(func(context.Context, FirePayload) error {
		calls.Add(1)
		return nil
	})

	_, err := q.Schedule(context.Background(), localTask("b", time.Now().Add(50*time.Millisecond)))
	require.NoError(t, err)
	require.NoError(t, q.Cancel(context.Background(), "b"))
	require.NoError(t, q.Cancel(context.Background(), "missing"))

	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, calls.Load())
	assert.Zero(t, q.Pending())
}

func TestLocalQueueScheduleIsIdempotent(t *testing.T) {
	q := NewLocalQueue(context.Background())
	t.Cleanup(func() { _ = q.Close() })

	fireAt := time.Now().Add(time.Hour)
	_, err := q.Schedule(context.Background(), localTask("c", fireAt))
	require.NoError(t, err)
	resp, err := q.Schedule(context.Background(), localTask("c", fireAt))
	require.NoError(t, err)

	assert.Equal(t, "c", resp.Name)
	assert.Equal(t, 1, q.Pending())
	assert.True(t, q.SupportsExact())
}

func TestLocalQueueRetriesHandler(t *testing.T) {
	q := NewLocalQueue(context.Background())
	t.Cleanup(func() { _ = q.Close() })

	var calls atomic.Int32
	done := make(chan struct{})
	q.SetHandler(func(context.Context, FirePayload) error {
		if calls.Add(1) < 2 {
			return errors.New("presenter busy")
		}
		close(done)
		return nil
	})

	_, err := q.Schedule(context.Background(), localTask("d", time.Now()))
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handler was not retried")
	}
	assert.Equal(t, int32(2), calls.Load())
}

func TestLocalQueueHas(t *testing.T) {
	q := NewLocalQueue(context.Background())
	t.Cleanup(func() { _ = q.Close() })

	_, err := q.Schedule(context.Background(), localTask("e", time.Now().Add(time.Hour)))
	require.NoError(t, err)

	assert.True(t, q.Has("e"))
	assert.False(t, q.Has("missing"))

	require.NoError(t, q.Close())
	assert.False(t, q.Has("e"))
}
