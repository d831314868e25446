//go:build !gcloud

package alarmqueue

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
)

func testTask(exact bool) *AlarmTask {
	occ := domain.Occurrence{
		MedicationID: 1,
		TimeOfDay:    domain.TimeOfDay{Hour: 8},
		Date:         domain.Date{Year: 2024, Month: time.March, Day: 10},
		FireAt:       time.Date(2024, time.March, 10, 7, 45, 0, 0, time.UTC),
		Kind:         domain.OccurrenceNormal,
	}
	return NewAlarmTask("occ-test", occ, exact)
}

func TestPrimindTasksClientSchedule(t *testing.T) {
	var received PrimindTaskRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/tasks/reminders" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(PrimindTaskResponse{
			Name:         "queues/reminders/tasks/" + received.Task.Name,
			ScheduleTime: received.Task.ScheduleTime,
			CreateTime:   "2024-03-10T07:00:00Z",
		})
	}))
	defer srv.Close()

	client := NewPrimindTasksClient(srv.URL, "reminders", 3, true)
	task := testTask(true)

	resp, err := client.Schedule(context.Background(), task)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Name != "queues/reminders/tasks/"+task.Name {
		t.Errorf("unexpected name %q", resp.Name)
	}
	if !resp.ScheduleTime.Equal(task.FireAt) {
		t.Errorf("schedule time: got %v, want %v", resp.ScheduleTime, task.FireAt)
	}

	if received.Task.Name != task.Name {
		t.Errorf("task name: got %q, want %q", received.Task.Name, task.Name)
	}
	if received.Task.HTTPRequest.Headers[precisionHeader] != string(domain.PrecisionExact) {
		t.Errorf("precision header: got %q", received.Task.HTTPRequest.Headers[precisionHeader])
	}

	body, err := base64.StdEncoding.DecodeString(received.Task.HTTPRequest.Body)
	if err != nil {
		t.Fatalf("body is not base64: %v", err)
	}
	var payload FirePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("failed to decode payload: %v", err)
	}
	if payload.MedicationID != 1 || payload.TimeOfDay != "08:00" || payload.Date != "2024-03-10" || payload.Key != "occ-test" {
		t.Errorf("unexpected payload %+v", payload)
	}
}

func TestPrimindTasksClientExactUnsupported(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewPrimindTasksClient(srv.URL, "default", 3, false)

	_, err := client.Schedule(context.Background(), testTask(true))
	if !errors.Is(err, domain.ErrExactAlarmUnsupported) {
		t.Fatalf("expected ErrExactAlarmUnsupported, got %v", err)
	}
	if calls.Load() != 0 {
		t.Errorf("expected no request for unsupported exact alarm, got %d", calls.Load())
	}

	resp, err := client.Schedule(context.Background(), testTask(false))
	if err != nil {
		t.Fatalf("unexpected error for best-effort alarm: %v", err)
	}
	if resp.Name != testTask(false).Name {
		t.Errorf("expected fallback to task name, got %q", resp.Name)
	}
}

func TestPrimindTasksClientStatusMapping(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		expectedErr   error
		expectedCalls int32
	}{
		{name: "forbidden is permission denied", status: http.StatusForbidden, expectedErr: domain.ErrSchedulingPermissionDenied, expectedCalls: 1},
		{name: "server error retried then unavailable", status: http.StatusServiceUnavailable, expectedErr: domain.ErrAlarmServiceUnavailable, expectedCalls: 2},
		{name: "conflict treated as scheduled", status: http.StatusConflict, expectedErr: nil, expectedCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			client := NewPrimindTasksClient(srv.URL, "default", 2, true)
			_, err := client.Schedule(context.Background(), testTask(true))

			if tt.expectedErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.expectedErr != nil && !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected %v, got %v", tt.expectedErr, err)
			}
			if calls.Load() != tt.expectedCalls {
				t.Errorf("got %d calls, want %d", calls.Load(), tt.expectedCalls)
			}
		})
	}
}

func TestPrimindTasksClientCancel(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "deleted", status: http.StatusNoContent},
		{name: "already gone", status: http.StatusNotFound},
		{name: "forbidden", status: http.StatusForbidden, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodDelete || r.URL.Path != "/tasks/occ-test-1" {
					t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
				}
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			err := NewPrimindTasksClient(srv.URL, "", 1, true).Cancel(context.Background(), "occ-test-1")
			if tt.wantErr && err == nil {
				t.Error("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
