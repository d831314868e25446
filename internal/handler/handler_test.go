package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
	"github.com/KasumiMercury/primind-medication-reminder/internal/service/alarm"
	"github.com/KasumiMercury/primind-medication-reminder/internal/testutil"
)

type testEnv struct {
	router      *gin.Engine
	alarms      *MockAlarmService
	medications *domain.MockMedicationRepository
	settings    *domain.MockSettingsRepository
	clock       *testutil.Clock
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	env := &testEnv{
		alarms:      NewMockAlarmService(ctrl),
		medications: domain.NewMockMedicationRepository(ctrl),
		settings:    domain.NewMockSettingsRepository(ctrl),
		clock:       testutil.NewClock(time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC)),
	}

	routes := &Routes{
		Alarms:      NewAlarmHandler(env.alarms, env.clock),
		Medications: NewMedicationHandler(env.medications, env.alarms, env.clock),
		Settings:    NewSettingsHandler(env.settings, env.alarms, env.clock),
		Occurrences: NewOccurrenceHandler(env.alarms, env.clock),
	}
	env.router = gin.New()
	routes.Register(env.router)
	return env
}

func (e *testEnv) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestHandleFire(t *testing.T) {
	env := newTestEnv(t)

	env.alarms.EXPECT().
		OnAlarmFired(gomock.Any(), int64(1), "08:00", env.clock.Now()).
		Return(&alarm.FireResult{Outcome: alarm.FirePresented, MedicationID: 1, Date: "2026-03-10"}, nil)

	w := env.do(http.MethodPost, "/alarms/fire", map[string]any{
		"key":           "k",
		"medication_id": 1,
		"time_of_day":   "08:00",
		"date":          "2026-03-10",
		"kind":          "normal",
	})

	require.Equal(t, http.StatusOK, w.Code)
	var got alarm.FireResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, alarm.FirePresented, got.Outcome)
	assert.Equal(t, int64(1), got.MedicationID)
}

func TestHandleFireErrorAsksForRedelivery(t *testing.T) {
	env := newTestEnv(t)

	env.alarms.EXPECT().
		OnAlarmFired(gomock.Any(), int64(1), "08:00", gomock.Any()).
		Return(nil, errors.New("presenter down"))

	w := env.do(http.MethodPost, "/alarms/fire", map[string]any{"medication_id": 1, "time_of_day": "08:00"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandleFireInvalidTimeIsNotRedelivered(t *testing.T) {
	env := newTestEnv(t)

	env.alarms.EXPECT().
		OnAlarmFired(gomock.Any(), int64(1), "8am", gomock.Any()).
		Return(nil, fmt.Errorf("parse %q: %w", "8am", domain.ErrInvalidTimeFormat))

	w := env.do(http.MethodPost, "/alarms/fire", map[string]any{"medication_id": 1, "time_of_day": "8am"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	var got ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "validation_error", got.Error)
}

func TestHandleFireRejectsInvalidPayload(t *testing.T) {
	tests := []struct {
		name string
		body any
	}{
		{name: "missing medication", body: map[string]any{"time_of_day": "08:00"}},
		{name: "missing time", body: map[string]any{"medication_id": 4}},
		{name: "wrong type", body: map[string]any{"medication_id": "four", "time_of_day": "08:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			w := env.do(http.MethodPost, "/alarms/fire", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandleScheduleAllWithVirtualNow(t *testing.T) {
	env := newTestEnv(t)
	want := time.Date(2026, 3, 11, 6, 30, 0, 0, time.UTC)

	env.alarms.EXPECT().
		ScheduleAllAlarms(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, now time.Time) (*alarm.ScheduleResult, error) {
			assert.True(t, now.Equal(want))
			return &alarm.ScheduleResult{RunID: "run", Planned: 2, Scheduled: 2}, nil
		})

	w := env.do(http.MethodPost, "/alarms/schedule?from=2026-03-11T06:30:00Z", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var got alarm.ScheduleResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 2, got.Scheduled)
}

func TestHandleScheduleAllPartialFailure(t *testing.T) {
	env := newTestEnv(t)

	env.alarms.EXPECT().
		ScheduleAllAlarms(gomock.Any(), env.clock.Now()).
		Return(&alarm.ScheduleResult{Planned: 2, Scheduled: 1, Failed: 1}, errors.New("medication 2: boom"))

	w := env.do(http.MethodPost, "/alarms/schedule", nil)

	assert.Equal(t, http.StatusMultiStatus, w.Code)
}

func TestHandleScheduleAllInvalidFrom(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/alarms/schedule?from=tomorrow", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleCancelAll(t *testing.T) {
	env := newTestEnv(t)

	env.alarms.EXPECT().CancelAllAlarms(gomock.Any()).Return(3, nil)

	w := env.do(http.MethodDelete, "/alarms", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"cancelled":3}`, w.Body.String())
}

func TestHandleCancelAllUnavailable(t *testing.T) {
	env := newTestEnv(t)

	env.alarms.EXPECT().CancelAllAlarms(gomock.Any()).Return(0, domain.ErrAlarmServiceUnavailable)

	w := env.do(http.MethodDelete, "/alarms", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandleCancelMedication(t *testing.T) {
	t.Run("listed times", func(t *testing.T) {
		env := newTestEnv(t)
		env.alarms.EXPECT().
			CancelMedicationAlarms(gomock.Any(), int64(5), []string{"08:00", "20:00"}).
			Return(2, nil)

		w := env.do(http.MethodDelete, "/medications/5/alarms", map[string]any{"times": []string{"08:00", "20:00"}})

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"cancelled":2}`, w.Body.String())
	})

	t.Run("empty body cancels everything", func(t *testing.T) {
		env := newTestEnv(t)
		env.alarms.EXPECT().
			CancelMedicationAlarms(gomock.Any(), int64(5), gomock.Nil()).
			Return(4, nil)

		w := env.do(http.MethodDelete, "/medications/5/alarms", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.do(http.MethodDelete, "/medications/abc/alarms", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleScheduleMedicationNotFound(t *testing.T) {
	env := newTestEnv(t)

	env.alarms.EXPECT().
		RescheduleMedication(gomock.Any(), int64(9)).
		Return(nil, domain.ErrMedicationNotFound)

	w := env.do(http.MethodPost, "/medications/9/alarms", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMedicationCreateSchedulesAlarms(t *testing.T) {
	env := newTestEnv(t)

	env.medications.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, med *domain.Medication) error {
			assert.Equal(t, "Aspirin", med.Name)
			assert.Equal(t, []string{"08:00"}, med.ScheduleTimes)
			assert.True(t, med.IsActive)
			med.ID = 7
			return nil
		})
	env.alarms.EXPECT().
		RescheduleMedication(gomock.Any(), int64(7)).
		Return(&alarm.MedicationResult{MedicationID: 7, Scheduled: 1}, nil)

	w := env.do(http.MethodPost, "/medications", map[string]any{
		"name":           "Aspirin",
		"schedule_times": []string{"08:00"},
	})

	require.Equal(t, http.StatusCreated, w.Code)
	var got medicationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, int64(7), got.ID)
}

func TestMedicationCreateValidationError(t *testing.T) {
	env := newTestEnv(t)

	env.medications.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(domain.ErrInvalidMedication)

	w := env.do(http.MethodPost, "/medications", map[string]any{"name": ""})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMedicationUpdateCancelsOldTimesBeforeRescheduling(t *testing.T) {
	env := newTestEnv(t)

	existing := &domain.Medication{ID: 3, Name: "Aspirin", ScheduleTimes: []string{"08:00"}, IsActive: true}

	gomock.InOrder(
		env.medications.EXPECT().GetByID(gomock.Any(), int64(3)).Return(existing, nil),
		env.medications.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, med *domain.Medication) error {
				assert.Equal(t, []string{"09:00"}, med.ScheduleTimes)
				return nil
			}),
		env.alarms.EXPECT().
			CancelMedicationAlarms(gomock.Any(), int64(3), []string{"08:00"}).
			Return(1, nil),
		env.alarms.EXPECT().
			RescheduleMedication(gomock.Any(), int64(3)).
			Return(&alarm.MedicationResult{MedicationID: 3}, nil),
	)

	w := env.do(http.MethodPut, "/medications/3", map[string]any{
		"name":           "Aspirin",
		"schedule_times": []string{"09:00"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	var got medicationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, []string{"09:00"}, got.ScheduleTimes)
	assert.True(t, got.IsActive)
}

func TestMedicationDelete(t *testing.T) {
	t.Run("cancels alarms and deletes", func(t *testing.T) {
		env := newTestEnv(t)
		gomock.InOrder(
			env.alarms.EXPECT().CancelMedicationAlarms(gomock.Any(), int64(3), gomock.Nil()).Return(2, nil),
			env.medications.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil),
		)

		w := env.do(http.MethodDelete, "/medications/3", nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		env := newTestEnv(t)
		env.alarms.EXPECT().CancelMedicationAlarms(gomock.Any(), int64(3), gomock.Nil()).Return(0, nil)
		env.medications.EXPECT().Delete(gomock.Any(), int64(3)).Return(domain.ErrMedicationNotFound)

		w := env.do(http.MethodDelete, "/medications/3", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestMedicationList(t *testing.T) {
	env := newTestEnv(t)

	env.medications.EXPECT().List(gomock.Any()).Return([]*domain.Medication{
		{ID: 1, Name: "Aspirin", ScheduleTimes: []string{"08:00"}},
		{ID: 2, Name: "Vitamin D"},
	}, nil)

	w := env.do(http.MethodGet, "/medications", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var got []medicationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, []string{}, got[1].ScheduleTimes)
}

func TestSettingsPutReplansEverything(t *testing.T) {
	env := newTestEnv(t)

	gomock.InOrder(
		env.settings.EXPECT().
			Save(gomock.Any(), &domain.Settings{NotificationsEnabled: false, LeadMinutes: 10, UserName: domain.DefaultUserName}).
			Return(nil),
		env.alarms.EXPECT().
			ScheduleAllAlarms(gomock.Any(), env.clock.Now()).
			Return(&alarm.ScheduleResult{Disabled: true, Cancelled: 4}, nil),
	)

	w := env.do(http.MethodPut, "/settings", map[string]any{
		"notifications_enabled": false,
		"lead_minutes":          10,
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"cancelled":4`)
}

func TestSettingsPutRejectsInvalidLead(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPut, "/settings", map[string]any{
		"notifications_enabled": true,
		"lead_minutes":          -5,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSettingsGet(t *testing.T) {
	env := newTestEnv(t)
	s := domain.DefaultSettings()

	env.settings.EXPECT().Get(gomock.Any()).Return(&s, nil)

	w := env.do(http.MethodGet, "/settings", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"notifications_enabled":true,"lead_minutes":15,"user_name":"User","dark_mode":false}`, w.Body.String())
}

func plannedFixture() []alarm.PlannedOccurrence {
	return []alarm.PlannedOccurrence{
		{
			Occurrence: domain.Occurrence{
				MedicationID: 1,
				TimeOfDay:    domain.TimeOfDay{Hour: 8, Minute: 0},
				Date:         domain.Date{Year: 2026, Month: time.March, Day: 10},
				FireAt:       time.Date(2026, 3, 10, 7, 45, 0, 0, time.UTC),
				Kind:         domain.OccurrenceNormal,
			},
			Key:            "key-1",
			MedicationName: "Aspirin",
		},
	}
}

func TestMedicationOccurrences(t *testing.T) {
	env := newTestEnv(t)

	env.alarms.EXPECT().
		PreviewMedication(gomock.Any(), int64(1), env.clock.Now()).
		Return(plannedFixture(), nil)

	w := env.do(http.MethodGet, "/medications/1/occurrences", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var got []occurrenceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "key-1", got[0].Key)
	assert.Equal(t, "08:00", got[0].TimeOfDay)
	assert.Equal(t, "2026-03-10", got[0].Date)
	assert.Equal(t, "normal", got[0].Kind)
}

func TestCalendarExport(t *testing.T) {
	env := newTestEnv(t)

	env.alarms.EXPECT().
		PreviewOccurrences(gomock.Any(), env.clock.Now()).
		Return(plannedFixture(), nil)

	w := env.do(http.MethodGet, "/occurrences.ics", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/calendar"))

	cal, err := ical.NewDecoder(strings.NewReader(w.Body.String())).Decode()
	require.NoError(t, err)

	var events []*ical.Component
	for _, child := range cal.Children {
		if child.Name == ical.CompEvent {
			events = append(events, child)
		}
	}
	require.Len(t, events, 1)
	assert.Equal(t, "key-1@medication-reminder", events[0].Props.Get(ical.PropUID).Value)
	assert.Equal(t, "Aspirin 08:00", events[0].Props.Get(ical.PropSummary).Value)
	assert.Equal(t, "20260310T074500Z", events[0].Props.Get(ical.PropDateTimeStart).Value)
}
