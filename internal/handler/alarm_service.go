package handler

import (
	"context"
	"time"

	"github.com/KasumiMercury/primind-medication-reminder/internal/service/alarm"
)

//go:generate mockgen -source=alarm_service.go -destination=alarm_service_mock.go -package=handler

// AlarmService is the part of the alarm scheduler exposed over HTTP.
type AlarmService interface {
	ScheduleAllAlarms(ctx context.Context, now time.Time) (*alarm.ScheduleResult, error)
	CancelAllAlarms(ctx context.Context) (int, error)
	RescheduleMedication(ctx context.Context, medicationID int64) (*alarm.MedicationResult, error)
	CancelMedicationAlarms(ctx context.Context, medicationID int64, times []string) (int, error)
	OnAlarmFired(ctx context.Context, medicationID int64, timeOfDay string, firedAt time.Time) (*alarm.FireResult, error)
	PreviewOccurrences(ctx context.Context, now time.Time) ([]alarm.PlannedOccurrence, error)
	PreviewMedication(ctx context.Context, medicationID int64, now time.Time) ([]alarm.PlannedOccurrence, error)
}
