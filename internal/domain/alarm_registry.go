package domain

import "context"

//go:generate mockgen -source=alarm_registry.go -destination=alarm_registry_mock.go -package=domain

// AlarmRegistry tracks every alarm handed to the alarm queue so it can be
// replaced or cancelled later by key.
type AlarmRegistry interface {
	Save(ctx context.Context, alarm *ScheduledAlarm) error
	Get(ctx context.Context, key OccurrenceKey) (*ScheduledAlarm, error)
	Delete(ctx context.Context, key OccurrenceKey) error
	ListByMedication(ctx context.Context, medicationID int64) ([]*ScheduledAlarm, error)
	ListAll(ctx context.Context) ([]*ScheduledAlarm, error)
}
