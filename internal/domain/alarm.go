package domain

import "time"

type AlarmPrecision string

const (
	PrecisionExact      AlarmPrecision = "exact"
	PrecisionBestEffort AlarmPrecision = "best_effort"
)

// ScheduledAlarm is the registry record of an alarm issued to the alarm queue.
type ScheduledAlarm struct {
	Key          OccurrenceKey
	Handle       string
	MedicationID int64
	TimeOfDay    TimeOfDay
	Date         Date
	FireAt       time.Time
	Kind         OccurrenceKind
	Precision    AlarmPrecision
	ScheduledAt  time.Time
}
