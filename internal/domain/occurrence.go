package domain

import "time"

type OccurrenceKind string

const (
	OccurrenceNormal    OccurrenceKind = "normal"
	OccurrenceImmediate OccurrenceKind = "immediate"
	OccurrenceNextDay   OccurrenceKind = "next_day"
)

func (k OccurrenceKind) String() string {
	return string(k)
}

// OccurrenceKey identifies one (medication, time of day, date) reminder.
type OccurrenceKey string

func (k OccurrenceKey) String() string {
	return string(k)
}

// Occurrence is one planned reminder firing.
type Occurrence struct {
	MedicationID int64
	TimeOfDay    TimeOfDay
	// Date is the calendar date of the dose, not of the firing instant.
	Date         Date
	FireAt       time.Time
	Kind         OccurrenceKind
}
