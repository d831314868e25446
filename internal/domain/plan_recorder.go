package domain

import (
	"context"
	"time"
)

type PlanRecord struct {
	RunID        string
	MedicationID int64
	TimeOfDay    string
	Date         string
	Kind         string
	FireAt       time.Time
	Outcome      string
}

type PlanRecorder interface {
	RecordPlan(ctx context.Context, records []PlanRecord) error
	Close() error
}
