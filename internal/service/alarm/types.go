package alarm

import (
	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
	"github.com/KasumiMercury/primind-medication-reminder/internal/service/planner"
)

type issueOutcome string

const (
	outcomeScheduled       issueOutcome = "scheduled"
	outcomeReplaced        issueOutcome = "replaced"
	outcomeUnchanged       issueOutcome = "unchanged"
	outcomeAlreadyNotified issueOutcome = "already_notified"
	outcomeDenied          issueOutcome = "denied"
	outcomeFailed          issueOutcome = "failed"
)

type ScheduleResult struct {
	RunID       string             `json:"run_id,omitempty"`
	Disabled    bool               `json:"disabled"`
	Cancelled   int                `json:"cancelled"`
	Planned     int                `json:"planned"`
	Scheduled   int                `json:"scheduled"`
	Unchanged   int                `json:"unchanged"`
	Skipped     int                `json:"skipped"`
	Failed      int                `json:"failed"`
	Medications []MedicationResult `json:"medications,omitempty"`
}

type MedicationResult struct {
	MedicationID  int64                  `json:"medication_id"`
	Planned       int                    `json:"planned"`
	Scheduled     int                    `json:"scheduled"`
	Replaced      int                    `json:"replaced"`
	Unchanged     int                    `json:"unchanged"`
	Skipped       int                    `json:"skipped"`
	Failed        int                    `json:"failed"`
	ParseFailures []planner.ParseFailure `json:"-"`
}

func (r *MedicationResult) record(outcome issueOutcome) {
	switch outcome {
	case outcomeScheduled:
		r.Scheduled++
	case outcomeReplaced:
		r.Scheduled++
		r.Replaced++
	case outcomeUnchanged:
		r.Unchanged++
	case outcomeAlreadyNotified, outcomeDenied:
		r.Skipped++
	case outcomeFailed:
		r.Failed++
	}
}

type FireOutcome string

const (
	FirePresented       FireOutcome = "presented"
	FireDuplicate       FireOutcome = "duplicate"
	FireSkippedDisabled FireOutcome = "skipped_disabled"
	FireSkippedMissing  FireOutcome = "skipped_missing"
	FireSkippedInactive FireOutcome = "skipped_inactive"
)

type FireResult struct {
	Outcome      FireOutcome            `json:"outcome"`
	MedicationID int64                  `json:"medication_id"`
	Key          domain.OccurrenceKey   `json:"key,omitempty"`
	Date         string                 `json:"date,omitempty"`
	NextAlarm    *domain.ScheduledAlarm `json:"-"`
}

// PlannedOccurrence is an occurrence annotated for previews.
type PlannedOccurrence struct {
	domain.Occurrence
	Key            domain.OccurrenceKey
	MedicationName string
}
