package planner

import (
	"sort"
	"time"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
)

// DefaultImmediateDelay is how far after now an immediate reminder fires.
const DefaultImmediateDelay = 5 * time.Second

type Planner struct {
	immediateDelay time.Duration
}

func NewPlanner() *Planner {
	return &Planner{immediateDelay: DefaultImmediateDelay}
}

func NewPlannerWithDelay(immediateDelay time.Duration) *Planner {
	if immediateDelay <= 0 {
		immediateDelay = DefaultImmediateDelay
	}
	return &Planner{immediateDelay: immediateDelay}
}

// PlanOccurrences decides, for each configured time of medication, which
// reminders to fire today and tomorrow relative to now. Calendar math runs
// in now's location. Malformed times are reported in Plan.Failures and do
// not affect the other times.
func (p *Planner) PlanOccurrences(now time.Time, medication *domain.Medication, leadMinutes int) *Plan {
	if leadMinutes < 0 {
		leadMinutes = 0
	}

	plan := &Plan{
		Occurrences: make([]domain.Occurrence, 0, len(medication.ScheduleTimes)*2),
	}

	loc := now.Location()
	today := domain.DateOf(now)

	for _, raw := range medication.ScheduleTimes {
		tod, err := domain.ParseTimeOfDay(raw)
		if err != nil {
			plan.Failures = append(plan.Failures, ParseFailure{
				MedicationID: medication.ID,
				Raw:          raw,
				Err:          err,
			})
			continue
		}

		notifyToday := tod.On(today, loc, leadMinutes)
		doseToday := tod.On(today, loc, 0)

		switch {
		case notifyToday.After(now):
			plan.Occurrences = append(plan.Occurrences, domain.Occurrence{
				MedicationID: medication.ID,
				TimeOfDay:    tod,
				Date:         today,
				FireAt:       notifyToday,
				Kind:         domain.OccurrenceNormal,
			})
		case doseToday.After(now):
			plan.Occurrences = append(plan.Occurrences, domain.Occurrence{
				MedicationID: medication.ID,
				TimeOfDay:    tod,
				Date:         today,
				FireAt:       now.Add(p.immediateDelay),
				Kind:         domain.OccurrenceImmediate,
			})
		}

		plan.Occurrences = append(plan.Occurrences, p.NextDayOccurrence(now, medication.ID, tod, leadMinutes))
	}

	sortOccurrences(plan.Occurrences)

	return plan
}

// NextDayOccurrence returns the reminder for tod on the day after after.
func (p *Planner) NextDayOccurrence(after time.Time, medicationID int64, tod domain.TimeOfDay, leadMinutes int) domain.Occurrence {
	if leadMinutes < 0 {
		leadMinutes = 0
	}

	tomorrow := domain.DateOf(after).AddDays(1)

	return domain.Occurrence{
		MedicationID: medicationID,
		TimeOfDay:    tod,
		Date:         tomorrow,
		FireAt:       tod.On(tomorrow, after.Location(), leadMinutes),
		Kind:         domain.OccurrenceNextDay,
	}
}

func sortOccurrences(occurrences []domain.Occurrence) {
	sort.SliceStable(occurrences, func(i, j int) bool {
		a, b := occurrences[i], occurrences[j]
		if !a.FireAt.Equal(b.FireAt) {
			return a.FireAt.Before(b.FireAt)
		}
		if a.MedicationID != b.MedicationID {
			return a.MedicationID < b.MedicationID
		}
		return a.TimeOfDay.Before(b.TimeOfDay)
	})
}
