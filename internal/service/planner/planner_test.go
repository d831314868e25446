package planner

import (
	"testing"
	"time"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
)

func at(hour, minute int) time.Time {
	return time.Date(2024, time.March, 10, hour, minute, 0, 0, time.UTC)
}

func TestPlanOccurrences_SingleTime(t *testing.T) {
	med := &domain.Medication{ID: 1, ScheduleTimes: []string{"08:00"}}
	today := domain.Date{Year: 2024, Month: time.March, Day: 10}
	tomorrow := today.AddDays(1)
	nextDayFire := time.Date(2024, time.March, 11, 7, 45, 0, 0, time.UTC)

	tests := []struct {
		name     string
		now      time.Time
		expected []domain.Occurrence
	}{
		{
			name: "before notify time schedules normal and next day",
			now:  at(7, 0),
			expected: []domain.Occurrence{
				{MedicationID: 1, TimeOfDay: domain.TimeOfDay{Hour: 8}, Date: today, FireAt: at(7, 45), Kind: domain.OccurrenceNormal},
				{MedicationID: 1, TimeOfDay: domain.TimeOfDay{Hour: 8}, Date: tomorrow, FireAt: nextDayFire, Kind: domain.OccurrenceNextDay},
			},
		},
		{
			name: "inside window schedules immediate and next day",
			now:  at(7, 50),
			expected: []domain.Occurrence{
				{MedicationID: 1, TimeOfDay: domain.TimeOfDay{Hour: 8}, Date: today, FireAt: at(7, 50).Add(5 * time.Second), Kind: domain.OccurrenceImmediate},
				{MedicationID: 1, TimeOfDay: domain.TimeOfDay{Hour: 8}, Date: tomorrow, FireAt: nextDayFire, Kind: domain.OccurrenceNextDay},
			},
		},
		{
			name: "after dose schedules next day only",
			now:  at(8, 30),
			expected: []domain.Occurrence{
				{MedicationID: 1, TimeOfDay: domain.TimeOfDay{Hour: 8}, Date: tomorrow, FireAt: nextDayFire, Kind: domain.OccurrenceNextDay},
			},
		},
		{
			name: "exactly at notify time is inside window",
			now:  at(7, 45),
			expected: []domain.Occurrence{
				{MedicationID: 1, TimeOfDay: domain.TimeOfDay{Hour: 8}, Date: today, FireAt: at(7, 45).Add(5 * time.Second), Kind: domain.OccurrenceImmediate},
				{MedicationID: 1, TimeOfDay: domain.TimeOfDay{Hour: 8}, Date: tomorrow, FireAt: nextDayFire, Kind: domain.OccurrenceNextDay},
			},
		},
		{
			name: "exactly at dose time is past",
			now:  at(8, 0),
			expected: []domain.Occurrence{
				{MedicationID: 1, TimeOfDay: domain.TimeOfDay{Hour: 8}, Date: tomorrow, FireAt: nextDayFire, Kind: domain.OccurrenceNextDay},
			},
		},
	}

	p := NewPlanner()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := p.PlanOccurrences(tt.now, med, 15)

			if len(plan.Failures) != 0 {
				t.Fatalf("unexpected failures: %+v", plan.Failures)
			}
			if len(plan.Occurrences) != len(tt.expected) {
				t.Fatalf("got %d occurrences, want %d: %+v", len(plan.Occurrences), len(tt.expected), plan.Occurrences)
			}
			for i, want := range tt.expected {
				got := plan.Occurrences[i]
				if got.Kind != want.Kind {
					t.Errorf("[%d] kind: got %s, want %s", i, got.Kind, want.Kind)
				}
				if !got.FireAt.Equal(want.FireAt) {
					t.Errorf("[%d] fireAt: got %v, want %v", i, got.FireAt, want.FireAt)
				}
				if got.Date != want.Date {
					t.Errorf("[%d] date: got %v, want %v", i, got.Date, want.Date)
				}
				if got.TimeOfDay != want.TimeOfDay || got.MedicationID != want.MedicationID {
					t.Errorf("[%d] identity: got %+v", i, got)
				}
			}
		})
	}
}

func TestPlanOccurrences_MalformedTimeDoesNotBlockOthers(t *testing.T) {
	med := &domain.Medication{ID: 3, ScheduleTimes: []string{"25:99", "09:00"}}

	plan := NewPlanner().PlanOccurrences(at(7, 0), med, 15)

	if len(plan.Failures) != 1 {
		t.Fatalf("got %d failures, want 1", len(plan.Failures))
	}
	if plan.Failures[0].Raw != "25:99" {
		t.Errorf("failure raw: got %q, want %q", plan.Failures[0].Raw, "25:99")
	}
	if len(plan.Occurrences) != 2 {
		t.Fatalf("got %d occurrences, want 2", len(plan.Occurrences))
	}
	for _, occ := range plan.Occurrences {
		if occ.TimeOfDay != (domain.TimeOfDay{Hour: 9}) {
			t.Errorf("unexpected time of day %v", occ.TimeOfDay)
		}
	}
}

func TestPlanOccurrences_MultipleTimesSorted(t *testing.T) {
	med := &domain.Medication{ID: 2, ScheduleTimes: []string{"20:00", "08:00", "12:00"}}

	plan := NewPlanner().PlanOccurrences(at(10, 0), med, 30)

	// 08:00 is past, 12:00 and 20:00 are normal, plus three next-day occurrences.
	if got := plan.CountByKind(domain.OccurrenceNormal); got != 2 {
		t.Errorf("normal count: got %d, want 2", got)
	}
	if got := plan.CountByKind(domain.OccurrenceNextDay); got != 3 {
		t.Errorf("next day count: got %d, want 3", got)
	}
	if got := plan.CountByKind(domain.OccurrenceImmediate); got != 0 {
		t.Errorf("immediate count: got %d, want 0", got)
	}

	for i := 1; i < len(plan.Occurrences); i++ {
		if plan.Occurrences[i].FireAt.Before(plan.Occurrences[i-1].FireAt) {
			t.Fatalf("occurrences not sorted by fire time: %+v", plan.Occurrences)
		}
	}
}

func TestPlanOccurrences_LeadCrossingMidnight(t *testing.T) {
	med := &domain.Medication{ID: 4, ScheduleTimes: []string{"00:10"}}
	now := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	plan := NewPlanner().PlanOccurrences(now, med, 15)

	if len(plan.Occurrences) != 2 {
		t.Fatalf("got %d occurrences, want 2: %+v", len(plan.Occurrences), plan.Occurrences)
	}
	if plan.Occurrences[0].Kind != domain.OccurrenceImmediate {
		t.Errorf("expected immediate, got %s", plan.Occurrences[0].Kind)
	}

	next := plan.Occurrences[1]
	wantNext := time.Date(2024, time.March, 10, 23, 55, 0, 0, time.UTC)
	if next.Kind != domain.OccurrenceNextDay || !next.FireAt.Equal(wantNext) {
		t.Errorf("next day: got %s at %v, want next_day at %v", next.Kind, next.FireAt, wantNext)
	}
	if next.Date != (domain.Date{Year: 2024, Month: time.March, Day: 11}) {
		t.Errorf("next day date: got %v, want 2024-03-11", next.Date)
	}
}

func TestPlanOccurrences_NegativeLeadTreatedAsZero(t *testing.T) {
	med := &domain.Medication{ID: 5, ScheduleTimes: []string{"08:00"}}

	plan := NewPlanner().PlanOccurrences(at(7, 0), med, -10)

	if plan.Occurrences[0].Kind != domain.OccurrenceNormal || !plan.Occurrences[0].FireAt.Equal(at(8, 0)) {
		t.Errorf("got %+v, want normal at 08:00", plan.Occurrences[0])
	}
}

func TestPlanOccurrences_EmptySchedule(t *testing.T) {
	plan := NewPlanner().PlanOccurrences(at(7, 0), &domain.Medication{ID: 6}, 15)

	if len(plan.Occurrences) != 0 || len(plan.Failures) != 0 {
		t.Errorf("expected empty plan, got %+v", plan)
	}
}

func TestPlanOccurrences_UsesNowLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("timezone data unavailable: %v", err)
	}

	// 2024-03-10 is the spring-forward day in New York.
	med := &domain.Medication{ID: 7, ScheduleTimes: []string{"08:00"}}
	now := time.Date(2024, time.March, 10, 1, 0, 0, 0, loc)

	plan := NewPlanner().PlanOccurrences(now, med, 15)

	want := time.Date(2024, time.March, 10, 7, 45, 0, 0, loc)
	if !plan.Occurrences[0].FireAt.Equal(want) {
		t.Errorf("got %v, want %v", plan.Occurrences[0].FireAt, want)
	}
	if plan.Occurrences[0].FireAt.Location() != loc {
		t.Errorf("expected fire time in %v", loc)
	}
}

func TestNextDayOccurrence(t *testing.T) {
	occ := NewPlanner().NextDayOccurrence(at(7, 45), 9, domain.TimeOfDay{Hour: 8}, 15)

	want := time.Date(2024, time.March, 11, 7, 45, 0, 0, time.UTC)
	if occ.Kind != domain.OccurrenceNextDay || !occ.FireAt.Equal(want) || occ.MedicationID != 9 {
		t.Errorf("got %+v, want next_day for 9 at %v", occ, want)
	}
}
