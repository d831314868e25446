package domain

import (
	"strings"
	"time"
)

type Medication struct {
	ID            int64
	Name          string
	Description   string
	DosageAmount  string
	DosageUnit    string
	Frequency     int
	ScheduleTimes []string
	Instructions  string
	StartDate     time.Time
	EndDate       *time.Time
	Notes         string
	IconType      string
	IsActive      bool
	// LeadMinutes overrides the global lead time when set.
	LeadMinutes   *int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// EffectiveLead returns the medication override, falling back to the global value.
func (m *Medication) EffectiveLead(global int) int {
	if m.LeadMinutes != nil {
		return *m.LeadMinutes
	}
	return global
}

// SplitScheduleTimes parses the comma separated storage form of schedule times.
func SplitScheduleTimes(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	times := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			times = append(times, p)
		}
	}
	return times
}

func JoinScheduleTimes(times []string) string {
	return strings.Join(times, ",")
}
