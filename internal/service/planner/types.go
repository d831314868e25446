package planner

import "github.com/KasumiMercury/primind-medication-reminder/internal/domain"

// ParseFailure records a configured time that could not be planned.
type ParseFailure struct {
	MedicationID int64
	Raw          string
	Err          error
}

type Plan struct {
	Occurrences []domain.Occurrence
	Failures    []ParseFailure
}

func (p *Plan) CountByKind(kind domain.OccurrenceKind) int {
	n := 0
	for _, occ := range p.Occurrences {
		if occ.Kind == kind {
			n++
		}
	}
	return n
}
