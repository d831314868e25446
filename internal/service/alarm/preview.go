package alarm

import (
	"context"
	"fmt"
	"time"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
	"github.com/KasumiMercury/primind-medication-reminder/internal/service/keyer"
)

// PreviewOccurrences plans every active medication at now without touching
// the queue or the registry.
func (s *Service) PreviewOccurrences(ctx context.Context, now time.Time) ([]PlannedOccurrence, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if !settings.NotificationsEnabled {
		return []PlannedOccurrence{}, nil
	}

	meds, err := s.medications.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active medications: %w", err)
	}

	planned := make([]PlannedOccurrence, 0, len(meds)*2)
	for _, med := range meds {
		planned = append(planned, s.preview(med, now, med.EffectiveLead(settings.LeadMinutes))...)
	}

	return planned, nil
}

// PreviewMedication plans a single medication at now.
func (s *Service) PreviewMedication(ctx context.Context, medicationID int64, now time.Time) ([]PlannedOccurrence, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	med, err := s.medications.GetByID(ctx, medicationID)
	if err != nil {
		return nil, err
	}

	return s.preview(med, now, med.EffectiveLead(settings.LeadMinutes)), nil
}

func (s *Service) preview(med *domain.Medication, now time.Time, leadMinutes int) []PlannedOccurrence {
	plan := s.planner.PlanOccurrences(now, med, leadMinutes)

	planned := make([]PlannedOccurrence, 0, len(plan.Occurrences))
	for _, occ := range plan.Occurrences {
		planned = append(planned, PlannedOccurrence{
			Occurrence:     occ,
			Key:            keyer.KeyFor(occ),
			MedicationName: med.Name,
		})
	}
	return planned
}
