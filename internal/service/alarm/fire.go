package alarm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
	"github.com/KasumiMercury/primind-medication-reminder/internal/observability/tracing"
	"github.com/KasumiMercury/primind-medication-reminder/internal/service/keyer"
)

// OnAlarmFired presents the reminder for a fired alarm at most once per day
// and seeds the alarm for the following day.
func (s *Service) OnAlarmFired(ctx context.Context, medicationID int64, timeOfDay string, firedAt time.Time) (result *FireResult, err error) {
	ctx, span := tracing.StartFireSpan(ctx, medicationID, timeOfDay)
	defer func() {
		tracing.RecordError(span, err)
		span.End()
	}()

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	if !settings.NotificationsEnabled {
		s.recordNotification(ctx, FireSkippedDisabled)
		return &FireResult{Outcome: FireSkippedDisabled, MedicationID: medicationID}, nil
	}

	med, err := s.medications.GetByID(ctx, medicationID)
	if errors.Is(err, domain.ErrMedicationNotFound) {
		slog.InfoContext(ctx, "alarm fired for unknown medication",
			slog.Int64("medication_id", medicationID),
		)
		s.recordNotification(ctx, FireSkippedMissing)
		return &FireResult{Outcome: FireSkippedMissing, MedicationID: medicationID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load medication %d: %w", medicationID, err)
	}

	if !med.IsActive {
		s.recordNotification(ctx, FireSkippedInactive)
		return &FireResult{Outcome: FireSkippedInactive, MedicationID: medicationID}, nil
	}

	tod, err := domain.ParseTimeOfDay(timeOfDay)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(med.ID)
	defer unlock()

	lead := med.EffectiveLead(settings.LeadMinutes)
	doseDate := resolveDoseDate(firedAt, tod, lead)
	key := keyer.DeriveKey(med.ID, tod.String(), doseDate)

	result = &FireResult{
		MedicationID: med.ID,
		Key:          key,
		Date:         doseDate.String(),
	}

	claimed := true
	first, err := s.guard.Claim(ctx, doseDate, key)
	if err != nil {
		slog.WarnContext(ctx, "notification ledger unavailable, presenting without duplicate check",
			slog.String("key", key.String()),
			slog.String("error", err.Error()),
		)
		first, claimed = true, false
	}

	if !first {
		slog.InfoContext(ctx, "duplicate alarm delivery ignored",
			slog.Int64("medication_id", med.ID),
			slog.String("time_of_day", tod.String()),
			slog.String("date", doseDate.String()),
		)
		result.Outcome = FireDuplicate
	} else {
		if err := s.presenter.Show(ctx, domain.NewNotification(med, tod, doseDate)); err != nil {
			if claimed {
				if rerr := s.guard.Release(ctx, doseDate, key); rerr != nil {
					slog.WarnContext(ctx, "failed to release notification claim",
						slog.String("key", key.String()),
						slog.String("error", rerr.Error()),
					)
				}
			}
			s.recordNotification(ctx, "failed")
			return nil, fmt.Errorf("failed to present notification: %w", err)
		}
		result.Outcome = FirePresented

		if err := s.registry.Delete(ctx, key); err != nil {
			slog.WarnContext(ctx, "failed to drop fired alarm from registry",
				slog.String("key", key.String()),
				slog.String("error", err.Error()),
			)
		}

		slog.InfoContext(ctx, "medication reminder presented",
			slog.Int64("medication_id", med.ID),
			slog.String("time_of_day", tod.String()),
			slog.String("date", doseDate.String()),
		)
	}
	s.recordNotification(ctx, result.Outcome)

	doseAt := tod.On(doseDate, firedAt.Location(), 0)
	next, err := s.scheduleNextDay(ctx, med, tod, doseAt, lead)
	result.NextAlarm = next
	if err != nil {
		return result, fmt.Errorf("failed to schedule next day alarm: %w", err)
	}

	return result, nil
}

// ScheduleNextDayAlarm issues the alarm for tod on the day after after.
func (s *Service) ScheduleNextDayAlarm(ctx context.Context, med *domain.Medication, tod domain.TimeOfDay, after time.Time) (*domain.ScheduledAlarm, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	unlock := s.locks.Lock(med.ID)
	defer unlock()

	return s.scheduleNextDay(ctx, med, tod, after, med.EffectiveLead(settings.LeadMinutes))
}

func (s *Service) scheduleNextDay(ctx context.Context, med *domain.Medication, tod domain.TimeOfDay, after time.Time, leadMinutes int) (*domain.ScheduledAlarm, error) {
	occ := s.planner.NextDayOccurrence(after, med.ID, tod, leadMinutes)
	if s.reminderMetrics != nil {
		s.reminderMetrics.RecordOccurrencePlanned(ctx, occ.Kind.String())
	}

	alarm, outcome, err := s.issue(ctx, occ)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "next day alarm issued",
		slog.Int64("medication_id", med.ID),
		slog.String("time_of_day", tod.String()),
		slog.String("date", occ.Date.String()),
		slog.String("outcome", string(outcome)),
	)

	return alarm, nil
}

// resolveDoseDate returns the date of the dose a fire at firedAt announces.
// A lead that crosses midnight fires on the calendar day before the dose.
func resolveDoseDate(firedAt time.Time, tod domain.TimeOfDay, leadMinutes int) domain.Date {
	if leadMinutes < 0 {
		leadMinutes = 0
	}

	today := domain.DateOf(firedAt)
	tomorrow := today.AddDays(1)
	if !tod.On(tomorrow, firedAt.Location(), leadMinutes).After(firedAt) {
		return tomorrow
	}
	return today
}

func (s *Service) recordNotification(ctx context.Context, outcome FireOutcome) {
	if s.reminderMetrics != nil {
		s.reminderMetrics.RecordNotification(ctx, string(outcome))
	}
}
