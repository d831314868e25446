package alarm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
	"github.com/KasumiMercury/primind-medication-reminder/internal/service/keyer"
)

// CancelMedicationAlarms cancels the alarms of medicationID for today and
// tomorrow at the given times. With no times every alarm recorded for the
// medication is cancelled. Unknown occurrences are ignored.
func (s *Service) CancelMedicationAlarms(ctx context.Context, medicationID int64, times []string) (int, error) {
	unlock := s.locks.Lock(medicationID)
	defer unlock()

	var alarms []*domain.ScheduledAlarm
	var errs []error

	if len(times) == 0 {
		listed, err := s.registry.ListByMedication(ctx, medicationID)
		if err != nil {
			return 0, fmt.Errorf("failed to list alarms for medication %d: %w", medicationID, err)
		}
		alarms = listed
	} else {
		today := domain.DateOf(s.clock.Now())
		for _, date := range []domain.Date{today, today.AddDays(1)} {
			for _, raw := range times {
				key := keyer.DeriveKey(medicationID, raw, date)

				alarm, err := s.registry.Get(ctx, key)
				if errors.Is(err, domain.ErrAlarmNotFound) {
					continue
				}
				if err != nil {
					errs = append(errs, fmt.Errorf("failed to look up alarm %s: %w", key, err))
					continue
				}
				alarms = append(alarms, alarm)
			}
		}
	}

	cancelled := 0
	for _, alarm := range alarms {
		if err := s.cancelAlarm(ctx, alarm); err != nil {
			errs = append(errs, err)
			continue
		}
		cancelled++
	}

	s.recordCancelled(ctx, cancelled)

	slog.InfoContext(ctx, "medication alarms cancelled",
		slog.Int64("medication_id", medicationID),
		slog.Int("cancelled", cancelled),
	)

	return cancelled, errors.Join(errs...)
}

// CancelAllAlarms cancels every alarm in the registry.
func (s *Service) CancelAllAlarms(ctx context.Context) (int, error) {
	alarms, err := s.registry.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list alarms: %w", err)
	}

	cancelled := 0
	var errs []error
	for _, alarm := range alarms {
		unlock := s.locks.Lock(alarm.MedicationID)
		err := s.cancelAlarm(ctx, alarm)
		unlock()

		if err != nil {
			errs = append(errs, err)
			continue
		}
		cancelled++
	}

	s.recordCancelled(ctx, cancelled)

	slog.InfoContext(ctx, "all alarms cancelled",
		slog.Int("cancelled", cancelled),
		slog.Int("failed", len(errs)),
	)

	return cancelled, errors.Join(errs...)
}

func (s *Service) cancelAlarm(ctx context.Context, alarm *domain.ScheduledAlarm) error {
	if err := s.queue.Cancel(ctx, alarm.Handle); err != nil {
		return fmt.Errorf("failed to cancel alarm %s: %w", alarm.Key, err)
	}

	if err := s.registry.Delete(ctx, alarm.Key); err != nil {
		return fmt.Errorf("failed to drop alarm %s from registry: %w", alarm.Key, err)
	}

	slog.DebugContext(ctx, "alarm cancelled",
		slog.String("key", alarm.Key.String()),
		slog.String("handle", alarm.Handle),
	)

	return nil
}

func (s *Service) recordCancelled(ctx context.Context, count int) {
	if s.reminderMetrics != nil && count > 0 {
		s.reminderMetrics.RecordAlarmsCancelled(ctx, count)
	}
}
