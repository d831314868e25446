package alarm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
	"github.com/KasumiMercury/primind-medication-reminder/internal/infra/alarmqueue"
	"github.com/KasumiMercury/primind-medication-reminder/internal/observability/metrics"
	"github.com/KasumiMercury/primind-medication-reminder/internal/observability/tracing"
	"github.com/KasumiMercury/primind-medication-reminder/internal/service/dedup"
	"github.com/KasumiMercury/primind-medication-reminder/internal/service/keyer"
	"github.com/KasumiMercury/primind-medication-reminder/internal/service/planner"
)

const (
	DefaultMaxParallel = 4

	scheduleAllKey = "schedule-all"
)

type Service struct {
	medications     domain.MedicationRepository
	settings        domain.SettingsRepository
	queue           alarmqueue.AlarmQueue
	registry        domain.AlarmRegistry
	guard           *dedup.Guard
	presenter       domain.NotificationPresenter
	planner         *planner.Planner
	clock           domain.Clock
	recorder        domain.PlanRecorder
	reminderMetrics *metrics.ReminderMetrics
	maxParallel     int

	locks *keyedMutex
	group singleflight.Group
}

func NewService(
	medications domain.MedicationRepository,
	settings domain.SettingsRepository,
	queue alarmqueue.AlarmQueue,
	registry domain.AlarmRegistry,
	guard *dedup.Guard,
	presenter domain.NotificationPresenter,
	occurrencePlanner *planner.Planner,
	clock domain.Clock,
	recorder domain.PlanRecorder,
	reminderMetrics *metrics.ReminderMetrics,
	maxParallel int,
) *Service {
	if maxParallel <= 0 {
		maxParallel = DefaultMaxParallel
	}

	return &Service{
		medications:     medications,
		settings:        settings,
		queue:           queue,
		registry:        registry,
		guard:           guard,
		presenter:       presenter,
		planner:         occurrencePlanner,
		clock:           clock,
		recorder:        recorder,
		reminderMetrics: reminderMetrics,
		maxParallel:     maxParallel,
		locks:           newKeyedMutex(),
	}
}

// ScheduleAllAlarms brings the queue in line with the current medications and
// settings. Concurrent callers share a single pass.
func (s *Service) ScheduleAllAlarms(ctx context.Context, now time.Time) (*ScheduleResult, error) {
	v, err, shared := s.group.Do(scheduleAllKey, func() (any, error) {
		// Joined callers share this pass, so the leader's cancellation must not end it.
		return s.scheduleAll(context.WithoutCancel(ctx), now)
	})
	if shared {
		slog.DebugContext(ctx, "joined in-flight scheduling pass")
	}

	result, _ := v.(*ScheduleResult)
	return result, err
}

func (s *Service) scheduleAll(ctx context.Context, now time.Time) (*ScheduleResult, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	if !settings.NotificationsEnabled {
		slog.InfoContext(ctx, "notifications disabled, cancelling all alarms")

		cancelled, err := s.CancelAllAlarms(ctx)
		return &ScheduleResult{Disabled: true, Cancelled: cancelled}, err
	}

	meds, err := s.medications.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active medications: %w", err)
	}

	runID := uuid.NewString()
	ctx, span := tracing.StartScheduleAllSpan(ctx, runID, now)
	defer span.End()

	start := time.Now()

	results := make([]MedicationResult, len(meds))
	errs := make([]error, len(meds))

	var g errgroup.Group
	g.SetLimit(s.maxParallel)

	for i, med := range meds {
		g.Go(func() error {
			res, err := s.scheduleMedication(ctx, med, med.EffectiveLead(settings.LeadMinutes), now, runID)
			results[i] = *res
			if err != nil {
				errs[i] = fmt.Errorf("medication %d: %w", med.ID, err)
			}
			return nil
		})
	}
	_ = g.Wait()

	result := &ScheduleResult{
		RunID:       runID,
		Medications: results,
	}
	for _, r := range results {
		result.Planned += r.Planned
		result.Scheduled += r.Scheduled
		result.Unchanged += r.Unchanged
		result.Skipped += r.Skipped
		result.Failed += r.Failed
	}

	joined := errors.Join(errs...)
	tracing.RecordScheduleResult(span, result.Planned, result.Scheduled, result.Failed, joined)

	if s.reminderMetrics != nil {
		s.reminderMetrics.RecordPlanningDuration(ctx, time.Since(start))
	}

	slog.InfoContext(ctx, "scheduling pass completed",
		slog.String("run_id", runID),
		slog.Int("medication_count", len(meds)),
		slog.Int("planned", result.Planned),
		slog.Int("scheduled", result.Scheduled),
		slog.Int("unchanged", result.Unchanged),
		slog.Int("skipped", result.Skipped),
		slog.Int("failed", result.Failed),
	)

	return result, joined
}

// ScheduleMedicationAlarms plans one medication at the current instant and
// issues its alarms.
func (s *Service) ScheduleMedicationAlarms(ctx context.Context, med *domain.Medication, leadMinutes int) (*MedicationResult, error) {
	return s.scheduleMedication(ctx, med, leadMinutes, s.clock.Now(), uuid.NewString())
}

// RescheduleMedication reloads a medication and re-plans it with the
// configured lead. Inactive medications have their alarms cancelled.
func (s *Service) RescheduleMedication(ctx context.Context, medicationID int64) (*MedicationResult, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	med, err := s.medications.GetByID(ctx, medicationID)
	if err != nil {
		return nil, err
	}

	if !settings.NotificationsEnabled || !med.IsActive {
		if _, err := s.CancelMedicationAlarms(ctx, medicationID, nil); err != nil {
			return nil, err
		}
		return &MedicationResult{MedicationID: medicationID}, nil
	}

	return s.ScheduleMedicationAlarms(ctx, med, med.EffectiveLead(settings.LeadMinutes))
}

func (s *Service) scheduleMedication(ctx context.Context, med *domain.Medication, leadMinutes int, now time.Time, runID string) (*MedicationResult, error) {
	unlock := s.locks.Lock(med.ID)
	defer unlock()

	ctx, span := tracing.StartMedicationSpan(ctx, med.ID)
	defer span.End()

	plan := s.planner.PlanOccurrences(now, med, leadMinutes)

	result := &MedicationResult{
		MedicationID:  med.ID,
		Planned:       len(plan.Occurrences),
		ParseFailures: plan.Failures,
	}

	for _, failure := range plan.Failures {
		slog.WarnContext(ctx, "skipping malformed schedule time",
			slog.Int64("medication_id", failure.MedicationID),
			slog.String("raw", failure.Raw),
			slog.String("error", failure.Err.Error()),
		)
		if s.reminderMetrics != nil {
			s.reminderMetrics.RecordParseFailure(ctx)
		}
	}

	records := make([]domain.PlanRecord, 0, len(plan.Occurrences))
	var errs []error

	for _, occ := range plan.Occurrences {
		if s.reminderMetrics != nil {
			s.reminderMetrics.RecordOccurrencePlanned(ctx, occ.Kind.String())
		}

		_, outcome, err := s.issue(ctx, occ)
		result.record(outcome)
		if err != nil {
			errs = append(errs, err)
		}

		records = append(records, domain.PlanRecord{
			RunID:        runID,
			MedicationID: occ.MedicationID,
			TimeOfDay:    occ.TimeOfDay.String(),
			Date:         occ.Date.String(),
			Kind:         occ.Kind.String(),
			FireAt:       occ.FireAt,
			Outcome:      string(outcome),
		})
	}

	if s.recorder != nil {
		if err := s.recorder.RecordPlan(ctx, records); err != nil {
			slog.WarnContext(ctx, "failed to record plan results",
				slog.Int64("medication_id", med.ID),
				slog.String("error", err.Error()),
			)
		}
	}

	err := errors.Join(errs...)
	tracing.RecordScheduleResult(span, result.Planned, result.Scheduled, result.Failed, err)

	slog.DebugContext(ctx, "medication scheduled",
		slog.Int64("medication_id", med.ID),
		slog.Int("planned", result.Planned),
		slog.Int("scheduled", result.Scheduled),
		slog.Int("unchanged", result.Unchanged),
		slog.Int("skipped", result.Skipped),
		slog.Int("failed", result.Failed),
	)

	return result, err
}

// queueHolds reports whether the queue still has the task named handle.
// Queues that cannot answer are trusted.
func (s *Service) queueHolds(handle string) bool {
	pc, ok := s.queue.(alarmqueue.PendingChecker)
	return !ok || pc.Has(handle)
}

// issue makes sure exactly one alarm exists for occ. Callers hold the
// medication lock.
func (s *Service) issue(ctx context.Context, occ domain.Occurrence) (*domain.ScheduledAlarm, issueOutcome, error) {
	key := keyer.KeyFor(occ)

	notified, err := s.guard.IsNotified(ctx, occ.Date, key)
	if err != nil {
		slog.WarnContext(ctx, "failed to check notification ledger",
			slog.String("key", key.String()),
			slog.String("error", err.Error()),
		)
	} else if notified {
		slog.DebugContext(ctx, "occurrence already notified",
			slog.String("key", key.String()),
		)
		return nil, outcomeAlreadyNotified, nil
	}

	replaced := false
	existing, err := s.registry.Get(ctx, key)
	switch {
	case err == nil && !s.queueHolds(existing.Handle):
		slog.InfoContext(ctx, "registry entry has no pending task, scheduling again",
			slog.String("key", key.String()),
			slog.String("handle", existing.Handle),
		)
	case err == nil:
		if existing.FireAt.Equal(occ.FireAt) ||
			(existing.Kind == domain.OccurrenceImmediate && occ.Kind == domain.OccurrenceImmediate) {
			return existing, outcomeUnchanged, nil
		}

		if err := s.queue.Cancel(ctx, existing.Handle); err != nil {
			return nil, outcomeFailed, fmt.Errorf("failed to cancel stale alarm %s: %w", key, err)
		}
		replaced = true

		slog.InfoContext(ctx, "replacing alarm with new fire time",
			slog.String("key", key.String()),
			slog.Time("old_fire_at", existing.FireAt),
			slog.Time("new_fire_at", occ.FireAt),
		)
	case errors.Is(err, domain.ErrAlarmNotFound):
	default:
		return nil, outcomeFailed, fmt.Errorf("failed to look up alarm %s: %w", key, err)
	}

	task, resp, err := s.scheduleWithFallback(ctx, key, occ)
	if err != nil {
		if replaced {
			if derr := s.registry.Delete(ctx, key); derr != nil {
				slog.WarnContext(ctx, "failed to drop cancelled alarm from registry",
					slog.String("key", key.String()),
					slog.String("error", derr.Error()),
				)
			}
		}

		if errors.Is(err, domain.ErrSchedulingPermissionDenied) {
			slog.WarnContext(ctx, "alarm scheduling permission denied, skipping occurrence",
				slog.String("key", key.String()),
				slog.Int64("medication_id", occ.MedicationID),
				slog.String("time_of_day", occ.TimeOfDay.String()),
			)
			s.recordScheduled(ctx, outcomeDenied, domain.PrecisionBestEffort)
			return nil, outcomeDenied, nil
		}

		s.recordScheduled(ctx, outcomeFailed, task.Precision())
		return nil, outcomeFailed, fmt.Errorf("failed to schedule alarm %s: %w", key, err)
	}

	handle := resp.Name
	if handle == "" {
		handle = task.Name
	}

	alarm := &domain.ScheduledAlarm{
		Key:          key,
		Handle:       handle,
		MedicationID: occ.MedicationID,
		TimeOfDay:    occ.TimeOfDay,
		Date:         occ.Date,
		FireAt:       occ.FireAt,
		Kind:         occ.Kind,
		Precision:    task.Precision(),
		ScheduledAt:  s.clock.Now(),
	}

	if err := s.registry.Save(ctx, alarm); err != nil {
		s.recordScheduled(ctx, outcomeFailed, alarm.Precision)
		return nil, outcomeFailed, fmt.Errorf("failed to record alarm %s: %w", key, err)
	}

	outcome := outcomeScheduled
	if replaced {
		outcome = outcomeReplaced
	}
	s.recordScheduled(ctx, outcome, alarm.Precision)

	slog.DebugContext(ctx, "alarm scheduled",
		slog.String("key", key.String()),
		slog.String("handle", handle),
		slog.String("kind", occ.Kind.String()),
		slog.String("precision", string(alarm.Precision)),
		slog.Time("fire_at", occ.FireAt),
	)

	return alarm, outcome, nil
}

// scheduleWithFallback asks for an exact alarm when the queue offers one and
// retries best effort if exact delivery is refused.
func (s *Service) scheduleWithFallback(ctx context.Context, key domain.OccurrenceKey, occ domain.Occurrence) (*alarmqueue.AlarmTask, *alarmqueue.TaskResponse, error) {
	task := alarmqueue.NewAlarmTask(key, occ, s.queue.SupportsExact())

	resp, err := s.queue.Schedule(ctx, task)
	if err == nil || !task.Exact {
		return task, resp, err
	}

	if !errors.Is(err, domain.ErrExactAlarmUnsupported) && !errors.Is(err, domain.ErrSchedulingPermissionDenied) {
		return task, nil, err
	}

	slog.InfoContext(ctx, "exact alarm refused, falling back to best effort",
		slog.String("key", key.String()),
		slog.String("error", err.Error()),
	)

	task = alarmqueue.NewAlarmTask(key, occ, false)
	resp, err = s.queue.Schedule(ctx, task)
	return task, resp, err
}

func (s *Service) recordScheduled(ctx context.Context, outcome issueOutcome, precision domain.AlarmPrecision) {
	if s.reminderMetrics != nil {
		s.reminderMetrics.RecordAlarmScheduled(ctx, string(outcome), string(precision))
	}
}
