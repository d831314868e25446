package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	reminderMeterName = "reminder.service"
)

type ReminderMetrics struct {
	occurrencesPlanned metric.Int64Counter
	alarmsScheduled    metric.Int64Counter
	alarmsCancelled    metric.Int64Counter
	notifications      metric.Int64Counter
	parseFailures      metric.Int64Counter
	planningDuration   metric.Float64Histogram
}

func NewReminderMetrics() (*ReminderMetrics, error) {
	meter := otel.Meter(reminderMeterName)

	occurrencesPlanned, err := meter.Int64Counter(
		"reminder_occurrences_planned_total",
		metric.WithDescription("Total number of planned occurrences"),
		metric.WithUnit("{occurrence}"),
	)
	if err != nil {
		return nil, err
	}

	alarmsScheduled, err := meter.Int64Counter(
		"reminder_alarms_scheduled_total",
		metric.WithDescription("Total number of alarm scheduling attempts by outcome"),
		metric.WithUnit("{alarm}"),
	)
	if err != nil {
		return nil, err
	}

	alarmsCancelled, err := meter.Int64Counter(
		"reminder_alarms_cancelled_total",
		metric.WithDescription("Total number of cancelled alarms"),
		metric.WithUnit("{alarm}"),
	)
	if err != nil {
		return nil, err
	}

	notifications, err := meter.Int64Counter(
		"reminder_notifications_total",
		metric.WithDescription("Total number of fired alarms by notification outcome"),
		metric.WithUnit("{notification}"),
	)
	if err != nil {
		return nil, err
	}

	parseFailures, err := meter.Int64Counter(
		"reminder_schedule_parse_failures_total",
		metric.WithDescription("Total number of schedule times that failed to parse"),
		metric.WithUnit("{entry}"),
	)
	if err != nil {
		return nil, err
	}

	planningDuration, err := meter.Float64Histogram(
		"reminder_planning_duration_seconds",
		metric.WithDescription("Duration of a full scheduling pass"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30,
		),
	)
	if err != nil {
		return nil, err
	}

	return &ReminderMetrics{
		occurrencesPlanned: occurrencesPlanned,
		alarmsScheduled:    alarmsScheduled,
		alarmsCancelled:    alarmsCancelled,
		notifications:      notifications,
		parseFailures:      parseFailures,
		planningDuration:   planningDuration,
	}, nil
}

func (m *ReminderMetrics) RecordOccurrencePlanned(ctx context.Context, kind string) {
	m.occurrencesPlanned.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
	))
}

func (m *ReminderMetrics) RecordAlarmScheduled(ctx context.Context, outcome, precision string) {
	m.alarmsScheduled.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
		attribute.String("precision", precision),
	))
}

func (m *ReminderMetrics) RecordAlarmsCancelled(ctx context.Context, count int) {
	m.alarmsCancelled.Add(ctx, int64(count))
}

func (m *ReminderMetrics) RecordNotification(ctx context.Context, outcome string) {
	m.notifications.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

func (m *ReminderMetrics) RecordParseFailure(ctx context.Context) {
	m.parseFailures.Add(ctx, 1)
}

func (m *ReminderMetrics) RecordPlanningDuration(ctx context.Context, duration time.Duration) {
	m.planningDuration.Record(ctx, duration.Seconds())
}
