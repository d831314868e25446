package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const reminderTracerName = "github.com/KasumiMercury/primind-medication-reminder/internal/service/alarm"

func ReminderTracer() trace.Tracer {
	return otel.Tracer(reminderTracerName)
}

func StartScheduleAllSpan(ctx context.Context, runID string, now time.Time) (context.Context, trace.Span) {
	return ReminderTracer().Start(ctx, "reminder.schedule_all",
		trace.WithAttributes(
			attribute.String("run_id", runID),
			attribute.String("now", now.Format(time.RFC3339)),
		),
	)
}

func StartMedicationSpan(ctx context.Context, medicationID int64) (context.Context, trace.Span) {
	return ReminderTracer().Start(ctx, "reminder.schedule_medication",
		trace.WithAttributes(
			attribute.Int64("medication_id", medicationID),
		),
	)
}

func StartFireSpan(ctx context.Context, medicationID int64, timeOfDay string) (context.Context, trace.Span) {
	return ReminderTracer().Start(ctx, "reminder.alarm_fired",
		trace.WithAttributes(
			attribute.Int64("medication_id", medicationID),
			attribute.String("time_of_day", timeOfDay),
		),
	)
}

func StartExternalAPISpan(ctx context.Context, operation, url string) (context.Context, trace.Span) {
	return ReminderTracer().Start(ctx, "reminder.external_api."+operation,
		trace.WithAttributes(
			attribute.String("url", url),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func RecordScheduleResult(span trace.Span, planned, scheduled, failed int, err error) {
	span.SetAttributes(
		attribute.Int("schedule.planned_count", planned),
		attribute.Int("schedule.scheduled_count", scheduled),
		attribute.Int("schedule.failed_count", failed),
	)
	RecordError(span, err)
}

func RecordError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}
