package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestReminderMetricsRecordsToProvider(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	prev := otel.GetMeterProvider()
	otel.SetMeterProvider(provider)
	t.Cleanup(func() { otel.SetMeterProvider(prev) })

	m, err := NewReminderMetrics()
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordOccurrencePlanned(ctx, "normal")
	m.RecordOccurrencePlanned(ctx, "next_day")
	m.RecordAlarmScheduled(ctx, "scheduled", "exact")
	m.RecordAlarmsCancelled(ctx, 3)
	m.RecordNotification(ctx, "presented")
	m.RecordParseFailure(ctx)
	m.RecordPlanningDuration(ctx, 120*time.Millisecond)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	names := map[string]bool{}
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			names[md.Name] = true
		}
	}

	for _, name := range []string{
		"reminder_occurrences_planned_total",
		"reminder_alarms_scheduled_total",
		"reminder_alarms_cancelled_total",
		"reminder_notifications_total",
		"reminder_schedule_parse_failures_total",
		"reminder_planning_duration_seconds",
	} {
		assert.True(t, names[name], "missing metric %s", name)
	}
}
