//go:build !gcloud

package planrecorder

import (
	"context"
	"log/slog"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
)

const planMeasurement = "reminder_plan"

type influxDBRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.PlanRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "plan result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		slog.WarnContext(ctx, "InfluxDB token or org not configured, plan result recording disabled",
			slog.String("url", cfg.InfluxDBURL),
		)
		return NewNoopRecorder(), nil
	}

	client := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)

	slog.InfoContext(ctx, "plan result recorder initialized",
		slog.String("type", "influxdb"),
		slog.String("url", cfg.InfluxDBURL),
		slog.String("bucket", cfg.InfluxDBBucket),
	)

	return &influxDBRecorder{
		client:   client,
		writeAPI: client.WriteAPIBlocking(cfg.InfluxDBOrg, cfg.InfluxDBBucket),
	}, nil
}

func (r *influxDBRecorder) RecordPlan(ctx context.Context, records []domain.PlanRecord) error {
	if len(records) == 0 {
		return nil
	}

	points := make([]*write.Point, 0, len(records))
	for _, record := range records {
		points = append(points, newPlanPoint(record, time.Now()))
	}

	if err := r.writeAPI.WritePoint(ctx, points...); err != nil {
		slog.WarnContext(ctx, "failed to write plan results to InfluxDB",
			slog.String("error", err.Error()),
			slog.Int("record_count", len(records)),
		)
	}

	return nil
}

func newPlanPoint(record domain.PlanRecord, recordedAt time.Time) *write.Point {
	runID := record.RunID
	if runID == "" {
		runID = "default"
	}

	return influxdb2.NewPoint(
		planMeasurement,
		map[string]string{
			"run_id":        runID,
			"kind":          record.Kind,
			"outcome":       record.Outcome,
			"medication_id": formatID(record.MedicationID),
		},
		map[string]any{
			"time_of_day":  record.TimeOfDay,
			"date":         record.Date,
			"fire_at_unix": record.FireAt.Unix(),
		},
		recordedAt,
	)
}

func (r *influxDBRecorder) Close() error {
	if r.client != nil {
		r.client.Close()
	}
	return nil
}
