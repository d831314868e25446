//go:build gcloud

package planrecorder

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
)

type bigQueryRecord struct {
	RecordedAt   time.Time `bigquery:"recorded_at"`
	RunID        string    `bigquery:"run_id"`
	MedicationID int64     `bigquery:"medication_id"`
	TimeOfDay    string    `bigquery:"time_of_day"`
	Date         string    `bigquery:"date"`
	Kind         string    `bigquery:"kind"`
	FireAt       time.Time `bigquery:"fire_at"`
	Outcome      string    `bigquery:"outcome"`
}

type bigQueryRecorder struct {
	client   *bigquery.Client
	inserter *bigquery.Inserter
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.PlanRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "plan result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.BigQueryProjectID == "" {
		slog.WarnContext(ctx, "BigQuery project ID not configured, plan result recording disabled")
		return NewNoopRecorder(), nil
	}

	client, err := bigquery.NewClient(ctx, cfg.BigQueryProjectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create BigQuery client, plan result recording disabled",
			slog.String("error", err.Error()),
			slog.String("project_id", cfg.BigQueryProjectID),
		)
		return NewNoopRecorder(), nil
	}

	slog.InfoContext(ctx, "plan result recorder initialized",
		slog.String("type", "bigquery"),
		slog.String("project_id", cfg.BigQueryProjectID),
		slog.String("dataset", cfg.BigQueryDataset),
		slog.String("table", cfg.BigQueryTable),
	)

	return &bigQueryRecorder{
		client:   client,
		inserter: client.Dataset(cfg.BigQueryDataset).Table(cfg.BigQueryTable).Inserter(),
	}, nil
}

func (r *bigQueryRecorder) RecordPlan(ctx context.Context, records []domain.PlanRecord) error {
	if len(records) == 0 {
		return nil
	}

	now := time.Now()
	rows := make([]*bigQueryRecord, 0, len(records))
	for _, record := range records {
		rows = append(rows, &bigQueryRecord{
			RecordedAt:   now,
			RunID:        record.RunID,
			MedicationID: record.MedicationID,
			TimeOfDay:    record.TimeOfDay,
			Date:         record.Date,
			Kind:         record.Kind,
			FireAt:       record.FireAt,
			Outcome:      record.Outcome,
		})
	}

	if err := r.inserter.Put(ctx, rows); err != nil {
		slog.WarnContext(ctx, "failed to insert plan results to BigQuery",
			slog.String("error", err.Error()),
			slog.Int("record_count", len(records)),
		)
	}

	return nil
}

func (r *bigQueryRecorder) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
