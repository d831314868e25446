package notifier

import (
	"context"
	"log/slog"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
)

// LogPresenter writes reminders to the structured log.
type LogPresenter struct{}

func NewLogPresenter() *LogPresenter {
	return &LogPresenter{}
}

func (p *LogPresenter) Show(ctx context.Context, n *domain.Notification) error {
	slog.InfoContext(ctx, "medication reminder",
		slog.Int64("medication_id", n.MedicationID),
		slog.String("title", n.Title),
		slog.String("body", n.Body),
		slog.String("time_of_day", n.TimeOfDay.String()),
		slog.String("date", n.Date.String()),
	)
	return nil
}
