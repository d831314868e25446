package dedup

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
)

// Guard makes sure each (date, key) reminder is presented at most once.
type Guard struct {
	ledger domain.NotificationLedger
}

func NewGuard(ledger domain.NotificationLedger) *Guard {
	return &Guard{ledger: ledger}
}

// Claim marks (date, key) as notified and reports whether this call was the
// first to do so. Entries older than the day before date are purged first;
// purge failures are logged and otherwise ignored.
func (g *Guard) Claim(ctx context.Context, date domain.Date, key domain.OccurrenceKey) (bool, error) {
	cutoff := date.AddDays(-1)
	if purged, err := g.ledger.PurgeBefore(ctx, cutoff); err != nil {
		slog.WarnContext(ctx, "failed to purge notification ledger",
			slog.String("cutoff", cutoff.String()),
			slog.String("error", err.Error()),
		)
	} else if purged > 0 {
		slog.DebugContext(ctx, "purged notification ledger",
			slog.String("cutoff", cutoff.String()),
			slog.Int("purged", purged),
		)
	}

	first, err := g.ledger.MarkNotified(ctx, date, key)
	if err != nil {
		return false, fmt.Errorf("failed to mark %s notified on %s: %w", key, date, err)
	}

	return first, nil
}

func (g *Guard) IsNotified(ctx context.Context, date domain.Date, key domain.OccurrenceKey) (bool, error) {
	return g.ledger.IsNotified(ctx, date, key)
}

// Release undoes a Claim so a retried delivery can present again.
func (g *Guard) Release(ctx context.Context, date domain.Date, key domain.OccurrenceKey) error {
	return g.ledger.Unmark(ctx, date, key)
}
