package domain

import "context"

//go:generate mockgen -source=notification_ledger.go -destination=notification_ledger_mock.go -package=domain

// NotificationLedger records which occurrences were already notified per day.
type NotificationLedger interface {
	// MarkNotified returns true only for the first caller of a (date, key) pair.
	MarkNotified(ctx context.Context, date Date, key OccurrenceKey) (bool, error)
	IsNotified(ctx context.Context, date Date, key OccurrenceKey) (bool, error)
	Unmark(ctx context.Context, date Date, key OccurrenceKey) error
	// PurgeBefore drops every entry dated strictly before date.
	PurgeBefore(ctx context.Context, date Date) (int, error)
}
