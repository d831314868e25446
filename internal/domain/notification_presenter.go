package domain

import "context"

//go:generate mockgen -source=notification_presenter.go -destination=notification_presenter_mock.go -package=domain

type NotificationPresenter interface {
	Show(ctx context.Context, notification *Notification) error
}
