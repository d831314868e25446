package domain

import "context"

//go:generate mockgen -source=settings_repository.go -destination=settings_repository_mock.go -package=domain

type SettingsRepository interface {
	Get(ctx context.Context) (*Settings, error)
	Save(ctx context.Context, settings *Settings) error
}
