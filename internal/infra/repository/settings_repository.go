package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
)

const (
	settingsKey = "reminder:settings"

	fieldNotificationsEnabled = "notifications_enabled"
	fieldLeadMinutes          = "lead_minutes"
	fieldUserName             = "user_name"
	fieldDarkMode             = "dark_mode"
)

type settingsRepository struct {
	client   *redis.Client
	defaults domain.Settings
}

// NewSettingsRepository stores settings in a single hash. Missing fields
// fall back to defaults.
func NewSettingsRepository(client *redis.Client, defaults domain.Settings) domain.SettingsRepository {
	return &settingsRepository{
		client:   client,
		defaults: defaults,
	}
}

func (r *settingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	fields, err := r.client.HGetAll(ctx, settingsKey).Result()
	if err != nil {
		return nil, err
	}

	settings := r.defaults

	if v, ok := fields[fieldNotificationsEnabled]; ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalidSettingsData, fieldNotificationsEnabled, v)
		}
		settings.NotificationsEnabled = b
	}
	if v, ok := fields[fieldLeadMinutes]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalidSettingsData, fieldLeadMinutes, v)
		}
		settings.LeadMinutes = n
	}
	if v, ok := fields[fieldUserName]; ok {
		settings.UserName = v
	}
	if v, ok := fields[fieldDarkMode]; ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalidSettingsData, fieldDarkMode, v)
		}
		settings.DarkMode = b
	}

	return &settings, nil
}

func (r *settingsRepository) Save(ctx context.Context, settings *domain.Settings) error {
	if settings == nil {
		return ErrInvalidSettingsData
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	return r.client.HSet(ctx, settingsKey, map[string]any{
		fieldNotificationsEnabled: strconv.FormatBool(settings.NotificationsEnabled),
		fieldLeadMinutes:          strconv.Itoa(settings.LeadMinutes),
		fieldUserName:             settings.UserName,
		fieldDarkMode:             strconv.FormatBool(settings.DarkMode),
	}).Err()
}
