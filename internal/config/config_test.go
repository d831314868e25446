//go:build !gcloud

package config

import (
	"errors"
	"log/slog"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "LOG_LEVEL", "TIMEZONE", "DATABASE_PATH", "TASK_QUEUE_NAME",
		"TASK_QUEUE_MAX_RETRIES", "ALARM_EXACT", "ALARM_BREAKER_MAX_FAILURES",
		"DEFAULT_LEAD_MINUTES", "NOTIFICATIONS_ENABLED_DEFAULT", "MAINTENANCE_SCHEDULE",
		"SCHEDULE_MAX_PARALLEL", "REDIS_ADDR", "REDIS_DB",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("port: got %q, want 8080", cfg.Port)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("log level: got %v, want info", cfg.LogLevel)
	}
	if cfg.Location != time.Local {
		t.Errorf("location: got %v, want local", cfg.Location)
	}
	if cfg.DatabasePath != "medications.db" {
		t.Errorf("database path: got %q", cfg.DatabasePath)
	}
	if !cfg.TaskQueue.ExactAlarms {
		t.Error("exact alarms should default to true")
	}
	if cfg.TaskQueue.MaxRetries != 3 || cfg.TaskQueue.BreakerMaxFailures != 5 {
		t.Errorf("retries/breaker: got %d/%d", cfg.TaskQueue.MaxRetries, cfg.TaskQueue.BreakerMaxFailures)
	}
	if cfg.Reminder.DefaultLeadMinutes != 15 || !cfg.Reminder.NotificationsEnabledDefault {
		t.Errorf("reminder defaults: got %+v", cfg.Reminder)
	}
	if cfg.Reminder.MaintenanceSchedule != "0 */6 * * *" {
		t.Errorf("maintenance schedule: got %q", cfg.Reminder.MaintenanceSchedule)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("redis addr: got %q", cfg.Redis.Addr)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("ALARM_EXACT", "false")
	t.Setenv("DEFAULT_LEAD_MINUTES", "30")
	t.Setenv("NOTIFICATIONS_ENABLED_DEFAULT", "false")
	t.Setenv("SCHEDULE_MAX_PARALLEL", "8")
	t.Setenv("ALARM_BREAKER_TIMEOUT", "1m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "9090" || cfg.LogLevel != slog.LevelDebug {
		t.Errorf("got port=%q level=%v", cfg.Port, cfg.LogLevel)
	}
	if cfg.Location != time.UTC {
		t.Errorf("location: got %v, want UTC", cfg.Location)
	}
	if cfg.TaskQueue.ExactAlarms {
		t.Error("exact alarms should be disabled")
	}
	if cfg.TaskQueue.BreakerTimeout != time.Minute {
		t.Errorf("breaker timeout: got %v", cfg.TaskQueue.BreakerTimeout)
	}
	if cfg.Reminder.DefaultLeadMinutes != 30 || cfg.Reminder.NotificationsEnabledDefault {
		t.Errorf("reminder: got %+v", cfg.Reminder)
	}
	if cfg.Reminder.ScheduleMaxParallel != 8 {
		t.Errorf("max parallel: got %d", cfg.Reminder.ScheduleMaxParallel)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr error
	}{
		{name: "timezone", env: map[string]string{"TIMEZONE": "Mars/Olympus"}, wantErr: ErrInvalidTimezone},
		{name: "redis db", env: map[string]string{"REDIS_DB": "zero"}, wantErr: ErrInvalidRedisDB},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateForRun(t *testing.T) {
	valid := func() *Config {
		return &Config{
			DatabasePath: "medications.db",
			Redis:        &RedisConfig{Addr: "localhost:6379"},
			Reminder:     &ReminderConfig{DefaultLeadMinutes: 15},
		}
	}

	if err := ValidateForRun(valid()); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}

	cfg := valid()
	cfg.DatabasePath = ""
	cfg.Redis.Addr = ""
	cfg.Reminder.DefaultLeadMinutes = -1

	err := ValidateForRun(cfg)
	for _, want := range []error{ErrDatabasePathEmpty, ErrRedisAddrMissing, ErrInvalidLeadMinutes} {
		if !errors.Is(err, want) {
			t.Errorf("expected %v in %v", want, err)
		}
	}
}

func TestRedisOptions(t *testing.T) {
	plain := (&RedisConfig{Addr: "redis:6379", DB: 2}).Options()
	if plain.Addr != "redis:6379" || plain.DB != 2 || plain.TLSConfig != nil {
		t.Errorf("unexpected options %+v", plain)
	}

	secure := (&RedisConfig{Addr: "redis:6380", TLS: true}).Options()
	if secure.TLSConfig == nil {
		t.Error("expected TLS config")
	}
}
