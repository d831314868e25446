package config

import (
	"os"
	"strconv"
)

const (
	defaultLeadMinutesEnv    = "DEFAULT_LEAD_MINUTES"
	notificationsEnabledEnv  = "NOTIFICATIONS_ENABLED_DEFAULT"
	maintenanceScheduleEnv   = "MAINTENANCE_SCHEDULE"
	scheduleMaxParallelEnv   = "SCHEDULE_MAX_PARALLEL"
	immediateDelaySecondsEnv = "IMMEDIATE_DELAY_SECONDS"

	defaultLeadMinutes           = 15
	defaultMaintenanceSchedule   = "0 */6 * * *"
	defaultScheduleMaxParallel   = 4
	defaultImmediateDelaySeconds = 5
	maxLeadMinutes               = 24 * 60
)

type ReminderConfig struct {
	DefaultLeadMinutes          int
	NotificationsEnabledDefault bool
	MaintenanceSchedule         string
	ScheduleMaxParallel         int
	ImmediateDelaySeconds       int
}

func LoadReminderConfig() *ReminderConfig {
	lead := defaultLeadMinutes
	if v := os.Getenv(defaultLeadMinutesEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			lead = parsed
		}
	}

	enabled := true
	if v := os.Getenv(notificationsEnabledEnv); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			enabled = parsed
		}
	}

	schedule := os.Getenv(maintenanceScheduleEnv)
	if schedule == "" {
		schedule = defaultMaintenanceSchedule
	}

	maxParallel := defaultScheduleMaxParallel
	if v := os.Getenv(scheduleMaxParallelEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			maxParallel = parsed
		}
	}

	immediateDelay := defaultImmediateDelaySeconds
	if v := os.Getenv(immediateDelaySecondsEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			immediateDelay = parsed
		}
	}

	return &ReminderConfig{
		DefaultLeadMinutes:          lead,
		NotificationsEnabledDefault: enabled,
		MaintenanceSchedule:         schedule,
		ScheduleMaxParallel:         maxParallel,
		ImmediateDelaySeconds:       immediateDelay,
	}
}

func (c *ReminderConfig) Validate() error {
	if c.DefaultLeadMinutes < 0 || c.DefaultLeadMinutes > maxLeadMinutes {
		return ErrInvalidLeadMinutes
	}
	return nil
}
