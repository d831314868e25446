package config

import (
	"errors"
	"fmt"
)

// ValidateForRun checks every section needed to serve traffic.
func ValidateForRun(cfg *Config) error {
	var errs []error

	if cfg.DatabasePath == "" {
		errs = append(errs, ErrDatabasePathEmpty)
	}
	if err := cfg.Redis.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := cfg.Reminder.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := cfg.TaskQueue.Validate(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %w", errors.Join(errs...))
	}
	return nil
}
