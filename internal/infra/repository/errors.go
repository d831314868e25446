package repository

import "errors"

var (
	ErrInvalidAlarmData    = errors.New("invalid alarm data")
	ErrInvalidSettingsData = errors.New("invalid settings data")
)
