package domain

import "errors"

var (
	ErrInvalidTimeFormat          = errors.New("invalid time of day format")
	ErrSchedulingPermissionDenied = errors.New("alarm scheduling permission denied")
	ErrExactAlarmUnsupported      = errors.New("exact alarms not supported")
	ErrAlarmServiceUnavailable    = errors.New("alarm service unavailable")
	ErrMedicationNotFound         = errors.New("medication not found")
	ErrAlarmNotFound              = errors.New("alarm not found")
	ErrInvalidSettings            = errors.New("invalid settings")
	ErrInvalidMedication          = errors.New("invalid medication")
)
