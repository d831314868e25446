package config

import "errors"

var (
	ErrRedisAddrMissing   = errors.New("REDIS_ADDR is required")
	ErrInvalidRedisDB     = errors.New("REDIS_DB must be a valid integer")
	ErrInvalidTimezone    = errors.New("TIMEZONE must be a valid IANA time zone")
	ErrInvalidLeadMinutes = errors.New("DEFAULT_LEAD_MINUTES must be between 0 and 1440")
	ErrDatabasePathEmpty  = errors.New("DATABASE_PATH is required")
)
