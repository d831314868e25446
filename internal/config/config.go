package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	LogLevel     slog.Level
	Location     *time.Location
	DatabasePath string
	TaskQueue    TaskQueueConfig
	Redis        *RedisConfig
	Reminder     *ReminderConfig
}

type TaskQueueConfig struct {
	PrimindTasksURL string
	QueueName       string

	GCloudProjectID  string
	GCloudLocationID string
	GCloudQueueID    string
	GCloudTargetURL  string

	MaxRetries         int
	ExactAlarms        bool
	BreakerMaxFailures int
	BreakerTimeout     time.Duration
}

// Load reads the configuration from the environment. A .env file in the
// working directory is applied first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	queueName := os.Getenv("TASK_QUEUE_NAME")
	if queueName == "" {
		queueName = "medication-alarms"
	}

	maxRetries := 3
	if v := os.Getenv("TASK_QUEUE_MAX_RETRIES"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			maxRetries = parsed
		}
	}

	breakerMaxFailures := 5
	if v := os.Getenv("ALARM_BREAKER_MAX_FAILURES"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			breakerMaxFailures = parsed
		}
	}

	breakerTimeout := 30 * time.Second
	if v := os.Getenv("ALARM_BREAKER_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			breakerTimeout = parsed
		}
	}

	location, err := loadLocation(os.Getenv("TIMEZONE"))
	if err != nil {
		return nil, err
	}

	databasePath := os.Getenv("DATABASE_PATH")
	if databasePath == "" {
		databasePath = "medications.db"
	}

	redisConfig, err := LoadRedisConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:         port,
		LogLevel:     parseLogLevel(os.Getenv("LOG_LEVEL")),
		Location:     location,
		DatabasePath: databasePath,
		TaskQueue: TaskQueueConfig{
			PrimindTasksURL: os.Getenv("PRIMIND_TASKS_URL"),
			QueueName:       queueName,

			GCloudProjectID:  os.Getenv("GCLOUD_PROJECT_ID"),
			GCloudLocationID: os.Getenv("GCLOUD_LOCATION_ID"),
			GCloudQueueID:    os.Getenv("GCLOUD_QUEUE_ID"),
			GCloudTargetURL:  os.Getenv("GCLOUD_TARGET_URL"),

			MaxRetries:         maxRetries,
			ExactAlarms:        os.Getenv("ALARM_EXACT") != "false",
			BreakerMaxFailures: breakerMaxFailures,
			BreakerTimeout:     breakerTimeout,
		},
		Redis:    redisConfig,
		Reminder: LoadReminderConfig(),
	}, nil
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.Local, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, name)
	}
	return loc, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
