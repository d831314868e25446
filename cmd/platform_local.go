//go:build !gcloud

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/KasumiMercury/primind-medication-reminder/internal/config"
	"github.com/KasumiMercury/primind-medication-reminder/internal/infra/alarmqueue"
	"github.com/KasumiMercury/primind-medication-reminder/internal/observability"
	"github.com/KasumiMercury/primind-medication-reminder/internal/observability/logging"
)

// initAlarmQueue returns the in-process queue when no Primind Tasks endpoint
// is configured. The caller must attach the fire handler to it.
func initAlarmQueue(ctx context.Context, cfg *config.Config) (alarmqueue.AlarmQueue, *alarmqueue.LocalQueue, func() error, error) {
	if cfg.TaskQueue.PrimindTasksURL == "" {
		slog.Warn("PRIMIND_TASKS_URL not set, alarms fire from in-process timers")

		local := alarmqueue.NewLocalQueue(ctx)

		return local, local, local.Close, nil
	}

	tq := alarmqueue.NewPrimindTasksClient(
		cfg.TaskQueue.PrimindTasksURL,
		cfg.TaskQueue.QueueName,
		cfg.TaskQueue.MaxRetries,
		cfg.TaskQueue.ExactAlarms,
	)

	slog.Info("alarm queue initialized",
		slog.String("type", "primind_tasks"),
		slog.String("url", cfg.TaskQueue.PrimindTasksURL),
		slog.String("queue", cfg.TaskQueue.QueueName),
		slog.Bool("exact", cfg.TaskQueue.ExactAlarms),
	)

	return tq, nil, nil, nil
}

func initObservability(ctx context.Context) (*observability.Resources, error) {
	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "medication-reminder"
	}

	env := logging.EnvDev
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	return observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:    serviceName,
			Version: Version,
		},
		Environment:   env,
		SamplingRate:  1.0,
		DefaultModule: logging.Module("medication-reminder"),
	})
}
