package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/KasumiMercury/primind-medication-reminder/internal/config"
	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
	"github.com/KasumiMercury/primind-medication-reminder/internal/handler"
	"github.com/KasumiMercury/primind-medication-reminder/internal/health"
	"github.com/KasumiMercury/primind-medication-reminder/internal/infra/alarmqueue"
	"github.com/KasumiMercury/primind-medication-reminder/internal/infra/medstore"
	"github.com/KasumiMercury/primind-medication-reminder/internal/infra/notifier"
	"github.com/KasumiMercury/primind-medication-reminder/internal/infra/planrecorder"
	"github.com/KasumiMercury/primind-medication-reminder/internal/infra/repository"
	"github.com/KasumiMercury/primind-medication-reminder/internal/maintenance"
	"github.com/KasumiMercury/primind-medication-reminder/internal/observability/logging"
	"github.com/KasumiMercury/primind-medication-reminder/internal/observability/metrics"
	"github.com/KasumiMercury/primind-medication-reminder/internal/observability/middleware"
	"github.com/KasumiMercury/primind-medication-reminder/internal/service/alarm"
	"github.com/KasumiMercury/primind-medication-reminder/internal/service/dedup"
	"github.com/KasumiMercury/primind-medication-reminder/internal/service/planner"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	obs, err := initObservability(ctx)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}
	obs.SetLogLevel(cfg.LogLevel)

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	reminderMetrics, err := metrics.NewReminderMetrics()
	if err != nil {
		slog.Error("failed to initialize reminder metrics", slog.String("error", err.Error()))
		return 1
	}

	// InfluxDB for local, BigQuery for gcloud
	planRecorder, err := planrecorder.NewRecorder(ctx, planrecorder.LoadConfig())
	if err != nil {
		slog.Error("failed to initialize plan recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := planRecorder.Close(); err != nil {
			slog.Warn("failed to close plan recorder", slog.String("error", err.Error()))
		}
	}()

	store, err := medstore.Open(cfg.DatabasePath)
	if err != nil {
		slog.Error("failed to open medication store",
			slog.String("path", cfg.DatabasePath),
			slog.String("error", err.Error()),
		)
		return 1
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Warn("failed to close medication store", slog.String("error", err.Error()))
		}
	}()

	redisClient := redis.NewClient(cfg.Redis.Options())

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}()

	slog.Info("redis connected",
		slog.String("addr", cfg.Redis.Addr),
	)

	clock := domain.NewSystemClock(cfg.Location)

	settingsDefaults := domain.DefaultSettings()
	settingsDefaults.LeadMinutes = cfg.Reminder.DefaultLeadMinutes
	settingsDefaults.NotificationsEnabled = cfg.Reminder.NotificationsEnabledDefault

	medicationRepo := medstore.NewMedicationRepository(store)
	settingsRepo := repository.NewSettingsRepository(redisClient, settingsDefaults)
	alarmRegistry := repository.NewAlarmRegistry(redisClient)
	guard := dedup.NewGuard(repository.NewNotificationLedger(redisClient))

	presenter, err := notifier.New(ctx, notifier.LoadConfig())
	if err != nil {
		slog.Error("failed to initialize notification presenter", slog.String("error", err.Error()))
		return 1
	}

	queue, localQueue, cleanup, err := initAlarmQueue(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize alarm queue", slog.String("error", err.Error()))
		return 1
	}
	if cleanup != nil {
		defer func() {
			if err := cleanup(); err != nil {
				slog.Error("alarm queue cleanup error", slog.String("error", err.Error()))
			}
		}()
	}

	breakerQueue := alarmqueue.NewBreakerQueue(queue, alarmqueue.BreakerConfig{
		MaxFailures: uint32(cfg.TaskQueue.BreakerMaxFailures),
		OpenTimeout: cfg.TaskQueue.BreakerTimeout,
	})

	alarmService := alarm.NewService(
		medicationRepo,
		settingsRepo,
		breakerQueue,
		alarmRegistry,
		guard,
		presenter,
		planner.NewPlannerWithDelay(time.Duration(cfg.Reminder.ImmediateDelaySeconds)*time.Second),
		clock,
		planRecorder,
		reminderMetrics,
		cfg.Reminder.ScheduleMaxParallel,
	)

	if localQueue != nil {
		localQueue.SetHandler(func(ctx context.Context, payload alarmqueue.FirePayload) error {
			_, err := alarmService.OnAlarmFired(ctx, payload.MedicationID, payload.TimeOfDay, clock.Now())
			return err
		})
	}

	routes := &handler.Routes{
		Alarms:      handler.NewAlarmHandler(alarmService, clock),
		Medications: handler.NewMedicationHandler(medicationRepo, alarmService, clock),
		Settings:    handler.NewSettingsHandler(settingsRepo, alarmService, clock),
		Occurrences: handler.NewOccurrenceHandler(alarmService, clock),
	}

	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready"},
		Module:      logging.Module("medication-reminder"),
		TracerName:  "github.com/KasumiMercury/primind-medication-reminder/internal/observability/middleware",
		HTTPMetrics: httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	healthChecker := health.NewChecker(redisClient, store, Version)
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	grpcHealthPath, grpcHealthHandler := healthChecker.GRPCHandler()
	r.Any(grpcHealthPath+"*method", gin.WrapH(grpcHealthHandler))

	v1 := r.Group("/api/v1")
	routes.Register(v1)

	runner, err := maintenance.NewRunner(alarmService, clock, cfg.Reminder.MaintenanceSchedule)
	if err != nil {
		slog.Error("failed to initialize maintenance runner", slog.String("error", err.Error()))
		return 1
	}
	// Align the registry with the current medications before serving.
	runner.RunOnce(ctx)

	if err := runner.Start(ctx); err != nil {
		slog.Error("failed to start maintenance runner", slog.String("error", err.Error()))
		return 1
	}
	defer runner.Stop(context.Background())

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           h2c.NewHandler(r, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.String("timezone", clock.Location().String()),
			slog.String("maintenance_schedule", cfg.Reminder.MaintenanceSchedule),
			slog.Time("next_maintenance", runner.Next()),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}
