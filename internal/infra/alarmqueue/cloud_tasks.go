//go:build gcloud

package alarmqueue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	cloudtasks "cloud.google.com/go/cloudtasks/apiv2"
	taskspb "cloud.google.com/go/cloudtasks/apiv2/cloudtaskspb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
)

type CloudTasksClient struct {
	client     *cloudtasks.Client
	projectID  string
	locationID string
	queueID    string
	targetURL  string
	maxRetries int
}

type CloudTasksConfig struct {
	ProjectID  string
	LocationID string
	QueueID    string
	TargetURL  string
	MaxRetries int
}

func NewCloudTasksClient(ctx context.Context, cfg CloudTasksConfig) (*CloudTasksClient, error) {
	client, err := cloudtasks.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloud tasks client: %w", err)
	}

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	return &CloudTasksClient{
		client:     client,
		projectID:  cfg.ProjectID,
		locationID: cfg.LocationID,
		queueID:    cfg.QueueID,
		targetURL:  cfg.TargetURL,
		maxRetries: maxRetries,
	}, nil
}

// SupportsExact reports true: Cloud Tasks dispatches at the requested schedule time.
func (c *CloudTasksClient) SupportsExact() bool {
	return true
}

func (c *CloudTasksClient) queuePath() string {
	return fmt.Sprintf("projects/%s/locations/%s/queues/%s", c.projectID, c.locationID, c.queueID)
}

func (c *CloudTasksClient) taskPath(name string) string {
	return fmt.Sprintf("%s/tasks/%s", c.queuePath(), name)
}

func (c *CloudTasksClient) Schedule(ctx context.Context, task *AlarmTask) (*TaskResponse, error) {
	payload, err := json.Marshal(task.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal fire payload: %w", err)
	}

	cloudTask := &taskspb.Task{
		Name: c.taskPath(task.Name),
		MessageType: &taskspb.Task_HttpRequest{
			HttpRequest: &taskspb.HttpRequest{
				HttpMethod: taskspb.HttpMethod_POST,
				Url:        c.targetURL,
				Headers: map[string]string{
					"Content-Type":      "application/json",
					precisionHeader:     string(task.Precision()),
					occurrenceKeyHeader: task.Payload.Key,
				},
				Body: payload,
			},
		},
	}

	if !task.FireAt.IsZero() {
		cloudTask.ScheduleTime = timestamppb.New(task.FireAt)
	}

	req := &taskspb.CreateTaskRequest{
		Parent: c.queuePath(),
		Task:   cloudTask,
	}

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			wait := backoff(attempt)
			slog.DebugContext(ctx, "retrying alarm registration",
				slog.String("task_name", task.Name),
				slog.Int("attempt", attempt+1),
				slog.Duration("backoff", wait),
			)
			if err := sleepContext(ctx, wait); err != nil {
				return nil, err
			}
		}

		resp, err := c.createTask(ctx, req, task)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		var perm *permanentError
		if errors.As(err, &perm) {
			return nil, perm.err
		}
	}

	slog.ErrorContext(ctx, "all retries exhausted for alarm registration",
		slog.String("task_name", task.Name),
		slog.Int("max_retries", c.maxRetries),
		slog.String("error", lastErr.Error()),
	)
	return nil, fmt.Errorf("failed to register alarm after %d retries: %w: %w", c.maxRetries, domain.ErrAlarmServiceUnavailable, lastErr)
}

func (c *CloudTasksClient) createTask(ctx context.Context, req *taskspb.CreateTaskRequest, task *AlarmTask) (*TaskResponse, error) {
	slog.DebugContext(ctx, "registering alarm to Cloud Tasks",
		slog.String("queue_path", req.Parent),
		slog.String("task_name", task.Name),
	)

	createdTask, err := c.client.CreateTask(ctx, req)
	if err != nil {
		switch status.Code(err) {
		case codes.AlreadyExists:
			slog.InfoContext(ctx, "alarm already registered in Cloud Tasks",
				slog.String("task_name", task.Name),
			)
			return &TaskResponse{Name: task.Name, ScheduleTime: task.FireAt}, nil
		case codes.PermissionDenied, codes.Unauthenticated:
			return nil, &permanentError{err: fmt.Errorf("%w: %w", domain.ErrSchedulingPermissionDenied, err)}
		case codes.InvalidArgument, codes.FailedPrecondition:
			return nil, &permanentError{err: fmt.Errorf("rejected alarm request: %w", err)}
		}

		slog.WarnContext(ctx, "failed to create cloud task",
			slog.String("task_name", task.Name),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to create cloud task: %w", err)
	}

	slog.InfoContext(ctx, "alarm registered to Cloud Tasks",
		slog.String("task_name", createdTask.Name),
		slog.String("precision", string(task.Precision())),
	)

	resp := &TaskResponse{Name: task.Name}
	if createdTask.ScheduleTime != nil {
		resp.ScheduleTime = createdTask.ScheduleTime.AsTime()
	}
	if createdTask.CreateTime != nil {
		resp.CreateTime = createdTask.CreateTime.AsTime()
	}

	return resp, nil
}

func (c *CloudTasksClient) Close() error {
	return c.client.Close()
}

func (c *CloudTasksClient) Cancel(ctx context.Context, name string) error {
	taskPath := c.taskPath(name)

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			wait := backoff(attempt)
			slog.DebugContext(ctx, "retrying alarm cancellation",
				slog.String("task_name", name),
				slog.Int("attempt", attempt+1),
				slog.Duration("backoff", wait),
			)
			if err := sleepContext(ctx, wait); err != nil {
				return err
			}
		}

		err := c.deleteTask(ctx, taskPath, name)
		if err == nil {
			return nil
		}
		lastErr = err

		var perm *permanentError
		if errors.As(err, &perm) {
			return perm.err
		}
	}

	slog.ErrorContext(ctx, "all retries exhausted for alarm cancellation",
		slog.String("task_name", name),
		slog.Int("max_retries", c.maxRetries),
		slog.String("error", lastErr.Error()),
	)
	return fmt.Errorf("failed to cancel alarm after %d retries: %w: %w", c.maxRetries, domain.ErrAlarmServiceUnavailable, lastErr)
}

func (c *CloudTasksClient) deleteTask(ctx context.Context, taskPath, name string) error {
	slog.DebugContext(ctx, "deleting alarm from Cloud Tasks",
		slog.String("task_path", taskPath),
	)

	err := c.client.DeleteTask(ctx, &taskspb.DeleteTaskRequest{Name: taskPath})
	if err != nil {
		switch status.Code(err) {
		case codes.NotFound:
			slog.InfoContext(ctx, "alarm not found in Cloud Tasks (may have fired)",
				slog.String("task_name", name),
			)
			return nil
		case codes.PermissionDenied, codes.Unauthenticated:
			return &permanentError{err: fmt.Errorf("%w: %w", domain.ErrSchedulingPermissionDenied, err)}
		}

		slog.WarnContext(ctx, "failed to delete cloud task",
			slog.String("task_name", name),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to delete cloud task: %w", err)
	}

	slog.InfoContext(ctx, "alarm cancelled in Cloud Tasks",
		slog.String("task_name", name),
	)
	return nil
}
