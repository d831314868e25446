//go:build !gcloud

package alarmqueue

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
	"github.com/KasumiMercury/primind-medication-reminder/internal/observability/logging"
	"github.com/KasumiMercury/primind-medication-reminder/internal/observability/tracing"
)

type PrimindTasksClient struct {
	baseURL    string
	queueName  string
	httpClient *http.Client
	maxRetries int
	exact      bool
}

func NewPrimindTasksClient(baseURL, queueName string, maxRetries int, exact bool) *PrimindTasksClient {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	return &PrimindTasksClient{
		baseURL:   baseURL,
		queueName: queueName,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		maxRetries: maxRetries,
		exact:      exact,
	}
}

func (c *PrimindTasksClient) SupportsExact() bool {
	return c.exact
}

func (c *PrimindTasksClient) tasksURL() string {
	if c.queueName != "" && c.queueName != "default" {
		return fmt.Sprintf("%s/tasks/%s", c.baseURL, c.queueName)
	}
	return fmt.Sprintf("%s/tasks", c.baseURL)
}

func (c *PrimindTasksClient) Schedule(ctx context.Context, task *AlarmTask) (*TaskResponse, error) {
	if task.Exact && !c.exact {
		return nil, domain.ErrExactAlarmUnsupported
	}

	payload, err := json.Marshal(task.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal fire payload: %w", err)
	}

	primindReq := PrimindTaskRequest{
		Task: PrimindTask{
			Name: task.Name,
			HTTPRequest: PrimindHTTPRequest{
				Body: base64.StdEncoding.EncodeToString(payload),
				Headers: map[string]string{
					"Content-Type":      "application/json",
					precisionHeader:     string(task.Precision()),
					occurrenceKeyHeader: task.Payload.Key,
				},
			},
		},
	}

	if !task.FireAt.IsZero() {
		primindReq.Task.ScheduleTime = task.FireAt.Format(time.RFC3339)
	}

	reqBody, err := json.Marshal(primindReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal primind request: %w", err)
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

		resp, err := c.doCreate(ctx, reqBody, task)
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

func (c *PrimindTasksClient) doCreate(ctx context.Context, reqBody []byte, task *AlarmTask) (*TaskResponse, error) {
	endpoint := c.tasksURL()

	slog.DebugContext(ctx, "registering alarm to Primind Tasks",
		slog.String("url", endpoint),
		slog.String("task_name", task.Name),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return nil, &permanentError{err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-request-id", logging.ValidateAndExtractRequestID(logging.RequestIDFromContext(ctx)))
	tracing.InjectToHTTPRequest(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.WarnContext(ctx, "failed to send request to Primind Tasks",
			slog.String("task_name", task.Name),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
	case http.StatusConflict:
		// A task with this name already exists; the alarm is in place.
		slog.InfoContext(ctx, "alarm already registered in Primind Tasks",
			slog.String("task_name", task.Name),
		)
		return &TaskResponse{Name: task.Name, ScheduleTime: task.FireAt}, nil
	case http.StatusForbidden, http.StatusUnauthorized:
		return nil, &permanentError{err: fmt.Errorf("%w: status %d", domain.ErrSchedulingPermissionDenied, resp.StatusCode)}
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return nil, &permanentError{err: fmt.Errorf("rejected alarm request: status %d", resp.StatusCode)}
	default:
		slog.WarnContext(ctx, "unexpected status code from Primind Tasks",
			slog.String("task_name", task.Name),
			slog.Int("status_code", resp.StatusCode),
		)
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var primindResp PrimindTaskResponse
	if err := json.NewDecoder(resp.Body).Decode(&primindResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	scheduleTime, _ := time.Parse(time.RFC3339, primindResp.ScheduleTime)
	createTime, _ := time.Parse(time.RFC3339, primindResp.CreateTime)

	name := primindResp.Name
	if name == "" {
		name = task.Name
	}

	slog.InfoContext(ctx, "alarm registered to Primind Tasks",
		slog.String("task_name", name),
		slog.String("precision", string(task.Precision())),
	)

	return &TaskResponse{
		Name:         name,
		ScheduleTime: scheduleTime,
		CreateTime:   createTime,
	}, nil
}

func (c *PrimindTasksClient) Cancel(ctx context.Context, name string) error {
	endpoint := c.tasksURL() + "/" + url.PathEscape(name)

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

		err := c.doDelete(ctx, endpoint, name)
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

func (c *PrimindTasksClient) doDelete(ctx context.Context, endpoint, name string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return &permanentError{err: fmt.Errorf("failed to create request: %w", err)}
	}
	tracing.InjectToHTTPRequest(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		slog.InfoContext(ctx, "alarm cancelled in Primind Tasks",
			slog.String("task_name", name),
		)
		return nil
	case http.StatusNotFound:
		slog.InfoContext(ctx, "alarm not found in Primind Tasks (may have fired)",
			slog.String("task_name", name),
		)
		return nil
	case http.StatusForbidden, http.StatusUnauthorized:
		return &permanentError{err: fmt.Errorf("%w: status %d", domain.ErrSchedulingPermissionDenied, resp.StatusCode)}
	default:
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
}
