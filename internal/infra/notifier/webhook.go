package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
	"github.com/KasumiMercury/primind-medication-reminder/internal/observability/logging"
	"github.com/KasumiMercury/primind-medication-reminder/internal/observability/tracing"
)

type webhookMessage struct {
	MedicationID   int64  `json:"medication_id"`
	MedicationName string `json:"medication_name"`
	Title          string `json:"title"`
	Body           string `json:"body"`
	TimeOfDay      string `json:"time_of_day"`
	Date           string `json:"date"`
}

// WebhookPresenter posts reminders as JSON to an HTTP endpoint.
type WebhookPresenter struct {
	url        string
	httpClient *http.Client
	maxRetries int
}

func NewWebhookPresenter(url string, httpClient *http.Client, maxRetries int) *WebhookPresenter {
	if maxRetries <= 0 {
		maxRetries = 3
	}
	return &WebhookPresenter{
		url:        url,
		httpClient: httpClient,
		maxRetries: maxRetries,
	}
}

func (p *WebhookPresenter) Show(ctx context.Context, n *domain.Notification) error {
	body, err := json.Marshal(webhookMessage{
		MedicationID:   n.MedicationID,
		MedicationName: n.MedicationName,
		Title:          n.Title,
		Body:           n.Body,
		TimeOfDay:      n.TimeOfDay.String(),
		Date:           n.Date.String(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < p.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * 100 * time.Millisecond
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}

		if lastErr = p.post(ctx, body); lastErr == nil {
			slog.InfoContext(ctx, "notification delivered to webhook",
				slog.Int64("medication_id", n.MedicationID),
				slog.String("time_of_day", n.TimeOfDay.String()),
			)
			return nil
		}
	}

	return fmt.Errorf("failed to deliver notification after %d retries: %w", p.maxRetries, lastErr)
}

func (p *WebhookPresenter) post(ctx context.Context, body []byte) error {
	ctx, span := tracing.StartExternalAPISpan(ctx, "webhook", p.url)
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-request-id", logging.ValidateAndExtractRequestID(logging.RequestIDFromContext(ctx)))
	tracing.InjectToHTTPRequest(ctx, req)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		slog.WarnContext(ctx, "failed to send notification webhook",
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slog.WarnContext(ctx, "unexpected status code from notification webhook",
			slog.Int("status_code", resp.StatusCode),
		)
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return nil
}
