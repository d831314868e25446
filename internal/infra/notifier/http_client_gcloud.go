//go:build gcloud

package notifier

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"google.golang.org/api/idtoken"
)

// newHTTPClient creates an HTTP client with GCP ID token authentication.
func newHTTPClient(ctx context.Context, audience string) *http.Client {
	httpClient, err := idtoken.NewClient(ctx, audience)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create idtoken client, falling back to unauthenticated client",
			slog.String("error", err.Error()),
		)
		return &http.Client{
			Timeout: 30 * time.Second,
		}
	}
	httpClient.Timeout = 30 * time.Second
	return httpClient
}
