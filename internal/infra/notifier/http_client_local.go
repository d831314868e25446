//go:build !gcloud

package notifier

import (
	"context"
	"net/http"
	"time"
)

// newHTTPClient creates a plain HTTP client for local development.
func newHTTPClient(_ context.Context, _ string) *http.Client {
	return &http.Client{
		Timeout: 30 * time.Second,
	}
}
