//go:build gcloud

package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate requires the Cloud Tasks coordinates and an HTTPS callback target.
func (c *TaskQueueConfig) Validate() error {
	var errs []error

	required := map[string]string{
		"GCLOUD_PROJECT_ID":  c.GCloudProjectID,
		"GCLOUD_LOCATION_ID": c.GCloudLocationID,
		"GCLOUD_QUEUE_ID":    c.GCloudQueueID,
		"GCLOUD_TARGET_URL":  c.GCloudTargetURL,
	}
	for _, name := range []string{"GCLOUD_PROJECT_ID", "GCLOUD_LOCATION_ID", "GCLOUD_QUEUE_ID", "GCLOUD_TARGET_URL"} {
		if required[name] == "" {
			errs = append(errs, fmt.Errorf("%s is required", name))
		}
	}

	if c.GCloudTargetURL != "" && !strings.HasPrefix(c.GCloudTargetURL, "https://") {
		errs = append(errs, errors.New("GCLOUD_TARGET_URL must use https"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("task queue configuration errors: %w", errors.Join(errs...))
	}

	return nil
}
