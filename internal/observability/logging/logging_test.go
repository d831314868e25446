package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerAddsRequestAndServiceAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, Options{
		Service:     ServiceInfo{Name: "reminder", Version: "v1.2.3"},
		Environment: EnvDev,
		Module:      Module("alarm"),
	}))

	ctx := WithRequestID(context.Background(), "req-1")
	logger.InfoContext(ctx, "hello", slog.Int("count", 2))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	assert.Equal(t, "req-1", record["request_id"])
	assert.Equal(t, "alarm", record["module"])
	assert.Equal(t, "dev", record["env"])
	assert.EqualValues(t, 2, record["count"])

	service, ok := record["service"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "reminder", service["name"])
	assert.Equal(t, "v1.2.3", service["version"])
}

func TestHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, Options{Level: slog.LevelWarn}))

	logger.Info("dropped")
	assert.Zero(t, buf.Len())

	logger.Warn("kept")
	assert.NotZero(t, buf.Len())
}

func TestValidateAndExtractRequestID(t *testing.T) {
	valid := uuid.NewString()
	assert.Equal(t, valid, ValidateAndExtractRequestID(valid))

	for _, input := range []string{"", "not-a-uuid"} {
		got := ValidateAndExtractRequestID(input)
		_, err := uuid.Parse(got)
		assert.NoError(t, err, "input %q", input)
		assert.NotEqual(t, input, got)
	}
}

func TestRequestIDFromContextEmpty(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(context.Background()))
}
