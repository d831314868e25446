package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/grpchealth"
	"github.com/gin-gonic/gin"
)

func TestCheckerReady(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		database   Pinger
		wantStatus int
		wantHealth Status
	}{
		{
			name:       "healthy",
			database:   PingerFunc(func(context.Context) error { return nil }),
			wantStatus: http.StatusOK,
			wantHealth: StatusHealthy,
		},
		{
			name:       "database down",
			database:   PingerFunc(func(context.Context) error { return errors.New("disk I/O error") }),
			wantStatus: http.StatusServiceUnavailable,
			wantHealth: StatusUnhealthy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := NewChecker(nil, tt.database, "test")

			r := gin.New()
			r.GET("/health/ready", checker.ReadyHandler())

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			if w.Code != tt.wantStatus {
				t.Errorf("status: got %d, want %d", w.Code, tt.wantStatus)
			}

			var body HealthStatus
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Status != tt.wantHealth {
				t.Errorf("health: got %s, want %s", body.Status, tt.wantHealth)
			}
			if _, ok := body.Checks["database"]; !ok {
				t.Error("expected database check in response")
			}
			if body.Version != "test" {
				t.Errorf("version: got %q", body.Version)
			}
		})
	}
}

func TestCheckerLive(t *testing.T) {
	gin.SetMode(gin.TestMode)

	checker := NewChecker(nil, PingerFunc(func(context.Context) error { return errors.New("down") }), "test")

	r := gin.New()
	r.GET("/health/live", checker.LiveHandler())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	if w.Code != http.StatusOK {
		t.Errorf("liveness must not depend on dependencies, got %d", w.Code)
	}
}

func TestGRPCChecker(t *testing.T) {
	healthy := &grpcChecker{checker: NewChecker(nil, PingerFunc(func(context.Context) error { return nil }), "test")}
	unhealthy := &grpcChecker{checker: NewChecker(nil, PingerFunc(func(context.Context) error { return errors.New("down") }), "test")}

	resp, err := healthy.Check(context.Background(), &grpchealth.CheckRequest{Service: ServiceName})
	if err != nil || resp.Status != grpchealth.StatusServing {
		t.Errorf("healthy: got %+v, %v", resp, err)
	}

	resp, err = unhealthy.Check(context.Background(), &grpchealth.CheckRequest{})
	if err != nil || resp.Status != grpchealth.StatusNotServing {
		t.Errorf("unhealthy: got %+v, %v", resp, err)
	}

	if _, err := healthy.Check(context.Background(), &grpchealth.CheckRequest{Service: "unknown.Service"}); err == nil {
		t.Error("expected error for unknown service")
	}
}

func TestGRPCHandlerPath(t *testing.T) {
	path, handler := NewChecker(nil, nil, "test").GRPCHandler()
	if path != "/grpc.health.v1.Health/" {
		t.Errorf("path: got %q", path)
	}
	if handler == nil {
		t.Error("expected handler")
	}
}
