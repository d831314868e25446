package health

import (
	"context"
	"net/http"

	"connectrpc.com/grpchealth"
)

// ServiceName is reported to gRPC health clients for the reminder API.
const ServiceName = "medication.reminder.v1.ReminderService"

type grpcChecker struct {
	checker *Checker
}

// Check serves grpc.health.v1 requests for the overall server and for
// ServiceName. Unknown services return NotFound.
func (g *grpcChecker) Check(ctx context.Context, req *grpchealth.CheckRequest) (*grpchealth.CheckResponse, error) {
	if req.Service != "" && req.Service != ServiceName {
		return grpchealth.NewStaticChecker().Check(ctx, req)
	}

	if g.checker.Check(ctx).Status != StatusHealthy {
		return &grpchealth.CheckResponse{Status: grpchealth.StatusNotServing}, nil
	}
	return &grpchealth.CheckResponse{Status: grpchealth.StatusServing}, nil
}

// GRPCHandler exposes the checker over the gRPC health protocol.
func (c *Checker) GRPCHandler() (string, http.Handler) {
	return grpchealth.NewHandler(&grpcChecker{checker: c})
}
