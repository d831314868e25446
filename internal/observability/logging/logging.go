package logging

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// Module identifies the component that emitted a log record.
type Module string

type Environment string

const (
	EnvDev  Environment = "dev"
	EnvProd Environment = "prod"
)

type ServiceInfo struct {
	Name     string
	Version  string
	Revision string
}

type Options struct {
	Service      ServiceInfo
	Environment  Environment
	Module       Module
	GCPProjectID string
	Level        slog.Leveler
}

// NewHandler builds a JSON handler that decorates records with service,
// request and trace attributes.
func NewHandler(w io.Writer, opts Options) slog.Handler {
	level := opts.Level
	if level == nil {
		level = slog.LevelInfo
	}

	base := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: replaceAttr,
	})

	attrs := []slog.Attr{
		slog.Group("service",
			slog.String("name", opts.Service.Name),
			slog.String("version", opts.Service.Version),
			slog.String("revision", opts.Service.Revision),
		),
		slog.String("env", string(opts.Environment)),
	}
	if opts.Module != "" {
		attrs = append(attrs, slog.String("module", string(opts.Module)))
	}

	return &contextHandler{
		Handler:   base.WithAttrs(attrs),
		projectID: opts.GCPProjectID,
	}
}

type contextHandler struct {
	slog.Handler
	projectID string
}

func (h *contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if ctx != nil {
		if requestID := RequestIDFromContext(ctx); requestID != "" {
			r.AddAttrs(slog.String("request_id", requestID))
		}

		if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
			r.AddAttrs(
				slog.String("trace_id", sc.TraceID().String()),
				slog.String("span_id", sc.SpanID().String()),
			)
		}

		r.AddAttrs(gcpTraceAttrs(ctx, h.projectID)...)
	}

	return h.Handler.Handle(ctx, r)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithAttrs(attrs), projectID: h.projectID}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithGroup(name), projectID: h.projectID}
}
