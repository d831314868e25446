package planrecorder

import (
	"context"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.PlanRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordPlan(_ context.Context, _ []domain.PlanRecord) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}
