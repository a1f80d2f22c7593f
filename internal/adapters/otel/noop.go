package otel

import "context"

// NoOpExporter is a metrics exporter that does nothing.
type NoOpExporter struct{}

// NewNoOpExporter creates a new no-op exporter for graceful degradation.
func NewNoOpExporter() *NoOpExporter {
	return &NoOpExporter{}
}

func (e *NoOpExporter) RecordTransition(ctx context.Context, action string) {}

func (e *NoOpExporter) RecordInsertion(ctx context.Context, activity string, minutes int) {}

func (e *NoOpExporter) RecordSyncFlush(ctx context.Context, result string, sessions int) {}

func (e *NoOpExporter) Close(ctx context.Context) error {
	return nil
}
