package ports

import "context"

// MetricsExporter exports tracker activity to an external observability
// system. Implementations must be safe to call from the event loop and
// never block a transition.
type MetricsExporter interface {
	// RecordTransition counts one state-machine transition.
	RecordTransition(ctx context.Context, action string)
	// RecordInsertion counts one external activity insertion and its
	// entered duration.
	RecordInsertion(ctx context.Context, activity string, minutes int)
	// RecordSyncFlush counts one synchronizer flush attempt.
	RecordSyncFlush(ctx context.Context, result string, sessions int)
	// Close shuts down the exporter and flushes any pending metrics.
	Close(ctx context.Context) error
}
