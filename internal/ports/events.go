package ports

import "context"

// AnalyticsPublisher emits fire-and-forget analytics events. Publish
// failures are logged by the caller, never surfaced to the requester.
type AnalyticsPublisher interface {
	Publish(ctx context.Context, eventType string, payload []byte, partitionKey string) error
}
