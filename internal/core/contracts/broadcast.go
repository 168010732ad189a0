package contracts

import (
	"context"

	"github.com/KarthicSuRa/mcm-alerts-aws/internal/core/domain"
)

// Broadcaster delivers one event to every registered connection. It never
// returns an error: fanout failure is contained and summarized in the report.
type Broadcaster interface {
	Broadcast(ctx context.Context, endpoint string, event domain.EventEnvelope) domain.BroadcastReport
}

// Notifier is the fire-and-forget surface event producers use. Failures are
// logged, never surfaced: the producer's own operation already succeeded.
type Notifier interface {
	Notify(ctx context.Context, endpoint, eventType string, payload any)
}
