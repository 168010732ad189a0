package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/KarthicSuRa/mcm-alerts-aws/internal/core/contracts"
	"github.com/KarthicSuRa/mcm-alerts-aws/internal/core/domain"
	"github.com/KarthicSuRa/mcm-alerts-aws/internal/platform/logger"
)

// EventNotifier bridges event producers to the broadcast stream. Notify is
// fire and forget: whatever goes wrong is logged and swallowed, because the
// producer's durable write already succeeded and must not report failure.
type EventNotifier struct {
	queue  contracts.EventQueue
	stream string
	log    *slog.Logger
}

func NewEventNotifier(log *slog.Logger, queue contracts.EventQueue, stream string) *EventNotifier {
	return &EventNotifier{log: log, queue: queue, stream: stream}
}

func (n *EventNotifier) Notify(ctx context.Context, endpoint, eventType string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		n.log.ErrorContext(ctx, "notifier - payload marshal failed", logger.EventType(eventType), logger.Err(err))
		return
	}
	job := domain.BroadcastJob{
		Endpoint: endpoint,
		Event: domain.EventEnvelope{
			Type: eventType,
			Data: data,
		},
		EnqueuedAt: time.Now(),
	}
	raw, err := json.Marshal(job)
	if err != nil {
		n.log.ErrorContext(ctx, "notifier - job marshal failed", logger.EventType(eventType), logger.Err(err))
		return
	}
	if err := n.queue.Publish(ctx, n.stream, raw); err != nil {
		n.log.ErrorContext(ctx, "notifier - publish to stream failed", logger.EventType(eventType), logger.Err(err))
		return
	}
	n.log.InfoContext(ctx, "notifier - event enqueued", logger.EventType(eventType))
}
