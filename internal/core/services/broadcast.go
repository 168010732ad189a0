package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/KarthicSuRa/mcm-alerts-aws/internal/core/contracts"
	"github.com/KarthicSuRa/mcm-alerts-aws/internal/core/domain"
	"github.com/KarthicSuRa/mcm-alerts-aws/internal/platform/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("broadcast-service")

// BroadcastService is the fanout coordinator: it snapshots the durable
// registry, pushes the serialized event to every connection through the
// resolver, and prunes entries the transport reports gone. Fanout is best
// effort and self-healing; nothing here ever propagates an error to the
// event producer whose durable write already succeeded.
type BroadcastService struct {
	registry    contracts.ConnectionRegistry
	resolver    contracts.ChannelResolver
	sendTimeout time.Duration
	log         *slog.Logger
}

func NewBroadcastService(
	log *slog.Logger,
	registry contracts.ConnectionRegistry,
	resolver contracts.ChannelResolver,
	sendTimeout time.Duration,
) *BroadcastService {
	if sendTimeout <= 0 {
		sendTimeout = 5 * time.Second
	}
	return &BroadcastService{
		log:         log,
		registry:    registry,
		resolver:    resolver,
		sendTimeout: sendTimeout,
	}
}

func (s *BroadcastService) Broadcast(
	ctx context.Context,
	endpoint string,
	event domain.EventEnvelope,
) domain.BroadcastReport {
	ctx, span := tracer.Start(ctx, "BroadcastService.Broadcast", trace.WithAttributes(
		attribute.String("event_type", event.Type),
	))
	defer span.End()

	var report domain.BroadcastReport

	snapshot, err := s.registry.ListAll(ctx)
	if err != nil {
		// Registry outage aborts this broadcast only. A zero report goes
		// back; the triggering business operation must never see this.
		span.RecordError(err)
		span.SetStatus(codes.Error, "registry snapshot failed")
		s.log.ErrorContext(ctx, "broadcast - registry snapshot failed", logger.Err(err), logger.EventType(event.Type))
		return report
	}
	if len(snapshot) == 0 {
		return report
	}

	// Serialize once, reuse for every connection.
	data, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		s.log.ErrorContext(ctx, "broadcast - payload marshal failed", logger.Err(err), logger.EventType(event.Type))
		return report
	}

	for _, connID := range snapshot {
		report.Attempted++
		// Per-connection timeout so one unresponsive endpoint cannot
		// stall the whole fanout.
		sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
		outcome := s.resolver.Send(sendCtx, endpoint, connID, data)
		cancel()

		switch outcome {
		case domain.DeliveryGone:
			// Expected steady state: the client dropped without a clean
			// disconnect signal. Prune so the registry converges.
			if err := s.registry.Remove(ctx, connID); err != nil {
				s.log.ErrorContext(ctx, "broadcast - prune failed", logger.Connection(connID), logger.Err(err))
			}
			report.Pruned++
		case domain.DeliveryFailed:
			report.Failed++
			s.log.WarnContext(ctx, "broadcast - delivery failed", logger.Connection(connID), logger.EventType(event.Type))
		default:
			report.Delivered++
		}
	}

	span.SetAttributes(
		attribute.Int("broadcast.attempted", report.Attempted),
		attribute.Int("broadcast.delivered", report.Delivered),
		attribute.Int("broadcast.pruned", report.Pruned),
		attribute.Int("broadcast.failed", report.Failed),
	)
	s.log.InfoContext(ctx, "broadcast - fanout complete",
		logger.EventType(event.Type),
		slog.Int("attempted", report.Attempted),
		slog.Int("delivered", report.Delivered),
		slog.Int("pruned", report.Pruned),
		slog.Int("failed", report.Failed),
	)
	return report
}
