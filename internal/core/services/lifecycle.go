package services

import (
	"context"
	"log/slog"

	"github.com/KarthicSuRa/mcm-alerts-aws/internal/core/contracts"
	"github.com/KarthicSuRa/mcm-alerts-aws/internal/core/domain"
	"github.com/KarthicSuRa/mcm-alerts-aws/internal/platform/logger"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// LifecycleService reacts to the transport's connect/disconnect/message
// signals and keeps the durable registry accurate. Registry outages are soft
// failures here: the transport cannot be refused, so callers log and still
// acknowledge the signal.
type LifecycleService struct {
	registry contracts.ConnectionRegistry
	log      *slog.Logger
}

func NewLifecycleService(log *slog.Logger, registry contracts.ConnectionRegistry) *LifecycleService {
	return &LifecycleService{log: log, registry: registry}
}

func (s *LifecycleService) OnConnect(ctx context.Context, connectionID string) error {
	ctx, span := tracer.Start(ctx, "LifecycleService.OnConnect", trace.WithAttributes(
		attribute.String("connection_id", connectionID),
	))
	defer span.End()
	if connectionID == "" {
		return domain.ErrMissingConnectionID
	}
	if err := s.registry.Add(ctx, connectionID); err != nil {
		span.RecordError(err)
		s.log.ErrorContext(ctx, "lifecycle - connect - registry add failed", logger.Connection(connectionID), logger.Err(err))
		return err
	}
	s.log.InfoContext(ctx, "lifecycle - connect - connection stored", logger.Connection(connectionID))
	return nil
}

func (s *LifecycleService) OnDisconnect(ctx context.Context, connectionID string) error {
	ctx, span := tracer.Start(ctx, "LifecycleService.OnDisconnect", trace.WithAttributes(
		attribute.String("connection_id", connectionID),
	))
	defer span.End()
	if connectionID == "" {
		return domain.ErrMissingConnectionID
	}
	if err := s.registry.Remove(ctx, connectionID); err != nil {
		span.RecordError(err)
		s.log.ErrorContext(ctx, "lifecycle - disconnect - registry remove failed", logger.Connection(connectionID), logger.Err(err))
		return err
	}
	s.log.InfoContext(ctx, "lifecycle - disconnect - connection removed", logger.Connection(connectionID))
	return nil
}

// OnMessage is the reserved inbound extension point (future ping/pong).
// Acknowledge and move on; it must never error.
func (s *LifecycleService) OnMessage(ctx context.Context, connectionID string, raw []byte) {
	s.log.DebugContext(ctx, "lifecycle - message - no action configured",
		logger.Connection(connectionID), slog.Int("bytes", len(raw)))
}
