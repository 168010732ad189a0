package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/KarthicSuRa/mcm-alerts-aws/internal/core/contracts"
	"github.com/KarthicSuRa/mcm-alerts-aws/internal/core/domain"
	"github.com/KarthicSuRa/mcm-alerts-aws/internal/platform/logger"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// notificationEvent is the NOTIFICATION_UPDATED wire payload: the full
// updated row, mirroring ALL_NEW semantics.
type notificationEvent struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Severity  string    `json:"severity"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type NotificationService struct {
	repo      domain.NotificationRepository
	notifier  contracts.Notifier
	txManager TxRunner
	log       *slog.Logger
}

func NewNotificationService(
	log *slog.Logger,
	repo domain.NotificationRepository,
	notifier contracts.Notifier,
	txManager TxRunner,
) *NotificationService {
	return &NotificationService{
		log:       log,
		repo:      repo,
		notifier:  notifier,
		txManager: txManager,
	}
}

func (s *NotificationService) Update(
	ctx context.Context,
	endpoint string,
	notificationID string,
	patch domain.NotificationPatch,
) (*domain.Notification, error) {
	ctx, span := tracer.Start(ctx, "NotificationService.Update", trace.WithAttributes(
		attribute.String("notification_id", notificationID),
	))
	defer span.End()

	nid, err := uuid.Parse(notificationID)
	if err != nil {
		span.RecordError(err)
		return nil, domain.ErrInvalidNotificationID
	}
	if patch.Empty() {
		return nil, domain.ErrEmptyPatch
	}

	var updated *domain.Notification
	if err := s.txManager.WithTx(ctx, func(txCtx context.Context) error {
		var txErr error
		updated, txErr = s.repo.Update(txCtx, nid, patch)
		return txErr
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "update failed")
		s.log.ErrorContext(ctx, "notifications - update failed", logger.Notification(notificationID), logger.Err(err))
		return nil, err
	}
	s.log.InfoContext(ctx, "notifications - update - row updated", logger.Notification(notificationID))

	s.notifier.Notify(ctx, endpoint, domain.TypeNotificationUpdated, notificationEvent{
		ID:        updated.ID.String(),
		Title:     updated.Title,
		Body:      updated.Body,
		Severity:  updated.Severity,
		Read:      updated.Read,
		CreatedAt: updated.CreatedAt,
		UpdatedAt: updated.UpdatedAt,
	})
	return updated, nil
}
