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

// commentEvent is the NEW_COMMENT wire payload.
type commentEvent struct {
	ID             string    `json:"id"`
	NotificationID string    `json:"notification_id"`
	UserID         string    `json:"user_id"`
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"created_at"`
}

// CommentService is an event producer: persist the comment (must succeed),
// then notify interested parties. The notify leg never fails the request.
type CommentService struct {
	repo      domain.CommentRepository
	notifier  contracts.Notifier
	txManager TxRunner
	log       *slog.Logger
}

func NewCommentService(
	log *slog.Logger,
	repo domain.CommentRepository,
	notifier contracts.Notifier,
	txManager TxRunner,
) *CommentService {
	return &CommentService{
		log:       log,
		repo:      repo,
		notifier:  notifier,
		txManager: txManager,
	}
}

func (s *CommentService) Create(
	ctx context.Context,
	endpoint string,
	userID, notificationID, text string,
) (*domain.Comment, error) {
	ctx, span := tracer.Start(ctx, "CommentService.Create", trace.WithAttributes(
		attribute.String("notification_id", notificationID),
	))
	defer span.End()

	if text == "" {
		return nil, domain.ErrMissingCommentText
	}
	nid, err := uuid.Parse(notificationID)
	if err != nil {
		span.RecordError(err)
		return nil, domain.ErrInvalidNotificationID
	}

	comment := domain.NewComment(nid, userID, text)
	if err := s.txManager.WithTx(ctx, func(txCtx context.Context) error {
		return s.repo.Insert(txCtx, comment)
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
		s.log.ErrorContext(ctx, "comments - create - insert failed", logger.Notification(notificationID), logger.Err(err))
		return nil, err
	}
	s.log.InfoContext(ctx, "comments - create - comment stored",
		logger.Notification(notificationID), slog.String("comment_id", comment.ID.String()))

	s.notifier.Notify(ctx, endpoint, domain.TypeNewComment, commentEvent{
		ID:             comment.ID.String(),
		NotificationID: comment.NotificationID.String(),
		UserID:         comment.UserID,
		Text:           comment.Text,
		CreatedAt:      comment.CreatedAt,
	})
	return comment, nil
}

func (s *CommentService) ListByNotification(ctx context.Context, notificationID string) ([]domain.Comment, error) {
	nid, err := uuid.Parse(notificationID)
	if err != nil {
		return nil, domain.ErrInvalidNotificationID
	}
	comments, err := s.repo.ListByNotification(ctx, nid)
	if err != nil {
		s.log.ErrorContext(ctx, "comments - list - query failed", logger.Notification(notificationID), logger.Err(err))
		return nil, err
	}
	return comments, nil
}
