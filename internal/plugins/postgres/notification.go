package postgres

import (
	"context"
	"database/sql"

	"github.com/KarthicSuRa/mcm-alerts-aws/internal/core/domain"

	"github.com/google/uuid"
)

type NotificationRepo struct {
	db *sql.DB
}

func NewNotificationRepo(db *sql.DB) *NotificationRepo {
	return &NotificationRepo{db: db}
}

func (r *NotificationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	if id == uuid.Nil {
		return nil, domain.ErrInvalidNotificationID
	}
	exec := GetExecutor(ctx, r.db)
	n := &domain.Notification{ID: id}
	err := exec.QueryRowContext(ctx, `
		SELECT title, body, severity, read, created_at, updated_at
		FROM notifications WHERE id = $1
	`, id).Scan(&n.Title, &n.Body, &n.Severity, &n.Read, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotificationNotFound
		}
		return nil, err
	}
	return n, nil
}

// Update applies the patch with COALESCE so untouched fields survive, and
// returns the full updated row (ALL_NEW semantics).
func (r *NotificationRepo) Update(
	ctx context.Context,
	id uuid.UUID,
	patch domain.NotificationPatch,
) (*domain.Notification, error) {
	if id == uuid.Nil {
		return nil, domain.ErrInvalidNotificationID
	}
	exec := GetExecutor(ctx, r.db)
	n := &domain.Notification{ID: id}
	err := exec.QueryRowContext(ctx, `
		UPDATE notifications
		SET title      = COALESCE($2::text, title),
		    body       = COALESCE($3::text, body),
		    severity   = COALESCE($4::text, severity),
		    read       = COALESCE($5::boolean, read),
		    updated_at = now()
		WHERE id = $1
		RETURNING title, body, severity, read, created_at, updated_at
	`, id, patch.Title, patch.Body, patch.Severity, patch.Read).
		Scan(&n.Title, &n.Body, &n.Severity, &n.Read, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotificationNotFound
		}
		return nil, err
	}
	return n, nil
}
