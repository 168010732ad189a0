package postgres

import (
	"context"
	"database/sql"

	"github.com/KarthicSuRa/mcm-alerts-aws/internal/core/domain"

	"github.com/google/uuid"
)

type CommentRepo struct {
	db *sql.DB
}

func NewCommentRepo(db *sql.DB) *CommentRepo {
	return &CommentRepo{db: db}
}

func (r *CommentRepo) Insert(ctx context.Context, c *domain.Comment) error {
	if c.NotificationID == uuid.Nil {
		return domain.ErrInvalidNotificationID
	}
	exec := GetExecutor(ctx, r.db)
	_, err := exec.ExecContext(ctx, `
        INSERT INTO comments (
            id, notification_id, user_id, text, created_at
        ) VALUES ($1, $2, $3, $4, $5)
    `,
		c.ID,
		c.NotificationID,
		c.UserID,
		c.Text,
		c.CreatedAt,
	)
	return err
}

func (r *CommentRepo) ListByNotification(
	ctx context.Context,
	notificationID uuid.UUID,
) ([]domain.Comment, error) {
	if notificationID == uuid.Nil {
		return nil, domain.ErrInvalidNotificationID
	}
	exec := GetExecutor(ctx, r.db)
	rows, err := exec.QueryContext(ctx, `
		SELECT id, notification_id, user_id, text, created_at
		FROM comments
		WHERE notification_id = $1
		ORDER BY created_at ASC
	`, notificationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(
			&c.ID,
			&c.NotificationID,
			&c.UserID,
			&c.Text,
			&c.CreatedAt,
		); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
