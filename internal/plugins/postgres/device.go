package postgres

import (
	"context"
	"database/sql"

	"github.com/KarthicSuRa/mcm-alerts-aws/internal/core/domain"
)

type DeviceRepo struct {
	db *sql.DB
}

func NewDeviceRepo(db *sql.DB) *DeviceRepo {
	return &DeviceRepo{db: db}
}

// Upsert overwrites an existing registration for the same player id,
// reassigning ownership to the latest registering user.
func (r *DeviceRepo) Upsert(ctx context.Context, d *domain.Device) error {
	if d.PlayerID == "" {
		return domain.ErrMissingPlayerID
	}
	exec := GetExecutor(ctx, r.db)
	_, err := exec.ExecContext(ctx, `
        INSERT INTO devices (player_id, user_id, created_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (player_id) DO UPDATE
        SET user_id = EXCLUDED.user_id, created_at = EXCLUDED.created_at
    `, d.PlayerID, d.UserID, d.CreatedAt)
	return err
}

// DeleteOwned is the conditional delete: the row goes away only when userID
// owns it. Zero rows affected is indistinguishable between "absent" and
// "owned by someone else", and both map to ErrDeviceNotOwned.
func (r *DeviceRepo) DeleteOwned(ctx context.Context, playerID, userID string) error {
	if playerID == "" {
		return domain.ErrMissingPlayerID
	}
	exec := GetExecutor(ctx, r.db)
	result, err := exec.ExecContext(ctx, `
		DELETE FROM devices WHERE player_id = $1 AND user_id = $2
	`, playerID, userID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrDeviceNotOwned
	}
	return nil
}
