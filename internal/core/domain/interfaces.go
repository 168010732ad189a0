package domain

import (
	"context"

	"github.com/google/uuid"
)

// CommentRepository persists comments. Writes must succeed-or-error: the
// producing request reports failure when persistence fails, unlike fanout.
type CommentRepository interface {
	Insert(ctx context.Context, c *Comment) error
	ListByNotification(ctx context.Context, notificationID uuid.UUID) ([]Comment, error)
}

// NotificationRepository handles the notification lifecycle.
type NotificationRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Notification, error)
	// Update applies the patch and returns the full updated row.
	Update(ctx context.Context, id uuid.UUID, patch NotificationPatch) (*Notification, error)
}

// DeviceRepository handles push device registrations.
type DeviceRepository interface {
	// Upsert overwrites any existing registration for the same player id.
	Upsert(ctx context.Context, d *Device) error
	// DeleteOwned deletes only when userID owns the device; returns
	// ErrDeviceNotOwned otherwise (conditional-delete semantics).
	DeleteOwned(ctx context.Context, playerID, userID string) error
}
