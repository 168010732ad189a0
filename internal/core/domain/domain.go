package domain

import (
	"time"

	"github.com/google/uuid"
)

// Connection is one live client session, identified by the opaque id the
// transport assigned at connect time. Presence in the durable registry means
// the connection is believed live; absence means never connected or already
// cleaned up.
type Connection struct {
	ID          string
	UserID      string // optional metadata, not required for correctness
	ConnectedAt time.Time
}

// Device is a registered push target owned by one user.
type Device struct {
	PlayerID  string
	UserID    string
	CreatedAt time.Time
}

// Comment is attached to a notification by a user.
type Comment struct {
	ID             uuid.UUID
	NotificationID uuid.UUID
	UserID         string
	Text           string
	CreatedAt      time.Time
}

func NewComment(notificationID uuid.UUID, userID, text string) *Comment {
	return &Comment{
		ID:             uuid.New(),
		NotificationID: notificationID,
		UserID:         userID,
		Text:           text,
		CreatedAt:      time.Now(),
	}
}

// Notification is an alert record clients watch for updates.
type Notification struct {
	ID        uuid.UUID
	Title     string
	Body      string
	Severity  string
	Read      bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NotificationPatch carries the mutable fields of a notification update.
// Nil means "leave unchanged".
type NotificationPatch struct {
	Title    *string `json:"title"`
	Body     *string `json:"body"`
	Severity *string `json:"severity"`
	Read     *bool   `json:"read"`
}

func (p NotificationPatch) Empty() bool {
	return p.Title == nil && p.Body == nil && p.Severity == nil && p.Read == nil
}
