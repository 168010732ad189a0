package domain

import "errors"

var (
	ErrMissingConnectionID   = errors.New("missing connection id")
	ErrConnectionGone        = errors.New("connection gone")
	ErrInvalidNotificationID = errors.New("invalid notification id")
	ErrNotificationNotFound  = errors.New("notification not found")
	ErrEmptyPatch            = errors.New("empty notification patch")
	ErrMissingCommentText    = errors.New("missing comment text")
	ErrMissingPlayerID       = errors.New("missing player id")
	ErrDeviceNotOwned        = errors.New("device does not belong to user or does not exist")
)
