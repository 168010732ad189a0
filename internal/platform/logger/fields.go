package logger

import "log/slog"

// Domain identifiers

func Connection(id string) slog.Attr {
	return slog.String("connection_id", id)
}

func Notification(id string) slog.Attr {
	return slog.String("notification_id", id)
}

func Player(id string) slog.Attr {
	return slog.String("player_id", id)
}

func EventType(t string) slog.Attr {
	return slog.String("event_type", t)
}

// Error handling

func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}
