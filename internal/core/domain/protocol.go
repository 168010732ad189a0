package domain

import (
	"encoding/json"
	"time"
)

const (
	TypeHandshake           = "handshake"
	TypeNewComment          = "NEW_COMMENT"
	TypeNotificationUpdated = "NOTIFICATION_UPDATED"
)

// HandshakeResponse is sent once on connect so the client learns its id.
type HandshakeResponse struct {
	Type         string `json:"type"` // "handshake"
	ConnectionID string `json:"connection_id"`
}

// EventEnvelope is the immutable broadcast payload: a type tag plus opaque
// data. It has no identity beyond its contents and is never persisted.
type EventEnvelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"payload"`
}

// BroadcastJob is what event producers enqueue: the envelope plus the
// management-plane endpoint derived from the producing request.
type BroadcastJob struct {
	Endpoint   string        `json:"endpoint"`
	Event      EventEnvelope `json:"event"`
	EnqueuedAt time.Time     `json:"enqueued_at"`
}

// DeliveryOutcome classifies one send attempt against one connection.
type DeliveryOutcome int

const (
	// DeliveryOK: the transport accepted the payload.
	DeliveryOK DeliveryOutcome = iota
	// DeliveryGone: the transport confirmed the target no longer exists.
	// Expected steady-state condition, drives registry pruning.
	DeliveryGone
	// DeliveryFailed: any other failure (timeout, throttling, 5xx). Logged,
	// never retried within the same broadcast, no registry mutation.
	DeliveryFailed
)

func (o DeliveryOutcome) String() string {
	switch o {
	case DeliveryOK:
		return "delivered"
	case DeliveryGone:
		return "gone"
	default:
		return "failed"
	}
}

// BroadcastReport summarizes one fanout for observability. Callers never act
// on it and never fail their own operation based on it.
type BroadcastReport struct {
	Attempted int
	Delivered int
	Pruned    int
	Failed    int
}
