package contracts

import "context"

type EventQueue interface {
	// Producer side (request handlers)
	Publish(ctx context.Context, topic string, payload []byte) error
	// Consumer side (broadcast worker). Subscribe handles the reliable
	// reading from the stream and dispatches each entry to handler.
	Subscribe(ctx context.Context, topic, group string, handler func(ctx context.Context, messageID string, data []byte) error) error
	// Ack tells the stream the message has been fully processed.
	Ack(ctx context.Context, topic, group, messageID string) error
	// Delete removes the message from the stream.
	Delete(ctx context.Context, topic, messageID string) error
}
