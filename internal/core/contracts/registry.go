package contracts

import "context"

// ConnectionRegistry is the durable, canonical set of live connection ids,
// shared by every invocation of the service. Implementations must make Add
// and Remove idempotent single-key writes.
type ConnectionRegistry interface {
	// Add inserts the id; overwrite semantics, no error on duplicate.
	Add(ctx context.Context, connectionID string) error
	// Remove deletes the id; no-op when absent.
	Remove(ctx context.Context, connectionID string) error
	// ListAll returns a point-in-time snapshot. No ordering guarantee.
	ListAll(ctx context.Context) ([]string, error)
}

// Client is the minimal surface the node-local socket table needs to talk to
// one attached WebSocket connection.
type Client interface {
	ConnectionID() string
	Send(ctx context.Context, data []byte) error
	Close()
}
