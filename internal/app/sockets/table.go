package sockets

import (
	"context"
	"sync"

	"github.com/KarthicSuRa/mcm-alerts-aws/internal/core/contracts"
	"github.com/KarthicSuRa/mcm-alerts-aws/internal/core/domain"
)

// Table is the node-local map of connection id → attached WebSocket client.
// It backs the management-plane push endpoint: the durable registry says who
// should be reachable, the table says who actually is on this node.
type Table struct {
	mu      sync.RWMutex
	clients map[string]contracts.Client
}

func NewTable() *Table {
	return &Table{
		clients: make(map[string]contracts.Client),
	}
}

func (t *Table) Attach(c contracts.Client) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.clients[c.ConnectionID()] = c
}

// Detach removes the entry only if it still points at c, so a reconnect that
// reused the id is not clobbered by the old connection's teardown.
func (t *Table) Detach(c contracts.Client) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if cur, ok := t.clients[c.ConnectionID()]; ok && cur == c {
		delete(t.clients, c.ConnectionID())
	}
}

// Push writes data to one attached connection. domain.ErrConnectionGone
// reports that the socket is not on this node (the 410 of the push API).
func (t *Table) Push(ctx context.Context, connectionID string, data []byte) error {
	t.mu.RLock()
	c := t.clients[connectionID]
	t.mu.RUnlock()
	if c == nil {
		return domain.ErrConnectionGone
	}
	if err := c.Send(ctx, data); err != nil {
		return domain.ErrConnectionGone
	}
	return nil
}

// Close force-closes one attached connection; reports whether it was present.
func (t *Table) Close(connectionID string) bool {
	t.mu.RLock()
	c := t.clients[connectionID]
	t.mu.RUnlock()
	if c == nil {
		return false
	}
	c.Close()
	return true
}

func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.clients)
}
