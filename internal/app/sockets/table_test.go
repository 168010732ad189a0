package sockets

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KarthicSuRa/mcm-alerts-aws/internal/core/domain"
)

type stubClient struct {
	id      string
	sent    [][]byte
	sendErr error
	closed  bool
}

func (c *stubClient) ConnectionID() string { return c.id }

func (c *stubClient) Send(_ context.Context, data []byte) error {
	if c.sendErr != nil {
		return c.sendErr
	}
	c.sent = append(c.sent, data)
	return nil
}

func (c *stubClient) Close() { c.closed = true }

func TestTablePushDeliversToAttachedClient(t *testing.T) {
	table := NewTable()
	client := &stubClient{id: "c1"}
	table.Attach(client)

	require.NoError(t, table.Push(context.Background(), "c1", []byte("hello")))
	require.Len(t, client.sent, 1)
	assert.Equal(t, []byte("hello"), client.sent[0])
}

func TestTablePushUnknownConnectionIsGone(t *testing.T) {
	table := NewTable()

	err := table.Push(context.Background(), "ghost", []byte("hello"))
	assert.ErrorIs(t, err, domain.ErrConnectionGone)
}

func TestTablePushSendFailureIsGone(t *testing.T) {
	table := NewTable()
	table.Attach(&stubClient{id: "c1", sendErr: errors.New("write: broken pipe")})

	err := table.Push(context.Background(), "c1", []byte("hello"))
	assert.ErrorIs(t, err, domain.ErrConnectionGone)
}

func TestTableDetachOnlyRemovesSameClient(t *testing.T) {
	table := NewTable()
	old := &stubClient{id: "c1"}
	table.Attach(old)

	// Reconnect reuses the id before the old connection tears down.
	current := &stubClient{id: "c1"}
	table.Attach(current)
	table.Detach(old)

	require.NoError(t, table.Push(context.Background(), "c1", []byte("hi")))
	assert.Len(t, current.sent, 1)
	assert.Empty(t, old.sent)

	table.Detach(current)
	assert.Zero(t, table.Len())
}

func TestTableCloseReportsPresence(t *testing.T) {
	table := NewTable()
	client := &stubClient{id: "c1"}
	table.Attach(client)

	assert.True(t, table.Close("c1"))
	assert.True(t, client.closed)
	assert.False(t, table.Close("ghost"))
}

func TestTableLen(t *testing.T) {
	table := NewTable()
	assert.Zero(t, table.Len())

	a := &stubClient{id: "a"}
	table.Attach(a)
	table.Attach(&stubClient{id: "b"})
	assert.Equal(t, 2, table.Len())

	table.Detach(a)
	assert.Equal(t, 1, table.Len())
}
