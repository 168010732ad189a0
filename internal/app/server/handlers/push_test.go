package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KarthicSuRa/mcm-alerts-aws/internal/app/sockets"
)

type stubClient struct {
	id   string
	sent [][]byte
}

func (c *stubClient) ConnectionID() string { return c.id }

func (c *stubClient) Send(_ context.Context, data []byte) error {
	c.sent = append(c.sent, data)
	return nil
}

func (c *stubClient) Close() {}

func newPushMux(table *sockets.Table) *http.ServeMux {
	h := NewPushHandler(table)
	mux := http.NewServeMux()
	mux.HandleFunc("POST /connections/{connection_id}", h.Push)
	mux.HandleFunc("DELETE /connections/{connection_id}", h.Disconnect)
	return mux
}

func TestPushDeliversToLiveConnection(t *testing.T) {
	table := sockets.NewTable()
	client := &stubClient{id: "c1"}
	table.Attach(client)
	mux := newPushMux(table)

	req := httptest.NewRequest(http.MethodPost, "/connections/c1", strings.NewReader(`{"type":"NEW_COMMENT"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"delivered"}`, rec.Body.String())
	require.Len(t, client.sent, 1)
	assert.JSONEq(t, `{"type":"NEW_COMMENT"}`, string(client.sent[0]))
}

func TestPushUnknownConnectionReturnsGone(t *testing.T) {
	mux := newPushMux(sockets.NewTable())

	req := httptest.NewRequest(http.MethodPost, "/connections/ghost", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusGone, rec.Code)
}

func TestDisconnectClosesLiveConnection(t *testing.T) {
	table := sockets.NewTable()
	table.Attach(&stubClient{id: "c1"})
	mux := newPushMux(table)

	req := httptest.NewRequest(http.MethodDelete, "/connections/c1", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDisconnectUnknownConnectionReturnsGone(t *testing.T) {
	mux := newPushMux(sockets.NewTable())

	req := httptest.NewRequest(http.MethodDelete, "/connections/ghost", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusGone, rec.Code)
}
