package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/KarthicSuRa/mcm-alerts-aws/internal/core/domain"
)

var errStorageDown = errors.New("storage unavailable")

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeRegistry is an in-memory stand-in for the durable connection registry
// with the same idempotence guarantees.
type fakeRegistry struct {
	mu      sync.Mutex
	ids     map[string]struct{}
	listErr error
	addErr  error
	removed []string
}

func newFakeRegistry(ids ...string) *fakeRegistry {
	r := &fakeRegistry{ids: make(map[string]struct{})}
	for _, id := range ids {
		r.ids[id] = struct{}{}
	}
	return r
}

func (r *fakeRegistry) Add(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.addErr != nil {
		return r.addErr
	}
	r.ids[id] = struct{}{}
	return nil
}

func (r *fakeRegistry) Remove(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.ids, id)
	r.removed = append(r.removed, id)
	return nil
}

func (r *fakeRegistry) ListAll(_ context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]string, 0, len(r.ids))
	for id := range r.ids {
		out = append(out, id)
	}
	return out, nil
}

func (r *fakeRegistry) contains(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.ids[id]
	return ok
}

func (r *fakeRegistry) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ids)
}

// fakeResolver returns a scripted outcome per connection id and records
// every send it saw.
type fakeResolver struct {
	mu       sync.Mutex
	outcomes map[string]domain.DeliveryOutcome
	sends    []fakeSend
}

type fakeSend struct {
	endpoint string
	connID   string
	data     []byte
}

func newFakeResolver(outcomes map[string]domain.DeliveryOutcome) *fakeResolver {
	if outcomes == nil {
		outcomes = make(map[string]domain.DeliveryOutcome)
	}
	return &fakeResolver{outcomes: outcomes}
}

func (f *fakeResolver) Send(_ context.Context, endpoint, connID string, data []byte) domain.DeliveryOutcome {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sends = append(f.sends, fakeSend{endpoint: endpoint, connID: connID, data: data})
	return f.outcomes[connID]
}

func (f *fakeResolver) sendCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sends)
}

// fakeQueue captures published payloads.
type fakeQueue struct {
	mu         sync.Mutex
	published  [][]byte
	publishErr error
}

func (q *fakeQueue) Publish(_ context.Context, _ string, payload []byte) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.publishErr != nil {
		return q.publishErr
	}
	q.published = append(q.published, payload)
	return nil
}

func (q *fakeQueue) Subscribe(context.Context, string, string, func(context.Context, string, []byte) error) error {
	return nil
}
func (q *fakeQueue) Ack(context.Context, string, string, string) error { return nil }
func (q *fakeQueue) Delete(context.Context, string, string) error      { return nil }

// fakeNotifier records what producers hand off.
type fakeNotifier struct {
	mu     sync.Mutex
	events []fakeEvent
}

type fakeEvent struct {
	endpoint  string
	eventType string
	payload   any
}

func (n *fakeNotifier) Notify(_ context.Context, endpoint, eventType string, payload any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, fakeEvent{endpoint: endpoint, eventType: eventType, payload: payload})
}

// fakeTx runs the function without a real transaction.
type fakeTx struct{}

func (fakeTx) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
