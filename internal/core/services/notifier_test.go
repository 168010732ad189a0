package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KarthicSuRa/mcm-alerts-aws/internal/core/domain"
)

func TestNotifierEnqueuesJob(t *testing.T) {
	queue := &fakeQueue{}
	notifier := NewEventNotifier(testLogger(), queue, "broadcasts")

	notifier.Notify(context.Background(), "http://mgmt.local", domain.TypeNewComment,
		map[string]string{"id": "c-1", "text": "hello"})

	require.Len(t, queue.published, 1)
	var job domain.BroadcastJob
	require.NoError(t, json.Unmarshal(queue.published[0], &job))
	assert.Equal(t, "http://mgmt.local", job.Endpoint)
	assert.Equal(t, domain.TypeNewComment, job.Event.Type)
	assert.False(t, job.EnqueuedAt.IsZero())

	var payload map[string]string
	require.NoError(t, json.Unmarshal(job.Event.Data, &payload))
	assert.Equal(t, "hello", payload["text"])
}

func TestNotifierSwallowsPublishFailure(t *testing.T) {
	queue := &fakeQueue{publishErr: errStorageDown}
	notifier := NewEventNotifier(testLogger(), queue, "broadcasts")

	// Must not panic or surface the error; the producer already committed.
	notifier.Notify(context.Background(), "http://mgmt.local", domain.TypeNotificationUpdated,
		map[string]string{"id": "n-1"})
	assert.Empty(t, queue.published)
}

func TestNotifierSwallowsUnmarshalablePayload(t *testing.T) {
	queue := &fakeQueue{}
	notifier := NewEventNotifier(testLogger(), queue, "broadcasts")

	notifier.Notify(context.Background(), "http://mgmt.local", domain.TypeNewComment, func() {})
	assert.Empty(t, queue.published)
}
