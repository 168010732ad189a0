package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KarthicSuRa/mcm-alerts-aws/internal/core/domain"
)

type fakeCommentRepo struct {
	inserted  []*domain.Comment
	insertErr error
	listed    []domain.Comment
	listErr   error
}

func (r *fakeCommentRepo) Insert(_ context.Context, c *domain.Comment) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, c)
	return nil
}

func (r *fakeCommentRepo) ListByNotification(context.Context, uuid.UUID) ([]domain.Comment, error) {
	return r.listed, r.listErr
}

func TestCommentCreatePersistsAndNotifies(t *testing.T) {
	repo := &fakeCommentRepo{}
	notifier := &fakeNotifier{}
	svc := NewCommentService(testLogger(), repo, notifier, fakeTx{})
	nid := uuid.NewString()

	comment, err := svc.Create(context.Background(), "http://mgmt.local", "user-1", nid, "looks resolved")
	require.NoError(t, err)
	require.NotNil(t, comment)
	assert.Equal(t, "user-1", comment.UserID)
	assert.Equal(t, "looks resolved", comment.Text)
	assert.Equal(t, nid, comment.NotificationID.String())

	require.Len(t, repo.inserted, 1)
	require.Len(t, notifier.events, 1)
	assert.Equal(t, domain.TypeNewComment, notifier.events[0].eventType)
	assert.Equal(t, "http://mgmt.local", notifier.events[0].endpoint)

	event, ok := notifier.events[0].payload.(commentEvent)
	require.True(t, ok)
	assert.Equal(t, comment.ID.String(), event.ID)
	assert.Equal(t, nid, event.NotificationID)
	assert.Equal(t, "looks resolved", event.Text)
}

func TestCommentCreateRejectsEmptyText(t *testing.T) {
	repo := &fakeCommentRepo{}
	notifier := &fakeNotifier{}
	svc := NewCommentService(testLogger(), repo, notifier, fakeTx{})

	_, err := svc.Create(context.Background(), "http://mgmt.local", "user-1", uuid.NewString(), "")
	assert.ErrorIs(t, err, domain.ErrMissingCommentText)
	assert.Empty(t, repo.inserted)
	assert.Empty(t, notifier.events)
}

func TestCommentCreateRejectsBadNotificationID(t *testing.T) {
	svc := NewCommentService(testLogger(), &fakeCommentRepo{}, &fakeNotifier{}, fakeTx{})

	_, err := svc.Create(context.Background(), "http://mgmt.local", "user-1", "not-a-uuid", "hi")
	assert.ErrorIs(t, err, domain.ErrInvalidNotificationID)
}

func TestCommentCreateInsertFailureSkipsNotify(t *testing.T) {
	repo := &fakeCommentRepo{insertErr: errStorageDown}
	notifier := &fakeNotifier{}
	svc := NewCommentService(testLogger(), repo, notifier, fakeTx{})

	_, err := svc.Create(context.Background(), "http://mgmt.local", "user-1", uuid.NewString(), "hi")
	assert.ErrorIs(t, err, errStorageDown)
	assert.Empty(t, notifier.events)
}

func TestCommentListRejectsBadNotificationID(t *testing.T) {
	svc := NewCommentService(testLogger(), &fakeCommentRepo{}, &fakeNotifier{}, fakeTx{})

	_, err := svc.ListByNotification(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrInvalidNotificationID)
}

func TestCommentListReturnsRepoRows(t *testing.T) {
	want := []domain.Comment{{ID: uuid.New(), Text: "first"}, {ID: uuid.New(), Text: "second"}}
	svc := NewCommentService(testLogger(), &fakeCommentRepo{listed: want}, &fakeNotifier{}, fakeTx{})

	got, err := svc.ListByNotification(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
