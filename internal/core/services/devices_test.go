package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KarthicSuRa/mcm-alerts-aws/internal/core/domain"
)

type fakeDeviceRepo struct {
	upserted  []*domain.Device
	upsertErr error
	deleteErr error
	deleted   []string
}

func (r *fakeDeviceRepo) Upsert(_ context.Context, d *domain.Device) error {
	if r.upsertErr != nil {
		return r.upsertErr
	}
	r.upserted = append(r.upserted, d)
	return nil
}

func (r *fakeDeviceRepo) DeleteOwned(_ context.Context, playerID, _ string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.deleted = append(r.deleted, playerID)
	return nil
}

func TestDeviceRegisterStoresDevice(t *testing.T) {
	repo := &fakeDeviceRepo{}
	svc := NewDeviceService(testLogger(), repo, fakeTx{})

	device, err := svc.Register(context.Background(), "user-1", "player-abc")
	require.NoError(t, err)
	assert.Equal(t, "player-abc", device.PlayerID)
	assert.Equal(t, "user-1", device.UserID)
	require.Len(t, repo.upserted, 1)
}

func TestDeviceRegisterRejectsEmptyPlayerID(t *testing.T) {
	svc := NewDeviceService(testLogger(), &fakeDeviceRepo{}, fakeTx{})

	_, err := svc.Register(context.Background(), "user-1", "")
	assert.ErrorIs(t, err, domain.ErrMissingPlayerID)
}

func TestDeviceUnregisterRemovesOwnedDevice(t *testing.T) {
	repo := &fakeDeviceRepo{}
	svc := NewDeviceService(testLogger(), repo, fakeTx{})

	require.NoError(t, svc.Unregister(context.Background(), "user-1", "player-abc"))
	assert.Equal(t, []string{"player-abc"}, repo.deleted)
}

func TestDeviceUnregisterNotOwned(t *testing.T) {
	repo := &fakeDeviceRepo{deleteErr: domain.ErrDeviceNotOwned}
	svc := NewDeviceService(testLogger(), repo, fakeTx{})

	err := svc.Unregister(context.Background(), "user-2", "player-abc")
	assert.ErrorIs(t, err, domain.ErrDeviceNotOwned)
}

func TestDeviceUnregisterRejectsEmptyPlayerID(t *testing.T) {
	svc := NewDeviceService(testLogger(), &fakeDeviceRepo{}, fakeTx{})

	err := svc.Unregister(context.Background(), "user-1", "")
	assert.ErrorIs(t, err, domain.ErrMissingPlayerID)
}
