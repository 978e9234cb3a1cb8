package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSession_FirstUse(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	session, err := s.GetSession(ctx)
	require.NoError(t, err)

	// первая инициализация: sync выключен, lastSyncAt пуст,
	// deviceID сгенерирован
	assert.False(t, session.Enabled)
	assert.Nil(t, session.LastSyncAt)
	assert.NotEmpty(t, session.DeviceID)
}

func TestGetSession_DeviceIDStable(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	first, err := s.GetSession(ctx)
	require.NoError(t, err)
	second, err := s.GetSession(ctx)
	require.NoError(t, err)

	// deviceID генерируется ровно один раз
	assert.Equal(t, first.DeviceID, second.DeviceID)
}

func TestSaveSession(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	session, err := s.GetSession(ctx)
	require.NoError(t, err)

	now := time.Now().UTC()
	session.Enabled = true
	session.AccountID = "acc-1"
	session.RelayURL = "http://localhost:8080"
	session.LastSyncAt = &now

	require.NoError(t, s.SaveSession(ctx, session))

	got, err := s.GetSession(ctx)
	require.NoError(t, err)
	assert.True(t, got.Enabled)
	assert.Equal(t, "acc-1", got.AccountID)
	require.NotNil(t, got.LastSyncAt)
	assert.Equal(t, now.Unix(), got.LastSyncAt.Unix())
	assert.Equal(t, session.DeviceID, got.DeviceID)
}
