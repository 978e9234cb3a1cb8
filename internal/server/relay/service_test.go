package relay

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/L0dyv/litepad/internal/models"
	"github.com/L0dyv/litepad/internal/server/storage/sqlite"
	"github.com/L0dyv/litepad/pkg/api"
)

func newTestService(t *testing.T) (*Service, *sqlite.Storage) {
	t.Helper()
	ctx := context.Background()

	store, err := sqlite.New(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})

	return NewService(store, slog.Default()), store
}

func pushDoc(id string, localVersion int64, syncedAt *time.Time) api.PushDocument {
	now := time.Now().UTC()
	return api.PushDocument{
		ID:           id,
		Title:        "title " + id,
		Body:         "body " + id,
		LocalVersion: localVersion,
		CreatedAt:    now.Add(-time.Hour),
		UpdatedAt:    now,
		SyncedAt:     syncedAt,
	}
}

func seedDocument(t *testing.T, store *sqlite.Storage, accountID, id string, version int64) *models.RelayDocument {
	t.Helper()
	ctx := context.Background()

	doc := &models.RelayDocument{
		ID:        id,
		AccountID: accountID,
		Title:     "server title",
		Body:      "server body",
		CreatedAt: time.Now().UTC().Add(-2 * time.Hour),
		UpdatedAt: time.Now().UTC().Add(-time.Hour),
	}
	var expected int64
	for v := int64(1); v <= version; v++ {
		newVersion, err := store.UpsertDocument(ctx, doc, expected)
		require.NoError(t, err)
		expected = newVersion
	}
	doc.Version = expected
	return doc
}

func TestPush_NewDocumentAccepted(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	resp, err := svc.Push(ctx, "alice", []api.PushDocument{pushDoc("note-1", 0, nil)})
	require.NoError(t, err)

	assert.Equal(t, []string{"note-1"}, resp.Accepted)
	assert.Empty(t, resp.RemoteWins)
	assert.Empty(t, resp.Conflicts)

	stored, err := store.GetDocument(ctx, "alice", "note-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.Version)
	// updated_at ставится часами relay, а не устройства
	assert.WithinDuration(t, resp.ServerTime, stored.UpdatedAt, time.Second)
}

func TestPush_AcceptedUpdateBumpsVersion(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	seeded := seedDocument(t, store, "alice", "note-1", 1)

	// устройство видело версию 1 и не меняло документ после этого
	synced := seeded.UpdatedAt.Add(time.Minute)
	local := pushDoc("note-1", 1, &synced)
	local.UpdatedAt = synced.Add(time.Minute)

	resp, err := svc.Push(ctx, "alice", []api.PushDocument{local})
	require.NoError(t, err)
	assert.Equal(t, []string{"note-1"}, resp.Accepted)

	stored, err := store.GetDocument(ctx, "alice", "note-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), stored.Version)
	assert.Equal(t, local.Title, stored.Title)
	assert.Equal(t, local.Body, stored.Body)
}

func TestPush_StaleCleanCopyRemoteWins(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	seeded := seedDocument(t, store, "alice", "note-1", 2)

	// устройство отстало (видело версию 1) и локально ничего не меняло
	synced := time.Now().UTC()
	local := pushDoc("note-1", 1, &synced)
	local.UpdatedAt = synced.Add(-time.Minute)

	resp, err := svc.Push(ctx, "alice", []api.PushDocument{local})
	require.NoError(t, err)

	assert.Empty(t, resp.Accepted)
	assert.Empty(t, resp.Conflicts)
	require.Len(t, resp.RemoteWins, 1)
	assert.Equal(t, "note-1", resp.RemoteWins[0].ID)
	assert.Equal(t, seeded.Version, resp.RemoteWins[0].Version)

	// авторитетное состояние не изменилось
	stored, err := store.GetDocument(ctx, "alice", "note-1")
	require.NoError(t, err)
	assert.Equal(t, "server body", stored.Body)
}

func TestPush_DivergedCopyConflict(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	seeded := seedDocument(t, store, "alice", "note-1", 2)

	// устройство отстало и при этом правило документ после последней
	// синхронизации
	synced := time.Now().UTC().Add(-time.Hour)
	local := pushDoc("note-1", 1, &synced)
	local.Body = "edited offline"
	local.UpdatedAt = synced.Add(time.Minute)

	resp, err := svc.Push(ctx, "alice", []api.PushDocument{local})
	require.NoError(t, err)

	assert.Empty(t, resp.Accepted)
	assert.Empty(t, resp.RemoteWins)
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, "edited offline", resp.Conflicts[0].Local.Body)
	assert.Equal(t, seeded.Version, resp.Conflicts[0].Remote.Version)
	assert.Equal(t, "server body", resp.Conflicts[0].Remote.Body)

	stored, err := store.GetDocument(ctx, "alice", "note-1")
	require.NoError(t, err)
	assert.Equal(t, "server body", stored.Body)
}

func TestPush_MixedBatch(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	seedDocument(t, store, "alice", "stale", 2)
	seedDocument(t, store, "alice", "clean", 1)

	synced := time.Now().UTC()
	fresh := pushDoc("fresh", 0, nil)
	stale := pushDoc("stale", 1, &synced)
	stale.UpdatedAt = synced.Add(-time.Minute)
	clean := pushDoc("clean", 1, &synced)
	clean.UpdatedAt = synced.Add(time.Minute)

	resp, err := svc.Push(ctx, "alice", []api.PushDocument{stale, fresh, clean})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"fresh", "clean"}, resp.Accepted)
	require.Len(t, resp.RemoteWins, 1)
	assert.Equal(t, "stale", resp.RemoteWins[0].ID)
	assert.Empty(t, resp.Conflicts)
}

func TestPush_TombstoneAccepted(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	seeded := seedDocument(t, store, "alice", "note-1", 1)

	synced := seeded.UpdatedAt.Add(time.Minute)
	local := pushDoc("note-1", 1, &synced)
	local.Deleted = true
	local.UpdatedAt = synced.Add(time.Minute)

	resp, err := svc.Push(ctx, "alice", []api.PushDocument{local})
	require.NoError(t, err)
	assert.Equal(t, []string{"note-1"}, resp.Accepted)

	stored, err := store.GetDocument(ctx, "alice", "note-1")
	require.NoError(t, err)
	assert.True(t, stored.Deleted)
	assert.Equal(t, int64(2), stored.Version)
}

func TestPush_EmptyBatch(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.Push(context.Background(), "alice", nil)
	require.NoError(t, err)
	assert.Empty(t, resp.Accepted)
	assert.Empty(t, resp.RemoteWins)
	assert.Empty(t, resp.Conflicts)
	assert.False(t, resp.ServerTime.IsZero())
}

func TestFull_ReturnsAllIncludingTombstones(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	seedDocument(t, store, "alice", "a", 1)
	deleted := seedDocument(t, store, "alice", "b", 1)
	deleted.Deleted = true
	_, err := store.UpsertDocument(ctx, deleted, deleted.Version)
	require.NoError(t, err)
	seedDocument(t, store, "bob", "c", 1)

	resp, err := svc.Full(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, resp.Documents, 2)
	assert.False(t, resp.ServerTime.IsZero())

	byID := map[string]api.Document{}
	for _, d := range resp.Documents {
		byID[d.ID] = d
	}
	assert.True(t, byID["b"].Deleted)
}

func TestIncremental_StrictlyAfterCursor(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	old := seedDocument(t, store, "alice", "old", 1)
	cursor := time.Now().UTC()

	recent := &models.RelayDocument{
		ID:        "recent",
		AccountID: "alice",
		Title:     "t",
		Body:      "b",
		CreatedAt: cursor,
		UpdatedAt: cursor.Add(time.Minute),
	}
	_, err := store.UpsertDocument(ctx, recent, 0)
	require.NoError(t, err)

	resp, err := svc.Incremental(ctx, "alice", old.UpdatedAt)
	require.NoError(t, err)
	require.Len(t, resp.Documents, 1)
	assert.Equal(t, "recent", resp.Documents[0].ID)

	// курсор точно на updated_at документа не возвращает его повторно
	resp, err = svc.Incremental(ctx, "alice", recent.UpdatedAt)
	require.NoError(t, err)
	assert.Empty(t, resp.Documents)
}
