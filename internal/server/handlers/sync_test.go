package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/L0dyv/litepad/internal/server/middleware"
	"github.com/L0dyv/litepad/internal/server/relay"
	"github.com/L0dyv/litepad/internal/server/storage/sqlite"
	"github.com/L0dyv/litepad/pkg/api"
)

func newSyncFixture(t *testing.T) (*SyncHandler, *sqlite.Storage) {
	t.Helper()

	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})

	relaySvc := relay.NewService(store, slog.Default())
	return NewSyncHandler(slog.Default(), relaySvc), store
}

// authedRequest создает запрос с accountID в контексте, как это делает
// auth middleware
func authedRequest(method, target, accountID string, body []byte) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, accountID)
	return req.WithContext(ctx)
}

func pushDocuments(t *testing.T, h *SyncHandler, accountID string, docs []api.PushDocument) *api.PushResponse {
	t.Helper()

	body, err := json.Marshal(api.PushRequest{Documents: docs})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.Push(rec, authedRequest(http.MethodPost, "/api/v1/sync/push", accountID, body))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp api.PushResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return &resp
}

func TestSyncPush_ThenFull(t *testing.T) {
	h, _ := newSyncFixture(t)

	now := time.Now().UTC()
	resp := pushDocuments(t, h, "alice", []api.PushDocument{{
		ID:        "note-1",
		Title:     "hello",
		Body:      "world",
		CreatedAt: now,
		UpdatedAt: now,
	}})
	assert.Equal(t, []string{"note-1"}, resp.Accepted)

	rec := httptest.NewRecorder()
	h.Full(rec, authedRequest(http.MethodGet, "/api/v1/sync/full", "alice", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var fetch api.FetchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetch))
	require.Len(t, fetch.Documents, 1)
	assert.Equal(t, "note-1", fetch.Documents[0].ID)
	assert.Equal(t, int64(1), fetch.Documents[0].Version)
	assert.False(t, fetch.ServerTime.IsZero())
}

func TestSyncFull_AccountIsolation(t *testing.T) {
	h, _ := newSyncFixture(t)

	now := time.Now().UTC()
	pushDocuments(t, h, "alice", []api.PushDocument{{ID: "note-1", Title: "t", Body: "b", CreatedAt: now, UpdatedAt: now}})

	rec := httptest.NewRecorder()
	h.Full(rec, authedRequest(http.MethodGet, "/api/v1/sync/full", "bob", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var fetch api.FetchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetch))
	assert.Empty(t, fetch.Documents)
}

func TestSyncIncremental(t *testing.T) {
	h, _ := newSyncFixture(t)

	now := time.Now().UTC()
	first := pushDocuments(t, h, "alice", []api.PushDocument{{ID: "old", Title: "t", Body: "b", CreatedAt: now, UpdatedAt: now}})

	pushDocuments(t, h, "alice", []api.PushDocument{{ID: "recent", Title: "t", Body: "b", CreatedAt: now, UpdatedAt: now.Add(time.Second)}})

	since := url.QueryEscape(first.ServerTime.Format(time.RFC3339Nano))
	rec := httptest.NewRecorder()
	h.Incremental(rec, authedRequest(http.MethodGet, "/api/v1/sync/incremental?since="+since, "alice", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var fetch api.FetchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetch))
	require.Len(t, fetch.Documents, 1)
	assert.Equal(t, "recent", fetch.Documents[0].ID)
}

func TestSyncIncremental_BadSince(t *testing.T) {
	h, _ := newSyncFixture(t)

	rec := httptest.NewRecorder()
	h.Incremental(rec, authedRequest(http.MethodGet, "/api/v1/sync/incremental", "alice", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.Incremental(rec, authedRequest(http.MethodGet, "/api/v1/sync/incremental?since=yesterday", "alice", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSyncPush_RejectsEmptyID(t *testing.T) {
	h, _ := newSyncFixture(t)

	body, err := json.Marshal(api.PushRequest{Documents: []api.PushDocument{{Title: "no id"}}})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.Push(rec, authedRequest(http.MethodPost, "/api/v1/sync/push", "alice", body))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSync_Unauthorized(t *testing.T) {
	h, _ := newSyncFixture(t)

	rec := httptest.NewRecorder()
	h.Full(rec, httptest.NewRequest(http.MethodGet, "/api/v1/sync/full", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
