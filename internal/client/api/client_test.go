package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/L0dyv/litepad/pkg/api"
)

func TestPush_RoundTrip(t *testing.T) {
	serverTime := time.Now().UTC().Truncate(time.Millisecond)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/sync/push", r.URL.Path)
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))

		var req api.PushRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Documents, 1)
		assert.Equal(t, "p1", req.Documents[0].ID)

		resp := api.PushResponse{
			Accepted:   []string{"p1"},
			ServerTime: serverTime,
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	resp, err := client.Push(context.Background(), "token-1", api.PushRequest{
		Documents: []api.PushDocument{{ID: "p1", LocalVersion: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, resp.Accepted)
	assert.Equal(t, serverTime.Unix(), resp.ServerTime.Unix())
}

func TestFetchIncremental_SinceParameter(t *testing.T) {
	since := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/sync/incremental", r.URL.Path)
		assert.Equal(t, since.Format(time.RFC3339Nano), r.URL.Query().Get("since"))
		require.NoError(t, json.NewEncoder(w).Encode(api.FetchResponse{ServerTime: time.Now()}))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.FetchIncremental(context.Background(), "t", since)
	require.NoError(t, err)
}

func TestErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"401 maps to unauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"400 maps to integrity", http.StatusBadRequest, ErrIntegrity},
		{"413 maps to capacity", http.StatusRequestEntityTooLarge, ErrCapacity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"error":"nope"}`))
			}))
			defer srv.Close()

			client := NewClient(srv.URL)
			_, err := client.FetchFull(context.Background(), "t")
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "nope")
		})
	}
}

func TestTransportError(t *testing.T) {
	// закрытый сервер: connection refused
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL)
	_, err := client.FetchFull(context.Background(), "t")
	assert.ErrorIs(t, err, ErrTransport)
}

func TestUploadAttachment(t *testing.T) {
	hash := strings.Repeat("a", 64)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/attachments/upload/"+hash, r.URL.Path)
		assert.Equal(t, ".png", r.URL.Query().Get("ext"))
		require.NoError(t, json.NewEncoder(w).Encode(api.UploadResponse{Hash: hash, Size: 4}))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	resp, err := client.UploadAttachment(context.Background(), "t", hash, ".png", []byte("data"))
	require.NoError(t, err)
	assert.Equal(t, hash, resp.Hash)
	assert.Equal(t, int64(4), resp.Size)
}

func TestDownloadAttachment_MetadataHeaders(t *testing.T) {
	hash := strings.Repeat("b", 64)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/attachments/download/"+hash, r.URL.Path)
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("X-Litepad-Filename", "pic.png")
		w.Header().Set("X-Litepad-Extension", ".png")
		w.Header().Set("X-Litepad-Size", "4")
		_, _ = w.Write([]byte("data"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	data, meta, err := client.DownloadAttachment(context.Background(), "t", hash)
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), data)
	assert.Equal(t, "pic.png", meta.Filename)
	assert.Equal(t, ".png", meta.Extension)
	assert.Equal(t, int64(4), meta.ByteSize)
}
