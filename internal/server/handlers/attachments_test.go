package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/L0dyv/litepad/internal/attachments"
	"github.com/L0dyv/litepad/internal/server/storage/sqlite"
	"github.com/L0dyv/litepad/pkg/api"
)

func newAttachmentsFixture(t *testing.T) (*AttachmentsHandler, *sqlite.Storage) {
	t.Helper()

	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})

	return NewAttachmentsHandler(slog.Default(), store), store
}

func announceBlob(t *testing.T, h *AttachmentsHandler, accountID string, data []byte) (string, *api.AnnounceResponse) {
	t.Helper()

	hash := attachments.HashBytes(data)
	body, err := json.Marshal(api.AnnounceRequest{Items: []api.AttachmentMeta{{
		ContentHash: hash,
		Filename:    "photo.png",
		MimeType:    "image/png",
		Extension:   ".png",
		ByteSize:    int64(len(data)),
	}}})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.Announce(rec, authedRequest(http.MethodPost, "/api/v1/attachments/announce", accountID, body))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp api.AnnounceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return hash, &resp
}

func uploadBlob(t *testing.T, h *AttachmentsHandler, accountID, hash string, data []byte) *httptest.ResponseRecorder {
	t.Helper()

	req := authedRequest(http.MethodPut, "/api/v1/attachments/upload/"+hash, accountID, data)
	req = mux.SetURLVars(req, map[string]string{"hash": hash})
	rec := httptest.NewRecorder()
	h.Upload(rec, req)
	return rec
}

func downloadBlob(t *testing.T, h *AttachmentsHandler, accountID, hash string) *httptest.ResponseRecorder {
	t.Helper()

	req := authedRequest(http.MethodGet, "/api/v1/attachments/download/"+hash, accountID, nil)
	req = mux.SetURLVars(req, map[string]string{"hash": hash})
	rec := httptest.NewRecorder()
	h.Download(rec, req)
	return rec
}

func TestAttachments_AnnounceUploadDownload(t *testing.T) {
	h, _ := newAttachmentsFixture(t)
	data := []byte("png bytes here")

	hash, announce := announceBlob(t, h, "alice", data)
	assert.Equal(t, []string{hash}, announce.Needed)

	rec := uploadBlob(t, h, "alice", hash, data)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var upload api.UploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &upload))
	assert.Equal(t, hash, upload.Hash)
	assert.Equal(t, int64(len(data)), upload.Size)
	assert.False(t, upload.ServerTime.IsZero())

	rec = downloadBlob(t, h, "alice", hash)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, data, rec.Body.Bytes())
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "photo.png", rec.Header().Get("X-Litepad-Filename"))
	assert.Equal(t, ".png", rec.Header().Get("X-Litepad-Extension"))
}

func TestAttachments_AnnounceDeduplicates(t *testing.T) {
	h, _ := newAttachmentsFixture(t)
	data := []byte("shared bytes")

	hash, _ := announceBlob(t, h, "alice", data)
	rec := uploadBlob(t, h, "alice", hash, data)
	require.Equal(t, http.StatusOK, rec.Code)

	// второй аккаунт анонсирует тот же контент: байты уже на relay
	_, announce := announceBlob(t, h, "bob", data)
	assert.Empty(t, announce.Needed)
}

func TestAttachments_UploadHashMismatch(t *testing.T) {
	h, _ := newAttachmentsFixture(t)
	data := []byte("real bytes")

	hash, _ := announceBlob(t, h, "alice", data)

	rec := uploadBlob(t, h, "alice", hash, []byte("tampered bytes"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "hash mismatch")
}

func TestAttachments_UploadUnannounced(t *testing.T) {
	h, _ := newAttachmentsFixture(t)
	data := []byte("orphan bytes")

	rec := uploadBlob(t, h, "alice", attachments.HashBytes(data), data)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "not announced")
}

func TestAttachments_DownloadForeignAccount(t *testing.T) {
	h, _ := newAttachmentsFixture(t)
	data := []byte("private bytes")

	hash, _ := announceBlob(t, h, "alice", data)
	require.Equal(t, http.StatusOK, uploadBlob(t, h, "alice", hash, data).Code)

	// bob не анонсировал этот хеш и не может скачать байты
	rec := downloadBlob(t, h, "bob", hash)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAttachments_DownloadBeforeUpload(t *testing.T) {
	h, _ := newAttachmentsFixture(t)
	data := []byte("announced only")

	hash, _ := announceBlob(t, h, "alice", data)

	rec := downloadBlob(t, h, "alice", hash)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAttachments_InvalidHash(t *testing.T) {
	h, _ := newAttachmentsFixture(t)

	rec := uploadBlob(t, h, "alice", "not-a-hash", []byte("data"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body, err := json.Marshal(api.AnnounceRequest{Items: []api.AttachmentMeta{{ContentHash: "xyz"}}})
	require.NoError(t, err)
	annRec := httptest.NewRecorder()
	h.Announce(annRec, authedRequest(http.MethodPost, "/api/v1/attachments/announce", "alice", body))
	assert.Equal(t, http.StatusBadRequest, annRec.Code)
}

func TestAttachments_BatchMetadata(t *testing.T) {
	h, _ := newAttachmentsFixture(t)
	data := []byte("metadata bytes")

	hash, _ := announceBlob(t, h, "alice", data)

	body, err := json.Marshal(api.BatchMetadataRequest{Hashes: []string{hash, "0000000000000000000000000000000000000000000000000000000000000000"}})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.BatchMetadata(rec, authedRequest(http.MethodPost, "/api/v1/attachments/batch-metadata", "alice", body))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.BatchMetadataResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, hash, resp.Items[0].ContentHash)
	assert.Equal(t, "photo.png", resp.Items[0].Filename)
}
