package attachments

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/L0dyv/litepad/internal/attachments"
	httpClient "github.com/L0dyv/litepad/internal/client/api"
	"github.com/L0dyv/litepad/internal/client/storage"
	"github.com/L0dyv/litepad/internal/models"
	"github.com/L0dyv/litepad/pkg/api"
)

type staticTokens struct{}

func (staticTokens) Credentials(context.Context) (string, error) { return "token-1", nil }

type fixture struct {
	apiMock *httpClient.ClientAPIMock
	meta    *storage.AttachmentStorageMock
	docs    *storage.DocumentStorageMock
	files   *FileStore
	svc     *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	files, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	f := &fixture{
		apiMock: &httpClient.ClientAPIMock{},
		meta:    &storage.AttachmentStorageMock{},
		docs:    &storage.DocumentStorageMock{},
		files:   files,
	}
	// по умолчанию локальных метаданных нет; тесты переопределяют при
	// необходимости
	f.meta.GetAttachmentFunc = func(ctx context.Context, hash string) (*models.Attachment, error) {
		return nil, storage.ErrAttachmentNotFound
	}
	f.svc = NewService(f.apiMock, staticTokens{}, f.meta, f.docs, f.files, slog.Default())
	return f
}

func TestAdd_RegistersPendingAttachment(t *testing.T) {
	f := newFixture(t)

	var saved *models.Attachment
	f.meta.SaveAttachmentFunc = func(ctx context.Context, att *models.Attachment) error {
		saved = att
		return nil
	}

	data := []byte("image bytes")
	att, locator, err := f.svc.Add(context.Background(), "pic.png", "image/png", data)
	require.NoError(t, err)

	wantHash := attachments.HashBytes(data)
	assert.Equal(t, wantHash, att.ContentHash)
	assert.Equal(t, ".png", att.Extension)
	assert.Equal(t, models.AttachmentPending, att.SyncStatus)
	assert.Equal(t, "litepad://images/"+wantHash+".png", locator)
	assert.True(t, f.files.Exists(wantHash, ".png"), "bytes must be on disk")
	require.NotNil(t, saved)
	assert.Equal(t, int64(len(data)), saved.ByteSize)
}

func TestAdd_RejectsOversized(t *testing.T) {
	f := newFixture(t)

	data := make([]byte, attachments.MaxByteSize+1)
	_, _, err := f.svc.Add(context.Background(), "huge.bin", "application/octet-stream", data)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestUpload_SkipsBytesRelayAlreadyHas(t *testing.T) {
	f := newFixture(t)

	data := []byte("shared image")
	hash := attachments.HashBytes(data)
	require.NoError(t, f.files.Write(hash, ".png", data))

	f.meta.PendingAttachmentsFunc = func(ctx context.Context) ([]*models.Attachment, error) {
		return []*models.Attachment{{ContentHash: hash, Extension: ".png", SyncStatus: models.AttachmentPending}}, nil
	}
	f.apiMock.AnnounceAttachmentsFunc = func(ctx context.Context, accessToken string, req api.AnnounceRequest) (*api.AnnounceResponse, error) {
		require.Len(t, req.Items, 1)
		// relay уже знает эти байты: загрузка не нужна
		return &api.AnnounceResponse{}, nil
	}

	var statusSet string
	f.meta.SetAttachmentStatusFunc = func(ctx context.Context, h, status string, syncedAt *time.Time) error {
		assert.Equal(t, hash, h)
		statusSet = status
		return nil
	}

	uploaded, err := f.svc.Upload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, uploaded)
	assert.Equal(t, models.AttachmentSynced, statusSet)
	assert.Len(t, f.apiMock.UploadAttachmentCalls(), 0)
}

func TestUpload_SendsNeededBytes(t *testing.T) {
	f := newFixture(t)
	serverTime := time.Now().UTC()

	data := []byte("new image")
	hash := attachments.HashBytes(data)
	require.NoError(t, f.files.Write(hash, ".png", data))

	f.meta.PendingAttachmentsFunc = func(ctx context.Context) ([]*models.Attachment, error) {
		return []*models.Attachment{{ContentHash: hash, Extension: ".png", SyncStatus: models.AttachmentPending}}, nil
	}
	f.apiMock.AnnounceAttachmentsFunc = func(ctx context.Context, accessToken string, req api.AnnounceRequest) (*api.AnnounceResponse, error) {
		return &api.AnnounceResponse{Needed: []string{hash}}, nil
	}
	f.apiMock.UploadAttachmentFunc = func(ctx context.Context, accessToken, h, ext string, d []byte) (*api.UploadResponse, error) {
		assert.Equal(t, hash, h)
		assert.Equal(t, data, d)
		return &api.UploadResponse{ServerTime: serverTime, Hash: h, Size: int64(len(d))}, nil
	}

	var syncedAt *time.Time
	f.meta.SetAttachmentStatusFunc = func(ctx context.Context, h, status string, at *time.Time) error {
		assert.Equal(t, models.AttachmentSynced, status)
		syncedAt = at
		return nil
	}

	uploaded, err := f.svc.Upload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, uploaded)
	require.NotNil(t, syncedAt)
	assert.Equal(t, serverTime, *syncedAt)
}

func TestUpload_OneFailureDoesNotStopBatch(t *testing.T) {
	f := newFixture(t)

	good := []byte("good")
	goodHash := attachments.HashBytes(good)
	require.NoError(t, f.files.Write(goodHash, ".png", good))
	// байтов второго вложения на диске нет: upload упадет на чтении
	badHash := attachments.HashBytes([]byte("bad"))

	f.meta.PendingAttachmentsFunc = func(ctx context.Context) ([]*models.Attachment, error) {
		return []*models.Attachment{
			{ContentHash: badHash, Extension: ".png"},
			{ContentHash: goodHash, Extension: ".png"},
		}, nil
	}
	f.apiMock.AnnounceAttachmentsFunc = func(ctx context.Context, accessToken string, req api.AnnounceRequest) (*api.AnnounceResponse, error) {
		return &api.AnnounceResponse{Needed: []string{badHash, goodHash}}, nil
	}
	f.apiMock.UploadAttachmentFunc = func(ctx context.Context, accessToken, h, ext string, d []byte) (*api.UploadResponse, error) {
		return &api.UploadResponse{ServerTime: time.Now(), Hash: h}, nil
	}

	statuses := map[string]string{}
	f.meta.SetAttachmentStatusFunc = func(ctx context.Context, h, status string, at *time.Time) error {
		statuses[h] = status
		return nil
	}

	uploaded, err := f.svc.Upload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, uploaded)
	assert.Equal(t, models.AttachmentError, statuses[badHash])
	assert.Equal(t, models.AttachmentSynced, statuses[goodHash])
}

func TestDownload_FetchesReferencedMissingBytes(t *testing.T) {
	f := newFixture(t)

	data := []byte("remote image")
	hash := attachments.HashBytes(data)

	f.docs.ListDocumentsFunc = func(ctx context.Context) ([]*models.Document, error) {
		return []*models.Document{
			{ID: "p1", Body: "see litepad://images/" + hash + ".png"},
		}, nil
	}
	f.meta.KnownHashesFunc = func(ctx context.Context) (map[string]bool, error) {
		return map[string]bool{}, nil
	}
	f.apiMock.BatchMetadataFunc = func(ctx context.Context, accessToken string, hashes []string) (*api.BatchMetadataResponse, error) {
		assert.Equal(t, []string{hash}, hashes)
		return &api.BatchMetadataResponse{Items: []api.AttachmentMeta{
			{ContentHash: hash, Filename: "pic.png", MimeType: "image/png", Extension: ".png"},
		}}, nil
	}
	f.apiMock.DownloadAttachmentFunc = func(ctx context.Context, accessToken, h string) ([]byte, *api.AttachmentMeta, error) {
		return data, &api.AttachmentMeta{ContentHash: h}, nil
	}

	var saved *models.Attachment
	f.meta.SaveAttachmentFunc = func(ctx context.Context, att *models.Attachment) error {
		saved = att
		return nil
	}

	fetched, err := f.svc.Download(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, fetched)
	assert.True(t, f.files.Exists(hash, ".png"))
	require.NotNil(t, saved)
	assert.Equal(t, models.AttachmentSynced, saved.SyncStatus)
	assert.Equal(t, "pic.png", saved.Filename)
}

func TestDownload_MarksDownloadingBeforeFetch(t *testing.T) {
	f := newFixture(t)

	data := []byte("remote image")
	hash := attachments.HashBytes(data)

	f.docs.ListDocumentsFunc = func(ctx context.Context) ([]*models.Document, error) {
		return []*models.Document{{ID: "p1", Body: attachments.Locator(hash, ".png")}}, nil
	}
	f.meta.KnownHashesFunc = func(ctx context.Context) (map[string]bool, error) {
		return map[string]bool{}, nil
	}
	f.apiMock.BatchMetadataFunc = func(ctx context.Context, accessToken string, hashes []string) (*api.BatchMetadataResponse, error) {
		return &api.BatchMetadataResponse{Items: []api.AttachmentMeta{
			{ContentHash: hash, Filename: "pic.png", Extension: ".png"},
		}}, nil
	}

	var statuses []string
	f.meta.SaveAttachmentFunc = func(ctx context.Context, att *models.Attachment) error {
		statuses = append(statuses, att.SyncStatus)
		return nil
	}
	f.apiMock.DownloadAttachmentFunc = func(ctx context.Context, accessToken, h string) ([]byte, *api.AttachmentMeta, error) {
		// к моменту запроса байтов запись уже в статусе downloading
		require.NotEmpty(t, statuses)
		assert.Equal(t, models.AttachmentDownloading, statuses[len(statuses)-1])
		return data, &api.AttachmentMeta{ContentHash: h}, nil
	}

	fetched, err := f.svc.Download(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, fetched)
	assert.Equal(t, []string{models.AttachmentDownloading, models.AttachmentSynced}, statuses)
}

func TestDownload_SkipsHashAlreadyDownloading(t *testing.T) {
	f := newFixture(t)

	hash := attachments.HashBytes([]byte("in flight"))

	f.docs.ListDocumentsFunc = func(ctx context.Context) ([]*models.Document, error) {
		return []*models.Document{{ID: "p1", Body: attachments.Locator(hash, ".png")}}, nil
	}
	f.meta.KnownHashesFunc = func(ctx context.Context) (map[string]bool, error) {
		return map[string]bool{}, nil
	}
	f.meta.GetAttachmentFunc = func(ctx context.Context, h string) (*models.Attachment, error) {
		return &models.Attachment{ContentHash: h, SyncStatus: models.AttachmentDownloading}, nil
	}

	fetched, err := f.svc.Download(context.Background())
	require.NoError(t, err)
	assert.Zero(t, fetched)
	assert.Len(t, f.apiMock.BatchMetadataCalls(), 0)
}

func TestDownload_HashMismatchMarksError(t *testing.T) {
	f := newFixture(t)

	hash := attachments.HashBytes([]byte("expected bytes"))

	f.docs.ListDocumentsFunc = func(ctx context.Context) ([]*models.Document, error) {
		return []*models.Document{{ID: "p1", Body: attachments.Locator(hash, ".png")}}, nil
	}
	f.meta.KnownHashesFunc = func(ctx context.Context) (map[string]bool, error) {
		return map[string]bool{}, nil
	}
	f.apiMock.BatchMetadataFunc = func(ctx context.Context, accessToken string, hashes []string) (*api.BatchMetadataResponse, error) {
		return &api.BatchMetadataResponse{}, nil
	}
	f.apiMock.DownloadAttachmentFunc = func(ctx context.Context, accessToken, h string) ([]byte, *api.AttachmentMeta, error) {
		// relay вернул не те байты
		return []byte("tampered"), &api.AttachmentMeta{}, nil
	}

	var saved *models.Attachment
	f.meta.SaveAttachmentFunc = func(ctx context.Context, att *models.Attachment) error {
		saved = att
		return nil
	}

	fetched, err := f.svc.Download(context.Background())
	require.NoError(t, err)
	assert.Zero(t, fetched)
	assert.False(t, f.files.Exists(hash, ".png"), "tampered bytes must not reach disk")
	require.NotNil(t, saved)
	assert.Equal(t, models.AttachmentError, saved.SyncStatus)
}

func TestDownload_NothingMissing(t *testing.T) {
	f := newFixture(t)

	data := []byte("cached")
	hash := attachments.HashBytes(data)
	require.NoError(t, f.files.Write(hash, ".png", data))

	f.docs.ListDocumentsFunc = func(ctx context.Context) ([]*models.Document, error) {
		return []*models.Document{{ID: "p1", Body: attachments.Locator(hash, ".png")}}, nil
	}
	f.meta.KnownHashesFunc = func(ctx context.Context) (map[string]bool, error) {
		return map[string]bool{hash: true}, nil
	}

	fetched, err := f.svc.Download(context.Background())
	require.NoError(t, err)
	assert.Zero(t, fetched)
	assert.Len(t, f.apiMock.BatchMetadataCalls(), 0)
}

func TestDownload_TombstoneBodiesIgnored(t *testing.T) {
	f := newFixture(t)

	hash := attachments.HashBytes([]byte("deleted doc image"))
	f.docs.ListDocumentsFunc = func(ctx context.Context) ([]*models.Document, error) {
		return []*models.Document{
			{ID: "p1", Body: attachments.Locator(hash, ".png"), Deleted: true},
		}, nil
	}
	f.meta.KnownHashesFunc = func(ctx context.Context) (map[string]bool, error) {
		return map[string]bool{}, nil
	}

	fetched, err := f.svc.Download(context.Background())
	require.NoError(t, err)
	assert.Zero(t, fetched)
}
