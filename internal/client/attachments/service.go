package attachments

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/L0dyv/litepad/internal/attachments"
	httpClient "github.com/L0dyv/litepad/internal/client/api"
	"github.com/L0dyv/litepad/internal/client/storage"
	"github.com/L0dyv/litepad/internal/models"
	"github.com/L0dyv/litepad/pkg/api"
)

// ErrTooLarge возвращается при попытке добавить вложение больше лимита
var ErrTooLarge = errors.New("attachment exceeds size limit")

// TokenSource выдает действующий access token
type TokenSource interface {
	Credentials(ctx context.Context) (string, error)
}

// Service управляет вложениями устройства: регистрирует новые,
// загружает pending на relay и докачивает байты, на которые ссылаются
// тела документов.
type Service struct {
	apiClient httpClient.ClientAPI
	tokens    TokenSource
	meta      storage.AttachmentStorage
	docs      storage.DocumentStorage
	files     *FileStore
	logger    *slog.Logger
}

// NewService создает сервис вложений
func NewService(apiClient httpClient.ClientAPI, tokens TokenSource, meta storage.AttachmentStorage, docs storage.DocumentStorage, files *FileStore, logger *slog.Logger) *Service {
	return &Service{
		apiClient: apiClient,
		tokens:    tokens,
		meta:      meta,
		docs:      docs,
		files:     files,
		logger:    logger,
	}
}

// Add регистрирует новое вложение: считает хеш, кладет байты на диск
// и сохраняет метаданные со статусом pending.
// Возвращает locator для вставки в тело документа.
func (s *Service) Add(ctx context.Context, filename, mimeType string, data []byte) (*models.Attachment, string, error) {
	if int64(len(data)) > attachments.MaxByteSize {
		return nil, "", fmt.Errorf("%w: %d bytes", ErrTooLarge, len(data))
	}

	hash := attachments.HashBytes(data)
	ext := filepath.Ext(filename)

	if err := s.files.Write(hash, ext, data); err != nil {
		return nil, "", err
	}

	att := &models.Attachment{
		ContentHash: hash,
		Filename:    filename,
		MimeType:    mimeType,
		Extension:   ext,
		ByteSize:    int64(len(data)),
		SyncStatus:  models.AttachmentPending,
		CreatedAt:   time.Now(),
	}
	if err := s.meta.SaveAttachment(ctx, att); err != nil {
		return nil, "", fmt.Errorf("failed to save attachment metadata: %w", err)
	}

	return att, attachments.Locator(hash, ext), nil
}

// Upload отправляет pending вложения на relay.
// Сначала анонсируются метаданные; байты передаются только для хешей,
// которых у relay еще нет. Ошибка одного вложения не прерывает batch.
func (s *Service) Upload(ctx context.Context) (int, error) {
	pending, err := s.meta.PendingAttachments(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get pending attachments: %w", err)
	}
	if len(pending) == 0 {
		return 0, nil
	}

	token, err := s.tokens.Credentials(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get credentials: %w", err)
	}

	announce := api.AnnounceRequest{Items: make([]api.AttachmentMeta, 0, len(pending))}
	byHash := make(map[string]*models.Attachment, len(pending))
	for _, att := range pending {
		byHash[att.ContentHash] = att
		announce.Items = append(announce.Items, api.AttachmentMeta{
			ContentHash: att.ContentHash,
			Filename:    att.Filename,
			MimeType:    att.MimeType,
			Extension:   att.Extension,
			ByteSize:    att.ByteSize,
			CreatedAt:   att.CreatedAt,
		})
	}

	resp, err := s.apiClient.AnnounceAttachments(ctx, token, announce)
	if err != nil {
		return 0, fmt.Errorf("announce failed: %w", err)
	}

	needed := make(map[string]bool, len(resp.Needed))
	for _, h := range resp.Needed {
		needed[h] = true
	}

	now := time.Now()
	uploaded := 0
	for _, att := range pending {
		if !needed[att.ContentHash] {
			// Байты уже есть на relay (тот же контент с другого
			// устройства): достаточно отметить синхронизацию
			if err := s.meta.SetAttachmentStatus(ctx, att.ContentHash, models.AttachmentSynced, &now); err != nil {
				return uploaded, fmt.Errorf("failed to mark attachment synced: %w", err)
			}
			uploaded++
			continue
		}

		if err := s.uploadOne(ctx, token, att); err != nil {
			s.logger.Warn("attachment upload failed",
				"hash", att.ContentHash,
				"error", err)
			if stErr := s.meta.SetAttachmentStatus(ctx, att.ContentHash, models.AttachmentError, nil); stErr != nil {
				return uploaded, stErr
			}
			continue
		}
		uploaded++
	}
	return uploaded, nil
}

func (s *Service) uploadOne(ctx context.Context, token string, att *models.Attachment) error {
	data, err := s.files.Read(att.ContentHash, att.Extension)
	if err != nil {
		return err
	}

	resp, err := s.apiClient.UploadAttachment(ctx, token, att.ContentHash, att.Extension, data)
	if err != nil {
		return err
	}

	serverTime := resp.ServerTime
	return s.meta.SetAttachmentStatus(ctx, att.ContentHash, models.AttachmentSynced, &serverTime)
}

// Download докачивает вложения, на которые ссылаются тела документов,
// но чьих байтов на устройстве нет. Скачанные байты сверяются с хешем
// из locator; несовпадение помечает вложение ошибочным, не прерывая
// остальные загрузки.
func (s *Service) Download(ctx context.Context) (int, error) {
	refs, err := s.referencedRefs(ctx)
	if err != nil {
		return 0, err
	}

	known, err := s.meta.KnownHashes(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get known hashes: %w", err)
	}

	var missing []attachments.Ref
	for _, ref := range refs {
		if known[ref.Hash] && s.files.Exists(ref.Hash, ref.Extension) {
			continue
		}
		if att, err := s.meta.GetAttachment(ctx, ref.Hash); err == nil && att.SyncStatus == models.AttachmentDownloading {
			// хеш уже качается другим вызовом
			continue
		}
		missing = append(missing, ref)
	}
	if len(missing) == 0 {
		return 0, nil
	}

	token, err := s.tokens.Credentials(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get credentials: %w", err)
	}

	hashes := make([]string, 0, len(missing))
	for _, ref := range missing {
		hashes = append(hashes, ref.Hash)
	}
	metaResp, err := s.apiClient.BatchMetadata(ctx, token, hashes)
	if err != nil {
		return 0, fmt.Errorf("batch metadata failed: %w", err)
	}
	metaByHash := make(map[string]api.AttachmentMeta, len(metaResp.Items))
	for _, m := range metaResp.Items {
		metaByHash[m.ContentHash] = m
	}

	fetched := 0
	for _, ref := range missing {
		if err := s.markDownloading(ctx, ref, metaByHash[ref.Hash]); err != nil {
			return fetched, fmt.Errorf("failed to mark attachment downloading: %w", err)
		}
		if err := s.downloadOne(ctx, token, ref, metaByHash[ref.Hash]); err != nil {
			s.logger.Warn("attachment download failed",
				"hash", ref.Hash,
				"error", err)
			if stErr := s.markDownloadError(ctx, ref, metaByHash[ref.Hash]); stErr != nil {
				return fetched, stErr
			}
			continue
		}
		fetched++
	}
	return fetched, nil
}

func (s *Service) downloadOne(ctx context.Context, token string, ref attachments.Ref, meta api.AttachmentMeta) error {
	data, respMeta, err := s.apiClient.DownloadAttachment(ctx, token, ref.Hash)
	if err != nil {
		return err
	}

	// Сверка с хешем из locator — защита от подмены и порчи в пути
	if got := attachments.HashBytes(data); got != ref.Hash {
		return fmt.Errorf("downloaded bytes hash to %s, expected %s", got, ref.Hash)
	}

	if err := s.files.Write(ref.Hash, ref.Extension, data); err != nil {
		return err
	}

	filename := meta.Filename
	if filename == "" {
		filename = respMeta.Filename
	}
	mimeType := meta.MimeType
	if mimeType == "" {
		mimeType = respMeta.MimeType
	}

	now := time.Now()
	att := &models.Attachment{
		ContentHash: ref.Hash,
		Filename:    filename,
		MimeType:    mimeType,
		Extension:   ref.Extension,
		ByteSize:    int64(len(data)),
		SyncStatus:  models.AttachmentSynced,
		CreatedAt:   now,
		SyncedAt:    &now,
	}
	return s.meta.SaveAttachment(ctx, att)
}

// markDownloading фиксирует начало загрузки: запись в статусе
// downloading видна другим вызовам Download и пропускается ими
func (s *Service) markDownloading(ctx context.Context, ref attachments.Ref, meta api.AttachmentMeta) error {
	att := &models.Attachment{
		ContentHash: ref.Hash,
		Filename:    meta.Filename,
		MimeType:    meta.MimeType,
		Extension:   ref.Extension,
		ByteSize:    meta.ByteSize,
		SyncStatus:  models.AttachmentDownloading,
		CreatedAt:   time.Now(),
	}
	return s.meta.SaveAttachment(ctx, att)
}

func (s *Service) markDownloadError(ctx context.Context, ref attachments.Ref, meta api.AttachmentMeta) error {
	att := &models.Attachment{
		ContentHash: ref.Hash,
		Filename:    meta.Filename,
		MimeType:    meta.MimeType,
		Extension:   ref.Extension,
		ByteSize:    meta.ByteSize,
		SyncStatus:  models.AttachmentError,
		CreatedAt:   time.Now(),
	}
	return s.meta.SaveAttachment(ctx, att)
}

// referencedRefs собирает уникальные ссылки на вложения из тел всех
// документов, tombstones пропускаются
func (s *Service) referencedRefs(ctx context.Context) ([]attachments.Ref, error) {
	docs, err := s.docs.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	seen := make(map[string]bool)
	var refs []attachments.Ref
	for _, doc := range docs {
		if doc.Deleted {
			continue
		}
		for _, ref := range attachments.ScanBody(doc.Body) {
			if seen[ref.Hash] {
				continue
			}
			seen[ref.Hash] = true
			refs = append(refs, ref)
		}
	}
	return refs, nil
}
