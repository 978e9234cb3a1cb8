package storage

import (
	"context"

	"github.com/L0dyv/litepad/internal/models"
)

// AttachmentStorage defines interface for the relay's attachment store.
// Метаданные привязаны к аккаунту, байты (blobs) — общие и адресуются
// content-хешем: одинаковый контент хранится один раз.
type AttachmentStorage interface {
	// SaveAttachmentMeta stores attachment metadata for the account.
	// Повторное сохранение того же хеша — no-op (дедупликация).
	SaveAttachmentMeta(ctx context.Context, accountID string, meta *models.Attachment) error

	// GetAttachmentMeta retrieves attachment metadata
	// Returns ErrAttachmentNotFound if the account doesn't know the hash
	GetAttachmentMeta(ctx context.Context, accountID, hash string) (*models.Attachment, error)

	// GetAttachmentMetaBatch returns metadata for the requested hashes;
	// unknown hashes are silently skipped
	GetAttachmentMetaBatch(ctx context.Context, accountID string, hashes []string) ([]models.Attachment, error)

	// MissingBlobs returns the subset of hashes the relay has no bytes for
	MissingBlobs(ctx context.Context, hashes []string) ([]string, error)

	// SaveBlob stores attachment bytes under their content hash.
	// Повторное сохранение того же хеша — no-op.
	SaveBlob(ctx context.Context, hash string, data []byte) error

	// GetBlob retrieves attachment bytes for an account-known hash
	// Returns ErrAttachmentNotFound if hash is unknown to the account
	// or bytes were never uploaded
	GetBlob(ctx context.Context, accountID, hash string) ([]byte, error)
}
