package storage

import (
	"context"
	"time"

	"github.com/L0dyv/litepad/internal/models"
)

//go:generate moq -out attachments_mock.go . AttachmentStorage

// AttachmentStorage defines the local store contract for attachment metadata.
// Вложения ключуются content-хешем; байты лежат отдельно (files.Store).
type AttachmentStorage interface {
	// SaveAttachment stores or overwrites attachment metadata
	SaveAttachment(ctx context.Context, att *models.Attachment) error

	// GetAttachment retrieves attachment metadata by content hash
	// Returns ErrAttachmentNotFound if unknown
	GetAttachment(ctx context.Context, hash string) (*models.Attachment, error)

	// PendingAttachments returns attachments with SyncStatus == pending
	PendingAttachments(ctx context.Context) ([]*models.Attachment, error)

	// KnownHashes returns the set of locally known content hashes
	KnownHashes(ctx context.Context) (map[string]bool, error)

	// SetAttachmentStatus updates SyncStatus; when status is "synced",
	// SyncedAt is set to syncedAt
	SetAttachmentStatus(ctx context.Context, hash, status string, syncedAt *time.Time) error
}

//go:generate moq -out session_mock.go . SessionStorage

// SessionStorage defines the local store contract for sync session state
type SessionStorage interface {
	// GetSession returns the device's sync session, creating it on first use
	// with Enabled=false and a freshly generated, thereafter stable DeviceID
	GetSession(ctx context.Context) (*models.SyncSession, error)

	// SaveSession persists the session state
	SaveSession(ctx context.Context, session *models.SyncSession) error
}
