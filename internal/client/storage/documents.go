package storage

import (
	"context"
	"time"

	"github.com/L0dyv/litepad/internal/models"
)

//go:generate moq -out documents_mock.go . DocumentStorage

// DocumentStorage defines the local store contract for documents on a device.
//
// Каждая мутирующая операция (Create/Update/SoftDelete) атомарно, одной
// транзакцией, поднимает LocalVersion ровно на 1 и обновляет UpdatedAt:
// наблюдать документ со старой версией и свежей меткой (или наоборот)
// невозможно.
type DocumentStorage interface {
	// CreateDocument stores a new document with LocalVersion=1 and SyncedAt=nil
	CreateDocument(ctx context.Context, id, title, body string) (*models.Document, error)

	// UpdateDocument replaces title/body, bumping LocalVersion and UpdatedAt
	// atomically. Update on a nonexistent id is a no-op, not an error.
	UpdateDocument(ctx context.Context, id, title, body string) error

	// SoftDeleteDocument marks the document as a tombstone (Deleted=true),
	// bumping LocalVersion and UpdatedAt like any other mutation.
	// The tombstone keeps participating in sync.
	SoftDeleteDocument(ctx context.Context, id string) error

	// GetDocument retrieves a document by ID
	// Returns ErrDocumentNotFound if the document doesn't exist
	GetDocument(ctx context.Context, id string) (*models.Document, error)

	// ListDocuments returns all documents, tombstones included
	ListDocuments(ctx context.Context) ([]*models.Document, error)

	// PendingDocuments returns documents with local changes:
	// SyncedAt == nil OR UpdatedAt > SyncedAt
	PendingDocuments(ctx context.Context) ([]*models.Document, error)

	// BulkApply overwrites local copies with relay-sourced documents.
	// Никогда не поднимает LocalVersion и не трогает семантику UpdatedAt:
	// это прямая перезапись уже согласованных данных, SyncedAt
	// устанавливается в переданное время relay.
	BulkApply(ctx context.Context, docs []models.RelayDocument, serverTime time.Time) error

	// MarkSynced sets SyncedAt=serverTime for the given ids after the relay
	// accepted them in a push
	MarkSynced(ctx context.Context, ids []string, serverTime time.Time) error
}
