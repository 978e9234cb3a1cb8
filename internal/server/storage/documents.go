package storage

import (
	"context"
	"time"

	"github.com/L0dyv/litepad/internal/models"
)

// DocumentStorage defines interface for the relay's authoritative
// document store. Все операции ограничены одним аккаунтом.
type DocumentStorage interface {
	// GetDocument retrieves a single document
	// Returns ErrDocumentNotFound if it doesn't exist
	GetDocument(ctx context.Context, accountID, id string) (*models.RelayDocument, error)

	// GetAccountDocuments returns all documents of the account,
	// tombstones included
	GetAccountDocuments(ctx context.Context, accountID string) ([]models.RelayDocument, error)

	// GetAccountDocumentsSince returns documents modified strictly after
	// the given time, tombstones included
	GetAccountDocumentsSince(ctx context.Context, accountID string, since time.Time) ([]models.RelayDocument, error)

	// GetDocumentsByIDs returns the requested documents keyed by id;
	// unknown ids are simply absent from the map
	GetDocumentsByIDs(ctx context.Context, accountID string, ids []string) (map[string]models.RelayDocument, error)

	// UpsertDocument writes a document with optimistic concurrency.
	// expectedVersion 0 означает вставку нового документа (version=1);
	// иначе запись проходит только если текущая версия равна
	// expectedVersion, и версия поднимается на 1.
	// Returns the new version, or ErrVersionConflict when a concurrent
	// writer got there first.
	UpsertDocument(ctx context.Context, doc *models.RelayDocument, expectedVersion int64) (int64, error)
}
