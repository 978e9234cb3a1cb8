package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/L0dyv/litepad/internal/client/storage"
	"github.com/L0dyv/litepad/internal/models"
)

// CreateDocument stores a new document with LocalVersion=1 and SyncedAt=nil
func (s *Storage) CreateDocument(ctx context.Context, id, title, body string) (*models.Document, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	now := time.Now().UTC()
	doc := &models.Document{
		ID:           id,
		Title:        title,
		Body:         body,
		LocalVersion: 1,
		CreatedAt:    now,
		UpdatedAt:    now,
		SyncedAt:     nil,
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return putDocument(tx, doc)
	})
	if err != nil {
		return nil, fmt.Errorf("create transaction failed: %w", err)
	}

	return doc, nil
}

// UpdateDocument replaces title/body of an existing document.
// LocalVersion и UpdatedAt поднимаются в той же транзакции, что и запись
// содержимого: промежуточное состояние снаружи не наблюдаемо.
// Update несуществующего id — no-op, не ошибка.
func (s *Storage) UpdateDocument(ctx context.Context, id, title, body string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		doc, err := getDocument(tx, id)
		if err != nil {
			if err == storage.ErrDocumentNotFound {
				return nil
			}
			return err
		}

		doc.Title = title
		doc.Body = body
		doc.LocalVersion++
		doc.UpdatedAt = time.Now().UTC()

		return putDocument(tx, doc)
	})
	if err != nil {
		return fmt.Errorf("update transaction failed: %w", err)
	}

	return nil
}

// SoftDeleteDocument marks the document as a tombstone.
// Tombstone участвует в синхронизации как обычная мутация, поэтому
// LocalVersion и UpdatedAt поднимаются так же, как при update.
func (s *Storage) SoftDeleteDocument(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		doc, err := getDocument(tx, id)
		if err != nil {
			return err
		}

		doc.Deleted = true
		doc.LocalVersion++
		doc.UpdatedAt = time.Now().UTC()

		return putDocument(tx, doc)
	})
	if err != nil {
		return fmt.Errorf("delete transaction failed: %w", err)
	}

	return nil
}

// GetDocument retrieves a document by ID
func (s *Storage) GetDocument(ctx context.Context, id string) (*models.Document, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var doc *models.Document

	err := s.db.View(func(tx *bbolt.Tx) error {
		d, err := getDocument(tx, id)
		if err != nil {
			return err
		}
		doc = d
		return nil
	})
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// ListDocuments returns all documents, tombstones included
func (s *Storage) ListDocuments(ctx context.Context) ([]*models.Document, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var docs []*models.Document

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDocuments)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var doc models.Document
			if err := json.Unmarshal(v, &doc); err != nil {
				return fmt.Errorf("failed to unmarshal document: %w", err)
			}
			docs = append(docs, &doc)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	return docs, nil
}

// PendingDocuments returns documents with unreconciled local changes:
// SyncedAt == nil OR UpdatedAt > SyncedAt
func (s *Storage) PendingDocuments(ctx context.Context) ([]*models.Document, error) {
	all, err := s.ListDocuments(ctx)
	if err != nil {
		return nil, err
	}

	var pending []*models.Document
	for _, doc := range all {
		if doc.HasLocalChanges() {
			pending = append(pending, doc)
		}
	}
	return pending, nil
}

// BulkApply overwrites local copies with relay-sourced documents.
// Эти документы по построению уже согласованы: LocalVersion берётся равным
// версии relay, SyncedAt — переданному времени relay, без каких-либо
// инкрементов.
func (s *Storage) BulkApply(ctx context.Context, docs []models.RelayDocument, serverTime time.Time) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	if len(docs) == 0 {
		return nil
	}

	syncedAt := serverTime.UTC()

	err := s.db.Update(func(tx *bbolt.Tx) error {
		for i := range docs {
			r := docs[i]
			doc := &models.Document{
				ID:           r.ID,
				Title:        r.Title,
				Body:         r.Body,
				LocalVersion: r.Version,
				CreatedAt:    r.CreatedAt,
				UpdatedAt:    r.UpdatedAt,
				SyncedAt:     &syncedAt,
				Deleted:      r.Deleted,
			}
			if err := putDocument(tx, doc); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("bulk apply transaction failed: %w", err)
	}

	return nil
}

// MarkSynced sets SyncedAt=serverTime for documents the relay accepted
func (s *Storage) MarkSynced(ctx context.Context, ids []string, serverTime time.Time) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	if len(ids) == 0 {
		return nil
	}

	syncedAt := serverTime.UTC()

	err := s.db.Update(func(tx *bbolt.Tx) error {
		for _, id := range ids {
			doc, err := getDocument(tx, id)
			if err != nil {
				if err == storage.ErrDocumentNotFound {
					continue
				}
				return err
			}
			doc.SyncedAt = &syncedAt
			if err := putDocument(tx, doc); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("mark synced transaction failed: %w", err)
	}

	return nil
}

// getDocument читает и десериализует документ внутри транзакции
func getDocument(tx *bbolt.Tx, id string) (*models.Document, error) {
	bucket := tx.Bucket(bucketDocuments)
	if bucket == nil {
		return nil, storage.ErrDocumentNotFound
	}

	data := bucket.Get([]byte(id))
	if data == nil {
		return nil, storage.ErrDocumentNotFound
	}

	doc := &models.Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	return doc, nil
}

// putDocument сериализует и пишет документ внутри транзакции
func putDocument(tx *bbolt.Tx, doc *models.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	bucket, err := tx.CreateBucketIfNotExists(bucketDocuments)
	if err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}

	if err := bucket.Put([]byte(doc.ID), data); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}
