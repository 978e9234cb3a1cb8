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

// SaveAttachment stores or overwrites attachment metadata keyed by content hash
func (s *Storage) SaveAttachment(ctx context.Context, att *models.Attachment) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(att)
	if err != nil {
		return fmt.Errorf("failed to marshal attachment: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketAttachments)
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}

		// Ключ — content hash: одинаковые байты с любых устройств
		// схлопываются в одну запись
		if err := bucket.Put([]byte(att.ContentHash), data); err != nil {
			return fmt.Errorf("failed to save attachment: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// GetAttachment retrieves attachment metadata by content hash
func (s *Storage) GetAttachment(ctx context.Context, hash string) (*models.Attachment, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var att *models.Attachment

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAttachments)
		if bucket == nil {
			return storage.ErrAttachmentNotFound
		}

		data := bucket.Get([]byte(hash))
		if data == nil {
			return storage.ErrAttachmentNotFound
		}

		att = &models.Attachment{}
		if err := json.Unmarshal(data, att); err != nil {
			return fmt.Errorf("failed to unmarshal attachment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return att, nil
}

// PendingAttachments returns attachments with SyncStatus == pending
func (s *Storage) PendingAttachments(ctx context.Context) ([]*models.Attachment, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var pending []*models.Attachment

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAttachments)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var att models.Attachment
			if err := json.Unmarshal(v, &att); err != nil {
				return fmt.Errorf("failed to unmarshal attachment: %w", err)
			}
			if att.SyncStatus == models.AttachmentPending {
				pending = append(pending, &att)
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get pending attachments: %w", err)
	}

	return pending, nil
}

// KnownHashes returns the set of locally known content hashes
func (s *Storage) KnownHashes(ctx context.Context) (map[string]bool, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	known := make(map[string]bool)

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAttachments)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			known[string(k)] = true
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect known hashes: %w", err)
	}

	return known, nil
}

// SetAttachmentStatus updates SyncStatus; for "synced" SyncedAt is recorded.
// Переход pending → synced служит защитой от повторной конкурентной
// загрузки одного хеша.
func (s *Storage) SetAttachmentStatus(ctx context.Context, hash, status string, syncedAt *time.Time) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAttachments)
		if bucket == nil {
			return storage.ErrAttachmentNotFound
		}

		data := bucket.Get([]byte(hash))
		if data == nil {
			return storage.ErrAttachmentNotFound
		}

		var att models.Attachment
		if err := json.Unmarshal(data, &att); err != nil {
			return fmt.Errorf("failed to unmarshal attachment: %w", err)
		}

		att.SyncStatus = status
		if status == models.AttachmentSynced && syncedAt != nil {
			t := syncedAt.UTC()
			att.SyncedAt = &t
		}

		updated, err := json.Marshal(&att)
		if err != nil {
			return fmt.Errorf("failed to marshal attachment: %w", err)
		}
		if err := bucket.Put([]byte(hash), updated); err != nil {
			return fmt.Errorf("failed to save attachment: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("status transaction failed: %w", err)
	}

	return nil
}
