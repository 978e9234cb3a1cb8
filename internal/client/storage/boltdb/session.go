package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/L0dyv/litepad/internal/client/storage"
	"github.com/L0dyv/litepad/internal/models"
)

const keySession = "session"

// GetSession returns the device's sync session.
// При первом обращении создается запись с Enabled=false и свежим DeviceID;
// DeviceID генерируется ровно один раз и дальше стабилен.
func (s *Storage) GetSession(ctx context.Context) (*models.SyncSession, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var session *models.SyncSession

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketSession)
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}

		data := bucket.Get([]byte(keySession))
		if data != nil {
			session = &models.SyncSession{}
			if err := json.Unmarshal(data, session); err != nil {
				return fmt.Errorf("failed to unmarshal session: %w", err)
			}
			return nil
		}

		// первая инициализация
		session = &models.SyncSession{
			Enabled:  false,
			DeviceID: uuid.New().String(),
		}
		created, err := json.Marshal(session)
		if err != nil {
			return fmt.Errorf("failed to marshal session: %w", err)
		}
		return bucket.Put([]byte(keySession), created)
	})
	if err != nil {
		return nil, fmt.Errorf("session transaction failed: %w", err)
	}

	return session, nil
}

// SaveSession persists the session state
func (s *Storage) SaveSession(ctx context.Context, session *models.SyncSession) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketSession)
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		return bucket.Put([]byte(keySession), data)
	})
	if err != nil {
		return fmt.Errorf("session transaction failed: %w", err)
	}

	return nil
}
