package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/L0dyv/litepad/internal/models"
	"github.com/L0dyv/litepad/internal/server/storage"
)

const documentColumns = `id, account_id, title, body, version, deleted, created_at, updated_at`

// GetDocument retrieves a single document of an account
func (s *Storage) GetDocument(ctx context.Context, accountID, id string) (*models.RelayDocument, error) {
	query := `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE account_id = ? AND id = ?
	`
	doc, err := scanDocument(s.db.QueryRowContext(ctx, query, accountID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrDocumentNotFound
		}
		return nil, err
	}
	return doc, nil
}

// GetAccountDocuments returns all documents of the account, tombstones included
func (s *Storage) GetAccountDocuments(ctx context.Context, accountID string) ([]models.RelayDocument, error) {
	query := `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE account_id = ?
		ORDER BY id
	`
	return s.queryDocuments(ctx, query, accountID)
}

// GetAccountDocumentsSince returns documents modified strictly after the
// given time, tombstones included
func (s *Storage) GetAccountDocumentsSince(ctx context.Context, accountID string, since time.Time) ([]models.RelayDocument, error) {
	query := `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE account_id = ? AND updated_at > ?
		ORDER BY updated_at
	`
	return s.queryDocuments(ctx, query, accountID, since.UnixNano())
}

// GetDocumentsByIDs returns the requested documents keyed by id
func (s *Storage) GetDocumentsByIDs(ctx context.Context, accountID string, ids []string) (map[string]models.RelayDocument, error) {
	result := make(map[string]models.RelayDocument, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	placeholders := strings.Repeat("?,", len(ids))
	placeholders = placeholders[:len(placeholders)-1]
	query := `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE account_id = ? AND id IN (` + placeholders + `)
	`

	args := make([]any, 0, len(ids)+1)
	args = append(args, accountID)
	for _, id := range ids {
		args = append(args, id)
	}

	docs, err := s.queryDocuments(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	for _, doc := range docs {
		result[doc.ID] = doc
	}
	return result, nil
}

// UpsertDocument writes a document with optimistic concurrency.
// expectedVersion 0 — вставка нового документа с version=1; иначе CAS:
// UPDATE проходит только если текущая версия равна expectedVersion.
func (s *Storage) UpsertDocument(ctx context.Context, doc *models.RelayDocument, expectedVersion int64) (int64, error) {
	if expectedVersion == 0 {
		query := `
			INSERT INTO documents (id, account_id, title, body, version, deleted, created_at, updated_at)
			VALUES (?, ?, ?, ?, 1, ?, ?, ?)
		`
		_, err := s.db.ExecContext(ctx, query,
			doc.ID,
			doc.AccountID,
			doc.Title,
			doc.Body,
			boolToInt(doc.Deleted),
			doc.CreatedAt.UnixNano(),
			doc.UpdatedAt.UnixNano(),
		)
		if err != nil {
			if strings.Contains(err.Error(), "UNIQUE constraint failed") {
				// Документ уже вставлен другим устройством
				return 0, storage.ErrVersionConflict
			}
			return 0, fmt.Errorf("failed to insert document: %w", err)
		}
		return 1, nil
	}

	query := `
		UPDATE documents
		SET title = ?, body = ?, version = version + 1, deleted = ?, updated_at = ?
		WHERE account_id = ? AND id = ? AND version = ?
	`
	res, err := s.db.ExecContext(ctx, query,
		doc.Title,
		doc.Body,
		boolToInt(doc.Deleted),
		doc.UpdatedAt.UnixNano(),
		doc.AccountID,
		doc.ID,
		expectedVersion,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update document: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return 0, storage.ErrVersionConflict
	}
	return expectedVersion + 1, nil
}

func (s *Storage) queryDocuments(ctx context.Context, query string, args ...any) ([]models.RelayDocument, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	var docs []models.RelayDocument
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate documents: %w", err)
	}
	return docs, nil
}

func scanDocument(row rowScanner) (*models.RelayDocument, error) {
	doc := &models.RelayDocument{}
	var deleted int
	var createdAt, updatedAt int64

	err := row.Scan(
		&doc.ID,
		&doc.AccountID,
		&doc.Title,
		&doc.Body,
		&doc.Version,
		&deleted,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan document: %w", err)
	}

	doc.Deleted = deleted != 0
	doc.CreatedAt = time.Unix(0, createdAt)
	doc.UpdatedAt = time.Unix(0, updatedAt)
	return doc, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
