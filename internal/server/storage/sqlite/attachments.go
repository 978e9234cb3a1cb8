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

// SaveAttachmentMeta stores attachment metadata for the account.
// INSERT OR IGNORE: повторное объявление того же контента (в том числе
// с другого устройства) схлопывается без ошибки.
func (s *Storage) SaveAttachmentMeta(ctx context.Context, accountID string, meta *models.Attachment) error {
	query := `
		INSERT OR IGNORE INTO account_attachments
			(account_id, content_hash, filename, mime_type, extension, byte_size, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query,
		accountID,
		meta.ContentHash,
		meta.Filename,
		meta.MimeType,
		meta.Extension,
		meta.ByteSize,
		meta.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to save attachment meta: %w", err)
	}
	return nil
}

// GetAttachmentMeta retrieves attachment metadata
func (s *Storage) GetAttachmentMeta(ctx context.Context, accountID, hash string) (*models.Attachment, error) {
	query := `
		SELECT content_hash, filename, mime_type, extension, byte_size, created_at
		FROM account_attachments
		WHERE account_id = ? AND content_hash = ?
	`
	meta, err := scanAttachmentMeta(s.db.QueryRowContext(ctx, query, accountID, hash))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrAttachmentNotFound
		}
		return nil, err
	}
	return meta, nil
}

// GetAttachmentMetaBatch returns metadata for the requested hashes;
// unknown hashes are silently skipped
func (s *Storage) GetAttachmentMetaBatch(ctx context.Context, accountID string, hashes []string) ([]models.Attachment, error) {
	if len(hashes) == 0 {
		return nil, nil
	}

	placeholders := strings.Repeat("?,", len(hashes))
	placeholders = placeholders[:len(placeholders)-1]
	query := `
		SELECT content_hash, filename, mime_type, extension, byte_size, created_at
		FROM account_attachments
		WHERE account_id = ? AND content_hash IN (` + placeholders + `)
		ORDER BY content_hash
	`

	args := make([]any, 0, len(hashes)+1)
	args = append(args, accountID)
	for _, h := range hashes {
		args = append(args, h)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attachment metas: %w", err)
	}
	defer rows.Close()

	var metas []models.Attachment
	for rows.Next() {
		meta, err := scanAttachmentMeta(rows)
		if err != nil {
			return nil, err
		}
		metas = append(metas, *meta)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attachment metas: %w", err)
	}
	return metas, nil
}

// MissingBlobs returns the subset of hashes the relay has no bytes for
func (s *Storage) MissingBlobs(ctx context.Context, hashes []string) ([]string, error) {
	if len(hashes) == 0 {
		return nil, nil
	}

	placeholders := strings.Repeat("?,", len(hashes))
	placeholders = placeholders[:len(placeholders)-1]
	query := `SELECT content_hash FROM attachment_blobs WHERE content_hash IN (` + placeholders + `)`

	args := make([]any, 0, len(hashes))
	for _, h := range hashes {
		args = append(args, h)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query blobs: %w", err)
	}
	defer rows.Close()

	present := make(map[string]bool, len(hashes))
	for rows.Next() {
		var h string
		if err := rows.Scan(&h); err != nil {
			return nil, fmt.Errorf("failed to scan blob hash: %w", err)
		}
		present[h] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate blobs: %w", err)
	}

	var missing []string
	for _, h := range hashes {
		if !present[h] {
			missing = append(missing, h)
		}
	}
	return missing, nil
}

// SaveBlob stores attachment bytes under their content hash
func (s *Storage) SaveBlob(ctx context.Context, hash string, data []byte) error {
	query := `
		INSERT OR IGNORE INTO attachment_blobs (content_hash, data, byte_size, created_at)
		VALUES (?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query, hash, data, len(data), time.Now().UnixNano())
	if err != nil {
		return fmt.Errorf("failed to save blob: %w", err)
	}
	return nil
}

// GetBlob retrieves attachment bytes for an account-known hash
func (s *Storage) GetBlob(ctx context.Context, accountID, hash string) ([]byte, error) {
	// Байты отдаются только аккаунту, объявившему этот хеш
	query := `
		SELECT b.data
		FROM attachment_blobs b
		JOIN account_attachments a ON a.content_hash = b.content_hash
		WHERE a.account_id = ? AND b.content_hash = ?
	`
	var data []byte
	err := s.db.QueryRowContext(ctx, query, accountID, hash).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrAttachmentNotFound
		}
		return nil, fmt.Errorf("failed to get blob: %w", err)
	}
	return data, nil
}

func scanAttachmentMeta(row rowScanner) (*models.Attachment, error) {
	meta := &models.Attachment{}
	var createdAt int64

	err := row.Scan(
		&meta.ContentHash,
		&meta.Filename,
		&meta.MimeType,
		&meta.Extension,
		&meta.ByteSize,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan attachment meta: %w", err)
	}

	meta.CreatedAt = time.Unix(0, createdAt)
	return meta, nil
}
