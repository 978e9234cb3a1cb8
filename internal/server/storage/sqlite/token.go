package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/L0dyv/litepad/internal/models"
	"github.com/L0dyv/litepad/internal/server/storage"
)

// SaveRefreshToken stores a new refresh token record
func (s *Storage) SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	query := `
		INSERT OR REPLACE INTO refresh_tokens (token_hash, hash_scheme, user_id, expires_at, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		token.TokenHash,
		token.HashScheme,
		token.UserID,
		token.ExpiresAt.UnixNano(),
		token.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}
	return nil
}

// FindRefreshToken locates a stored token by its plaintext value.
// Две фазы: прямой lookup по SHA-256 хешу, затем перебор bcrypt-legacy
// записей со сравнением через bcrypt. Перебор оправдан: legacy записи
// конечны и исчезают по мере апгрейда.
func (s *Storage) FindRefreshToken(ctx context.Context, plaintext string) (*models.RefreshToken, error) {
	// Фаза 1: канонический формат
	canonical := storage.HashRefreshToken(plaintext)
	token, err := s.getTokenByHash(ctx, canonical)
	if err == nil {
		return token, nil
	}
	if !errors.Is(err, storage.ErrTokenNotFound) {
		return nil, err
	}

	// Фаза 2: bcrypt-legacy записи
	query := `
		SELECT token_hash, hash_scheme, user_id, expires_at, created_at
		FROM refresh_tokens
		WHERE hash_scheme = ?
	`
	rows, err := s.db.QueryContext(ctx, query, models.TokenSchemeBcryptLegacy)
	if err != nil {
		return nil, fmt.Errorf("failed to query legacy tokens: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		candidate, err := scanToken(rows)
		if err != nil {
			return nil, err
		}
		if bcrypt.CompareHashAndPassword([]byte(candidate.TokenHash), []byte(plaintext)) == nil {
			return candidate, nil
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate legacy tokens: %w", err)
	}

	return nil, storage.ErrTokenNotFound
}

// UpgradeRefreshToken replaces a legacy record with its canonical SHA-256
// form, keeping user and expiry intact
func (s *Storage) UpgradeRefreshToken(ctx context.Context, oldHash string, upgraded *models.RefreshToken) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	res, err := tx.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE token_hash = ?`, oldHash)
	if err != nil {
		return fmt.Errorf("failed to delete legacy token: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrTokenNotFound
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO refresh_tokens (token_hash, hash_scheme, user_id, expires_at, created_at)
		VALUES (?, ?, ?, ?, ?)
	`,
		upgraded.TokenHash,
		upgraded.HashScheme,
		upgraded.UserID,
		upgraded.ExpiresAt.UnixNano(),
		upgraded.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert upgraded token: %w", err)
	}

	return tx.Commit()
}

// DeleteRefreshToken deletes a token record by its stored hash
func (s *Storage) DeleteRefreshToken(ctx context.Context, tokenHash string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE token_hash = ?`, tokenHash)
	if err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrTokenNotFound
	}
	return nil
}

// DeleteUserTokens deletes all refresh tokens for a user
func (s *Storage) DeleteUserTokens(ctx context.Context, userID string) (int, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE user_id = ?`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete user tokens: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return int(affected), nil
}

// DeleteExpiredTokens removes all expired tokens
func (s *Storage) DeleteExpiredTokens(ctx context.Context) (int, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE expires_at < ?`, time.Now().UnixNano())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired tokens: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return int(affected), nil
}

func (s *Storage) getTokenByHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error) {
	query := `
		SELECT token_hash, hash_scheme, user_id, expires_at, created_at
		FROM refresh_tokens
		WHERE token_hash = ?
	`
	token, err := scanToken(s.db.QueryRowContext(ctx, query, tokenHash))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTokenNotFound
		}
		return nil, err
	}
	return token, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanToken(row rowScanner) (*models.RefreshToken, error) {
	token := &models.RefreshToken{}
	var expiresAt, createdAt int64

	err := row.Scan(
		&token.TokenHash,
		&token.HashScheme,
		&token.UserID,
		&expiresAt,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan token: %w", err)
	}

	token.ExpiresAt = time.Unix(0, expiresAt)
	token.CreatedAt = time.Unix(0, createdAt)
	return token, nil
}
