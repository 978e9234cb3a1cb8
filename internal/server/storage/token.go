package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/L0dyv/litepad/internal/models"
)

// HashRefreshToken возвращает канонический SHA-256 hex хеш refresh токена
func HashRefreshToken(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// TokenStorage defines interface for refresh token persistence.
// Токены хранятся только в виде хеша. Канонический формат — SHA-256;
// записи со схемой bcrypt-legacy остались от старых клиентов и
// прозрачно переводятся на канонический формат при первом
// использовании (см. FindRefreshToken и UpgradeRefreshToken).
type TokenStorage interface {
	// SaveRefreshToken stores a new refresh token record
	SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error

	// FindRefreshToken locates a stored token by its plaintext value:
	// прямой поиск по SHA-256 хешу, затем перебор bcrypt-legacy записей.
	// Returns ErrTokenNotFound if no record matches.
	FindRefreshToken(ctx context.Context, plaintext string) (*models.RefreshToken, error)

	// UpgradeRefreshToken replaces a legacy record with its canonical
	// SHA-256 form, keeping user and expiry intact
	UpgradeRefreshToken(ctx context.Context, oldHash string, upgraded *models.RefreshToken) error

	// DeleteRefreshToken deletes a token record by its stored hash
	// Returns ErrTokenNotFound if record doesn't exist
	DeleteRefreshToken(ctx context.Context, tokenHash string) error

	// DeleteUserTokens deletes all refresh tokens for a user
	// Returns number of deleted tokens
	DeleteUserTokens(ctx context.Context, userID string) (int, error)

	// DeleteExpiredTokens removes all expired tokens
	// Returns number of deleted tokens
	DeleteExpiredTokens(ctx context.Context) (int, error)
}
