package models

import "time"

// User представляет аккаунт в системе
type User struct {
	ID           string    `json:"id"`            // UUID пользователя
	Username     string    `json:"username"`      // уникальный username
	PasswordHash string    `json:"password_hash"` // bcrypt хеш пароля
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Схемы хранения refresh токенов. Канонический формат — SHA-256 hex,
// по нему возможен прямой lookup. Legacy формат — bcrypt, оставшийся от
// ранних версий; такие записи находятся только полным перебором и
// переписываются в каноническом виде явным UpgradeRefreshToken.
const (
	TokenSchemeSHA256       = "sha256"
	TokenSchemeBcryptLegacy = "bcrypt-legacy"
)

// RefreshToken представляет refresh token пользователя.
// Сам токен не хранится, только хеш.
type RefreshToken struct {
	TokenHash  string    `json:"token_hash"`
	HashScheme string    `json:"hash_scheme"`
	UserID     string    `json:"user_id"`
	ExpiresAt  time.Time `json:"expires_at"`
	CreatedAt  time.Time `json:"created_at"`
}
