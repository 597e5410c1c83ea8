package models

import (
	"time"

	"github.com/google/uuid"
)

// Admin - учётная запись администратора.
// Любой аутентифицированный пользователь считается администратором.
type Admin struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RefreshToken - данные refresh-токена для управления сессиями.
// На сервере хранится только хэш токена.
type RefreshToken struct {
	RefreshTokenHash string
	AdminID          uuid.UUID
	CreatedAt        time.Time
	ExpiresAt        time.Time
	Revoked          bool
}

// TokenPair - пара токенов, выдаваемая при входе/обновлении сессии.
//
// Описание:
//   - AccessToken - короткоживущий JWT для доступа к admin-API;
//   - RefreshToken - случайный секрет для выпуска новой пары;
//   - AccessExpiresAt - момент истечения access-токена (UTC).
type TokenPair struct {
	AccessToken     string
	RefreshToken    string
	AccessExpiresAt time.Time
}

// SessionInfo - данные активной admin-сессии.
type SessionInfo struct {
	AdminID   uuid.UUID
	Email     string
	ExpiresAt time.Time
}
