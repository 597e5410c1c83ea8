package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pribylovaa/press-service/internal/models"
	"github.com/pribylovaa/press-service/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveRefreshToken сохраняет новый refresh-токен в БД.
func (s *Storage) SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	const op = "storage.postgres.SaveRefreshToken"

	query := `
        INSERT INTO refresh_tokens(token_hash, admin_id, created_at, expires_at, revoked)
        VALUES ($1, $2, $3, $4, $5)
    `

	_, err := s.db.Exec(ctx, query,
		token.RefreshTokenHash,
		token.AdminID,
		token.CreatedAt,
		token.ExpiresAt,
		token.Revoked,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// RefreshTokenByHash находит refresh-токен по его хэшу.
func (s *Storage) RefreshTokenByHash(ctx context.Context, hash string) (*models.RefreshToken, error) {
	const op = "storage.postgres.RefreshTokenByHash"

	query := `
        SELECT token_hash, admin_id, created_at, expires_at, revoked
        FROM refresh_tokens
        WHERE token_hash = $1
    `

	var token models.RefreshToken
	err := s.db.QueryRow(ctx, query, hash).Scan(
		&token.RefreshTokenHash,
		&token.AdminID,
		&token.CreatedAt,
		&token.ExpiresAt,
		&token.Revoked,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &token, nil
}

// RevokeRefreshToken отзывает активный refresh-токен одним запросом.
// Возвращает:
//
//	(true, nil)  - токен был активен и отозван сейчас;
//	(false, nil) - токен существует, но уже был отозван;
//	(false, ErrNotFound) - токен не найден.
//
// Из двух конкурентных вызовов true получает ровно один.
func (s *Storage) RevokeRefreshToken(ctx context.Context, hash string) (bool, error) {
	const op = "storage.postgres.RevokeRefreshToken"

	const query = `
		WITH upd AS (
			UPDATE refresh_tokens
			SET revoked = TRUE
			WHERE token_hash = $1 AND revoked = FALSE
			RETURNING 1
		)
		SELECT EXISTS (SELECT 1 FROM upd),
		       EXISTS (SELECT 1 FROM refresh_tokens WHERE token_hash = $1)
	`

	var revokedNow, exists bool
	if err := s.db.QueryRow(ctx, query, hash).Scan(&revokedNow, &exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if !exists {
		return false, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return revokedNow, nil
}

// RevokeAdminTokens отзывает все активные токены администратора (глобальный выход).
func (s *Storage) RevokeAdminTokens(ctx context.Context, adminID uuid.UUID) ([]string, error) {
	const op = "storage.postgres.RevokeAdminTokens"

	rows, err := s.db.Query(ctx, `
		UPDATE refresh_tokens
		SET revoked = TRUE
		WHERE admin_id = $1 AND revoked = FALSE
		RETURNING token_hash
	`, adminID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	hashes, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return hashes, nil
}

// DeleteExpiredTokens удаляет все просроченные токены.
func (s *Storage) DeleteExpiredTokens(ctx context.Context, now time.Time) (int64, error) {
	const op = "storage.postgres.DeleteExpiredTokens"

	tag, err := s.db.Exec(ctx, `DELETE FROM refresh_tokens WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return tag.RowsAffected(), nil
}
