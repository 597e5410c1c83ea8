package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/pribylovaa/press-service/internal/models"
	"github.com/pribylovaa/press-service/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveAdmin создает нового администратора в БД.
func (s *Storage) SaveAdmin(ctx context.Context, admin *models.Admin) error {
	const op = "storage.postgres.SaveAdmin"

	query := `
		INSERT INTO admins(id, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := s.db.Exec(ctx, query,
		admin.ID,
		admin.Email,
		admin.PasswordHash,
		admin.CreatedAt,
		admin.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// AdminByEmail находит администратора по email.
func (s *Storage) AdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	const op = "storage.postgres.AdminByEmail"

	return s.adminBy(ctx, op, `WHERE email = $1`, email)
}

// AdminByID находит администратора по ID.
func (s *Storage) AdminByID(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	const op = "storage.postgres.AdminByID"

	return s.adminBy(ctx, op, `WHERE id = $1`, id)
}

func (s *Storage) adminBy(ctx context.Context, op, where string, arg any) (*models.Admin, error) {
	query := `
		SELECT id, email, password_hash, created_at, updated_at
		FROM admins
		` + where

	var admin models.Admin
	err := s.db.QueryRow(ctx, query, arg).Scan(
		&admin.ID,
		&admin.Email,
		&admin.PasswordHash,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &admin, nil
}
