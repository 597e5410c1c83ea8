package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// VisitorCount возвращает текущее значение счётчика посещений.
// Отсутствующая строка трактуется как 0.
func (s *Storage) VisitorCount(ctx context.Context) (int64, error) {
	const op = "storage.postgres.VisitorCount"

	var count int64
	err := s.db.QueryRow(ctx, `SELECT count FROM visitor_count WHERE id = 1`).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}

		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

// IncrementVisitors атомарно увеличивает счётчик и возвращает новое значение.
func (s *Storage) IncrementVisitors(ctx context.Context) (int64, error) {
	const op = "storage.postgres.IncrementVisitors"

	var count int64
	err := s.db.QueryRow(ctx, `
		INSERT INTO visitor_count (id, count) VALUES (1, 1)
		ON CONFLICT (id) DO UPDATE SET count = visitor_count.count + 1
		RETURNING count
	`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}
