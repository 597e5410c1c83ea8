// postgres - реализация storage.Storage поверх pgx/v5 (pgxpool).
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/pribylovaa/press-service/internal/config"
	"github.com/pribylovaa/press-service/internal/storage"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Storage struct {
	db *pgxpool.Pool
}

// New создаёт пул соединений к PostgreSQL и проверяет его Ping.
// Параметры пула из cfg накладываются поверх DSN, нулевые значения не трогают настроек pgx.
func New(ctx context.Context, cfg config.DBConfig) (*Storage, error) {
	const op = "storage.postgres.New"

	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("%s: parse dsn: %w", op, err)
	}

	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolCfg.MinConns = cfg.MinConns
	}
	if cfg.MaxConnIdleTime > 0 {
		poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: ping: %w", op, err)
	}

	return &Storage{db: pool}, nil
}

// Ping проверяет доступность БД (для /healthz).
func (s *Storage) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Close закрывает пул соединений.
func (s *Storage) Close() {
	s.db.Close()
}

// isUniqueViolation сообщает, что ошибка - нарушение уникального ограничения.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// Проверка на соответствие интерфейсу Storage.
var _ storage.Storage = (*Storage)(nil)
