// cache - опциональные кэши press-service поверх Redis:
// список опубликованных статей и записи refresh-токенов.
// Ошибки кэша не должны ломать запрос: вызывающий слой логирует их и идёт в БД.
package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// NewClient создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Выполняет fail-fast Ping.
func NewClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	const op = "cache.NewClient"

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rdb := redis.NewClient(opt)

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rdb, nil
}
