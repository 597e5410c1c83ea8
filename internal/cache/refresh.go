package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RefreshEntry описывает данные, которые мы храним в Redis по хэшу refresh-токена.
type RefreshEntry struct {
	AdminID   uuid.UUID
	Revoked   bool
	ExpiresAt time.Time
}

// RefreshCache - минимальный контракт кэша refresh-токенов.
type RefreshCache interface {
	// Get возвращает запись и признак её наличия в кэше.
	Get(ctx context.Context, hash string) (*RefreshEntry, bool, error)
	// Set сохраняет запись с TTL (обычно ExpiresAt-now).
	Set(ctx context.Context, hash string, e *RefreshEntry, ttl time.Duration) error
	// MarkRevoked помечает существующий ключ revoked=true, сохраняя остаточный TTL.
	MarkRevoked(ctx context.Context, hash string) error
}

type redisRefreshCache struct {
	rdb    *redis.Client
	prefix string
}

// Помечает только существующий ключ, чтобы не создавать запись без TTL.
var markRevokedScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
	redis.call('HSET', KEYS[1], 'rev', '1')
	return 1
end
return 0
`)

// NewRefreshCache возвращает кэш refresh-токенов.
// Если prefix пустой - используется "press:rt:".
func NewRefreshCache(rdb *redis.Client, prefix string) RefreshCache {
	if prefix == "" {
		prefix = "press:rt:"
	}

	return &redisRefreshCache{rdb: rdb, prefix: prefix}
}

func (c *redisRefreshCache) key(hash string) string { return c.prefix + hash }

// Храним как Redis Hash с полями: uid, rev (0/1), exp (unix).
func (c *redisRefreshCache) Get(ctx context.Context, hash string) (*RefreshEntry, bool, error) {
	m, err := c.rdb.HGetAll(ctx, c.key(hash)).Result()
	if err != nil {
		return nil, false, err
	}

	if len(m) == 0 {
		return nil, false, nil
	}

	uid, err := uuid.Parse(m["uid"])
	if err != nil {
		return nil, false, err
	}

	expUnix, err := strconv.ParseInt(m["exp"], 10, 64)
	if err != nil {
		return nil, false, err
	}

	return &RefreshEntry{
		AdminID:   uid,
		Revoked:   m["rev"] == "1",
		ExpiresAt: time.Unix(expUnix, 0).UTC(),
	}, true, nil
}

func (c *redisRefreshCache) Set(ctx context.Context, hash string, e *RefreshEntry, ttl time.Duration) error {
	kv := map[string]string{
		"uid": e.AdminID.String(),
		"rev": boolTo01(e.Revoked),
		"exp": strconv.FormatInt(e.ExpiresAt.Unix(), 10),
	}

	pipe := c.rdb.TxPipeline()
	pipe.HSet(ctx, c.key(hash), kv)
	pipe.Expire(ctx, c.key(hash), ttl)

	_, err := pipe.Exec(ctx)
	return err
}

func (c *redisRefreshCache) MarkRevoked(ctx context.Context, hash string) error {
	return markRevokedScript.Run(ctx, c.rdb, []string{c.key(hash)}).Err()
}

func boolTo01(b bool) string {
	if b {
		return "1"
	}

	return "0"
}
