package cache

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/pribylovaa/press-service/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Интеграционные тесты кэшей на реальном Redis (testcontainers-go, образ redis:7-alpine).
//
// Запуск:
//   GO_TEST_INTEGRATION=1 go test ./internal/cache -v -race -count=1

func startRedis(t *testing.T) *redis.Client {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "6379/tcp")

	rdb, err := NewClient(ctx, fmt.Sprintf("redis://%s:%s/0", host, port.Port()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })

	return rdb
}

func TestNewClient_BadURL(t *testing.T) {
	t.Parallel()

	_, err := NewClient(context.Background(), "not-a-redis-url")
	require.Error(t, err)
}

func TestIntegration_RefreshCache(t *testing.T) {
	rdb := startRedis(t)
	ctx := context.Background()
	c := NewRefreshCache(rdb, "")

	_, ok, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	require.False(t, ok)

	entry := &RefreshEntry{AdminID: uuid.New(), ExpiresAt: time.Now().Add(time.Hour).UTC().Truncate(time.Second)}
	require.NoError(t, c.Set(ctx, "h1", entry, time.Hour))

	got, ok, err := c.Get(ctx, "h1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, entry.AdminID, got.AdminID)
	require.False(t, got.Revoked)
	require.Equal(t, entry.ExpiresAt, got.ExpiresAt)

	require.NoError(t, c.MarkRevoked(ctx, "h1"))
	got, _, err = c.Get(ctx, "h1")
	require.NoError(t, err)
	require.True(t, got.Revoked)

	ttl, err := rdb.TTL(ctx, "press:rt:h1").Result()
	require.NoError(t, err)
	require.Greater(t, ttl, time.Duration(0), "TTL сохраняется после MarkRevoked")

	// На отсутствующем ключе запись не создаётся.
	require.NoError(t, c.MarkRevoked(ctx, "ghost"))
	n, err := rdb.Exists(ctx, "press:rt:ghost").Result()
	require.NoError(t, err)
	require.EqualValues(t, 0, n)
}

func TestIntegration_ArticlesCache(t *testing.T) {
	rdb := startRedis(t)
	ctx := context.Background()
	c := NewArticlesCache(rdb)

	_, ok, err := c.GetPublished(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	pub := time.Now().UTC().Truncate(time.Second)
	in := []models.Article{{
		ID:          uuid.New(),
		Slug:        "hello",
		TitleEN:     "Hello",
		TitleAR:     "مرحبا",
		Published:   true,
		PublishedAt: &pub,
		CreatedAt:   pub,
		UpdatedAt:   pub,
		Tags:        []string{},
	}}
	require.NoError(t, c.SetPublished(ctx, in, time.Minute))

	out, ok, err := c.GetPublished(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, out, 1)
	require.Equal(t, in[0].ID, out[0].ID)
	require.Equal(t, "مرحبا", out[0].TitleAR)
	require.True(t, pub.Equal(*out[0].PublishedAt))

	require.NoError(t, c.Invalidate(ctx))
	_, ok, err = c.GetPublished(ctx)
	require.NoError(t, err)
	require.False(t, ok)
}
