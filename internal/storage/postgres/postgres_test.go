package postgres

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/pribylovaa/press-service/internal/config"
	"github.com/pribylovaa/press-service/internal/models"
	"github.com/pribylovaa/press-service/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Интеграционные тесты пакета postgres:
// - поднимают реальный PostgreSQL через testcontainers-go (образ postgres:16-alpine);
// - применяют миграции из ./migrations;
// - проверяют CRUD статей, keyset-пагинацию галереи, администраторов,
//   refresh-токены (отзыв, глобальный выход, очистку) и счётчик посещений.

// Запуск локально:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/postgres -v -race -count=1

// repoRootFromThisFile - определяет корень репозитория относительно текущего файла тестов.
func repoRootFromThisFile() string {
	// internal/storage/postgres/... -> подняться на 3 уровня до корня.
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", ".."))
}

// readMigration - читает содержимое SQL-миграции из подкаталога ./migrations.
func readMigration(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(repoRootFromThisFile(), "migrations", name)
	b, err := os.ReadFile(path)
	require.NoError(t, err, "read migration %s", path)
	return string(b)
}

// startPostgres - поднимает PostgreSQL, применяет миграции и возвращает хранилище и функцию очистки.
// Если переменная окружения GO_TEST_INTEGRATION не установлена - тест пропускается.
func startPostgres(t *testing.T) (*Storage, *pgxpool.Pool, func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		Env:          map[string]string{"POSTGRES_USER": "user", "POSTGRES_PASSWORD": "pass", "POSTGRES_DB": "db"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "5432/tcp")
	dsn := fmt.Sprintf("postgres://user:pass@%s:%s/db?sslmode=disable", host, port.Port())

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)

	_, err = pool.Exec(ctx, readMigration(t, "1_init_press.up.sql"))
	require.NoError(t, err)

	st, err := New(ctx, config.DBConfig{URL: dsn, MaxConns: 4})
	require.NoError(t, err)

	cleanup := func() {
		st.Close()
		pool.Close()
		_ = c.Terminate(context.Background())
	}
	return st, pool, cleanup
}

func newArticle(slug, titleEN, titleAR string, published bool, created time.Time) *models.Article {
	a := &models.Article{
		ID:        uuid.New(),
		Slug:      slug,
		TitleEN:   titleEN,
		TitleAR:   titleAR,
		ContentEN: "<p>" + titleEN + "</p>",
		ContentAR: "<p>" + titleAR + "</p>",
		Published: published,
		Tags:      []string{"news"},
		CreatedAt: created,
		UpdatedAt: created,
	}
	if published {
		p := created
		a.PublishedAt = &p
	}
	return a
}

func TestIntegration_Articles_CRUD(t *testing.T) {
	st, _, cleanup := startPostgres(t)
	defer cleanup()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	a := newArticle("first", "First", "الأول", true, now.Add(-time.Hour))
	b := newArticle("second", "Second", "الثاني", false, now)

	require.NoError(t, st.CreateArticle(ctx, a))
	require.NoError(t, st.CreateArticle(ctx, b))

	// Повтор slug - конфликт уникальности.
	dup := newArticle("first", "Dup", "Dup", false, now)
	require.ErrorIs(t, st.CreateArticle(ctx, dup), storage.ErrAlreadyExists)

	all, err := st.ListArticles(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, b.ID, all[0].ID, "newest first")

	pub, err := st.ListArticles(ctx, true)
	require.NoError(t, err)
	require.Len(t, pub, 1)
	require.Equal(t, a.ID, pub[0].ID)

	got, err := st.ArticleBySlug(ctx, "first")
	require.NoError(t, err)
	require.Equal(t, "الأول", got.TitleAR)
	require.Equal(t, []string{"news"}, got.Tags)

	got.TitleEN = "First (edited)"
	got.Published = false
	got.PublishedAt = nil
	got.UpdatedAt = now.Add(time.Minute)
	require.NoError(t, st.UpdateArticle(ctx, got))

	after, err := st.ArticleByID(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, "First (edited)", after.TitleEN)
	require.False(t, after.Published)
	require.Nil(t, after.PublishedAt)
	require.Equal(t, a.CreatedAt, after.CreatedAt, "created_at preserved")

	missing := newArticle("ghost", "G", "G", false, now)
	require.ErrorIs(t, st.UpdateArticle(ctx, missing), storage.ErrNotFound)

	require.NoError(t, st.DeleteArticle(ctx, a.ID))
	require.ErrorIs(t, st.DeleteArticle(ctx, a.ID), storage.ErrNotFound)
	_, err = st.ArticleByID(ctx, a.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

// TestIntegration_Articles_NullColumns - строки, записанные в обход приложения, читаются с дефолтами.
func TestIntegration_Articles_NullColumns(t *testing.T) {
	st, pool, cleanup := startPostgres(t)
	defer cleanup()
	ctx := context.Background()

	id := uuid.New()
	_, err := pool.Exec(ctx, `
		INSERT INTO articles (id, slug, title, english_text, created_at, updated_at)
		VALUES ($1, 'legacy', 'Legacy', 'Legacy', NULL, NULL)
	`, id)
	require.NoError(t, err)

	got, err := st.ArticleByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Legacy", got.TitleEN)
	require.Equal(t, "", got.TitleAR)
	require.Equal(t, "", got.ContentAR)
	require.NotNil(t, got.Tags)
	require.False(t, got.CreatedAt.IsZero())
}

// TestIntegration_Articles_TitleMirrors - english_text/arabic_text повторяют заголовки.
func TestIntegration_Articles_TitleMirrors(t *testing.T) {
	st, pool, cleanup := startPostgres(t)
	defer cleanup()
	ctx := context.Background()

	a := newArticle("mirror", "Mirror", "مرآة", false, time.Now().UTC())
	require.NoError(t, st.CreateArticle(ctx, a))

	var en, ar string
	require.NoError(t, pool.QueryRow(ctx, `SELECT english_text, arabic_text FROM articles WHERE id = $1`, a.ID).Scan(&en, &ar))
	require.Equal(t, "Mirror", en)
	require.Equal(t, "مرآة", ar)
}

func TestIntegration_Gallery_Pagination(t *testing.T) {
	st, _, cleanup := startPostgres(t)
	defer cleanup()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 5; i++ {
		d := base.Add(-time.Duration(i) * time.Hour)
		require.NoError(t, st.CreateGalleryItem(ctx, &models.GalleryItem{
			Title: fmt.Sprintf("img-%d", i),
			URL:   fmt.Sprintf("https://cdn.example.com/gallery/%d.png", i),
			Date:  &d,
		}))
	}
	// Запись без даты - в самом конце.
	undated := &models.GalleryItem{Title: "undated", URL: "https://cdn.example.com/gallery/u.png"}
	require.NoError(t, st.CreateGalleryItem(ctx, undated))
	require.NotEqual(t, uuid.Nil, undated.ID)

	var titles []string
	token := ""
	for {
		page, err := st.ListGallery(ctx, models.ListOptions{Limit: 2, PageToken: token})
		require.NoError(t, err)
		for _, it := range page.Items {
			titles = append(titles, it.Title)
		}
		if page.NextPageToken == "" {
			break
		}
		token = page.NextPageToken
	}

	require.Equal(t, []string{"img-0", "img-1", "img-2", "img-3", "img-4", "undated"}, titles)

	_, err := st.ListGallery(ctx, models.ListOptions{Limit: 2, PageToken: "%%%"})
	require.ErrorIs(t, err, storage.ErrInvalidCursor)

	got, err := st.GalleryItemByID(ctx, undated.ID)
	require.NoError(t, err)
	require.Nil(t, got.Date)

	require.NoError(t, st.DeleteGalleryItem(ctx, undated.ID))
	require.ErrorIs(t, st.DeleteGalleryItem(ctx, undated.ID), storage.ErrNotFound)
	_, err = st.GalleryItemByID(ctx, undated.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_Admins_And_RefreshTokens(t *testing.T) {
	st, _, cleanup := startPostgres(t)
	defer cleanup()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	admin := &models.Admin{ID: uuid.New(), Email: "admin@example.com", PasswordHash: "h", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, st.SaveAdmin(ctx, admin))
	require.ErrorIs(t, st.SaveAdmin(ctx, &models.Admin{ID: uuid.New(), Email: admin.Email, PasswordHash: "x", CreatedAt: now, UpdatedAt: now}), storage.ErrAlreadyExists)

	byEmail, err := st.AdminByEmail(ctx, admin.Email)
	require.NoError(t, err)
	require.Equal(t, admin.ID, byEmail.ID)

	byID, err := st.AdminByID(ctx, admin.ID)
	require.NoError(t, err)
	require.Equal(t, admin.Email, byID.Email)

	_, err = st.AdminByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, storage.ErrNotFound)

	save := func(hash string, exp time.Time) {
		require.NoError(t, st.SaveRefreshToken(ctx, &models.RefreshToken{
			RefreshTokenHash: hash, AdminID: admin.ID, CreatedAt: now, ExpiresAt: exp,
		}))
	}
	save("h1", now.Add(time.Hour))
	save("h2", now.Add(time.Hour))
	save("old", now.Add(-time.Hour))

	require.ErrorIs(t, st.SaveRefreshToken(ctx, &models.RefreshToken{
		RefreshTokenHash: "h1", AdminID: admin.ID, CreatedAt: now, ExpiresAt: now,
	}), storage.ErrAlreadyExists)

	tok, err := st.RefreshTokenByHash(ctx, "h1")
	require.NoError(t, err)
	require.Equal(t, admin.ID, tok.AdminID)
	require.False(t, tok.Revoked)

	ok, err := st.RevokeRefreshToken(ctx, "h1")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = st.RevokeRefreshToken(ctx, "h1")
	require.NoError(t, err)
	require.False(t, ok)

	_, err = st.RevokeRefreshToken(ctx, "missing")
	require.ErrorIs(t, err, storage.ErrNotFound)

	hashes, err := st.RevokeAdminTokens(ctx, admin.ID)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"h2", "old"}, hashes)

	n, err := st.DeleteExpiredTokens(ctx, now)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	_, err = st.RefreshTokenByHash(ctx, "old")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_Visitors(t *testing.T) {
	st, _, cleanup := startPostgres(t)
	defer cleanup()
	ctx := context.Background()

	n, err := st.VisitorCount(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 0, n)

	for i := int64(1); i <= 3; i++ {
		got, err := st.IncrementVisitors(ctx)
		require.NoError(t, err)
		require.Equal(t, i, got)
	}

	n, err = st.VisitorCount(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 3, n)
}
