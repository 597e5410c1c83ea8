package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pribylovaa/press-service/internal/models"
	"github.com/pribylovaa/press-service/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const articleColumns = `id, slug, title, title_ar, content, content_ar, published, published_at,
	thumbnail_url, tags, created_at, updated_at`

// articleRow - строка таблицы articles как она лежит в БД.
// Колонки title/content - английский вариант, *_ar - арабский; любая из них может быть NULL.
type articleRow struct {
	ID           uuid.UUID
	Slug         string
	Title        *string
	TitleAR      *string
	Content      *string
	ContentAR    *string
	Published    bool
	PublishedAt  *time.Time
	ThumbnailURL *string
	Tags         []string
	CreatedAt    *time.Time
	UpdatedAt    *time.Time
}

// scanArticle сканирует строку в порядке articleColumns.
func scanArticle(row pgx.Row) (articleRow, error) {
	var r articleRow
	err := row.Scan(
		&r.ID,
		&r.Slug,
		&r.Title,
		&r.TitleAR,
		&r.Content,
		&r.ContentAR,
		&r.Published,
		&r.PublishedAt,
		&r.ThumbnailURL,
		&r.Tags,
		&r.CreatedAt,
		&r.UpdatedAt,
	)

	return r, err
}

// toModel переводит строку в доменную статью.
// Отсутствующие заголовки/контент -> "", отсутствующие метки времени -> now, теги -> пустой список.
func (r articleRow) toModel(now time.Time) models.Article {
	a := models.Article{
		ID:           r.ID,
		Slug:         r.Slug,
		TitleEN:      deref(r.Title),
		TitleAR:      deref(r.TitleAR),
		ContentEN:    deref(r.Content),
		ContentAR:    deref(r.ContentAR),
		Published:    r.Published,
		ThumbnailURL: r.ThumbnailURL,
		Tags:         r.Tags,
		CreatedAt:    utcOr(r.CreatedAt, now),
		UpdatedAt:    utcOr(r.UpdatedAt, now),
	}

	if r.PublishedAt != nil {
		t := r.PublishedAt.UTC()
		a.PublishedAt = &t
	}

	if a.Tags == nil {
		a.Tags = []string{}
	}

	return a
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func utcOr(t *time.Time, def time.Time) time.Time {
	if t == nil {
		return def.UTC()
	}

	return t.UTC()
}

// ListArticles возвращает статьи, отсортированные по created_at DESC, id DESC.
func (s *Storage) ListArticles(ctx context.Context, publishedOnly bool) ([]models.Article, error) {
	const op = "storage.postgres.ListArticles"

	query := `SELECT ` + articleColumns + ` FROM articles`
	if publishedOnly {
		query += ` WHERE published`
	}
	query += ` ORDER BY created_at DESC NULLS LAST, id DESC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	now := time.Now()
	articles := make([]models.Article, 0)
	for rows.Next() {
		r, scanErr := scanArticle(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, scanErr)
		}

		articles = append(articles, r.toModel(now))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return articles, nil
}

// ArticleByID возвращает статью по идентификатору.
func (s *Storage) ArticleByID(ctx context.Context, id uuid.UUID) (*models.Article, error) {
	const op = "storage.postgres.ArticleByID"

	r, err := scanArticle(s.db.QueryRow(ctx, `SELECT `+articleColumns+` FROM articles WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	a := r.toModel(time.Now())
	return &a, nil
}

// ArticleBySlug возвращает статью по slug.
func (s *Storage) ArticleBySlug(ctx context.Context, slug string) (*models.Article, error) {
	const op = "storage.postgres.ArticleBySlug"

	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	r, err := scanArticle(s.db.QueryRow(ctx, `SELECT `+articleColumns+` FROM articles WHERE slug = $1`, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	a := r.toModel(time.Now())
	return &a, nil
}

// CreateArticle сохраняет новую статью.
// english_text/arabic_text всегда заполняются копией заголовков.
func (s *Storage) CreateArticle(ctx context.Context, a *models.Article) error {
	const op = "storage.postgres.CreateArticle"

	_, err := s.db.Exec(ctx, `
		INSERT INTO articles (id, slug, title, title_ar, content, content_ar, english_text, arabic_text,
			published, published_at, thumbnail_url, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $3, $4, $7, $8, $9, $10, $11, $12)
	`,
		a.ID,
		a.Slug,
		a.TitleEN,
		a.TitleAR,
		a.ContentEN,
		a.ContentAR,
		a.Published,
		a.PublishedAt,
		a.ThumbnailURL,
		nonNilTags(a.Tags),
		a.CreatedAt.UTC(),
		a.UpdatedAt.UTC(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// UpdateArticle перезаписывает изменяемые поля статьи; created_at не трогается.
func (s *Storage) UpdateArticle(ctx context.Context, a *models.Article) error {
	const op = "storage.postgres.UpdateArticle"

	tag, err := s.db.Exec(ctx, `
		UPDATE articles
		SET slug = $2,
			title = $3, title_ar = $4,
			content = $5, content_ar = $6,
			english_text = $3, arabic_text = $4,
			published = $7, published_at = $8,
			thumbnail_url = $9, tags = $10,
			updated_at = $11
		WHERE id = $1
	`,
		a.ID,
		a.Slug,
		a.TitleEN,
		a.TitleAR,
		a.ContentEN,
		a.ContentAR,
		a.Published,
		a.PublishedAt,
		a.ThumbnailURL,
		nonNilTags(a.Tags),
		a.UpdatedAt.UTC(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// DeleteArticle удаляет статью по идентификатору.
func (s *Storage) DeleteArticle(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.DeleteArticle"

	tag, err := s.db.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}

	return tags
}
