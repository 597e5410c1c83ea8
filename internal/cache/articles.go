package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/pribylovaa/press-service/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// PublishedArticlesKey - ключ списка опубликованных статей.
const PublishedArticlesKey = "press:articles:published"

// ArticlesCache - кэш списка опубликованных статей.
type ArticlesCache interface {
	// GetPublished возвращает список и признак попадания в кэш.
	GetPublished(ctx context.Context) ([]models.Article, bool, error)
	// SetPublished сохраняет список с TTL.
	SetPublished(ctx context.Context, articles []models.Article, ttl time.Duration) error
	// Invalidate сбрасывает список после любой записи.
	Invalidate(ctx context.Context) error
}

type redisArticlesCache struct {
	rdb *redis.Client
	key string
}

// NewArticlesCache возвращает кэш статей поверх клиента Redis.
func NewArticlesCache(rdb *redis.Client) ArticlesCache {
	return &redisArticlesCache{rdb: rdb, key: PublishedArticlesKey}
}

// articleEntry - JSON-представление статьи в кэше.
type articleEntry struct {
	ID           uuid.UUID  `json:"id"`
	Slug         string     `json:"slug"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	TitleEN      string     `json:"title_en"`
	TitleAR      string     `json:"title_ar"`
	ContentEN    string     `json:"content_en"`
	ContentAR    string     `json:"content_ar"`
	Published    bool       `json:"published"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
	ThumbnailURL *string    `json:"thumbnail_url,omitempty"`
	Tags         []string   `json:"tags"`
}

func (c *redisArticlesCache) GetPublished(ctx context.Context) ([]models.Article, bool, error) {
	raw, err := c.rdb.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}

		return nil, false, err
	}

	var entries []articleEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false, err
	}

	articles := make([]models.Article, 0, len(entries))
	for _, e := range entries {
		tags := e.Tags
		if tags == nil {
			tags = []string{}
		}

		articles = append(articles, models.Article{
			ID:           e.ID,
			Slug:         e.Slug,
			CreatedAt:    e.CreatedAt.UTC(),
			UpdatedAt:    e.UpdatedAt.UTC(),
			TitleEN:      e.TitleEN,
			TitleAR:      e.TitleAR,
			ContentEN:    e.ContentEN,
			ContentAR:    e.ContentAR,
			Published:    e.Published,
			PublishedAt:  e.PublishedAt,
			ThumbnailURL: e.ThumbnailURL,
			Tags:         tags,
		})
	}

	return articles, true, nil
}

func (c *redisArticlesCache) SetPublished(ctx context.Context, articles []models.Article, ttl time.Duration) error {
	entries := make([]articleEntry, 0, len(articles))
	for _, a := range articles {
		entries = append(entries, articleEntry{
			ID:           a.ID,
			Slug:         a.Slug,
			CreatedAt:    a.CreatedAt,
			UpdatedAt:    a.UpdatedAt,
			TitleEN:      a.TitleEN,
			TitleAR:      a.TitleAR,
			ContentEN:    a.ContentEN,
			ContentAR:    a.ContentAR,
			Published:    a.Published,
			PublishedAt:  a.PublishedAt,
			ThumbnailURL: a.ThumbnailURL,
			Tags:         a.Tags,
		})
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	return c.rdb.Set(ctx, c.key, raw, ttl).Err()
}

func (c *redisArticlesCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, c.key).Err()
}
