package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pribylovaa/press-service/internal/models"
	"github.com/pribylovaa/press-service/internal/pkg/log"
	"github.com/pribylovaa/press-service/internal/storage"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

const (
	maxTags      = 20
	maxTagLength = 40
)

// ArticleQuery - параметры выборки списка статей.
type ArticleQuery struct {
	// Search - подстрока для поиска по заголовкам (без учёта регистра).
	Search string
	// IncludeUnpublished - включать черновики (только для admin).
	IncludeUnpublished bool
}

// ArticleInput - данные редактора статьи.
// ID == nil - создание, иначе обновление.
type ArticleInput struct {
	ID            *uuid.UUID    `json:"id"`
	TitleEN       string        `json:"title_en"`
	TitleAR       string        `json:"title_ar"`
	ContentEN     string        `json:"content_en"`
	ContentAR     string        `json:"content_ar"`
	ContentFormat ContentFormat `json:"content_format"`
	Published     bool          `json:"published"`
	ThumbnailURL  *string       `json:"thumbnail_url"`
	Tags          []string      `json:"tags"`
}

// normalize обрезает пробелы и проставляет формат по умолчанию.
func (in *ArticleInput) normalize() {
	in.TitleEN = strings.TrimSpace(in.TitleEN)
	in.TitleAR = strings.TrimSpace(in.TitleAR)

	if in.ContentFormat == "" {
		in.ContentFormat = FormatHTML
	}

	if in.ThumbnailURL != nil {
		u := strings.TrimSpace(*in.ThumbnailURL)
		if u == "" {
			in.ThumbnailURL = nil
		} else {
			in.ThumbnailURL = &u
		}
	}

	tags := make([]string, 0, len(in.Tags))
	for _, t := range in.Tags {
		tags = append(tags, strings.TrimSpace(t))
	}
	in.Tags = tags
}

// Validate проверяет входные данные редактора.
func (in ArticleInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.TitleEN, validation.Required.Error("english title is required")),
		validation.Field(&in.TitleAR, validation.Required.Error("arabic title is required")),
		validation.Field(&in.ContentFormat, validation.In(FormatHTML, FormatMarkdown)),
		validation.Field(&in.ThumbnailURL, validation.NilOrNotEmpty, is.URL),
		validation.Field(&in.Tags,
			validation.Length(0, maxTags),
			validation.Each(validation.Required, validation.RuneLength(1, maxTagLength)),
		),
	)
}

// ListArticles возвращает список статей с фильтром по заголовкам.
// Публичный список (без черновиков) берётся из кэша, если он настроен.
func (s *Service) ListArticles(ctx context.Context, q ArticleQuery) ([]models.Article, error) {
	const op = "service.articles.ListArticles"

	lg := log.From(ctx)

	var (
		articles []models.Article
		err      error
	)

	if q.IncludeUnpublished {
		articles, err = s.storage.ListArticles(ctx, false)
	} else {
		articles, err = s.publishedArticles(ctx)
	}
	if err != nil {
		lg.Error("list_articles_storage_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := filterArticles(articles, q.Search)

	lg.Info("list_articles_ok",
		slog.String("op", op),
		slog.Bool("include_unpublished", q.IncludeUnpublished),
		slog.Bool("has_search", strings.TrimSpace(q.Search) != ""),
		slog.Int("items", len(out)),
	)

	return out, nil
}

// FeaturedArticles возвращает первые cfg.Limits.Featured опубликованных статей.
func (s *Service) FeaturedArticles(ctx context.Context) ([]models.Article, error) {
	const op = "service.articles.FeaturedArticles"

	articles, err := s.publishedArticles(ctx)
	if err != nil {
		log.From(ctx).Error("featured_articles_storage_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if n := s.cfg.Limits.Featured; n > 0 && len(articles) > n {
		articles = articles[:n]
	}

	return articles, nil
}

// FeedArticles возвращает последние cfg.Feed.Limit опубликованных статей для RSS.
func (s *Service) FeedArticles(ctx context.Context) ([]models.Article, error) {
	const op = "service.articles.FeedArticles"

	articles, err := s.publishedArticles(ctx)
	if err != nil {
		log.From(ctx).Error("feed_articles_storage_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if n := s.cfg.Feed.Limit; n > 0 && len(articles) > n {
		articles = articles[:n]
	}

	return articles, nil
}

// Article возвращает статью по UUID или slug.
// Для публичного просмотра черновик считается отсутствующим.
func (s *Service) Article(ctx context.Context, idOrSlug string, includeUnpublished bool) (*models.Article, error) {
	const op = "service.articles.Article"

	lg := log.From(ctx)

	ref := strings.TrimSpace(idOrSlug)
	if ref == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	var (
		article *models.Article
		err     error
	)

	if id, parseErr := uuid.Parse(ref); parseErr == nil {
		article, err = s.storage.ArticleByID(ctx, id)
	} else {
		article, err = s.storage.ArticleBySlug(ctx, ref)
	}

	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("article_not_found",
				slog.String("op", op),
				slog.String("ref", ref),
			)

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("article_storage_error",
			slog.String("op", op),
			slog.String("ref", ref),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !includeUnpublished && !article.Published {
		lg.Warn("article_not_published",
			slog.String("op", op),
			slog.String("ref", ref),
		)

		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	return article, nil
}

// LocalizedArticle возвращает опубликованную статью на одном языке.
func (s *Service) LocalizedArticle(ctx context.Context, idOrSlug string, lang models.Language) (*models.LocalizedArticle, error) {
	const op = "service.articles.LocalizedArticle"

	if lang != models.LanguageEN && lang != models.LanguageAR {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	article, err := s.Article(ctx, idOrSlug, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	loc := article.Localize(lang)
	return &loc, nil
}

// SaveArticle создаёт (ID == nil) или обновляет статью.
//
// Правила:
//   - оба заголовка обязательны, контент чистится bluemonday (markdown сначала рендерится goldmark);
//   - slug строится из английского заголовка при создании и не меняется при обновлении;
//   - published_at выставляется при публикации, сохраняется пока статья опубликована,
//     сбрасывается при снятии с публикации;
//   - при обновлении created_at сохраняется, updated_at = now.
func (s *Service) SaveArticle(ctx context.Context, in ArticleInput) (*models.Article, error) {
	const op = "service.articles.SaveArticle"

	lg := log.From(ctx)

	in.normalize()
	if err := in.Validate(); err != nil {
		lg.Warn("save_article_invalid",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, fromValidation(err))
	}

	contentEN, err := s.content.Render(in.ContentFormat, in.ContentEN)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	contentAR, err := s.content.Render(in.ContentFormat, in.ContentAR)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := s.now()

	var article *models.Article
	if in.ID == nil {
		article, err = s.createArticle(ctx, in, contentEN, contentAR, now)
	} else {
		article, err = s.updateArticle(ctx, *in.ID, in, contentEN, contentAR, now)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.invalidateArticles(ctx)

	lg.Info("save_article_ok",
		slog.String("op", op),
		slog.String("article_id", article.ID.String()),
		slog.String("slug", article.Slug),
		slog.Bool("created", in.ID == nil),
		slog.Bool("published", article.Published),
	)

	return article, nil
}

func (s *Service) createArticle(ctx context.Context, in ArticleInput, contentEN, contentAR string, now time.Time) (*models.Article, error) {
	const op = "service.articles.createArticle"

	id := uuid.New()
	article := &models.Article{
		ID:           id,
		Slug:         makeSlug(in.TitleEN, id),
		CreatedAt:    now,
		UpdatedAt:    now,
		TitleEN:      in.TitleEN,
		TitleAR:      in.TitleAR,
		ContentEN:    contentEN,
		ContentAR:    contentAR,
		Published:    in.Published,
		PublishedAt:  publishedAt(nil, in.Published, now),
		ThumbnailURL: in.ThumbnailURL,
		Tags:         in.Tags,
	}

	err := s.storage.CreateArticle(ctx, article)
	if errors.Is(err, storage.ErrAlreadyExists) {
		// Конфликт slug - одна повторная попытка с суффиксом.
		article.Slug = withSuffix(article.Slug)
		err = s.storage.CreateArticle(ctx, article)
	}

	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		}

		log.From(ctx).Error("create_article_storage_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return article, nil
}

func (s *Service) updateArticle(ctx context.Context, id uuid.UUID, in ArticleInput, contentEN, contentAR string, now time.Time) (*models.Article, error) {
	const op = "service.articles.updateArticle"

	prev, err := s.storage.ArticleByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	slugValue := prev.Slug
	if slugValue == "" {
		slugValue = makeSlug(in.TitleEN, id)
	}

	article := &models.Article{
		ID:           id,
		Slug:         slugValue,
		CreatedAt:    prev.CreatedAt,
		UpdatedAt:    now,
		TitleEN:      in.TitleEN,
		TitleAR:      in.TitleAR,
		ContentEN:    contentEN,
		ContentAR:    contentAR,
		Published:    in.Published,
		PublishedAt:  publishedAt(prev, in.Published, now),
		ThumbnailURL: in.ThumbnailURL,
		Tags:         in.Tags,
	}

	if err := s.storage.UpdateArticle(ctx, article); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrAlreadyExists):
			return nil, fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		}

		log.From(ctx).Error("update_article_storage_error",
			slog.String("op", op),
			slog.String("article_id", id.String()),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return article, nil
}

// DeleteArticle удаляет статью.
func (s *Service) DeleteArticle(ctx context.Context, id uuid.UUID) error {
	const op = "service.articles.DeleteArticle"

	lg := log.From(ctx)

	if id == uuid.Nil {
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if err := s.storage.DeleteArticle(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("delete_article_not_found",
				slog.String("op", op),
				slog.String("article_id", id.String()),
			)

			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("delete_article_storage_error",
			slog.String("op", op),
			slog.String("article_id", id.String()),
			slog.String("err", err.Error()),
		)

		return fmt.Errorf("%s: %w", op, err)
	}

	s.invalidateArticles(ctx)

	lg.Info("delete_article_ok",
		slog.String("op", op),
		slog.String("article_id", id.String()),
	)

	return nil
}

// publishedArticles читает опубликованные статьи через кэш (если настроен).
// Ошибки кэша логируются и не прерывают запрос.
func (s *Service) publishedArticles(ctx context.Context) ([]models.Article, error) {
	const op = "service.articles.publishedArticles"

	lg := log.From(ctx)

	if s.articlesCache != nil {
		cached, ok, err := s.articlesCache.GetPublished(ctx)
		if err != nil {
			lg.Warn("articles_cache_get_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
		} else if ok {
			return cached, nil
		}
	}

	articles, err := s.storage.ListArticles(ctx, true)
	if err != nil {
		return nil, err
	}

	if s.articlesCache != nil {
		if err := s.articlesCache.SetPublished(ctx, articles, s.cfg.Redis.ArticlesTTL); err != nil {
			lg.Warn("articles_cache_set_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
		}
	}

	return articles, nil
}

func (s *Service) invalidateArticles(ctx context.Context) {
	if s.articlesCache == nil {
		return
	}

	if err := s.articlesCache.Invalidate(ctx); err != nil {
		log.From(ctx).Warn("articles_cache_invalidate_failed",
			slog.String("op", "service.articles.invalidateArticles"),
			slog.String("err", err.Error()),
		)
	}
}

// publishedAt вычисляет время публикации по предыдущему состоянию статьи.
func publishedAt(prev *models.Article, published bool, now time.Time) *time.Time {
	if !published {
		return nil
	}

	if prev != nil && prev.Published && prev.PublishedAt != nil {
		t := *prev.PublishedAt
		return &t
	}

	t := now
	return &t
}
