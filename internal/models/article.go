// models содержит доменные сущности press-service.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Article - доменная сущность двуязычной статьи.
//
// Особенности:
//   - ID - UUIDv4;
//   - заголовок и контент есть для каждого языка; отсутствующее в БД значение - "" (не nil);
//   - временные метки - в UTC.
type Article struct {
	// ID - уникальный идентификатор статьи.
	ID uuid.UUID
	// Slug - человекочитаемый идентификатор для ссылок.
	Slug string
	// CreatedAt - время создания статьи (UTC).
	CreatedAt time.Time
	// UpdatedAt - время последнего изменения (UTC).
	UpdatedAt time.Time
	// TitleEN/TitleAR - заголовки на английском и арабском.
	TitleEN string
	TitleAR string
	// ContentEN/ContentAR - HTML-контент на английском и арабском.
	ContentEN string
	ContentAR string
	// Published - признак публикации.
	Published bool
	// PublishedAt - время публикации; nil, если статья не опубликована.
	PublishedAt *time.Time
	// ThumbnailURL - ссылка на обложку (опционально).
	ThumbnailURL *string
	// Tags - список тегов; никогда не nil после маппинга из БД.
	Tags []string
}

// Title возвращает заголовок на указанном языке.
func (a Article) Title(lang Language) string {
	if lang == LanguageAR {
		return a.TitleAR
	}

	return a.TitleEN
}

// Content возвращает контент на указанном языке.
func (a Article) Content(lang Language) string {
	if lang == LanguageAR {
		return a.ContentAR
	}

	return a.ContentEN
}

// Localize собирает одноязычное представление статьи.
func (a Article) Localize(lang Language) LocalizedArticle {
	return LocalizedArticle{
		ID:          a.ID,
		Lang:        lang,
		Title:       a.Title(lang),
		Content:     a.Content(lang),
		PublishedAt: a.PublishedAt,
	}
}

// LocalizedArticle - статья на одном языке (для страницы чтения).
type LocalizedArticle struct {
	ID          uuid.UUID
	Lang        Language
	Title       string
	Content     string
	PublishedAt *time.Time
}
