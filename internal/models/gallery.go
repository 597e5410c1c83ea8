package models

import (
	"time"

	"github.com/google/uuid"
)

// GalleryItem - изображение галереи.
type GalleryItem struct {
	// ID - уникальный идентификатор записи.
	ID uuid.UUID
	// Title - подпись к изображению.
	Title string
	// URL - публичная ссылка на изображение.
	URL string
	// Date - время добавления (UTC); у старых записей может отсутствовать.
	Date *time.Time
}

// ListOptions - параметры выборки списков.
//
// Особенности:
//   - при Limit == 0 применяется серверный default (из config.LimitsConfig.GalleryDefault);
//   - PageToken == "" -> первая страница.
type ListOptions struct {
	Limit     int32
	PageToken string
}

// GalleryPage - страница галереи со ссылкой на продолжение.
type GalleryPage struct {
	Items         []GalleryItem
	NextPageToken string
}
