package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/pribylovaa/press-service/internal/models"
	"github.com/pribylovaa/press-service/internal/pkg/log"
	"github.com/pribylovaa/press-service/internal/storage"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// ListGallery возвращает страницу галереи с нормализацией лимита по конфигу.
//
// Правила нормализации:
// - limit <= 0 -> cfg.Limits.GalleryDefault;
// - limit > max -> cfg.Limits.GalleryMax;
// - пустой pageToken -> первая страница.
func (s *Service) ListGallery(ctx context.Context, opts models.ListOptions) (*models.GalleryPage, error) {
	const op = "service.gallery.ListGallery"

	lg := log.From(ctx)

	if opts.Limit <= 0 {
		opts.Limit = s.cfg.Limits.GalleryDefault
	}

	if s.cfg.Limits.GalleryMax > 0 && opts.Limit > s.cfg.Limits.GalleryMax {
		opts.Limit = s.cfg.Limits.GalleryMax
	}

	page, err := s.storage.ListGallery(ctx, opts)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidCursor) {
			lg.Warn("list_gallery_invalid_cursor",
				slog.String("op", op),
			)

			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCursor)
		}

		lg.Error("list_gallery_storage_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("list_gallery_ok",
		slog.String("op", op),
		slog.Int("items", len(page.Items)),
		slog.Bool("has_next_page", page.NextPageToken != ""),
	)

	return page, nil
}

// CreateGalleryItem добавляет в галерею изображение по уже известному URL.
func (s *Service) CreateGalleryItem(ctx context.Context, title, url string) (*models.GalleryItem, error) {
	const op = "service.gallery.CreateGalleryItem"

	title = strings.TrimSpace(title)
	url = strings.TrimSpace(url)

	err := validation.Errors{
		"title": validation.Validate(title, validation.Required),
		"url":   validation.Validate(url, validation.Required, is.URL),
	}.Filter()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, fromValidation(err))
	}

	item, err := s.insertGalleryItem(ctx, title, url)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return item, nil
}

// UploadGalleryImage загружает файл в бакет gallery и создаёт запись.
// Если запись не сохранилась - объект удаляется.
func (s *Service) UploadGalleryImage(ctx context.Context, in UploadInput) (*models.GalleryItem, error) {
	const op = "service.gallery.UploadGalleryImage"

	lg := log.From(ctx)

	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = titleFromFileName(in.FileName)
	}

	if title == "" {
		return nil, fmt.Errorf("%s: %w", op, &ValidationError{Fields: map[string]string{"title": "cannot be blank"}})
	}

	img, err := s.UploadImage(ctx, models.BucketGallery, in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	item, err := s.insertGalleryItem(ctx, title, img.URL)
	if err != nil {
		if rmErr := s.images.RemoveImage(ctx, models.BucketGallery, img.Key); rmErr != nil {
			lg.Error("gallery_orphan_remove_failed",
				slog.String("op", op),
				slog.String("key", img.Key),
				slog.String("err", rmErr.Error()),
			)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return item, nil
}

// DeleteGalleryItem удаляет запись галереи; объект в бакете удаляется по возможности.
func (s *Service) DeleteGalleryItem(ctx context.Context, id uuid.UUID) error {
	const op = "service.gallery.DeleteGalleryItem"

	lg := log.From(ctx)

	if id == uuid.Nil {
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	item, err := s.storage.GalleryItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.DeleteGalleryItem(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("delete_gallery_item_storage_error",
			slog.String("op", op),
			slog.String("item_id", id.String()),
			slog.String("err", err.Error()),
		)

		return fmt.Errorf("%s: %w", op, err)
	}

	if key, ok := s.images.KeyFromURL(models.BucketGallery, item.URL); ok {
		if err := s.images.RemoveImage(ctx, models.BucketGallery, key); err != nil {
			lg.Warn("gallery_object_remove_failed",
				slog.String("op", op),
				slog.String("key", key),
				slog.String("err", err.Error()),
			)
		}
	}

	lg.Info("delete_gallery_item_ok",
		slog.String("op", op),
		slog.String("item_id", id.String()),
	)

	return nil
}

func (s *Service) insertGalleryItem(ctx context.Context, title, url string) (*models.GalleryItem, error) {
	const op = "service.gallery.insertGalleryItem"

	now := s.now()
	item := &models.GalleryItem{
		ID:    uuid.New(),
		Title: title,
		URL:   url,
		Date:  &now,
	}

	if err := s.storage.CreateGalleryItem(ctx, item); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		}

		log.From(ctx).Error("create_gallery_item_storage_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("create_gallery_item_ok",
		slog.String("op", op),
		slog.String("item_id", item.ID.String()),
	)

	return item, nil
}

// titleFromFileName возвращает имя файла без каталога и расширения.
func titleFromFileName(name string) string {
	name = strings.ReplaceAll(strings.TrimSpace(name), "\\", "/")
	if name == "" {
		return ""
	}

	base := path.Base(name)
	if base == "." || base == "/" {
		return ""
	}

	return strings.TrimSpace(strings.TrimSuffix(base, path.Ext(base)))
}
