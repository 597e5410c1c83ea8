package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/pribylovaa/press-service/internal/models"
	"github.com/pribylovaa/press-service/internal/pkg/log"
	"github.com/pribylovaa/press-service/internal/storage"
)

// UploadInput - загружаемый через сервер файл.
type UploadInput struct {
	// Title - подпись (для галереи); пустая -> имя файла без расширения.
	Title       string
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// UploadImage загружает изображение в бакет через сервер.
func (s *Service) UploadImage(ctx context.Context, bucket models.ImageBucket, in UploadInput) (*models.StoredImage, error) {
	const op = "service.images.UploadImage"

	lg := log.From(ctx)

	if !bucket.Valid() || in.Body == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	contentType := normalizeContentType(in.ContentType)

	img, err := s.images.PutImage(ctx, bucket, contentType, in.Size, in.Body)
	if err != nil {
		lg.Warn("upload_image_failed",
			slog.String("op", op),
			slog.String("bucket", string(bucket)),
			slog.String("content_type", contentType),
			slog.Int64("size", in.Size),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, mapImageError(err))
	}

	s.metrics.IncUploads(string(bucket))

	lg.Info("upload_image_ok",
		slog.String("op", op),
		slog.String("bucket", string(bucket)),
		slog.String("key", img.Key),
	)

	return img, nil
}

// ImageUploadURL выдаёт presigned PUT для прямой загрузки клиентом.
func (s *Service) ImageUploadURL(ctx context.Context, bucket models.ImageBucket, contentType string, size int64) (*models.UploadInfo, error) {
	const op = "service.images.ImageUploadURL"

	if !bucket.Valid() {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	info, err := s.images.ImageUploadURL(ctx, bucket, normalizeContentType(contentType), size)
	if err != nil {
		log.From(ctx).Warn("image_upload_url_failed",
			slog.String("op", op),
			slog.String("bucket", string(bucket)),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, mapImageError(err))
	}

	return info, nil
}

// ConfirmImageUpload подтверждает presigned-загрузку и возвращает публичный URL.
func (s *Service) ConfirmImageUpload(ctx context.Context, bucket models.ImageBucket, key string) (string, error) {
	const op = "service.images.ConfirmImageUpload"

	if !bucket.Valid() || strings.TrimSpace(key) == "" {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	url, err := s.images.CheckImageUpload(ctx, bucket, strings.TrimSpace(key))
	if err != nil {
		log.From(ctx).Warn("confirm_image_upload_failed",
			slog.String("op", op),
			slog.String("bucket", string(bucket)),
			slog.String("key", key),
			slog.String("err", err.Error()),
		)

		return "", fmt.Errorf("%s: %w", op, mapImageError(err))
	}

	s.metrics.IncUploads(string(bucket))

	return url, nil
}

// normalizeContentType убирает параметры (";charset=...") и приводит к нижнему регистру.
func normalizeContentType(ct string) string {
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}

	return strings.ToLower(strings.TrimSpace(ct))
}

func mapImageError(err error) error {
	switch {
	case errors.Is(err, storage.ErrInvalidArgument):
		return ErrInvalidArgument
	case errors.Is(err, storage.ErrNotFoundObject):
		return ErrNotFound
	default:
		return err
	}
}
