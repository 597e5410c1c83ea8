package minio

import (
	"context"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"

	"github.com/pribylovaa/press-service/internal/models"
	"github.com/pribylovaa/press-service/internal/storage"

	"github.com/google/uuid"
	mclient "github.com/minio/minio-go/v7"
)

// thumbnailsPrefix - каталог обложек в бакете media.
const thumbnailsPrefix = "thumbnails/"

// PutImage загружает изображение через сервер.
// Ключ: "thumbnails/<uuid>.<ext>" для media и "<uuid>.<ext>" для gallery.
func (s *ImagesStorage) PutImage(ctx context.Context, bucket models.ImageBucket, contentType string, size int64, body io.Reader) (*models.StoredImage, error) {
	const op = "storage.minio.PutImage"

	name, err := s.bucketName(bucket)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.checkLimits(contentType, size); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	key := newObjectKey(bucket, contentType)

	_, err = s.client.PutObject(ctx, name, key, body, size, mclient.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.StoredImage{Bucket: bucket, Key: key, URL: s.publicURL(name, key)}, nil
}

// ImageUploadURL генерирует presigned PUT URL для загрузки изображения клиентом.
// Возвращает также набор заголовков, которые клиент должен передать при PUT.
func (s *ImagesStorage) ImageUploadURL(ctx context.Context, bucket models.ImageBucket, contentType string, size int64) (*models.UploadInfo, error) {
	const op = "storage.minio.ImageUploadURL"

	name, err := s.bucketName(bucket)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.checkLimits(contentType, size); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	key := newObjectKey(bucket, contentType)

	u, err := s.client.PresignedPutObject(ctx, name, key, s.cfg.S3.PresignTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.UploadInfo{
		UploadURL: u.String(),
		Key:       key,
		Expires:   s.cfg.S3.PresignTTL,
		RequiredHeader: map[string]string{
			"Content-Type":   contentType,
			"Content-Length": strconv.FormatInt(size, 10),
		},
	}, nil
}

// CheckImageUpload подтверждает факт загрузки по key:
// проверяет, что объект существует и удовлетворяет ограничениям размера/типа.
func (s *ImagesStorage) CheckImageUpload(ctx context.Context, bucket models.ImageBucket, key string) (string, error) {
	const op = "storage.minio.CheckImageUpload"

	name, err := s.bucketName(bucket)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if !validKey(bucket, key) {
		return "", fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
	}

	info, err := s.client.StatObject(ctx, name, key, mclient.StatObjectOptions{})
	if err != nil {
		if isNoSuchKey(err) {
			return "", fmt.Errorf("%s: %w", op, storage.ErrNotFoundObject)
		}

		return "", fmt.Errorf("%s: %w", op, err)
	}

	if info.Size <= 0 || info.Size > s.cfg.Images.MaxSizeBytes {
		return "", fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
	}

	if ct := info.ContentType; ct != "" && !isAllowedContentType(s.cfg.Images.AllowedContentTypes, ct) {
		return "", fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
	}

	return s.publicURL(name, key), nil
}

// RemoveImage удаляет объект. Отсутствие объекта ошибкой не считается.
func (s *ImagesStorage) RemoveImage(ctx context.Context, bucket models.ImageBucket, key string) error {
	const op = "storage.minio.RemoveImage"

	name, err := s.bucketName(bucket)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if !validKey(bucket, key) {
		return fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
	}

	if err := s.client.RemoveObject(ctx, name, key, mclient.RemoveObjectOptions{}); err != nil {
		if isNoSuchKey(err) {
			return nil
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// KeyFromURL извлекает ключ объекта из публичного URL бакета.
// ok=false, если ссылка ведёт не в этот бакет.
func (s *ImagesStorage) KeyFromURL(bucket models.ImageBucket, rawURL string) (string, bool) {
	name, err := s.bucketName(bucket)
	if err != nil {
		return "", false
	}

	prefix := s.baseURL + "/" + name + "/"
	if !strings.HasPrefix(rawURL, prefix) {
		return "", false
	}

	key := strings.TrimPrefix(rawURL, prefix)
	if !validKey(bucket, key) {
		return "", false
	}

	return key, true
}

func (s *ImagesStorage) bucketName(bucket models.ImageBucket) (string, error) {
	name, ok := s.buckets[bucket]
	if !ok || name == "" {
		return "", storage.ErrInvalidArgument
	}

	return name, nil
}

func (s *ImagesStorage) checkLimits(contentType string, size int64) error {
	if size <= 0 || size > s.cfg.Images.MaxSizeBytes {
		return storage.ErrInvalidArgument
	}

	if !isAllowedContentType(s.cfg.Images.AllowedContentTypes, contentType) {
		return storage.ErrInvalidArgument
	}

	return nil
}

func (s *ImagesStorage) publicURL(bucketName, key string) string {
	return s.baseURL + "/" + bucketName + "/" + key
}

// newObjectKey формирует случайный ключ объекта с расширением по типу содержимого.
func newObjectKey(bucket models.ImageBucket, contentType string) string {
	name := uuid.NewString() + extensionFor(contentType)
	if bucket == models.BucketMedia {
		return thumbnailsPrefix + name
	}

	return name
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ""
	}
}

// validKey проверяет, что ключ имеет форму, которую выдаёт newObjectKey для бакета.
func validKey(bucket models.ImageBucket, key string) bool {
	if key == "" || strings.Contains(key, "..") || path.Clean(key) != key {
		return false
	}

	switch bucket {
	case models.BucketMedia:
		rest := strings.TrimPrefix(key, thumbnailsPrefix)
		return rest != key && rest != "" && !strings.Contains(rest, "/")
	case models.BucketGallery:
		return !strings.Contains(key, "/")
	default:
		return false
	}
}

func isNoSuchKey(err error) bool {
	resp := mclient.ToErrorResponse(err)
	return resp.Code == "NoSuchKey" || resp.StatusCode == 404
}

// isAllowedContentType проверяет, что тип содержимого входит в allow-list.
func isAllowedContentType(allow []string, contentType string) bool {
	for _, a := range allow {
		if a == contentType {
			return true
		}
	}

	return false
}
