// minio предоставляет реализацию storage.ImageStorage на базе MinIO/S3.
// minio.go - конструктор клиента: нормализует endpoint, настраивает Secure/creds
// и проверяет наличие бакетов media и gallery.
// images.go - загрузка через сервер, presigned PUT, подтверждение и удаление объектов.
package minio

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/pribylovaa/press-service/internal/config"
	"github.com/pribylovaa/press-service/internal/models"
	"github.com/pribylovaa/press-service/internal/storage"

	mclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ImagesStorage - адаптер MinIO для операций с изображениями.
type ImagesStorage struct {
	cfg     *config.Config
	client  *mclient.Client
	buckets map[models.ImageBucket]string
	// baseURL - префикс публичных ссылок без завершающего "/".
	baseURL string
}

// New создает и инициализирует клиент MinIO.
// Делает endpoint-перенастройку (убирает схему), подбирает Secure по схеме
// и выполняет fail-fast-проверку доступности обоих бакетов.
func New(ctx context.Context, cfg *config.Config) (*ImagesStorage, error) {
	const op = "storage.minio.New"

	endpoint, secure := normalizeEndpoint(cfg.S3.Endpoint)

	client, err := mclient.New(endpoint, &mclient.Options{
		Creds:  credentials.NewStaticV4(cfg.S3.RootUser, cfg.S3.RootPassword, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s := &ImagesStorage{
		cfg:    cfg,
		client: client,
		buckets: map[models.ImageBucket]string{
			models.BucketMedia:   cfg.S3.MediaBucket,
			models.BucketGallery: cfg.S3.GalleryBucket,
		},
		baseURL: publicBase(cfg.S3.PublicBaseURL, endpoint, secure),
	}

	if err := s.Ping(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s, nil
}

// Ping проверяет, что все бакеты существуют.
func (s *ImagesStorage) Ping(ctx context.Context) error {
	for _, name := range s.buckets {
		exists, err := s.client.BucketExists(ctx, name)
		if err != nil {
			return err
		}

		if !exists {
			return fmt.Errorf("bucket %q does not exist", name)
		}
	}

	return nil
}

// normalizeEndpoint убирает схему из endpoint и определяет Secure.
func normalizeEndpoint(raw string) (string, bool) {
	endpoint := raw
	secure := strings.HasPrefix(endpoint, "https://")

	if u, err := url.Parse(endpoint); err == nil && u.Scheme != "" && u.Host != "" {
		endpoint = u.Host
		secure = u.Scheme == "https"
	}

	return endpoint, secure
}

// publicBase - PublicBaseURL или, если не задан, адрес самого S3.
func publicBase(public, endpoint string, secure bool) string {
	if public != "" {
		return strings.TrimRight(public, "/")
	}

	scheme := "http"
	if secure {
		scheme = "https"
	}

	return scheme + "://" + endpoint
}

// Проверка выполнения контракта верхнего уровня.
var _ storage.ImageStorage = (*ImagesStorage)(nil)
