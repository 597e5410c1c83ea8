// storage определяет контракты доступа к хранилищам press-service:
// реляционная БД (статьи, галерея, администраторы, сессии, счётчик посещений)
// и объектное хранилище изображений.
package storage

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/pribylovaa/press-service/internal/models"

	"github.com/google/uuid"
)

var (
	// ErrNotFound - запись не найдена.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists - нарушение уникальности (slug/email/refresh-token).
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidCursor - битый/чужой page_token (курсор пагинации).
	ErrInvalidCursor = errors.New("invalid cursor")
	// ErrExpired - сущность просрочена (refresh-token).
	ErrExpired = errors.New("expired")
	// ErrRevoked - сущность отозвана (refresh-token).
	ErrRevoked = errors.New("revoked")
	// ErrInvalidArgument - некорректные параметры (тип контента, размер, ключ).
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFoundObject - объект отсутствует в объектном хранилище.
	ErrNotFoundObject = errors.New("object not found")
)

// ArticleStorage описывает операции над статьями.
type ArticleStorage interface {
	// ListArticles возвращает статьи, отсортированные по created_at DESC, id DESC.
	// publishedOnly=true - только опубликованные.
	ListArticles(ctx context.Context, publishedOnly bool) ([]models.Article, error)
	// ArticleByID возвращает статью по ID. Если нет - ErrNotFound.
	ArticleByID(ctx context.Context, id uuid.UUID) (*models.Article, error)
	// ArticleBySlug возвращает статью по slug. Если нет - ErrNotFound.
	ArticleBySlug(ctx context.Context, slug string) (*models.Article, error)
	// CreateArticle сохраняет новую статью. Конфликт slug - ErrAlreadyExists.
	CreateArticle(ctx context.Context, article *models.Article) error
	// UpdateArticle перезаписывает изменяемые поля статьи. Если нет - ErrNotFound.
	UpdateArticle(ctx context.Context, article *models.Article) error
	// DeleteArticle удаляет статью. Если нет - ErrNotFound.
	DeleteArticle(ctx context.Context, id uuid.UUID) error
}

// GalleryStorage описывает операции над элементами галереи.
type GalleryStorage interface {
	// ListGallery возвращает страницу галереи (coalesce(date, epoch) DESC, id DESC).
	// При некорректном page_token - ErrInvalidCursor.
	ListGallery(ctx context.Context, opts models.ListOptions) (*models.GalleryPage, error)
	// GalleryItemByID возвращает элемент по ID. Если нет - ErrNotFound.
	GalleryItemByID(ctx context.Context, id uuid.UUID) (*models.GalleryItem, error)
	// CreateGalleryItem сохраняет новый элемент; ID заполняется хранилищем, если пуст.
	CreateGalleryItem(ctx context.Context, item *models.GalleryItem) error
	// DeleteGalleryItem удаляет элемент. Если нет - ErrNotFound.
	DeleteGalleryItem(ctx context.Context, id uuid.UUID) error
}

// AdminStorage выполняет операции над администраторами.
type AdminStorage interface {
	// SaveAdmin создаёт администратора. Конфликт email - ErrAlreadyExists.
	SaveAdmin(ctx context.Context, admin *models.Admin) error
	// AdminByEmail находит администратора по email.
	AdminByEmail(ctx context.Context, email string) (*models.Admin, error)
	// AdminByID находит администратора по ID.
	AdminByID(ctx context.Context, id uuid.UUID) (*models.Admin, error)
}

// RefreshTokenStorage выполняет операции над refresh-токенами.
type RefreshTokenStorage interface {
	// SaveRefreshToken сохраняет новый refresh-token.
	SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error
	// RefreshTokenByHash находит refresh-токен по его хэшу.
	RefreshTokenByHash(ctx context.Context, hash string) (*models.RefreshToken, error)
	// RevokeRefreshToken отзывает токен, если он ещё активен.
	// (true, nil) - отозван сейчас; (false, nil) - уже был отозван; ErrNotFound - нет такого.
	RevokeRefreshToken(ctx context.Context, hash string) (bool, error)
	// RevokeAdminTokens отзывает все активные токены администратора и возвращает их хэши.
	RevokeAdminTokens(ctx context.Context, adminID uuid.UUID) ([]string, error)
	// DeleteExpiredTokens удаляет все просроченные токены и возвращает их количество.
	DeleteExpiredTokens(ctx context.Context, now time.Time) (int64, error)
}

// VisitorStorage - счётчик посещений (одна строка).
type VisitorStorage interface {
	// VisitorCount возвращает текущее значение счётчика.
	VisitorCount(ctx context.Context) (int64, error)
	// IncrementVisitors атомарно увеличивает счётчик и возвращает новое значение.
	IncrementVisitors(ctx context.Context) (int64, error)
}

// Storage задаёт контракт работы с БД.
type Storage interface {
	ArticleStorage
	GalleryStorage
	AdminStorage
	RefreshTokenStorage
	VisitorStorage
	Close()
}

// ImageStorage - контракт объектного хранилища изображений.
type ImageStorage interface {
	// PutImage загружает изображение через сервер и возвращает его публичный URL.
	PutImage(ctx context.Context, bucket models.ImageBucket, contentType string, size int64, body io.Reader) (*models.StoredImage, error)
	// ImageUploadURL выдаёт presigned PUT для прямой загрузки клиентом.
	ImageUploadURL(ctx context.Context, bucket models.ImageBucket, contentType string, size int64) (*models.UploadInfo, error)
	// CheckImageUpload подтверждает, что объект загружен, и возвращает публичный URL.
	CheckImageUpload(ctx context.Context, bucket models.ImageBucket, key string) (string, error)
	// RemoveImage удаляет объект; отсутствие объекта не является ошибкой.
	RemoveImage(ctx context.Context, bucket models.ImageBucket, key string) error
	// KeyFromURL извлекает ключ объекта из публичного URL указанного бакета.
	KeyFromURL(bucket models.ImageBucket, url string) (string, bool)
}
