package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/pribylovaa/press-service/internal/feed"
	"github.com/pribylovaa/press-service/internal/models"
	"github.com/pribylovaa/press-service/internal/service"
)

// Service - операции бизнес-логики, которые нужны HTTP-слою.
type Service interface {
	ListArticles(ctx context.Context, q service.ArticleQuery) ([]models.Article, error)
	FeaturedArticles(ctx context.Context) ([]models.Article, error)
	FeedArticles(ctx context.Context) ([]models.Article, error)
	Article(ctx context.Context, idOrSlug string, includeUnpublished bool) (*models.Article, error)
	LocalizedArticle(ctx context.Context, idOrSlug string, lang models.Language) (*models.LocalizedArticle, error)
	SaveArticle(ctx context.Context, in service.ArticleInput) (*models.Article, error)
	DeleteArticle(ctx context.Context, id uuid.UUID) error

	ListGallery(ctx context.Context, opts models.ListOptions) (*models.GalleryPage, error)
	CreateGalleryItem(ctx context.Context, title, url string) (*models.GalleryItem, error)
	UploadGalleryImage(ctx context.Context, in service.UploadInput) (*models.GalleryItem, error)
	DeleteGalleryItem(ctx context.Context, id uuid.UUID) error

	UploadImage(ctx context.Context, bucket models.ImageBucket, in service.UploadInput) (*models.StoredImage, error)
	ImageUploadURL(ctx context.Context, bucket models.ImageBucket, contentType string, size int64) (*models.UploadInfo, error)
	ConfirmImageUpload(ctx context.Context, bucket models.ImageBucket, key string) (string, error)

	Login(ctx context.Context, email, password string) (*models.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error)
	Logout(ctx context.Context, adminID uuid.UUID, refreshToken string) error
	Session(ctx context.Context, accessToken string) (*models.SessionInfo, error)

	VisitorCount(ctx context.Context) (int64, error)
	RegisterVisit(ctx context.Context) (int64, error)
	SubscribeVisitors(ctx context.Context) (<-chan int64, func())
}

// Options - настройки хендлеров.
type Options struct {
	// MaxImageBytes - лимит размера изображения из конфига.
	MaxImageBytes int64
	// Feed - метаданные RSS-канала.
	Feed feed.Channel
}

// Handlers агрегирует зависимости HTTP-хендлеров.
type Handlers struct {
	svc Service
	// maxUploadBytes - лимит multipart-тела (размер изображения + запас на поля).
	maxUploadBytes int64
	feed           feed.Channel
	upgrader       websocket.Upgrader
}

// multipartOverhead - запас на поля формы и заголовки частей.
const multipartOverhead = 1 << 20

// New создаёт Handlers.
func New(svc Service, opts Options) *Handlers {
	return &Handlers{
		svc:            svc,
		maxUploadBytes: opts.MaxImageBytes + multipartOverhead,
		feed:           opts.Feed,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// writeJSON - единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict - строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// decodeOptional - как decodeStrict, но пустое тело не считается ошибкой.
func decodeOptional(r *http.Request, value any) error {
	if err := decodeStrict(r, value); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// errInvalidArgument - локальная ошибка парсинга запроса.
func errInvalidArgument() error {
	return service.ErrInvalidArgument
}
