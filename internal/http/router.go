package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/press-service/internal/feed"
	"github.com/pribylovaa/press-service/internal/http/handlers"
	"github.com/pribylovaa/press-service/internal/http/middleware"
	"github.com/pribylovaa/press-service/internal/metrics"
)

// Options - параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
	Timeout  time.Duration
	BasePath string // например, "/api"; если пустой - роуты регистрируются на корне.
	// MaxImageBytes - лимит размера изображения для multipart-загрузок.
	MaxImageBytes int64
	// Feed - метаданные RSS-ленты статей.
	Feed feed.Channel
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc handlers.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),                          // безопасно ловим паники
		middleware.RequestID(),                        // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger, opts.Metrics), // request-scoped логгер, логи и метрики
		middleware.AuthBearer(),                       // вынимаем Bearer токен в контекст
		middleware.Timeout(opts.Timeout),              // общий дедлайн запроса (кроме websocket)
	)

	// Зависимости хендлеров.
	h := handlers.New(svc, handlers.Options{
		MaxImageBytes: opts.MaxImageBytes,
		Feed:          opts.Feed,
	})

	// Регистрация маршрутов.
	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h, svc)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h, svc)
	return root
}

// registerRoutes - единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers, sv middleware.SessionValidator) {
	requireAdmin := middleware.RequireAdmin(sv)

	// articles
	r.Get("/articles", h.ListArticles)
	r.Get("/articles/featured", h.FeaturedArticles)
	r.Get("/articles/rss", h.ArticlesFeed)
	r.Get("/articles/{id}", h.GetArticle)

	// gallery
	r.Get("/gallery", h.ListGallery)

	// visitors
	r.Get("/visitors", h.VisitorCount)
	r.Post("/visitors", h.RegisterVisit)
	r.Get("/visitors/ws", h.VisitorsFeed)

	// auth
	r.Post("/auth/login", h.Login)
	r.Post("/auth/refresh", h.Refresh)
	r.With(requireAdmin).Post("/auth/logout", h.Logout)
	r.With(requireAdmin).Get("/auth/session", h.Session)

	// admin
	r.Route("/admin", func(r chi.Router) {
		r.Use(requireAdmin)

		r.Get("/articles", h.AdminListArticles)
		r.Post("/articles", h.CreateArticle)
		r.Get("/articles/{id}", h.AdminGetArticle)
		r.Put("/articles/{id}", h.UpdateArticle)
		r.Delete("/articles/{id}", h.DeleteArticle)

		r.Post("/uploads", h.UploadImage)
		r.Post("/uploads/presign", h.ImageUploadURL)
		r.Post("/uploads/confirm", h.ConfirmImageUpload)

		r.Post("/gallery", h.CreateGalleryItem)
		r.Post("/gallery/upload", h.UploadGalleryImage)
		r.Delete("/gallery/{id}", h.DeleteGalleryItem)
	})
}
