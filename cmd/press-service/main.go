package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/pribylovaa/press-service/internal/cache"
	"github.com/pribylovaa/press-service/internal/config"
	"github.com/pribylovaa/press-service/internal/feed"
	transport "github.com/pribylovaa/press-service/internal/http"
	"github.com/pribylovaa/press-service/internal/metrics"
	"github.com/pribylovaa/press-service/internal/pkg/redact"
	"github.com/pribylovaa/press-service/internal/service"
	"github.com/pribylovaa/press-service/internal/storage/minio"
	"github.com/pribylovaa/press-service/internal/storage/postgres"
)

// Константы для определения окружения.
const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	// .env необязателен.
	_ = godotenv.Load()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting application", "env", cfg.Env)

	// Корневой контекст по сигналам.
	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	// Подключение к БД c таймаутом.
	dbCtx, dbCancel := context.WithTimeout(rootCtx, 10*time.Second)
	str, err := postgres.New(dbCtx, cfg.DB)
	dbCancel()
	if err != nil {
		log.Error("postgres_connect_failed",
			slog.String("dsn", redact.DSN(cfg.DB.URL)),
			slog.String("err", err.Error()),
		)
		rootCancel()
		os.Exit(1)
	}
	log.Info("postgres_connected", slog.String("dsn", redact.DSN(cfg.DB.URL)))

	// Объектное хранилище: бакеты должны существовать.
	s3Ctx, s3Cancel := context.WithTimeout(rootCtx, 10*time.Second)
	images, err := minio.New(s3Ctx, cfg)
	s3Cancel()
	if err != nil {
		log.Error("s3_connect_failed",
			slog.String("endpoint", cfg.S3.Endpoint),
			slog.String("err", err.Error()),
		)
		rootCancel()
		str.Close()
		os.Exit(1)
	}
	log.Info("s3_connected", slog.String("endpoint", cfg.S3.Endpoint))

	// Сервис.
	srvc := service.New(str, images, cfg)

	m := metrics.New(prometheus.DefaultRegisterer)
	srvc.SetMetrics(m)

	// Redis опционален: пустой URL - без кэша.
	var rdb *redis.Client
	if cfg.Redis.URL != "" {
		rCtx, rCancel := context.WithTimeout(rootCtx, 10*time.Second)
		rdb, err = cache.NewClient(rCtx, cfg.Redis.URL)
		rCancel()
		if err != nil {
			log.Error("redis_connect_failed",
				slog.String("url", redact.DSN(cfg.Redis.URL)),
				slog.String("err", err.Error()),
			)
			rootCancel()
			str.Close()
			os.Exit(1)
		}

		srvc.SetArticlesCache(cache.NewArticlesCache(rdb))
		srvc.SetRefreshCache(cache.NewRefreshCache(rdb, ""))
		log.Info("redis_connected")
	}
	log.Info("service_initialized")

	// Начальный администратор.
	if cfg.Admin.Email != "" {
		bootCtx, bootCancel := context.WithTimeout(rootCtx, 10*time.Second)
		created, err := srvc.EnsureAdmin(bootCtx, cfg.Admin.Email, cfg.Admin.Password)
		bootCancel()
		if err != nil {
			log.Error("admin_bootstrap_failed",
				slog.String("email", redact.Email(cfg.Admin.Email)),
				slog.String("err", err.Error()),
			)
			rootCancel()
			str.Close()
			os.Exit(1)
		}
		log.Info("admin_bootstrap_done",
			slog.String("email", redact.Email(cfg.Admin.Email)),
			slog.Bool("created", created),
		)
	}

	// Служебный HTTP: /livez, /healthz, /metrics.
	var ready int32 // 0 - not ready; 1 - ready
	opsAddr := cfg.Metrics.Addr()

	mux := http.NewServeMux()
	mux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if atomic.LoadInt32(&ready) != 1 {
			http.Error(w, "not ready", http.StatusServiceUnavailable)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), time.Second)
		defer cancel()
		if err := str.Ping(ctx); err != nil {
			http.Error(w, "db unavailable", http.StatusServiceUnavailable)
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.Handle("/metrics", promhttp.Handler())

	opsSrv := &http.Server{
		Addr:              opsAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("ops_listen_start", "addr", opsAddr)
		if err := opsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("ops_serve_failed", slog.String("err", err.Error()))
		}
	}()

	// Фоновая очистка просроченных refresh-токенов.
	startRefreshJanitor(rootCtx, srvc, log, cfg.Auth.JanitorPeriod)

	// Публичный REST API.
	apiAddr := cfg.HTTP.Addr()
	apiSrv := &http.Server{
		Addr: apiAddr,
		Handler: transport.NewRouter(srvc, transport.Options{
			Logger:        log,
			Metrics:       m,
			Timeout:       cfg.Timeouts.Service,
			BasePath:      cfg.HTTP.BasePath,
			MaxImageBytes: cfg.Images.MaxSizeBytes,
			Feed: feed.Channel{
				Title:       cfg.Feed.Title,
				Description: cfg.Feed.Description,
				SiteURL:     cfg.Feed.SiteURL,
			},
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErrCh := make(chan error, 1)
	go func() {
		log.Info("http_listen_start", slog.String("addr", apiAddr))
		if err := apiSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
		close(serveErrCh)
	}()

	atomic.StoreInt32(&ready, 1)

	// Ожидание сигнала завершения или фатальной ошибки сервера.
	select {
	case <-rootCtx.Done():
		log.Info("shutdown_requested")
	case err := <-serveErrCh:
		if err != nil {
			log.Error("http_serve_failed", slog.String("err", err.Error()))
		}
	}

	atomic.StoreInt32(&ready, 0)

	// Graceful stop с таймаутом.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)

	if err := apiSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_force_stop", slog.String("err", err.Error()))
		_ = apiSrv.Close()
	} else {
		log.Info("http_stopped")
	}

	_ = opsSrv.Shutdown(shutdownCtx)

	// Явная очистка перед выходом.
	shutdownCancel()
	rootCancel()
	if rdb != nil {
		_ = rdb.Close()
	}
	str.Close()

	log.Info("service_stopped")
	os.Exit(0)
}

// setupLogger настраивает slog по окружению.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	}

	return log
}

// tokenCleaner - то, что умеет удалять просроченные refresh-токены.
type tokenCleaner interface {
	CleanupExpiredTokens(ctx context.Context) (int64, error)
}

// startRefreshJanitor запускает фоновую задачу, которая периодически удаляет
// просроченные refresh-токены.
func startRefreshJanitor(ctx context.Context, svc tokenCleaner, log *slog.Logger, period time.Duration) {
	if period <= 0 {
		return
	}

	go func() {
		t := time.NewTicker(period)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				n, err := svc.CleanupExpiredTokens(ctx)
				if err != nil {
					log.Error("refresh_janitor_failed", slog.String("err", err.Error()))
					continue
				}
				if n > 0 {
					log.Info("refresh_janitor_removed", slog.Int64("count", n))
				}
			}
		}
	}()
}
