// config предоставляет структуру конфигурации press-service
// и функции загрузки из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config - корневая конфигурация сервиса.
// Приоритет источников:
//  1. явный путь, переданный в MustLoad/Load;
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
//
// После чтения файла поверх значений из YAML накладываются ENV-переменные.
type Config struct {
	Env      string        `yaml:"env" env:"ENV" env-default:"local"`
	HTTP     HTTPConfig    `yaml:"http"`
	Metrics  MetricsConfig `yaml:"metrics"`
	DB       DBConfig      `yaml:"db"`
	S3       S3Config      `yaml:"s3"`
	Images   ImagesConfig  `yaml:"images"`
	Auth     AuthConfig    `yaml:"auth"`
	Admin    AdminConfig   `yaml:"admin"`
	Redis    RedisConfig   `yaml:"redis"`
	Limits   LimitsConfig  `yaml:"limits"`
	Feed     FeedConfig    `yaml:"feed"`
	Timeouts TimeoutConfig `yaml:"timeouts"`
}

// TimeoutConfig - таймауты сервиса.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"10s"`
}

// HTTPConfig - публичный REST-сервер.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	// BasePath - префикс API, например "/api"; пустой - роуты на корне.
	BasePath string `yaml:"base_path" env:"HTTP_BASE_PATH" env-default:"/api"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// MetricsConfig - отдельный HTTP для /livez, /healthz и /metrics.
type MetricsConfig struct {
	Host string `yaml:"host" env:"METRICS_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"METRICS_PORT" env-default:"8081"`
}

// Addr возвращает адрес в формате host:port.
func (m MetricsConfig) Addr() string {
	return net.JoinHostPort(m.Host, m.Port)
}

// DBConfig - настройки подключения к базе данных.
type DBConfig struct {
	URL string `yaml:"url" env:"DATABASE_URL" env-required:"true"`
	// Параметры пула pgxpool; 0 - значение pgx по умолчанию.
	MaxConns        int32         `yaml:"max_conns"          env:"DB_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DB_MIN_CONNS"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DB_MAX_CONN_IDLE_TIME" env-default:"5m"`
}

// S3Config - настройки объектного хранилища (MinIO/S3).
type S3Config struct {
	Endpoint      string        `yaml:"endpoint"        env:"S3_ENDPOINT"        env-required:"true"`
	RootUser      string        `yaml:"root_user"       env:"S3_ROOT_USER"       env-required:"true"`
	RootPassword  string        `yaml:"root_password"   env:"S3_ROOT_PASSWORD"   env-required:"true"`
	MediaBucket   string        `yaml:"media_bucket"    env:"S3_MEDIA_BUCKET"    env-default:"media"`
	GalleryBucket string        `yaml:"gallery_bucket"  env:"S3_GALLERY_BUCKET"  env-default:"gallery"`
	PresignTTL    time.Duration `yaml:"presign_ttl"     env:"S3_PRESIGN_TTL"     env-default:"15m"`
	PublicBaseURL string        `yaml:"public_base_url" env:"S3_PUBLIC_BASE_URL"`
}

// ImagesConfig - ограничения на загружаемые изображения.
type ImagesConfig struct {
	MaxSizeBytes        int64    `yaml:"max_size_bytes"        env:"IMAGES_MAX_SIZE_BYTES" env-default:"10485760"`
	AllowedContentTypes []string `yaml:"allowed_content_types" env:"IMAGES_ALLOWED_TYPES"  env-separator:"," env-default:"image/jpeg,image/png,image/webp,image/gif"`
}

// AuthConfig содержит параметры выпуска и валидации токенов.
type AuthConfig struct {
	JWTSecret       string        `yaml:"jwt_secret"        env:"JWT_SECRET"        env-required:"true"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl"  env:"ACCESS_TOKEN_TTL"  env-default:"15m"`
	RefreshTokenTTL time.Duration `yaml:"refresh_token_ttl" env:"REFRESH_TOKEN_TTL" env-default:"720h"`
	Issuer          string        `yaml:"issuer"            env:"JWT_ISSUER"        env-default:"press-service"`
	Audience        []string      `yaml:"audience"          env:"JWT_AUDIENCE"      env-default:"press-admin"`
	// JanitorPeriod - период очистки просроченных refresh-токенов; 0 - отключено.
	JanitorPeriod time.Duration `yaml:"janitor_period" env:"AUTH_JANITOR_PERIOD" env-default:"30m"`
}

// AdminConfig - начальная учётная запись администратора.
// Если Email пуст - bootstrap не выполняется.
type AdminConfig struct {
	Email    string `yaml:"email"    env:"ADMIN_EMAIL"`
	Password string `yaml:"password" env:"ADMIN_PASSWORD"`
}

// RedisConfig - опциональный кэш. Пустой URL отключает кэш.
type RedisConfig struct {
	URL         string        `yaml:"url"          env:"REDIS_URL"`
	ArticlesTTL time.Duration `yaml:"articles_ttl" env:"REDIS_ARTICLES_TTL" env-default:"5m"`
}

// LimitsConfig - серверные лимиты на выдачу.
type LimitsConfig struct {
	// Применяется при запросе галереи с limit=0.
	GalleryDefault int32 `yaml:"gallery_default" env:"GALLERY_DEFAULT_LIMIT" env-default:"24"`
	// Верхняя граница для limit галереи.
	GalleryMax int32 `yaml:"gallery_max" env:"GALLERY_MAX_LIMIT" env-default:"200"`
	// Количество статей в подборке для карусели.
	Featured int `yaml:"featured" env:"FEATURED_LIMIT" env-default:"5"`
}

// FeedConfig - метаданные RSS-ленты.
type FeedConfig struct {
	Title       string `yaml:"title"       env:"FEED_TITLE"       env-default:"Press"`
	Description string `yaml:"description" env:"FEED_DESCRIPTION"`
	// SiteURL - публичный сайт, на который ведут ссылки из ленты.
	SiteURL string `yaml:"site_url" env:"FEED_SITE_URL" env-default:"http://localhost:5173"`
	// Limit - сколько последних статей попадает в ленту.
	Limit int `yaml:"limit" env:"FEED_LIMIT" env-default:"20"`
}

// MustLoad - обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
func Load(path string) (*Config, error) {
	var cfg Config

	// чтение файла + overlay ENV.
	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}

		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		if err := cfg.validate(); err != nil {
			return nil, err
		}

		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		return tryRead(path)
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		return tryRead(envPath)
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		return tryRead("local.yaml")
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate - базовая валидация значений.
func (c *Config) validate() error {
	if c.DB.URL == "" {
		return fmt.Errorf("db.url is required")
	}
	if c.DB.MaxConns < 0 || c.DB.MinConns < 0 || (c.DB.MaxConns > 0 && c.DB.MinConns > c.DB.MaxConns) {
		return fmt.Errorf("db.min_conns must be within [0, db.max_conns]")
	}
	if c.S3.Endpoint == "" {
		return fmt.Errorf("s3.endpoint is required")
	}
	if c.S3.MediaBucket == "" || c.S3.GalleryBucket == "" {
		return fmt.Errorf("s3.media_bucket and s3.gallery_bucket are required")
	}
	if len(c.Auth.JWTSecret) < 16 {
		return fmt.Errorf("auth.jwt_secret must be at least 16 bytes")
	}
	if c.Auth.AccessTokenTTL <= 0 || c.Auth.RefreshTokenTTL <= 0 {
		return fmt.Errorf("auth token ttl must be > 0")
	}
	if c.Auth.AccessTokenTTL >= c.Auth.RefreshTokenTTL {
		return fmt.Errorf("auth.access_token_ttl must be < auth.refresh_token_ttl")
	}
	if c.Admin.Email != "" && c.Admin.Password == "" {
		return fmt.Errorf("admin.password is required when admin.email is set")
	}
	if c.Images.MaxSizeBytes <= 0 {
		return fmt.Errorf("images.max_size_bytes must be > 0")
	}
	if len(c.Images.AllowedContentTypes) == 0 {
		return fmt.Errorf("images.allowed_content_types must not be empty")
	}
	if c.Limits.GalleryDefault <= 0 {
		return fmt.Errorf("limits.gallery_default must be > 0")
	}
	if c.Limits.GalleryMax <= 0 {
		return fmt.Errorf("limits.gallery_max must be > 0")
	}
	if c.Limits.GalleryDefault > c.Limits.GalleryMax {
		return fmt.Errorf("limits.gallery_default must be <= limits.gallery_max")
	}
	if c.Limits.Featured <= 0 {
		return fmt.Errorf("limits.featured must be > 0")
	}
	if c.Feed.Limit <= 0 {
		return fmt.Errorf("feed.limit must be > 0")
	}
	return nil
}
