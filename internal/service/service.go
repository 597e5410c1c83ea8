// service содержит бизнес-логику press-service:
// статьи (поиск, подборка, двуязычное чтение, редактирование),
// галерея, изображения, admin-сессии и счётчик посещений.
//
// Основные аспекты:
//   - Service не хранит состояние запроса; экземпляр безопасен для
//     конкурентного использования при потокобезопасных хранилищах.
//   - Ошибки стораджа маппятся в ошибки сервиса ниже, а транспорт
//     маппит их на HTTP-статусы.
//   - Кэши и метрики опциональны: nil означает «не сконфигурировано».
package service

import (
	"errors"
	"time"

	"github.com/pribylovaa/press-service/internal/cache"
	"github.com/pribylovaa/press-service/internal/config"
	"github.com/pribylovaa/press-service/internal/metrics"
	"github.com/pribylovaa/press-service/internal/storage"
)

var (
	// ErrNotFound - сущность отсутствует (или скрыта от публичного просмотра).
	// Транспорт: 404.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument - некорректные входные аргументы.
	// Транспорт: 400.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidCursor - битый/чужой page_token.
	// Транспорт: 400.
	ErrInvalidCursor = errors.New("invalid cursor")

	// ErrAlreadyExists - конфликт уникальности (slug/email).
	// Транспорт: 409.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidCredentials - пара логин/пароль неверна или администратор не найден.
	// Транспорт: 401.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken - токен некорректен по формату/подписи или отсутствует в хранилище.
	// Транспорт: 401.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired - срок действия токена истёк.
	// Транспорт: 401.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenRevoked - токен отозван (logout/rotation).
	// Транспорт: 401.
	ErrTokenRevoked = errors.New("token revoked")

	// ErrForbidden - операция недоступна текущей сессии.
	// Транспорт: 403.
	ErrForbidden = errors.New("forbidden")

	// ErrRefreshTokenCollision - исчерпаны попытки сгенерировать уникальный refresh-токен.
	// Транспорт: 500.
	ErrRefreshTokenCollision = errors.New("refresh token collision")

	// ErrInvalidEmail - e-mail имеет некорректный формат.
	// Транспорт: 400.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrWeakPassword - пароль не удовлетворяет политикам сложности.
	// Транспорт: 400.
	ErrWeakPassword = errors.New("password is too weak")

	// ErrEmptyPassword - пароль пустой.
	// Транспорт: 400.
	ErrEmptyPassword = errors.New("password is empty")
)

// Service описывает бизнес-логику press-service.
type Service struct {
	storage storage.Storage
	images  storage.ImageStorage
	cfg     *config.Config

	articlesCache cache.ArticlesCache // может быть nil
	rcache        cache.RefreshCache  // может быть nil
	metrics       *metrics.Metrics    // может быть nil

	content  *contentRenderer
	visitors *visitorHub
	now      func() time.Time
}

// New создаёт новый экземпляр Service.
func New(storage storage.Storage, images storage.ImageStorage, cfg *config.Config) *Service {
	return &Service{
		storage:  storage,
		images:   images,
		cfg:      cfg,
		content:  newContentRenderer(),
		visitors: newVisitorHub(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// SetArticlesCache устанавливает кэш опубликованных статей (опционально).
func (s *Service) SetArticlesCache(c cache.ArticlesCache) {
	s.articlesCache = c
}

// SetRefreshCache устанавливает кэш refresh-токенов (опционально).
func (s *Service) SetRefreshCache(c cache.RefreshCache) {
	s.rcache = c
}

// SetMetrics подключает метрики (опционально).
func (s *Service) SetMetrics(m *metrics.Metrics) {
	s.metrics = m
}
