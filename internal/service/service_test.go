package service

import (
	"testing"
	"time"

	"github.com/pribylovaa/press-service/internal/config"
	"github.com/pribylovaa/press-service/internal/storage"
)

// Общие хелперы unit-тестов сервисного слоя.

// fixedNow - «текущее» время во всех unit-тестах сервиса.
var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// testConfig - минимальный конфиг для сервиса в тестах.
func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret-0123456789",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 24 * time.Hour,
			Issuer:          "press-service",
			Audience:        []string{"press-admin"},
		},
		Redis: config.RedisConfig{
			ArticlesTTL: 5 * time.Minute,
		},
		Limits: config.LimitsConfig{
			GalleryDefault: 24,
			GalleryMax:     200,
			Featured:       5,
		},
		Feed: config.FeedConfig{
			Limit: 3,
		},
	}
}

// newSvcForTest - фабрика Service с контролируемым cfg, часами и мок-хранилищами.
func newSvcForTest(t *testing.T, st storage.Storage, img storage.ImageStorage) *Service {
	t.Helper()

	svc := New(st, img, testConfig())
	svc.now = func() time.Time { return fixedNow }

	return svc
}
