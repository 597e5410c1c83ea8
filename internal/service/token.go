package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pribylovaa/press-service/internal/cache"
	"github.com/pribylovaa/press-service/internal/models"
	"github.com/pribylovaa/press-service/internal/pkg/log"
	"github.com/pribylovaa/press-service/internal/storage"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type accessClaims struct {
	AdminID string `json:"uid"`
	Email   string `json:"email"`
	jwt.RegisteredClaims
}

// hashToken - sha256(plain) в base64url; на сервере хранится только хэш.
func hashToken(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// generateAccessToken генерирует access-токен.
func (s *Service) generateAccessToken(ctx context.Context, adminID uuid.UUID, email string, now time.Time) (string, error) {
	const op = "service.token.generateAccessToken"

	claims := accessClaims{
		AdminID: adminID.String(),
		Email:   email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Auth.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.cfg.Auth.Issuer,
			Subject:   adminID.String(),
			Audience:  jwt.ClaimStrings(s.cfg.Auth.Audience),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Auth.JWTSecret))
	if err != nil {
		log.From(ctx).Error("access_token_sign_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return signed, nil
}

// validateAccessToken валидирует access-токен.
func (s *Service) validateAccessToken(tokenStr string) (*models.SessionInfo, error) {
	const op = "service.token.validateAccessToken"

	if tokenStr == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	token, err := jwt.ParseWithClaims(tokenStr, &accessClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
			}

			return []byte(s.cfg.Auth.JWTSecret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(5*time.Second),
		jwt.WithIssuer(s.cfg.Auth.Issuer),
		jwt.WithAudience(s.cfg.Auth.Audience...),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%s: %w", op, ErrTokenExpired)
		}

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	uid, err := uuid.Parse(claims.AdminID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	info := &models.SessionInfo{AdminID: uid, Email: claims.Email}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time.UTC()
	}

	return info, nil
}

// generateRefreshToken создает новый refresh-токен.
func (s *Service) generateRefreshToken(ctx context.Context, adminID uuid.UUID) (string, error) {
	const (
		op          = "service.token.generateRefreshToken"
		maxAttempts = 5
	)

	lg := log.From(ctx)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		b := make([]byte, 32)
		if _, err := rand.Read(b); err != nil {
			lg.Error("refresh_rand_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
			return "", fmt.Errorf("%s: %w", op, err)
		}
		plain := base64.RawURLEncoding.EncodeToString(b)
		hash := hashToken(plain)

		now := s.now()
		token := &models.RefreshToken{
			RefreshTokenHash: hash,
			AdminID:          adminID,
			CreatedAt:        now,
			ExpiresAt:        now.Add(s.cfg.Auth.RefreshTokenTTL),
			Revoked:          false,
		}

		if err := s.storage.SaveRefreshToken(ctx, token); err != nil {
			if errors.Is(err, storage.ErrAlreadyExists) {
				// Редкая коллизия - пробуем сгенерировать заново.
				continue
			}

			lg.Error("save_refresh_token_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
			return "", fmt.Errorf("%s: %w", op, err)
		}

		s.cacheRefresh(ctx, token)

		return plain, nil
	}

	lg.Error("refresh_collision_exceeded",
		slog.String("op", op),
	)

	return "", fmt.Errorf("%s: %w", op, ErrRefreshTokenCollision)
}

// validateRefreshToken валидирует refresh-токен: сначала кэш, затем БД.
func (s *Service) validateRefreshToken(ctx context.Context, plain string) (*models.RefreshToken, error) {
	const op = "service.token.validateRefreshToken"

	lg := log.From(ctx)
	hash := hashToken(plain)

	token, err := s.lookupRefreshToken(ctx, hash)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("refresh_lookup_not_found",
				slog.String("op", op),
			)
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}

		lg.Error("refresh_lookup_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if token.Revoked {
		lg.Warn("refresh_revoked",
			slog.String("op", op),
			slog.String("admin_id", token.AdminID.String()),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrTokenRevoked)
	}

	if s.now().After(token.ExpiresAt) {
		lg.Warn("refresh_expired",
			slog.String("op", op),
			slog.String("admin_id", token.AdminID.String()),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrTokenExpired)
	}

	return token, nil
}

// lookupRefreshToken ищет токен в кэше, при промахе - в БД (и прогревает кэш).
func (s *Service) lookupRefreshToken(ctx context.Context, hash string) (*models.RefreshToken, error) {
	if s.rcache != nil {
		entry, ok, err := s.rcache.Get(ctx, hash)
		if err != nil {
			log.From(ctx).Warn("refresh_cache_get_failed",
				slog.String("op", "service.token.lookupRefreshToken"),
				slog.String("err", err.Error()),
			)
		} else if ok {
			return &models.RefreshToken{
				RefreshTokenHash: hash,
				AdminID:          entry.AdminID,
				ExpiresAt:        entry.ExpiresAt,
				Revoked:          entry.Revoked,
			}, nil
		}
	}

	token, err := s.storage.RefreshTokenByHash(ctx, hash)
	if err != nil {
		return nil, err
	}

	s.cacheRefresh(ctx, token)

	return token, nil
}

func (s *Service) cacheRefresh(ctx context.Context, token *models.RefreshToken) {
	if s.rcache == nil {
		return
	}

	entry := &cache.RefreshEntry{
		AdminID:   token.AdminID,
		Revoked:   token.Revoked,
		ExpiresAt: token.ExpiresAt,
	}

	if err := s.rcache.Set(ctx, token.RefreshTokenHash, entry, ttlUntil(s.now(), token.ExpiresAt)); err != nil {
		log.From(ctx).Warn("refresh_cache_set_failed",
			slog.String("op", "service.token.cacheRefresh"),
			slog.String("err", err.Error()),
		)
	}
}
