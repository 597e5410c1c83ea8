package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"github.com/pribylovaa/press-service/internal/models"
	"github.com/pribylovaa/press-service/internal/pkg/log"
	"github.com/pribylovaa/press-service/internal/pkg/redact"
	"github.com/pribylovaa/press-service/internal/storage"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Login выполняет вход администратора по email+пароль.
// Любой аутентифицированный пользователь - администратор.
func (s *Service) Login(ctx context.Context, email, password string) (*models.TokenPair, error) {
	const op = "service.auth.Login"

	lg := log.From(ctx)

	normEmail, err := validateEmail(email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	if len(password) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	admin, err := s.storage.AdminByEmail(ctx, normEmail)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("login_unknown_email",
				slog.String("op", op),
				slog.String("email", redact.Email(normEmail)),
			)

			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !checkPassword(admin.PasswordHash, password) {
		lg.Warn("login_wrong_password",
			slog.String("op", op),
			slog.String("email", redact.Email(normEmail)),
		)

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	pair, err := s.issueTokenPair(ctx, admin, "")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("login_ok",
		slog.String("op", op),
		slog.String("admin_id", admin.ID.String()),
	)

	return pair, nil
}

// Refresh обновляет пару токенов по refresh-токену (ротация: старый отзывается).
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	const op = "service.auth.Refresh"

	if strings.TrimSpace(refreshToken) == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	token, err := s.validateRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	admin, err := s.storage.AdminByID(ctx, token.AdminID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	pair, err := s.issueTokenPair(ctx, admin, hashToken(refreshToken))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return pair, nil
}

// Logout завершает все сессии администратора (глобальный выход).
// Переданный refresh-токен отзывается отдельно, если он принадлежит этому администратору;
// неизвестный токен ошибкой не считается.
func (s *Service) Logout(ctx context.Context, adminID uuid.UUID, refreshToken string) error {
	const op = "service.auth.Logout"

	lg := log.From(ctx)

	if adminID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	if refreshToken != "" {
		hash := hashToken(refreshToken)
		token, err := s.storage.RefreshTokenByHash(ctx, hash)
		switch {
		case err == nil && token.AdminID != adminID:
			lg.Warn("logout_foreign_token",
				slog.String("op", op),
				slog.String("admin_id", adminID.String()),
			)

			return fmt.Errorf("%s: %w", op, ErrForbidden)
		case err != nil && !errors.Is(err, storage.ErrNotFound):
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	hashes, err := s.storage.RevokeAdminTokens(ctx, adminID)
	if err != nil {
		lg.Error("logout_revoke_failed",
			slog.String("op", op),
			slog.String("admin_id", adminID.String()),
			slog.String("err", err.Error()),
		)

		return fmt.Errorf("%s: %w", op, err)
	}

	for _, h := range hashes {
		s.cacheMarkRevoked(ctx, h)
	}

	lg.Info("logout_ok",
		slog.String("op", op),
		slog.String("admin_id", adminID.String()),
		slog.Int("revoked", len(hashes)),
	)

	return nil
}

// Session проверяет access-токен и возвращает данные сессии.
func (s *Service) Session(ctx context.Context, accessToken string) (*models.SessionInfo, error) {
	const op = "service.auth.Session"

	info, err := s.validateAccessToken(accessToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return info, nil
}

// EnsureAdmin создаёт администратора из конфигурации, если его ещё нет.
// Возвращает true, если учётная запись была создана.
func (s *Service) EnsureAdmin(ctx context.Context, email, password string) (bool, error) {
	const op = "service.auth.EnsureAdmin"

	lg := log.From(ctx)

	normEmail, err := validateEmail(email)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	_, err = s.storage.AdminByEmail(ctx, normEmail)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if err := validatePassword(password); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	hashedPassword, err := hashPassword(password)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	now := s.now()
	admin := &models.Admin{
		ID:           uuid.New(),
		Email:        normEmail,
		PasswordHash: hashedPassword,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.storage.SaveAdmin(ctx, admin); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			// Параллельный старт другой реплики.
			return false, nil
		}

		return false, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("admin_bootstrapped",
		slog.String("op", op),
		slog.String("email", redact.Email(normEmail)),
	)

	return true, nil
}

// CleanupExpiredTokens удаляет просроченные refresh-токены (для janitor).
func (s *Service) CleanupExpiredTokens(ctx context.Context) (int64, error) {
	const op = "service.auth.CleanupExpiredTokens"

	n, err := s.storage.DeleteExpiredTokens(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}

// hashPassword хэширует пароль с помощью bcrypt.
func hashPassword(password string) (string, error) {
	const op = "service.auth.hashPassword"

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return string(bytes), nil
}

// checkPassword сравнивает пароль с хэшем.
func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// validateEmail проверяет базовый формат email и обрезает пробелы снаружи.
func validateEmail(raw string) (string, error) {
	const op = "service.auth.validateEmail"

	email := strings.TrimSpace(raw)
	if email == "" {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	return strings.ToLower(email), nil
}

// validatePassword проверяет минимальные требования к паролю.
// Политика: длина >= 8, хотя бы одна строчная, заглавная, цифра и спецсимвол.
func validatePassword(pw string) error {
	const op = "service.auth.validatePassword"

	if len(pw) == 0 {
		return fmt.Errorf("%s: %w", op, ErrEmptyPassword)
	}

	if len([]rune(pw)) < 8 {
		return fmt.Errorf("%s: %w", op, ErrWeakPassword)
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range pw {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if !(hasLower && hasUpper && hasDigit && hasSpecial) {
		return fmt.Errorf("%s: %w", op, ErrWeakPassword)
	}

	return nil
}

// issueTokenPair выпускает новую пару access+refresh токенов.
// Если oldRefreshHash != "", сначала атомарно отзывает старый refresh-токен.
func (s *Service) issueTokenPair(ctx context.Context, admin *models.Admin, oldRefreshHash string) (*models.TokenPair, error) {
	const op = "service.auth.issueTokenPair"

	now := s.now()

	if oldRefreshHash != "" {
		revoked, err := s.storage.RevokeRefreshToken(ctx, oldRefreshHash)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
			}

			return nil, fmt.Errorf("%s: %w", op, err)
		}

		s.cacheMarkRevoked(ctx, oldRefreshHash)

		if !revoked {
			return nil, fmt.Errorf("%s: %w", op, ErrTokenRevoked)
		}
	}

	accessToken, err := s.generateAccessToken(ctx, admin.ID, admin.Email, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	plain, err := s.generateRefreshToken(ctx, admin.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.TokenPair{
		AccessToken:     accessToken,
		RefreshToken:    plain,
		AccessExpiresAt: now.Add(s.cfg.Auth.AccessTokenTTL),
	}, nil
}

func (s *Service) cacheMarkRevoked(ctx context.Context, hash string) {
	if s.rcache == nil {
		return
	}

	if err := s.rcache.MarkRevoked(ctx, hash); err != nil {
		log.From(ctx).Warn("refresh_cache_mark_revoked_failed",
			slog.String("op", "service.auth.cacheMarkRevoked"),
			slog.String("err", err.Error()),
		)
	}
}

// ttlUntil - остаток времени до exp, минимум 1 секунда.
func ttlUntil(now, exp time.Time) time.Duration {
	if d := exp.Sub(now); d > time.Second {
		return d
	}

	return time.Second
}
