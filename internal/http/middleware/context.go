package middleware

import (
	"context"

	"github.com/pribylovaa/press-service/internal/models"
)

type ctxKey string

const (
	// CtxRequestID - X-Request-Id текущего запроса.
	CtxRequestID ctxKey = "request_id"
	// CtxAuthToken - "сырой" Bearer-токен из Authorization.
	CtxAuthToken ctxKey = "auth_token"
	// ctxSession - проверенная admin-сессия.
	ctxSession ctxKey = "session"
)

// RequestIDFrom возвращает request id из контекста.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(CtxRequestID).(string)
	return id
}

// AuthTokenFrom возвращает Bearer-токен из контекста.
func AuthTokenFrom(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(CtxAuthToken).(string)
	return token, ok && token != ""
}

// SessionFrom возвращает admin-сессию, положенную RequireAdmin.
func SessionFrom(ctx context.Context) (*models.SessionInfo, bool) {
	s, ok := ctx.Value(ctxSession).(*models.SessionInfo)
	return s, ok && s != nil
}

// WithSession кладёт admin-сессию в контекст.
func WithSession(ctx context.Context, s *models.SessionInfo) context.Context {
	return context.WithValue(ctx, ctxSession, s)
}
