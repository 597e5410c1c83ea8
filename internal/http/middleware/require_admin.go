package middleware

import (
	"context"
	"log/slog"
	"net/http"

	apierrors "github.com/pribylovaa/press-service/internal/errors"
	"github.com/pribylovaa/press-service/internal/models"
	logctx "github.com/pribylovaa/press-service/internal/pkg/log"
	"github.com/pribylovaa/press-service/internal/service"
)

// SessionValidator проверяет access-токен.
type SessionValidator interface {
	Session(ctx context.Context, accessToken string) (*models.SessionInfo, error)
}

// RequireAdmin пропускает запрос только с валидным access-токеном
// и кладёт сессию в контекст (см. SessionFrom). Должен стоять после AuthBearer.
func RequireAdmin(v SessionValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := AuthTokenFrom(r.Context())
			if !ok {
				apierrors.WriteError(w, r, service.ErrInvalidToken)
				return
			}

			info, err := v.Session(r.Context(), token)
			if err != nil {
				logctx.From(r.Context()).Warn("admin_session_rejected",
					slog.String("path", r.URL.Path),
					slog.String("err", err.Error()),
				)
				apierrors.WriteError(w, r, err)
				return
			}

			ctx := WithSession(r.Context(), info)
			ctx = logctx.With(ctx, slog.String("admin_id", info.AdminID.String()))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
