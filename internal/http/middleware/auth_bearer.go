package middleware

import (
	"context"
	"net/http"
	"strings"
)

// AuthBearer кладёт токен из "Authorization: Bearer <token>" в контекст (CtxAuthToken).
// Схема сравнивается без учёта регистра; пустые и составные токены игнорируются.
// Проверку выполняет RequireAdmin.
func AuthBearer() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token, ok := bearerToken(r.Header.Get("Authorization")); ok {
				r = r.WithContext(context.WithValue(r.Context(), CtxAuthToken, token))
			}

			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", false
	}

	return token, true
}
