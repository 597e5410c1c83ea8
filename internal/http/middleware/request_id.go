package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// maxRequestIDLen - входящие id длиннее считаются мусором.
const maxRequestIDLen = 64

// RequestID обеспечивает наличие X-Request-Id.
// Входящий id принимается, только если он короткий и из безопасных символов,
// иначе выдаётся новый UUID. Итоговый id пишется в ответ, в заголовок запроса
// (его читает errors.WriteError) и в контекст по ключу CtxRequestID.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get("X-Request-Id")
			if !validRequestID(id) {
				id = uuid.NewString()
			}

			r.Header.Set("X-Request-Id", id)
			w.Header().Set("X-Request-Id", id)

			ctx := context.WithValue(r.Context(), CtxRequestID, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}

	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.':
		default:
			return false
		}
	}

	return true
}
