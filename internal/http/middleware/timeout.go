package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

// Timeout навешивает общий deadline на запрос.
// Существующий deadline не перекрывается, websocket-апгрейды идут без него.
// d <= 0 делает мидлвар no-op.
func Timeout(d time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, has := r.Context().Deadline()
			if has || websocket.IsWebSocketUpgrade(r) {
				next.ServeHTTP(w, r)
				return
			}

			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
