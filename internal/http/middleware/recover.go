package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/pribylovaa/press-service/internal/errors"
	logctx "github.com/pribylovaa/press-service/internal/pkg/log"
)

var errPanic = errors.New("panic recovered")

// Recover перехватывает panic и отвечает 500/internal без деталей.
// В лог уходят причина, шаблон маршрута и стек.
// http.ErrAbortHandler пробрасывается дальше, как того ждёт net/http.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				route := ""
				if rctx := chi.RouteContext(r.Context()); rctx != nil {
					route = rctx.RoutePattern()
				}

				logctx.From(r.Context()).LogAttrs(r.Context(), slog.LevelError, "http_panic",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("route", route),
					slog.Any("reason", rec),
					slog.String("stack", string(debug.Stack())),
				)

				apierrors.WriteError(w, r, errPanic)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
