package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	apierrors "github.com/pribylovaa/press-service/internal/errors"
	"github.com/pribylovaa/press-service/internal/pkg/log"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = wsPongWait * 9 / 10
)

func (h *Handlers) VisitorCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.VisitorCount(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, visitorsDTO{Count: n})
}

func (h *Handlers) RegisterVisit(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.RegisterVisit(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, visitorsDTO{Count: n})
}

// VisitorsFeed - websocket: текущее значение при подключении и каждое изменение.
// Входящие сообщения клиента игнорируются.
func (h *Handlers) VisitorsFeed(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.visitors.VisitorsFeed"

	lg := log.From(r.Context())

	current, err := h.svc.VisitorCount(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade уже записал ответ клиенту.
		lg.Warn("visitors_ws_upgrade_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return
	}
	defer conn.Close()

	// После hijack контекст запроса не отменяется при разрыве, следим сами.
	ctx, cancel := context.WithCancel(context.WithoutCancel(r.Context()))
	defer cancel()

	updates, unsubscribe := h.svc.SubscribeVisitors(ctx)
	defer unsubscribe()

	go readUntilClosed(conn, cancel)

	lg.Info("visitors_ws_connected", slog.String("op", op))

	if err := writeCount(conn, current); err != nil {
		return
	}

	ping := time.NewTicker(wsPingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			lg.Info("visitors_ws_closed", slog.String("op", op))
			return
		case n, ok := <-updates:
			if !ok {
				return
			}

			if err := writeCount(conn, n); err != nil {
				lg.Info("visitors_ws_write_failed",
					slog.String("op", op),
					slog.String("err", err.Error()),
				)
				return
			}
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func writeCount(conn *websocket.Conn, n int64) error {
	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	return conn.WriteJSON(visitorsDTO{Count: n})
}

// readUntilClosed читает входящие кадры до ошибки и вызывает done.
func readUntilClosed(conn *websocket.Conn, done func()) {
	defer done()

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
