package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/pribylovaa/press-service/internal/pkg/log"
)

// visitorHub рассылает новые значения счётчика подписчикам.
// Каждый подписчик получает только последнее значение: буфер 1, устаревшее вытесняется.
type visitorHub struct {
	mu   sync.Mutex
	subs map[chan int64]struct{}
}

func newVisitorHub() *visitorHub {
	return &visitorHub{subs: make(map[chan int64]struct{})}
}

func (h *visitorHub) subscribe() (chan int64, func()) {
	ch := make(chan int64, 1)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, ch)
			h.mu.Unlock()
			close(ch)
		})
	}

	return ch, cancel
}

// publish не блокируется на медленных подписчиках.
func (h *visitorHub) publish(count int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs {
		select {
		case ch <- count:
			continue
		default:
		}

		select {
		case <-ch:
		default:
		}

		select {
		case ch <- count:
		default:
		}
	}
}

func (h *visitorHub) size() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.subs)
}

// VisitorCount возвращает текущее значение счётчика посещений.
func (s *Service) VisitorCount(ctx context.Context) (int64, error) {
	const op = "service.visitors.VisitorCount"

	n, err := s.storage.VisitorCount(ctx)
	if err != nil {
		log.From(ctx).Error("visitor_count_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}

// RegisterVisit атомарно увеличивает счётчик и оповещает подписчиков.
func (s *Service) RegisterVisit(ctx context.Context) (int64, error) {
	const op = "service.visitors.RegisterVisit"

	n, err := s.storage.IncrementVisitors(ctx)
	if err != nil {
		log.From(ctx).Error("visitor_increment_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return 0, fmt.Errorf("%s: %w", op, err)
	}

	s.metrics.IncVisits()
	s.visitors.publish(n)

	return n, nil
}

// SubscribeVisitors подписывает на изменения счётчика.
// Канал закрывается при отмене ctx или вызове возвращённой функции.
func (s *Service) SubscribeVisitors(ctx context.Context) (<-chan int64, func()) {
	ch, cancel := s.visitors.subscribe()
	stop := context.AfterFunc(ctx, cancel)

	return ch, func() {
		stop()
		cancel()
	}
}
