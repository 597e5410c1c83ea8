// metrics - прометей-метрики press-service.
// Методы безопасны для nil-получателя: без метрик сервис работает как обычно.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "press"

// Metrics - набор метрик сервиса.
type Metrics struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	visits       prometheus.Counter
	uploads      *prometheus.CounterVec
}

// New регистрирует метрики в reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Количество HTTP-запросов по методу, шаблону маршрута и статусу.",
		}, []string{"method", "route", "status"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Длительность обработки HTTP-запросов.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		visits: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "visits_total",
			Help:      "Количество зарегистрированных посещений.",
		}),
		uploads: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "uploads_total",
			Help:      "Количество успешно загруженных изображений по бакету.",
		}, []string{"bucket"}),
	}
}

// ObserveHTTP фиксирует завершённый HTTP-запрос.
func (m *Metrics) ObserveHTTP(method, route string, status int, dur time.Duration) {
	if m == nil {
		return
	}

	if route == "" {
		route = "unmatched"
	}

	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(dur.Seconds())
}

// IncVisits фиксирует посещение.
func (m *Metrics) IncVisits() {
	if m == nil {
		return
	}

	m.visits.Inc()
}

// IncUploads фиксирует загрузку в бакет.
func (m *Metrics) IncUploads(bucket string) {
	if m == nil {
		return
	}

	m.uploads.WithLabelValues(bucket).Inc()
}
