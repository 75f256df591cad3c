package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик HTTP-слоя сервиса
type Metrics struct {
	serviceName string

	// HTTPRequestsTotal счетчик HTTP-запросов по методу, маршруту и статусу
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration гистограмма длительности HTTP-запросов
	HTTPRequestDuration *prometheus.HistogramVec
}

// New создает и регистрирует метрики сервиса в глобальном регистре
func New(serviceName string) *Metrics {
	return &Metrics{
		serviceName: serviceName,
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"service", "method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "path"},
		),
	}
}

// ObserveRequest фиксирует завершенный HTTP-запрос
func (m *Metrics) ObserveRequest(method, path, status string, seconds float64) {
	m.HTTPRequestsTotal.WithLabelValues(m.serviceName, method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(seconds)
}
