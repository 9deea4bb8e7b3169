// Package metrics registra las métricas Prometheus del servicio.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pilotos_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pilotos_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	orderOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pilotos_order_operations_total",
			Help: "Total number of order operations",
		},
		[]string{"operation", "status"},
	)

	backgroundTasks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pilotos_background_tasks_total",
			Help: "Post-commit background tasks by result",
		},
		[]string{"task", "status"},
	)

	backgroundTaskDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pilotos_background_task_duration_seconds",
			Help:    "Duration of post-commit background tasks",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"task"},
	)

	rateLimited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pilotos_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		},
		[]string{"path"},
	)
)

// ObserveHTTP registra una petición atendida.
func ObserveHTTP(method, path string, status int, elapsed time.Duration) {
	s := strconv.Itoa(status)
	httpRequestsTotal.WithLabelValues(method, path, s).Inc()
	httpRequestDuration.WithLabelValues(method, path, s).Observe(elapsed.Seconds())
}

// RecordOrderOperation registra una operación sobre órdenes.
func RecordOrderOperation(operation string, success bool) {
	orderOperations.WithLabelValues(operation, result(success)).Inc()
}

// ObserveTask firma compatible con notify.Observer.
func ObserveTask(task string, err error, elapsed time.Duration) {
	backgroundTasks.WithLabelValues(task, result(err == nil)).Inc()
	backgroundTaskDuration.WithLabelValues(task).Observe(elapsed.Seconds())
}

// RecordRateLimited cuenta una petición rechazada por exceso.
func RecordRateLimited(path string) {
	rateLimited.WithLabelValues(path).Inc()
}

func result(ok bool) string {
	if ok {
		return "success"
	}
	return "error"
}
