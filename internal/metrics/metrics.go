// Package metrics exposes Prometheus instrumentation on a private registry,
// served on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registry = prometheus.NewRegistry()

	taskOps = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Name: "agentdeck_task_operations_total",
		Help: "Total task lifecycle operations (create, assign, update_status, etc.)",
	}, []string{"operation"})

	notificationsFanned = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Name: "agentdeck_notifications_total",
		Help: "Total notifications written by fan-out",
	})
)

// Handler returns the HTTP handler serving the private registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

// RecordTaskOp counts one successful task lifecycle operation.
func RecordTaskOp(op string) {
	taskOps.WithLabelValues(op).Inc()
}

// RecordNotifications counts notifications written by fan-out.
func RecordNotifications(n int) {
	notificationsFanned.Add(float64(n))
}
