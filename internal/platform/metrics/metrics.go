package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	ValidationsTotal   *prometheus.CounterVec
	ValidationDuration *prometheus.HistogramVec
	AuditPublishErrors prometheus.Counter
	RateLimitRejected  prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		ValidationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "tincheck_validations_total",
			Help: "Total number of validation requests by jurisdiction and outcome",
		}, []string{"jurisdiction", "outcome"}),
		ValidationDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tincheck_validation_duration_seconds",
			Help:    "Validation request duration by jurisdiction",
			Buckets: prometheus.DefBuckets,
		}, []string{"jurisdiction"}),
		AuditPublishErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tincheck_audit_publish_errors_total",
			Help: "Total number of audit events that could not be published",
		}),
		RateLimitRejected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tincheck_rate_limit_rejected_total",
			Help: "Total number of requests rejected by the rate limiter",
		}),
	}
}

// ObserveValidation records one validation call.
func (m *Metrics) ObserveValidation(jurisdiction, outcome string, elapsed time.Duration) {
	m.ValidationsTotal.WithLabelValues(jurisdiction, outcome).Inc()
	m.ValidationDuration.WithLabelValues(jurisdiction).Observe(elapsed.Seconds())
}
