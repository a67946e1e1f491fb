package metrics

import (
	"time"

	"go-payment/internal/payment"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeApproved    = "approved"
	OutcomeInvalid     = "invalid"
	OutcomeInterrupted = "interrupted"
)

type Metrics struct {
	payments *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func New() *Metrics {
	return &Metrics{
		payments: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payments_total",
				Help: "Total number of payment requests by kind and outcome.",
			},
			[]string{"kind", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "payment_duration_seconds",
				Help:    "Time spent constructing and paying a payment in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"kind"},
		),
	}
}

func (m *Metrics) MustRegister(registerer prometheus.Registerer) {
	registerer.MustRegister(m.payments, m.duration)
}

func (m *Metrics) Record(kind payment.Kind, outcome string, elapsed time.Duration) {
	m.payments.WithLabelValues(string(kind), outcome).Inc()
	m.duration.WithLabelValues(string(kind)).Observe(elapsed.Seconds())
}
