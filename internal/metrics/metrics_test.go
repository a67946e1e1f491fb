package metrics

import (
	"testing"
	"time"

	"go-payment/internal/payment"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Record(t *testing.T) {
	m := New()
	registry := prometheus.NewRegistry()
	m.MustRegister(registry)

	m.Record(payment.KindCard, OutcomeApproved, 500*time.Millisecond)
	m.Record(payment.KindCard, OutcomeApproved, 500*time.Millisecond)
	m.Record(payment.KindSlip, OutcomeInvalid, 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.payments.WithLabelValues("Card", OutcomeApproved)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.payments.WithLabelValues("Slip", OutcomeInvalid)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.payments.WithLabelValues("Slip", OutcomeApproved)))

	count, err := testutil.GatherAndCount(registry, "payment_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
