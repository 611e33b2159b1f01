package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_NilReceiverIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("GET", "/api/v1/bookings", 200, time.Millisecond)
		m.ObserveDBQuery("query", time.Millisecond, errors.New("boom"))
		m.ObserveAdmission("rejected", "slot_unavailable")
		m.ObserveStatusTransition("agendado", "confirmado")
	})
}

func TestMetrics_ObserveAdmission(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegisterer("grooming", reg)

	m.ObserveAdmission("rejected", "slot_unavailable")
	m.ObserveAdmission("rejected", "slot_unavailable")
	m.ObserveAdmission("admitted", "")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.admissionDecisions.WithLabelValues("rejected", "slot_unavailable")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.admissionDecisions.WithLabelValues("admitted", "")))
}
