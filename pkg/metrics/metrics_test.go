package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegistry("test", prometheus.NewRegistry())

	m.ReservationCreated("microvac", 250)
	m.ReservationCreated("microvac", 250)
	m.ReservationRejected("capacity")
	m.ReservationCancelled("75", 187.5)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ReservationsCreated.WithLabelValues("microvac")))
	assert.Equal(t, 500.0, testutil.ToFloat64(m.RevenueDownPayments))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReservationsRejected.WithLabelValues("capacity")))
	assert.Equal(t, 187.5, testutil.ToFloat64(m.RefundAmount))
}

func TestMetrics_StateSave(t *testing.T) {
	m := NewWithRegistry("test", prometheus.NewRegistry())

	m.ObserveStateSave("file", 3*time.Millisecond, nil)
	m.ObserveStateSave("file", 5*time.Millisecond, errors.New("disk full"))
	m.SetStateSize(4, 9)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.StateSaveErrors.WithLabelValues("file")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.StoredReservations))
	assert.Equal(t, 9.0, testutil.ToFloat64(m.StoredTransactions))
}
