package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	ReservationsCreated  *prometheus.CounterVec
	ReservationsRejected *prometheus.CounterVec
	Cancellations        *prometheus.CounterVec
	RefundAmount         prometheus.Counter
	RevenueDownPayments  prometheus.Counter

	StateSaveDuration  *prometheus.HistogramVec
	StateSaveErrors    *prometheus.CounterVec
	StoredReservations prometheus.Gauge
	StoredTransactions prometheus.Gauge
}

// New создает и регистрирует метрики в глобальном реестре
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики и регистрирует их в указанном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		ReservationsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservations_created_total",
			Help:        "Admitted reservations by resource kind",
			ConstLabels: constLabels,
		}, []string{"resource"}),

		ReservationsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservations_rejected_total",
			Help:        "Rejected reservation attempts by rule",
			ConstLabels: constLabels,
		}, []string{"rule"}),

		Cancellations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservations_cancelled_total",
			Help:        "Cancelled reservations by refund percent",
			ConstLabels: constLabels,
		}, []string{"percent"}),

		RefundAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "refunds_amount_total",
			Help:        "Sum of refunds paid out",
			ConstLabels: constLabels,
		}),

		RevenueDownPayments: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "down_payments_amount_total",
			Help:        "Sum of down payments collected",
			ConstLabels: constLabels,
		}),

		StateSaveDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "state_save_duration_seconds",
			Help:        "Latency of persisting the reservation state",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"driver"}),

		StateSaveErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "state_save_errors_total",
			Help:        "Failed state persist attempts",
			ConstLabels: constLabels,
		}, []string{"driver"}),

		StoredReservations: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "stored_reservations",
			Help:        "Live reservations in the committed state",
			ConstLabels: constLabels,
		}),

		StoredTransactions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "stored_transactions",
			Help:        "Ledger entries in the committed state",
			ConstLabels: constLabels,
		}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.ReservationsCreated,
		m.ReservationsRejected,
		m.Cancellations,
		m.RefundAmount,
		m.RevenueDownPayments,
		m.StateSaveDuration,
		m.StateSaveErrors,
		m.StoredReservations,
		m.StoredTransactions,
	)

	return m
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route, status string, d time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ReservationCreated фиксирует принятое бронирование
func (m *Metrics) ReservationCreated(resource string, downPayment float64) {
	m.ReservationsCreated.WithLabelValues(resource).Inc()
	m.RevenueDownPayments.Add(downPayment)
}

// ReservationRejected фиксирует отказ по правилу допуска
func (m *Metrics) ReservationRejected(rule string) {
	m.ReservationsRejected.WithLabelValues(rule).Inc()
}

// ReservationCancelled фиксирует отмену и сумму возврата
func (m *Metrics) ReservationCancelled(percent string, refund float64) {
	m.Cancellations.WithLabelValues(percent).Inc()
	m.RefundAmount.Add(refund)
}

// ObserveStateSave фиксирует длительность сохранения состояния
func (m *Metrics) ObserveStateSave(driver string, d time.Duration, err error) {
	m.StateSaveDuration.WithLabelValues(driver).Observe(d.Seconds())
	if err != nil {
		m.StateSaveErrors.WithLabelValues(driver).Inc()
	}
}

// SetStateSize обновляет размеры зафиксированного состояния
func (m *Metrics) SetStateSize(reservations, transactions int) {
	m.StoredReservations.Set(float64(reservations))
	m.StoredTransactions.Set(float64(transactions))
}
