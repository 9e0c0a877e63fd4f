package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors exported on /metrics. A nil *Metrics is a no-op.
type Metrics struct {
	requests            *prometheus.CounterVec
	duration            *prometheus.HistogramVec
	ordersCreated       prometheus.Counter
	invoicesCreated     prometheus.Counter
	deliveriesConfirmed prometheus.Counter
}

// New registers the marketplace collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return nil
	}
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		ordersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Orders created from checkout.",
		}),
		invoicesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "invoices_created_total",
			Help: "Per-seller invoices created from checkout.",
		}),
		deliveriesConfirmed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "deliveries_confirmed_total",
			Help: "Delivery confirmations accepted from sellers.",
		}),
	}
	reg.MustRegister(m.requests, m.duration, m.ordersCreated, m.invoicesCreated, m.deliveriesConfirmed)
	return m
}

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) OrderCreated(invoices int) {
	if m == nil {
		return
	}
	m.ordersCreated.Inc()
	m.invoicesCreated.Add(float64(invoices))
}

func (m *Metrics) DeliveryConfirmed() {
	if m == nil {
		return
	}
	m.deliveriesConfirmed.Inc()
}
