// Package metrics exposes storefront counters in Prometheus format.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "storefront"

// Metrics holds the storefront counters. A nil *Metrics records nothing.
type Metrics struct {
	registry        *prometheus.Registry
	cartMutations   *prometheus.CounterVec
	checkouts       *prometheus.CounterVec
	screenViews     *prometheus.CounterVec
	ordersPublished *prometheus.CounterVec
}

// New registers the storefront counters on a fresh registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		cartMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cart_mutations_total",
			Help:      "Cart mutations by operation.",
		}, []string{"op"}),
		checkouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkouts_total",
			Help:      "Checkout attempts by result.",
		}, []string{"result"}),
		screenViews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "screen_views_total",
			Help:      "Screens shown.",
		}, []string{"screen"}),
		ordersPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_published_total",
			Help:      "Order notifications by result.",
		}, []string{"result"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		m.cartMutations,
		m.checkouts,
		m.screenViews,
		m.ordersPublished,
	)
	return m
}

// CartMutation counts one add, remove, buy_now or clear
func (m *Metrics) CartMutation(op string) {
	if m == nil {
		return
	}
	m.cartMutations.WithLabelValues(op).Inc()
}

// Checkout counts one payment attempt
func (m *Metrics) Checkout(result string) {
	if m == nil {
		return
	}
	m.checkouts.WithLabelValues(result).Inc()
}

// ScreenView counts one screen transition
func (m *Metrics) ScreenView(screen string) {
	if m == nil {
		return
	}
	m.screenViews.WithLabelValues(screen).Inc()
}

// OrderPublished counts one order notification attempt
func (m *Metrics) OrderPublished(ok bool) {
	if m == nil {
		return
	}
	result := "ok"
	if !ok {
		result = "error"
	}
	m.ordersPublished.WithLabelValues(result).Inc()
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
