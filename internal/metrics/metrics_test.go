package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New()
	m.CartMutation("add")
	m.CartMutation("add")
	m.Checkout("success")
	m.ScreenView("cart")
	m.OrderPublished(false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.cartMutations.WithLabelValues("add")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.checkouts.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.screenViews.WithLabelValues("cart")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ordersPublished.WithLabelValues("error")))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.CartMutation("add")
		m.Checkout("invalid")
		m.ScreenView("home")
		m.OrderPublished(true)
	})
}

func TestHandler(t *testing.T) {
	m := New()
	m.CartMutation("remove")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `storefront_cart_mutations_total{op="remove"} 1`)
}
