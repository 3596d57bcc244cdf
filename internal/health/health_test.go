package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bookstore/storefront/internal/metrics"
	"github.com/bookstore/storefront/pkg/logger"
	"github.com/stretchr/testify/assert"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

type broker bool

func (b broker) IsHealthy() bool { return bool(b) }

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealthy(t *testing.T) {
	log := logger.NewLogger("test", "error")
	ok := pingFunc(func(context.Context) error { return nil })

	rec := get(NewHandler(ok, nil, nil, log), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", rec.Body.String())

	rec = get(NewHandler(ok, broker(true), nil, log), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUnhealthyStorage(t *testing.T) {
	log := logger.NewLogger("test", "error")
	down := pingFunc(func(context.Context) error { return errors.New("connection refused") })

	rec := get(NewHandler(down, nil, nil, log), "/healthz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "storage")
}

func TestUnhealthyBroker(t *testing.T) {
	log := logger.NewLogger("test", "error")
	ok := pingFunc(func(context.Context) error { return nil })

	rec := get(NewHandler(ok, broker(false), nil, log), "/healthz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "rabbitmq")
}

func TestMetricsRoute(t *testing.T) {
	log := logger.NewLogger("test", "error")
	ok := pingFunc(func(context.Context) error { return nil })
	m := metrics.New()
	m.Checkout("success")

	rec := get(NewHandler(ok, nil, m, log), "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "storefront_checkouts_total")

	rec = get(NewHandler(ok, nil, nil, log), "/metrics")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
