// Package health serves /healthz and /metrics for the storefront process.
package health

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/bookstore/storefront/internal/metrics"
	"go.uber.org/zap"
)

// Pinger is a dependency that can report liveness
type Pinger interface {
	Ping(ctx context.Context) error
}

// Broker reports whether the message broker connection is usable
type Broker interface {
	IsHealthy() bool
}

// NewHandler builds the health/metrics mux. broker may be nil when order
// notifications are disabled.
func NewHandler(store Pinger, broker Broker, m *metrics.Metrics, log *zap.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", healthHandler(store, broker, log))
	if m != nil {
		mux.Handle("/metrics", m.Handler())
	}
	return mux
}

func healthHandler(store Pinger, broker Broker, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		// Check storage connection
		if err := store.Ping(ctx); err != nil {
			log.Error("Storage health check failed", zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("unhealthy: storage connection failed"))
			return
		}

		// Check RabbitMQ connection
		if broker != nil && !broker.IsHealthy() {
			log.Error("RabbitMQ health check failed")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("unhealthy: rabbitmq connection failed"))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("healthy"))
	}
}

// Server is the background health HTTP server
type Server struct {
	srv *http.Server
	log *zap.Logger
}

// NewServer creates a server listening on port
func NewServer(port string, handler http.Handler, log *zap.Logger) *Server {
	return &Server{
		srv: &http.Server{
			Addr:         fmt.Sprintf(":%s", port),
			Handler:      handler,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		log: log,
	}
}

// Start serves in a background goroutine
func (s *Server) Start() {
	go func() {
		s.log.Info("Starting HTTP server", zap.String("address", s.srv.Addr))
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Error("Failed to serve HTTP", zap.Error(err))
		}
	}()
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
