package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/alleslabs/aldus-api/internal/logger"
	"github.com/alleslabs/aldus-api/pkg/config"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const systemMetricsInterval = 15 * time.Second

// Server is the HTTP server that exposes Prometheus metrics.
type Server struct {
	config *config.MetricsConfig
	server *http.Server
	log    *logger.Logger
}

// NewServer creates a new metrics server.
func NewServer(cfg *config.MetricsConfig, log *logger.Logger) *Server {
	mux := http.NewServeMux()
	mux.Handle(cfg.Path, promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return &Server{
		config: cfg,
		log:    log,
		server: &http.Server{
			Addr:              cfg.ListenAddress,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// Handler returns the metrics mux, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Run serves metrics until ctx is cancelled, refreshing system gauges in the background.
func (s *Server) Run(ctx context.Context) error {
	if !s.config.Enabled {
		return nil
	}

	go s.updateSystemMetrics(ctx)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	s.log.Infof("Metrics server listening on %s%s", s.config.ListenAddress, s.config.Path)

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("metrics server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown metrics server: %w", err)
	}

	return nil
}

// updateSystemMetrics periodically updates system-level metrics.
func (s *Server) updateSystemMetrics(ctx context.Context) {
	UpdateSystemMetrics()

	ticker := time.NewTicker(systemMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			UpdateSystemMetrics()
		case <-ctx.Done():
			return
		}
	}
}
