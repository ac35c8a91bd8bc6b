package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/alleslabs/aldus-api/internal/logger"
	"github.com/alleslabs/aldus-api/pkg/api/docs"
	"github.com/alleslabs/aldus-api/pkg/config"
)

// Ensure docs are initialized
var _ = docs.SwaggerInfo

const shutdownCtxTimeout = 10 * time.Second

// Server represents the API HTTP server.
type Server struct {
	config  *config.APIConfig
	handler *Handler
	server  *http.Server
	log     *logger.Logger
}

// NewServer creates a new API server.
func NewServer(cfg *config.APIConfig, svc DataService, log *logger.Logger) *Server {
	handler := NewHandler(svc, log)

	mux := http.NewServeMux()
	base := cfg.RoutePrefix()

	mux.HandleFunc("GET /health", handler.Health)

	// Chain/network scoped datasets
	mux.HandleFunc("GET "+base+"/{chain}/{network}/accounts", handler.ListAccounts)
	mux.HandleFunc("GET "+base+"/{chain}/{network}/accounts/{address}", handler.GetAccount)
	mux.HandleFunc("GET "+base+"/{chain}/{network}/codes", handler.ListCodes)
	mux.HandleFunc("GET "+base+"/{chain}/{network}/codes/{id}", handler.GetCode)
	mux.HandleFunc("GET "+base+"/{chain}/{network}/contracts", handler.ListContracts)
	mux.HandleFunc("GET "+base+"/{chain}/{network}/contracts/{address}", handler.GetContract)
	mux.HandleFunc("GET "+base+"/{chain}/{network}/modules", handler.ListModules)
	mux.HandleFunc("GET "+base+"/{chain}/{network}/modules/{address}/{name}", handler.GetModule)
	mux.HandleFunc("GET "+base+"/{chain}/{network}/assets", handler.ListAssets)
	mux.HandleFunc("GET "+base+"/{chain}/{network}/entities", handler.ListEntities)
	mux.HandleFunc("GET "+base+"/{chain}/{network}/entities/{slug}", handler.GetEntity)

	// Global datasets
	mux.HandleFunc("GET "+base+"/entities", handler.ListRawEntities)
	mux.HandleFunc("GET "+base+"/entities/{slug}", handler.GetRawEntity)
	mux.HandleFunc("GET "+base+"/globals/chains", handler.ListChains)
	mux.HandleFunc("GET "+base+"/globals/assets", handler.ListGlobalAssets)

	// Swagger documentation endpoints. The UI is a flat set of files, so a single
	// segment pattern keeps it clear of root-mounted {chain}/{network} routes.
	swagger := httpSwagger.Handler(
		httpSwagger.URL(cfg.SwaggerURL),
		httpSwagger.DeepLinking(true),
	)
	mux.Handle("GET /swagger/{$}", swagger)
	mux.Handle("GET /swagger/{file}", swagger)

	// Apply middleware. RequestID must sit outside Logging, which must see the request
	// the mux stamps with the matched pattern.
	var h http.Handler = mux
	h = RecoveryMiddleware(log)(h)
	h = LoggingMiddleware(log)(h)
	h = RequestIDMiddleware()(h)

	if cfg.CORS.IsEnabled() {
		h = CORSMiddleware(cfg.CORS.AllowedOrigins)(h)
	}

	// Use configured timeouts (defaults already applied in config.ApplyDefaults)
	httpServer := &http.Server{
		Addr:         cfg.ListenAddress,
		Handler:      h,
		ReadTimeout:  cfg.ReadTimeout.Duration,
		WriteTimeout: cfg.WriteTimeout.Duration,
		IdleTimeout:  cfg.IdleTimeout.Duration,
	}

	return &Server{
		config:  cfg,
		handler: handler,
		server:  httpServer,
		log:     log,
	}
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start serves until ctx is cancelled, then shuts down gracefully. A listener failure is
// returned immediately.
func (s *Server) Start(ctx context.Context) error {
	s.log.Infof("Starting API server on %s", s.config.ListenAddress)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("API server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownCtxTimeout)
	defer cancel()

	s.log.Info("Shutting down API server...")
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("API server shutdown error: %w", err)
	}

	s.log.Info("API server stopped")
	return nil
}
