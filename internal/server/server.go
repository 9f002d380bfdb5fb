// Package server exposes the trip planner over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/theirongolddev/tripcost/internal/planner"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Config controls the HTTP API runtime behavior.
type Config struct {
	Addr           string
	AllowedOrigins []string
	Currency       string
}

// Server serves the planner API.
type Server struct {
	cfg     Config
	planner *planner.Planner
	metrics *Metrics
	logger  *slog.Logger
	engine  *gin.Engine
}

// New builds a server around p. Metrics are registered against reg;
// a nil logger discards request logs.
func New(cfg Config, p *planner.Planner, reg prometheus.Registerer, logger *slog.Logger) (*Server, error) {
	if p == nil {
		return nil, errors.New("server: nil planner")
	}
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8088"
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	metrics, err := NewMetrics(reg)
	if err != nil {
		return nil, fmt.Errorf("registering metrics: %w", err)
	}

	s := &Server{
		cfg:     cfg,
		planner: p,
		metrics: metrics,
		logger:  logger,
	}
	s.engine = s.routes()
	return s, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Metrics returns the server's collectors.
func (s *Server) Metrics() *Metrics { return s.metrics }

func (s *Server) routes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(Logger(s.logger))
	r.Use(Instrument(s.metrics))
	r.Use(CORS(s.cfg.AllowedOrigins))

	r.GET("/healthz", s.handleHealth)
	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	v1 := r.Group("/v1")
	v1.GET("/catalog", s.handleCatalog)
	v1.POST("/estimate", s.handleEstimate)

	r.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, "not_found", "", "route not found")
	})
	return r
}

// Run serves HTTP until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	s.logger.Info("tripcost api listening", slog.String("addr", s.cfg.Addr))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("tripcost api shutting down")
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return fmt.Errorf("tripcost http server: %w", err)
	}
}
