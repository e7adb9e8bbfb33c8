// Package server exposes the candidate store over the JSON HTTP API the
// board client persists to
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thenoetrevino/shortlist/internal/services/candidate"
	"github.com/thenoetrevino/shortlist/internal/services/job"
)

const shutdownTimeout = 5 * time.Second

// Server is the remote candidate store
type Server struct {
	addr         string
	engine       *gin.Engine
	metrics      *Metrics
	httpServer   *http.Server
	shutdownOnce sync.Once
}

// New builds the router; call Start to listen on addr
func New(addr string, jobs job.Service, candidates candidate.Service) *Server {
	metrics := NewMetrics()
	engine := gin.New()
	engine.Use(gin.Recovery(), requestID(), countRequests(metrics), requestLogger())

	SetupRoutes(engine, NewHandler(jobs, candidates, metrics))

	return &Server{
		addr:    addr,
		engine:  engine,
		metrics: metrics,
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// SetupRoutes registers the API on r
func SetupRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/metrics", h.Metrics)

		jobs := api.Group("/jobs")
		{
			jobs.GET("", h.ListJobs)
			jobs.GET("/:jobId", h.GetJob)
			jobs.GET("/:jobId/candidates", h.ListCandidates)
			jobs.PATCH("/:jobId/candidates/:candidateId", h.UpdateCandidate)
		}
	}
}

// Handler returns the HTTP handler, for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Metrics returns the server's counters
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Start listens on the configured address and serves until ctx is cancelled
// or the listener fails
func (s *Server) Start(ctx context.Context) error {
	lc := net.ListenConfig{}
	listener, err := lc.Listen(ctx, "tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve serves on listener until ctx is cancelled
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	slog.Info("server starting", "addr", listener.Addr().String())

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		slog.Info("server context cancelled, shutting down")
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.shutdownOnce.Do(func() {
		err = s.httpServer.Shutdown(ctx)
		if err != nil {
			slog.Error("error shutting down server", "error", err)
		}
	})
	return err
}
