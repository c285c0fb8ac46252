package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"outreach-server/internal/bootstrap"
	"outreach-server/internal/config"
	"outreach-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pinger reports whether the database is reachable
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Server encapsulates the HTTP server and the background pipeline
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	deps       *bootstrap.Dependencies
	config     *config.Config
	logger     *observability.Logger

	cancel    context.CancelFunc
	schedDone chan struct{}
}

// New creates a new Server instance
func New(cfg *config.Config, deps *bootstrap.Dependencies, logger *observability.Logger) *Server {
	return &Server{
		config: cfg,
		deps:   deps,
		logger: logger,
	}
}

// Setup configures the HTTP router with middleware and routes
func (s *Server) Setup() {
	s.router = NewRouter(s.deps.Store.DB(), s.deps.Metrics.Registry(), s.logger)
}

// NewRouter builds the operational endpoints: health and Prometheus metrics
func NewRouter(db Pinger, registry *prometheus.Registry, logger *observability.Logger) *gin.Engine {
	router := gin.New()
	router.Use(observability.Middleware(logger))

	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			logger.Error(ctx, "health check failed", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": "database unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	return router
}

// Start begins listening for HTTP requests and starts the scheduled jobs
func (s *Server) Start(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	if s.deps.ClassifyPool != nil {
		// Outlives runCtx so queued replies are drained on shutdown
		if err := s.deps.ClassifyPool.Start(ctx); err != nil {
			cancel()
			return fmt.Errorf("failed to start classification pool: %w", err)
		}
	}

	s.schedDone = make(chan struct{})
	go func() {
		defer close(s.schedDone)
		if err := s.deps.Scheduler.Start(runCtx); err != nil && !errors.Is(err, context.Canceled) {
			s.logger.Error(ctx, "scheduler stopped with error", err)
		}
	}()

	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.config.Server.Port),
		Handler: s.router,
	}

	go func() {
		s.logger.Info(ctx, fmt.Sprintf("Server starting on port %d", s.config.Server.Port))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error(ctx, "server failed to start", err)
			os.Exit(1)
		}
	}()

	return nil
}

// WaitForShutdown blocks until a shutdown signal is received, then gracefully shuts down
func (s *Server) WaitForShutdown(ctx context.Context) error {
	quit := make(chan os.Signal, 1)
	// kill (no param) default sends syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	s.logger.Info(ctx, "Shutting down server...")

	// Stop ticking first; a dispatch pause in progress is interrupted
	s.cancel()
	<-s.schedDone

	if s.deps.ClassifyPool != nil {
		if err := s.deps.ClassifyPool.Drain(context.Background()); err != nil {
			s.logger.Error(ctx, "classification pool did not drain", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	s.deps.Cleanup()

	s.logger.Info(ctx, "Server exited gracefully")
	return nil
}
