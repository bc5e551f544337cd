// Package api exposes the control surface over HTTP: scheduler control and
// status, evolution triggers and reports, and the data-plane health report.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jackeyunjie/growthd/pkg/database"
	"github.com/jackeyunjie/growthd/pkg/evolution"
	"github.com/jackeyunjie/growthd/pkg/learning"
	"github.com/jackeyunjie/growthd/pkg/lifecycle"
	"github.com/jackeyunjie/growthd/pkg/orchestrator"
	"github.com/jackeyunjie/growthd/pkg/scheduler"
	"github.com/jackeyunjie/growthd/pkg/state"
)

// Server wires the pipeline services to the HTTP surface.
type Server struct {
	db          *database.Client
	scheduler   *scheduler.Scheduler
	runner      *orchestrator.SyncRunner
	source      orchestrator.ContentSource
	evolution   *evolution.Engine
	lifecycle   *lifecycle.Agent
	collector   *learning.Collector
	cells       *state.CellStateService
	agentStates *state.AgentStateService
	logger      *slog.Logger

	httpServer *http.Server
}

// Deps are the services the server exposes.
type Deps struct {
	DB          *database.Client
	Scheduler   *scheduler.Scheduler
	Runner      *orchestrator.SyncRunner
	Source      orchestrator.ContentSource
	Evolution   *evolution.Engine
	Lifecycle   *lifecycle.Agent
	Collector   *learning.Collector
	Cells       *state.CellStateService
	AgentStates *state.AgentStateService
	Logger      *slog.Logger
}

// NewServer creates the API server.
func NewServer(deps Deps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		db:          deps.DB,
		scheduler:   deps.Scheduler,
		runner:      deps.Runner,
		source:      deps.Source,
		evolution:   deps.Evolution,
		lifecycle:   deps.Lifecycle,
		collector:   deps.Collector,
		cells:       deps.Cells,
		agentStates: deps.AgentStates,
		logger:      logger.With("component", "api"),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger(), securityHeaders())

	router.GET("/healthz", s.healthz)

	sched := router.Group("/scheduler")
	{
		sched.POST("/p0/start", s.startScheduler)
		sched.POST("/p0/trigger", s.triggerSync)
		sched.GET("/p0/status", s.syncStatus)
		sched.PUT("/jobs/:job_id/schedule", s.updateSchedule)
		sched.GET("/jobs/:job_id/history", s.jobHistory)
	}

	evo := router.Group("/evolution")
	{
		evo.POST("/trigger", s.triggerEvolution)
		evo.GET("/report/:report_id", s.evolutionReport)
		evo.POST("/deploy/:agent_type/confirm", s.confirmDeploy)
	}

	router.GET("/data/health", s.dataHealth)
	router.POST("/learning/feedback", s.submitFeedback)
	return router
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("API server listening", "addr", addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("api server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("api server shutdown failed: %w", err)
	}
	s.logger.Info("API server stopped")
	return nil
}

// requestLogger logs one structured line per request.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("Request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}

// securityHeaders sets standard security response headers.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}
