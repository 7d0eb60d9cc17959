// Package api exposes the HTTP surface: run submission and inspection,
// gate decisions, health, and metrics.
package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/outreachkit/prospector/pkg/config"
	"github.com/outreachkit/prospector/pkg/database"
	"github.com/outreachkit/prospector/pkg/events"
	"github.com/outreachkit/prospector/pkg/gates"
	"github.com/outreachkit/prospector/pkg/queue"
	"github.com/outreachkit/prospector/pkg/services"
	"github.com/outreachkit/prospector/pkg/tools/adapters"
)

// Server wires the HTTP handlers to the service layer.
type Server struct {
	echo *echo.Echo
	http *http.Server

	cfg          *config.Config
	dbClient     *database.Client
	runService   *services.RunService
	taskService  *services.TaskService
	gateService  *services.GateService
	budgetSvc    *services.BudgetService
	eventService *services.EventService
	gateFlow     *gates.Service
	publisher    *events.Publisher
	workerPool   *queue.WorkerPool
	briefFetcher *adapters.FetchAdapter
}

// NewServer creates the API server and registers all routes.
func NewServer(
	cfg *config.Config,
	dbClient *database.Client,
	runService *services.RunService,
	taskService *services.TaskService,
	gateService *services.GateService,
	budgetSvc *services.BudgetService,
	eventService *services.EventService,
	gateFlow *gates.Service,
	publisher *events.Publisher,
	workerPool *queue.WorkerPool,
) *Server {
	s := &Server{
		cfg:          cfg,
		dbClient:     dbClient,
		runService:   runService,
		taskService:  taskService,
		gateService:  gateService,
		budgetSvc:    budgetSvc,
		eventService: eventService,
		gateFlow:     gateFlow,
		publisher:    publisher,
		workerPool:   workerPool,
		briefFetcher: adapters.NewFetchAdapter(adapters.FetchConfig{}),
	}
	s.echo = s.buildEcho()
	return s
}

func (s *Server) buildEcho() *echo.Echo {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(securityHeaders())
	e.Use(metricsMiddleware())

	// Unauthenticated probes.
	e.GET("/health", s.healthHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/api/v1")

	v1.POST("/runs", s.createRunHandler)
	v1.GET("/runs", s.listRunsHandler)
	v1.GET("/runs/:id", s.getRunHandler)
	v1.GET("/runs/:id/events", s.listRunEventsHandler)
	v1.POST("/runs/:id/cancel", s.cancelRunHandler)

	v1.GET("/gates/pending", s.pendingGatesHandler)
	v1.GET("/gates/:id", s.getGateHandler)
	v1.POST("/gates/:id/decision", s.gateDecisionHandler)

	return e
}

// Start begins serving on the given address. Blocks until the server
// stops.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

// Shutdown gracefully drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Handler exposes the routing tree for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}
