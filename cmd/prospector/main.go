// Prospector orchestrator server — provides the HTTP control plane,
// runs the queue workers, and drives workflow runs through the engine.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/outreachkit/prospector/pkg/agent"
	"github.com/outreachkit/prospector/pkg/agent/logics"
	"github.com/outreachkit/prospector/pkg/api"
	"github.com/outreachkit/prospector/pkg/budget"
	"github.com/outreachkit/prospector/pkg/cleanup"
	"github.com/outreachkit/prospector/pkg/config"
	"github.com/outreachkit/prospector/pkg/database"
	"github.com/outreachkit/prospector/pkg/events"
	"github.com/outreachkit/prospector/pkg/gates"
	"github.com/outreachkit/prospector/pkg/metrics"
	"github.com/outreachkit/prospector/pkg/queue"
	"github.com/outreachkit/prospector/pkg/resilience"
	"github.com/outreachkit/prospector/pkg/scheduler"
	"github.com/outreachkit/prospector/pkg/services"
	"github.com/outreachkit/prospector/pkg/slack"
	"github.com/outreachkit/prospector/pkg/tools"
	"github.com/outreachkit/prospector/pkg/workflow"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting Prospector",
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Release runs this pod held before a crash so any worker can
	// reclaim them from their last checkpoint.
	if err := queue.ReleaseStartupOrphans(ctx, dbClient.Client, podID, cfg.Queue.OrphanThreshold); err != nil {
		slog.Error("Failed to release startup orphans", "error", err)
		// Non-fatal — the periodic orphan scan will catch them
	}

	// 4. Domain services over the ent client
	runService := services.NewRunService(dbClient.Client)
	taskService := services.NewTaskService(dbClient.Client)
	invocationService := services.NewInvocationService(dbClient.Client)
	checkpointService := services.NewCheckpointService(dbClient.Client)
	gateService := services.NewGateService(dbClient.Client)
	budgetService := services.NewBudgetService(dbClient.Client)
	artifactService := services.NewArtifactService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	snapshotService := services.NewSnapshotService(dbClient.Client)
	slog.Info("Services initialized")

	// 5. Slack notifier (nil when unconfigured; all call sites are nil-safe)
	var notifier *slack.Service
	if cfg.Slack != nil && cfg.Slack.Enabled {
		notifier = slack.NewService(slack.ServiceConfig{
			Token:        os.Getenv(cfg.Slack.TokenEnv),
			Channel:      cfg.Slack.Channel,
			DashboardURL: cfg.DashboardURL,
		})
	}
	if notifier != nil {
		slog.Info("Slack notifications enabled", "channel", cfg.Slack.Channel)
	} else {
		slog.Info("Slack notifications disabled")
	}

	// 6. Run event publisher and cross-pod NOTIFY listener. The hub
	// routes gate-decision notices to local Await waiters.
	publisher := events.NewPublisher(dbClient.DB())
	hub := events.NewHub()
	listener := events.NewNotifyListener(dbConfig.DSN(), hub)
	if err := listener.Start(ctx); err != nil {
		slog.Error("Failed to start NOTIFY listener", "error", err)
		os.Exit(1)
	}
	defer listener.Stop(ctx)
	if err := listener.Subscribe(ctx, events.GateDecisionsChannel); err != nil {
		slog.Error("Failed to subscribe to gate decisions", "error", err)
		os.Exit(1)
	}

	// 7. Resilience registries, warm-started from persisted snapshots
	breakers := resilience.NewBreakerRegistry(cfg.BreakerDefault, cfg.ToolBreakers)
	limiters := resilience.NewLimiterRegistry(cfg.LimiterDefault, cfg.ToolLimiters)
	if snaps, err := snapshotService.LoadBreakerSnapshots(ctx); err != nil {
		slog.Warn("Failed to load breaker snapshots, starting cold", "error", err)
	} else {
		breakers.RestoreAll(snaps)
	}
	if snaps, err := snapshotService.LoadLimiterSnapshots(ctx, 5*time.Minute); err != nil {
		slog.Warn("Failed to load limiter snapshots, starting cold", "error", err)
	} else {
		limiters.RestoreAll(snaps)
	}

	// 8. Budget governor and tool router
	governor := budget.NewGovernor(budgetService, notifier)
	router := tools.NewRouter(
		cfg.ToolRegistry,
		breakers,
		limiters,
		governor,
		invocationService,
		cfg.RetryDefault,
		cfg.ToolRetries,
	)
	slog.Info("Tool router initialized",
		"tools", cfg.Stats().Tools, "routes", cfg.Stats().Routes)

	// 9. Scheduler lanes and agent runtime
	dispatcher := scheduler.NewDispatcher(cfg.Scheduler)
	if err := dispatcher.Start(ctx); err != nil {
		slog.Error("Failed to start scheduler", "error", err)
		os.Exit(1)
	}

	registry := agent.NewRegistry()
	if err := logics.RegisterAll(registry); err != nil {
		slog.Error("Failed to register agent logics", "error", err)
		os.Exit(1)
	}
	runtime := agent.NewRuntime(
		taskService, checkpointService, artifactService,
		router, dispatcher, cfg.Runtime,
	)
	slog.Info("Agent runtime initialized", "agents", len(registry.Names()))

	// 10. Gate service, decision wakeups, and expiry sweeper
	gateFlow := gates.NewService(gateService, notifier, cfg.Gates)
	hub.HandleGateDecisions(gateFlow)
	sweeperCtx, sweeperCancel := context.WithCancel(ctx)
	sweeper := gates.NewSweeper(gateFlow, time.Minute)
	sweeper.Start(sweeperCtx)

	// 11. Workflow engine
	engine := workflow.NewEngine(
		runService, taskService, artifactService,
		gateFlow, registry, runtime,
		governor, router,
		publisher, notifier,
		cfg.Engine,
	)

	// 12. Start worker pool (before HTTP server)
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, engine, notifier)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 13. Retention sweeper and cluster-state metrics
	cleanupSvc := cleanup.NewService(cfg.Retention, runService, eventService)
	cleanupSvc.Start(ctx)
	prometheus.MustRegister(metrics.NewStateCollector(dbClient.Client))

	// 14. Create and start HTTP server (non-blocking)
	httpServer := api.NewServer(
		cfg, dbClient,
		runService, taskService, gateService, budgetService, eventService,
		gateFlow, publisher, workerPool,
	)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Prospector started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 15. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 16. Graceful shutdown. Stop claiming first; active runs get the
	// queue's graceful window to reach a checkpoint or gate wait.
	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-time.After(cfg.Queue.GracefulShutdownTimeout):
		slog.Warn("Worker pool shutdown timeout exceeded")
	}

	sweeperCancel()
	sweeper.Wait()
	cleanupSvc.Stop()
	dispatcher.Stop()

	// Persist breaker/limiter state for warm restart.
	snapCtx, snapCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := snapshotService.SaveBreakerSnapshots(snapCtx, breakers.Snapshots()); err != nil {
		slog.Error("Failed to save breaker snapshots", "error", err)
	}
	if err := snapshotService.SaveLimiterSnapshots(snapCtx, limiters.Snapshots()); err != nil {
		slog.Error("Failed to save limiter snapshots", "error", err)
	}
	snapCancel()

	// Shutdown HTTP server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Prospector stopped")
}
