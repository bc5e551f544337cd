// growthd server — runs the growth pipeline: scheduled sync sessions, the
// meridian bus, the data-lifecycle agent, and the HTTP control surface.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/jackeyunjie/growthd/pkg/agent"
	"github.com/jackeyunjie/growthd/pkg/agents"
	"github.com/jackeyunjie/growthd/pkg/api"
	"github.com/jackeyunjie/growthd/pkg/config"
	"github.com/jackeyunjie/growthd/pkg/database"
	"github.com/jackeyunjie/growthd/pkg/evolution"
	"github.com/jackeyunjie/growthd/pkg/learning"
	"github.com/jackeyunjie/growthd/pkg/lifecycle"
	"github.com/jackeyunjie/growthd/pkg/lineage"
	"github.com/jackeyunjie/growthd/pkg/memory"
	"github.com/jackeyunjie/growthd/pkg/meridian"
	"github.com/jackeyunjie/growthd/pkg/models"
	"github.com/jackeyunjie/growthd/pkg/orchestrator"
	"github.com/jackeyunjie/growthd/pkg/scheduler"
	"github.com/jackeyunjie/growthd/pkg/state"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// newStore selects the shared-memory backend: Redis when KV_REDIS_ADDR is
// set, the in-process map otherwise.
func newStore(ctx context.Context) (memory.Store, error) {
	addr := os.Getenv("KV_REDIS_ADDR")
	if addr == "" {
		store := memory.NewMemoryStore()
		store.StartSweeper(ctx)
		slog.Info("Using in-process shared memory")
		return store, nil
	}
	store, err := memory.NewRedisStore(ctx, addr, os.Getenv("KV_REDIS_PASSWORD"), 0)
	if err != nil {
		return nil, err
	}
	slog.Info("Using Redis shared memory", "addr", addr)
	return store, nil
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	slog.Info("Starting growthd", "http_port", httpPort, "config_dir", *configDir)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

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

	// 3. Shared memory backend
	store, err := newStore(ctx)
	if err != nil {
		slog.Error("Failed to initialize shared memory", "error", err)
		os.Exit(1)
	}
	mem := memory.NewSharedMemory(store)
	defer mem.Close()

	// 4. Agent registry
	registry, err := agents.BuildRegistry(nil)
	if err != nil {
		slog.Error("Failed to build agent registry", "error", err)
		os.Exit(1)
	}
	slog.Info("Agent registry built", "agents", registry.Len())

	// 5. Meridian bus and metrics flusher
	bus := meridian.NewBus(*cfg.Meridian, nil)
	bus.Start(ctx)
	defer bus.Stop()

	flusher := meridian.NewFlusher(bus, dbClient.Client, *cfg.Meridian, nil)
	flusher.Start(ctx)
	defer flusher.Stop()

	// 6. Pipeline services
	lineageSvc := lineage.NewService(dbClient.Client)
	lifecycleAgent := lifecycle.NewAgent(*cfg.Lifecycle, lineageSvc, bus, nil)
	lifecycleAgent.Start(ctx)
	defer lifecycleAgent.Stop()

	cellStates := state.NewCellStateService(dbClient.Client)
	agentStates := state.NewAgentStateService(dbClient.Client)

	runner := orchestrator.NewSyncRunner(*cfg.Orchestrator, registry, mem, busNotifier{bus: bus}, agentStates, nil)
	evolutionEngine := evolution.NewEngine(*cfg.Evolution, mem, nil)
	learningEngine := learning.NewEngine(*cfg.Learning, mem, nil)
	collector := learning.NewCollector(*cfg.Learning, mem, learningEngine, evolutionEngine, nil)
	evolutionEngine.SetRateSource(collector)
	slog.Info("Pipeline services initialized")

	// Content arrives through platform drivers; none are bundled, so the
	// default source yields an empty batch and sessions still cycle.
	source := orchestrator.ContentSourceFunc(func(ctx context.Context, since time.Time) ([]agent.ContentItem, error) {
		return nil, nil
	})

	// 7. Scheduler with the three standard jobs
	sched := scheduler.New(*cfg.Scheduler, dbClient.Client, cellStates, nil)
	err = scheduler.RegisterStandardJobs(sched, scheduler.JobDeps{
		Runner:    runner,
		Source:    source,
		Evolution: evolutionEngine,
		Lifecycle: lifecycleAgent,
	})
	if err != nil {
		slog.Error("Failed to register scheduler jobs", "error", err)
		os.Exit(1)
	}
	if err := sched.Start(ctx); err != nil {
		slog.Error("Failed to start scheduler", "error", err)
		os.Exit(1)
	}
	defer sched.Stop()

	// 8. HTTP control surface; Run blocks until the signal context cancels.
	server := api.NewServer(api.Deps{
		DB:          dbClient,
		Scheduler:   sched,
		Runner:      runner,
		Source:      source,
		Evolution:   evolutionEngine,
		Lifecycle:   lifecycleAgent,
		Collector:   collector,
		Cells:       cellStates,
		AgentStates: agentStates,
	})
	if err := server.Run(ctx, ":"+httpPort); err != nil {
		slog.Error("API server error", "error", err)
	}

	slog.Info("Shutdown complete")
}

// busNotifier publishes session lifecycle events on the control meridian.
type busNotifier struct {
	bus *meridian.Bus
}

func (n busNotifier) SessionStarted(sessionID string) {
	n.bus.SendCommand(context.Background(), "session_started",
		map[string]interface{}{"session_id": sessionID}, "")
}

func (n busNotifier) SessionFinished(session *models.SyncSession) {
	n.bus.Publish(context.Background(), meridian.MeridianData, "session_finished",
		map[string]interface{}{
			"session_id":  session.SessionID,
			"status":      string(session.Status),
			"synthesized": len(session.SynthesizedSignals),
		}, models.PriorityMedium)
}
