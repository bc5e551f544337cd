// Package orchestrator runs the daily sync session: P0 perception fan-out,
// cross-quadrant synthesis, insight generation, persistence, then the P1 and
// P2 fan-outs. At most one session runs per orchestrator at a time.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackeyunjie/growthd/pkg/agent"
	"github.com/jackeyunjie/growthd/pkg/config"
	"github.com/jackeyunjie/growthd/pkg/memory"
	"github.com/jackeyunjie/growthd/pkg/models"
	"github.com/jackeyunjie/growthd/pkg/synthesis"
)

// Sentinel errors for session control.
var (
	// ErrSessionInProgress indicates a session is already running.
	ErrSessionInProgress = errors.New("sync session already in progress")
)

// ContentSource supplies the content batch for a session. Platform drivers
// implement it; tests inject fixed batches.
type ContentSource interface {
	FetchContent(ctx context.Context, since time.Time) ([]agent.ContentItem, error)
}

// ContentSourceFunc adapts a function to the ContentSource interface.
type ContentSourceFunc func(ctx context.Context, since time.Time) ([]agent.ContentItem, error)

// FetchContent implements ContentSource.
func (f ContentSourceFunc) FetchContent(ctx context.Context, since time.Time) ([]agent.ContentItem, error) {
	return f(ctx, since)
}

// Notifier receives session lifecycle events. The meridian bus implements
// it; a nil notifier is valid.
type Notifier interface {
	SessionStarted(sessionID string)
	SessionFinished(session *models.SyncSession)
}

// ExecutionRecorder persists per-agent execution stats after each phase.
// The agent state service implements it; a nil recorder is valid.
type ExecutionRecorder interface {
	RecordExecution(ctx context.Context, agentID string, duration time.Duration, failed bool) error
}

// SyncRunner orchestrates sync sessions over the registered agents.
type SyncRunner struct {
	cfg      config.OrchestratorConfig
	registry *agent.Registry
	mem      *memory.SharedMemory
	synth    *synthesis.Engine
	notifier Notifier
	states   ExecutionRecorder
	logger   *slog.Logger

	// running serializes sessions: TryLock fails fast instead of queueing.
	running sync.Mutex

	histMu  sync.Mutex
	history []*models.SyncSession

	now func() time.Time
}

// NewSyncRunner builds a runner. notifier and states may be nil.
func NewSyncRunner(cfg config.OrchestratorConfig, registry *agent.Registry, mem *memory.SharedMemory, notifier Notifier, states ExecutionRecorder, logger *slog.Logger) *SyncRunner {
	if logger == nil {
		logger = slog.Default()
	}
	return &SyncRunner{
		cfg:      cfg,
		registry: registry,
		mem:      mem,
		synth:    synthesis.NewEngine(),
		notifier: notifier,
		states:   states,
		logger:   logger.With("component", "orchestrator"),
		now:      time.Now,
	}
}

// RunSession executes one full sync cycle over the given content batch.
// It returns ErrSessionInProgress when a session is already running. The
// returned session is failed only on synthesis or persistence errors;
// individual agent failures are isolated into their reports.
func (r *SyncRunner) RunSession(ctx context.Context, content []agent.ContentItem) (*models.SyncSession, error) {
	if !r.running.TryLock() {
		return nil, ErrSessionInProgress
	}
	defer r.running.Unlock()

	started := r.now().UTC()
	session := &models.SyncSession{
		SessionID:    "sync-" + started.Format(time.RFC3339),
		StartedAt:    started,
		Status:       models.SessionRunning,
		AgentReports: make(map[string]models.AgentReport),
	}
	log := r.logger.With("session_id", session.SessionID)
	log.Info("Sync session started", "content_items", len(content))
	if r.notifier != nil {
		r.notifier.SessionStarted(session.SessionID)
	}

	// Step 1: snapshot shared memory once; every agent sees the same view.
	snapshot := agent.Snapshot{
		RecentSignals: r.recentSignals(ctx),
		LearningState: r.mem.LearningState(ctx),
	}

	// Step 2: P0 perception fan-out.
	session.AgentReports = runPhase(ctx, r.invocations(ctx, session.SessionID, agent.P0IDs, content, snapshot), r.agentTimeout())
	r.recordExecutions(ctx, session.AgentReports)

	// Step 3: merge this cycle's signals. Agents run in canonical quadrant
	// order, and within the phase a later writer wins a duplicated id.
	cycleSignals := mergeSignals(session.AgentReports, agent.P0IDs)

	// Step 4: cross-quadrant synthesis.
	if r.cfg.EnableCrossSynthesis {
		session.SynthesizedSignals = r.synth.Synthesize(cycleSignals, snapshot.LearningState)
	}

	// Step 5: session insights.
	session.Insights = buildInsights(session.AgentReports, session.SynthesizedSignals)

	// Step 6: persist signals and the session snapshot. Failure here fails
	// the session.
	if err := r.persist(ctx, session, cycleSignals); err != nil {
		return r.finish(ctx, session, err), err
	}

	// Step 7: downstream fan-outs read the enriched snapshot.
	downstream := snapshot
	downstream.RecentSignals = append(downstream.RecentSignals, cycleSignals...)
	downstream.CrossSignals = session.SynthesizedSignals

	if r.cfg.EnableP1Trigger {
		session.P1Results = runPhase(ctx, r.invocations(ctx, session.SessionID, agent.P1IDs, nil, downstream), r.agentTimeout())
		r.recordExecutions(ctx, session.P1Results)
	}
	if r.cfg.EnableP2Trigger {
		session.P2Results = runPhase(ctx, r.invocations(ctx, session.SessionID, agent.P2IDs, nil, downstream), r.agentTimeout())
		r.recordExecutions(ctx, session.P2Results)
	}

	return r.finish(ctx, session, nil), nil
}

// finish seals the session, re-persists the terminal snapshot, and records
// it in the bounded history.
func (r *SyncRunner) finish(ctx context.Context, session *models.SyncSession, cause error) *models.SyncSession {
	completed := r.now().UTC()
	if completed.Before(session.StartedAt) {
		completed = session.StartedAt
	}
	session.CompletedAt = &completed
	if cause != nil {
		session.Status = models.SessionFailed
		session.Error = cause.Error()
		r.logger.Error("Sync session failed", "session_id", session.SessionID, "error", cause)
	} else {
		session.Status = models.SessionCompleted
		r.logger.Info("Sync session completed",
			"session_id", session.SessionID,
			"synthesized", len(session.SynthesizedSignals),
			"duration", completed.Sub(session.StartedAt))
	}

	if err := r.mem.SaveSession(ctx, session); err != nil {
		r.logger.Error("Failed to persist terminal session snapshot", "session_id", session.SessionID, "error", err)
	}

	r.histMu.Lock()
	r.history = append(r.history, session)
	if limit := r.cfg.SessionHistoryLimit; limit > 0 && len(r.history) > limit {
		r.history = r.history[len(r.history)-limit:]
	}
	r.histMu.Unlock()

	if r.notifier != nil {
		r.notifier.SessionFinished(session)
	}
	return session
}

// History returns the retained sessions, oldest first.
func (r *SyncRunner) History() []*models.SyncSession {
	r.histMu.Lock()
	defer r.histMu.Unlock()
	out := make([]*models.SyncSession, len(r.history))
	copy(out, r.history)
	return out
}

// invocations builds the phase's invocation list, honoring the agents_to_run
// restriction for P0 and overlaying any evolution-deployed config.
func (r *SyncRunner) invocations(ctx context.Context, sessionID string, ids []agent.ID, content []agent.ContentItem, snapshot agent.Snapshot) []invocation {
	enabled := make(map[string]bool, len(r.cfg.AgentsToRun))
	for _, id := range r.cfg.AgentsToRun {
		enabled[id] = true
	}

	var out []invocation
	for _, id := range ids {
		if len(enabled) > 0 && !enabled[string(id)] {
			continue
		}
		a, err := r.registry.Get(id)
		if err != nil {
			r.logger.Warn("Agent not registered, skipping", "agent_id", id)
			continue
		}
		deployed := r.mem.DeployedConfig(ctx, AgentType(id))
		out = append(out, invocation{
			agent: a,
			input: agent.Input{
				SessionID: sessionID,
				Content:   content,
				Snapshot:  snapshot,
				Config:    agent.MergeConfig(a.DefaultConfig(), deployed),
			},
		})
	}
	return out
}

// persist writes the cycle's signals and the latest-signals snapshot.
// Signal ids are write-once: an id already present in shared memory was
// written by an earlier phase or session and is never overwritten.
func (r *SyncRunner) persist(ctx context.Context, session *models.SyncSession, signals []models.Signal) error {
	ttl := r.cfg.SignalTTL()
	if ttl <= 0 {
		ttl = memory.TTLSignalDefault
	}
	for _, sig := range signals {
		var existing models.Signal
		if err := r.mem.Store().Get(ctx, memory.KeyPrefixSignal+sig.SignalID, &existing); err == nil {
			r.logger.Warn("Refusing to overwrite existing signal", "signal_id", sig.SignalID)
			continue
		}
		if err := r.mem.StoreSignal(ctx, sig, ttl); err != nil {
			return fmt.Errorf("failed to persist signal %s: %w", sig.SignalID, err)
		}
	}
	if err := r.mem.SaveLatestSignals(ctx, signals); err != nil {
		return fmt.Errorf("failed to persist latest signals snapshot: %w", err)
	}
	if err := r.mem.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

// recordExecutions feeds per-agent stats to the state recorder. Recording
// failures never affect the session.
func (r *SyncRunner) recordExecutions(ctx context.Context, reports map[string]models.AgentReport) {
	if r.states == nil {
		return
	}
	for id, rep := range reports {
		duration := time.Duration(rep.Duration) * time.Millisecond
		if err := r.states.RecordExecution(ctx, id, duration, rep.Failed()); err != nil {
			r.logger.Warn("Failed to record agent execution", "agent_id", id, "error", err)
		}
	}
}

func (r *SyncRunner) agentTimeout() time.Duration {
	if r.cfg.AgentTimeout > 0 {
		return r.cfg.AgentTimeout
	}
	return 30 * time.Second
}

func (r *SyncRunner) recentSignals(ctx context.Context) []models.Signal {
	window := r.cfg.SignalTTL()
	if window <= 0 {
		window = memory.TTLSignalDefault
	}
	signals, err := r.mem.RecentSignals(ctx, window)
	if err != nil {
		r.logger.Warn("Failed to load recent signals, continuing with empty snapshot", "error", err)
		return nil
	}
	return signals
}

// mergeSignals flattens the phase reports in canonical agent order, keeping
// the last writer for a duplicated signal id.
func mergeSignals(reports map[string]models.AgentReport, order []agent.ID) []models.Signal {
	byID := make(map[string]int)
	var out []models.Signal
	for _, id := range order {
		report, ok := reports[string(id)]
		if !ok || report.Failed() {
			continue
		}
		for _, sig := range report.Signals {
			if idx, ok := byID[sig.SignalID]; ok {
				out[idx] = sig
				continue
			}
			byID[sig.SignalID] = len(out)
			out = append(out, sig)
		}
	}
	return out
}

// buildInsights produces the human-readable cycle summary lines.
func buildInsights(reports map[string]models.AgentReport, cross []models.CrossQuadrantSignal) []string {
	var insights []string

	total, failed := 0, 0
	for _, rep := range reports {
		total += len(rep.Signals)
		if rep.Failed() {
			failed++
		}
	}
	insights = append(insights, fmt.Sprintf("perception produced %d signals across %d agents (%d failed)", total, len(reports), failed))

	byType := make(map[models.CrossSignalType]int)
	critical := 0
	for _, cs := range cross {
		byType[cs.SignalType]++
		if cs.Priority == models.PriorityCritical {
			critical++
		}
	}
	for _, t := range []models.CrossSignalType{models.CrossPainTrend, models.CrossEmotionScene, models.CrossPainEmotion} {
		if n := byType[t]; n > 0 {
			insights = append(insights, fmt.Sprintf("%d %s opportunities synthesized", n, t))
		}
	}
	if critical > 0 {
		insights = append(insights, fmt.Sprintf("%d critical opportunities need immediate action", critical))
	}
	return insights
}
