package orchestrator

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackeyunjie/growthd/pkg/agent"
	"github.com/jackeyunjie/growthd/pkg/config"
	"github.com/jackeyunjie/growthd/pkg/memory"
	"github.com/jackeyunjie/growthd/pkg/models"
)

// stubAgent is a scripted agent for orchestration tests.
type stubAgent struct {
	id       agent.ID
	quadrant models.Quadrant
	layer    models.Layer
	invoke   func(ctx context.Context, in agent.Input) (*models.AgentReport, error)
}

func (a *stubAgent) ID() agent.ID                      { return a.id }
func (a *stubAgent) Quadrant() models.Quadrant         { return a.quadrant }
func (a *stubAgent) Layer() models.Layer               { return a.layer }
func (a *stubAgent) DefaultConfig() map[string]float64 { return map[string]float64{"knob": 1} }
func (a *stubAgent) Invoke(ctx context.Context, in agent.Input) (*models.AgentReport, error) {
	return a.invoke(ctx, in)
}

func signalStub(id agent.ID, quadrant models.Quadrant, signals ...models.Signal) *stubAgent {
	return &stubAgent{
		id:       id,
		quadrant: quadrant,
		layer:    models.LayerP0,
		invoke: func(ctx context.Context, in agent.Input) (*models.AgentReport, error) {
			return &models.AgentReport{
				AgentID:  string(id),
				Quadrant: quadrant,
				Layer:    models.LayerP0,
				Signals:  signals,
			}, nil
		},
	}
}

func emptyStub(id agent.ID, quadrant models.Quadrant) *stubAgent {
	return signalStub(id, quadrant)
}

// p0Registry registers the four perception slots with the given stubs,
// filling unspecified slots with empty stubs.
func p0Registry(t *testing.T, stubs ...*stubAgent) *agent.Registry {
	t.Helper()
	byID := make(map[agent.ID]*stubAgent, len(stubs))
	for _, s := range stubs {
		byID[s.id] = s
	}
	quadrants := map[agent.ID]models.Quadrant{
		agent.Q1PainScanner:   models.QuadrantQ1,
		agent.Q2EmotionMapper: models.QuadrantQ2,
		agent.Q3TrendHunter:   models.QuadrantQ3,
		agent.Q4SceneFinder:   models.QuadrantQ4,
	}
	registry := agent.NewRegistry()
	for _, id := range agent.P0IDs {
		s, ok := byID[id]
		if !ok {
			s = emptyStub(id, quadrants[id])
		}
		require.NoError(t, registry.Register(s))
	}
	registry.Freeze()
	return registry
}

func testRunnerConfig() config.OrchestratorConfig {
	cfg := *config.DefaultOrchestratorConfig()
	cfg.EnableP1Trigger = false
	cfg.EnableP2Trigger = false
	cfg.AgentTimeout = 2 * time.Second
	return cfg
}

type recordingNotifier struct {
	mu       sync.Mutex
	started  []string
	finished []*models.SyncSession
}

func (n *recordingNotifier) SessionStarted(sessionID string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.started = append(n.started, sessionID)
}

func (n *recordingNotifier) SessionFinished(session *models.SyncSession) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.finished = append(n.finished, session)
}

func TestRunSession_CompletesAndPersists(t *testing.T) {
	ctx := context.Background()
	mem := memory.NewSharedMemory(memory.NewMemoryStore())
	notifier := &recordingNotifier{}

	pain := models.Signal{
		SignalID: "q1:s:1", Quadrant: models.QuadrantQ1, Kind: models.SignalKindPain,
		Keywords: []string{"battery"}, Score: 85, Timestamp: time.Now(),
		Payload: map[string]interface{}{"text": "battery drains fast"},
	}
	trend := models.Signal{
		SignalID: "q3:s:1", Quadrant: models.QuadrantQ3, Kind: models.SignalKindTrend,
		Keywords: []string{"battery"}, Score: 60, Timestamp: time.Now(),
	}
	registry := p0Registry(t,
		signalStub(agent.Q1PainScanner, models.QuadrantQ1, pain),
		signalStub(agent.Q3TrendHunter, models.QuadrantQ3, trend),
	)

	runner := NewSyncRunner(testRunnerConfig(), registry, mem, notifier, nil, nil)
	session, err := runner.RunSession(ctx, nil)
	require.NoError(t, err)

	assert.Equal(t, models.SessionCompleted, session.Status)
	require.NotNil(t, session.CompletedAt)
	assert.False(t, session.CompletedAt.Before(session.StartedAt))
	assert.Len(t, session.AgentReports, 4)
	assert.NotEmpty(t, session.Insights)

	require.Len(t, session.SynthesizedSignals, 1)
	assert.Equal(t, models.CrossPainTrend, session.SynthesizedSignals[0].SignalType)
	assert.Equal(t, models.PriorityCritical, session.SynthesizedSignals[0].Priority)

	// Signals, the latest-signals snapshot, and the session are persisted.
	var stored models.Signal
	require.NoError(t, mem.Store().Get(ctx, memory.KeyPrefixSignal+"q1:s:1", &stored))
	assert.Equal(t, pain.SignalID, stored.SignalID)

	latest, err := mem.LatestSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.SessionID, latest.SessionID)

	history := runner.History()
	require.Len(t, history, 1)
	assert.Equal(t, session.SessionID, history[0].SessionID)

	assert.Equal(t, []string{session.SessionID}, notifier.started)
	require.Len(t, notifier.finished, 1)
	assert.Equal(t, models.SessionCompleted, notifier.finished[0].Status)
}

func TestRunSession_SingleInstance(t *testing.T) {
	ctx := context.Background()
	mem := memory.NewSharedMemory(memory.NewMemoryStore())

	started := make(chan struct{})
	release := make(chan struct{})
	blocking := &stubAgent{
		id: agent.Q1PainScanner, quadrant: models.QuadrantQ1, layer: models.LayerP0,
		invoke: func(ctx context.Context, in agent.Input) (*models.AgentReport, error) {
			close(started)
			<-release
			return &models.AgentReport{AgentID: string(agent.Q1PainScanner)}, nil
		},
	}
	registry := p0Registry(t, blocking)
	runner := NewSyncRunner(testRunnerConfig(), registry, mem, nil, nil, nil)

	errCh := make(chan error, 1)
	go func() {
		_, err := runner.RunSession(ctx, nil)
		errCh <- err
	}()
	<-started

	_, err := runner.RunSession(ctx, nil)
	assert.True(t, errors.Is(err, ErrSessionInProgress))

	close(release)
	require.NoError(t, <-errCh)
}

func TestRunSession_AgentFailuresAreIsolated(t *testing.T) {
	ctx := context.Background()
	mem := memory.NewSharedMemory(memory.NewMemoryStore())

	failing := &stubAgent{
		id: agent.Q1PainScanner, quadrant: models.QuadrantQ1, layer: models.LayerP0,
		invoke: func(ctx context.Context, in agent.Input) (*models.AgentReport, error) {
			return nil, errors.New("driver unavailable")
		},
	}
	panicking := &stubAgent{
		id: agent.Q2EmotionMapper, quadrant: models.QuadrantQ2, layer: models.LayerP0,
		invoke: func(ctx context.Context, in agent.Input) (*models.AgentReport, error) {
			panic("unexpected state")
		},
	}
	healthy := signalStub(agent.Q3TrendHunter, models.QuadrantQ3, models.Signal{
		SignalID: "q3:s:1", Quadrant: models.QuadrantQ3, Kind: models.SignalKindTrend,
		Keywords: []string{"battery"}, Timestamp: time.Now(),
	})
	registry := p0Registry(t, failing, panicking, healthy)

	runner := NewSyncRunner(testRunnerConfig(), registry, mem, nil, nil, nil)
	session, err := runner.RunSession(ctx, nil)
	require.NoError(t, err, "agent failures never fail the session")

	assert.Equal(t, models.SessionCompleted, session.Status)
	assert.Equal(t, "driver unavailable", session.AgentReports[string(agent.Q1PainScanner)].Error)
	assert.Contains(t, session.AgentReports[string(agent.Q2EmotionMapper)].Error, "agent panicked")

	// The healthy agent's output still flowed through persistence.
	var stored models.Signal
	require.NoError(t, mem.Store().Get(ctx, memory.KeyPrefixSignal+"q3:s:1", &stored))
}

func TestRunSession_AgentTimeout(t *testing.T) {
	ctx := context.Background()
	mem := memory.NewSharedMemory(memory.NewMemoryStore())

	slow := &stubAgent{
		id: agent.Q1PainScanner, quadrant: models.QuadrantQ1, layer: models.LayerP0,
		invoke: func(ctx context.Context, in agent.Input) (*models.AgentReport, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	registry := p0Registry(t, slow)

	cfg := testRunnerConfig()
	cfg.AgentTimeout = 20 * time.Millisecond
	runner := NewSyncRunner(cfg, registry, mem, nil, nil, nil)

	session, err := runner.RunSession(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, models.SessionCompleted, session.Status)

	report := session.AgentReports[string(agent.Q1PainScanner)]
	assert.True(t, report.TimedOut)
	assert.NotEmpty(t, report.Error)
}

func TestRunSession_SignalIDsAreWriteOnce(t *testing.T) {
	ctx := context.Background()
	mem := memory.NewSharedMemory(memory.NewMemoryStore())

	original := models.Signal{
		SignalID: "q1:s:dup", Quadrant: models.QuadrantQ1, Kind: models.SignalKindPain,
		Score: 10, Timestamp: time.Now(),
	}
	require.NoError(t, mem.StoreSignal(ctx, original, 0))

	replacement := original
	replacement.Score = 99
	registry := p0Registry(t, signalStub(agent.Q1PainScanner, models.QuadrantQ1, replacement))

	runner := NewSyncRunner(testRunnerConfig(), registry, mem, nil, nil, nil)
	_, err := runner.RunSession(ctx, nil)
	require.NoError(t, err)

	var stored models.Signal
	require.NoError(t, mem.Store().Get(ctx, memory.KeyPrefixSignal+"q1:s:dup", &stored))
	assert.InDelta(t, 10, stored.Score, 1e-9, "an existing signal id is never overwritten")
}

func TestRunSession_AgentsToRunRestriction(t *testing.T) {
	ctx := context.Background()
	mem := memory.NewSharedMemory(memory.NewMemoryStore())
	registry := p0Registry(t)

	cfg := testRunnerConfig()
	cfg.AgentsToRun = []string{string(agent.Q1PainScanner)}
	runner := NewSyncRunner(cfg, registry, mem, nil, nil, nil)

	session, err := runner.RunSession(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, session.AgentReports, 1)
	assert.Contains(t, session.AgentReports, string(agent.Q1PainScanner))
}

func TestRunSession_HistoryIsBounded(t *testing.T) {
	ctx := context.Background()
	mem := memory.NewSharedMemory(memory.NewMemoryStore())
	registry := p0Registry(t)

	cfg := testRunnerConfig()
	cfg.SessionHistoryLimit = 3
	runner := NewSyncRunner(cfg, registry, mem, nil, nil, nil)

	for i := 0; i < 5; i++ {
		_, err := runner.RunSession(ctx, nil)
		require.NoError(t, err)
	}
	assert.Len(t, runner.History(), 3)
}

func TestRunSession_SessionIDFormat(t *testing.T) {
	ctx := context.Background()
	mem := memory.NewSharedMemory(memory.NewMemoryStore())
	registry := p0Registry(t)

	runner := NewSyncRunner(testRunnerConfig(), registry, mem, nil, nil, nil)
	fixed := time.Date(2026, 3, 14, 6, 0, 0, 0, time.FixedZone("CST", 8*3600))
	runner.now = func() time.Time { return fixed }

	session, err := runner.RunSession(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, "sync-2026-03-13T22:00:00Z", session.SessionID,
		"session ids carry the UTC start time")

	stamp, ok := strings.CutPrefix(session.SessionID, "sync-")
	require.True(t, ok)
	parsed, err := time.Parse(time.RFC3339, stamp)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(session.StartedAt))
}

type recordingStates struct {
	mu         sync.Mutex
	executions map[string]int
	failures   map[string]int
}

func (s *recordingStates) RecordExecution(_ context.Context, agentID string, _ time.Duration, failed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.executions == nil {
		s.executions = make(map[string]int)
		s.failures = make(map[string]int)
	}
	s.executions[agentID]++
	if failed {
		s.failures[agentID]++
	}
	return nil
}

func TestRunSession_RecordsAgentExecutions(t *testing.T) {
	ctx := context.Background()
	mem := memory.NewSharedMemory(memory.NewMemoryStore())

	failing := &stubAgent{
		id: agent.Q2EmotionMapper, quadrant: models.QuadrantQ2, layer: models.LayerP0,
		invoke: func(ctx context.Context, in agent.Input) (*models.AgentReport, error) {
			return nil, errors.New("driver unavailable")
		},
	}
	registry := p0Registry(t, failing)

	states := &recordingStates{}
	runner := NewSyncRunner(testRunnerConfig(), registry, mem, nil, states, nil)
	_, err := runner.RunSession(ctx, nil)
	require.NoError(t, err)

	require.Len(t, states.executions, 4, "every perception agent's run is recorded")
	for _, id := range agent.P0IDs {
		assert.Equal(t, 1, states.executions[string(id)])
	}
	assert.Equal(t, 1, states.failures[string(agent.Q2EmotionMapper)])
	assert.Zero(t, states.failures[string(agent.Q1PainScanner)])
}

func TestMergeSignals_LastWriterWinsWithinPhase(t *testing.T) {
	dup := func(score float64) models.Signal {
		return models.Signal{SignalID: "shared", Score: score}
	}
	reports := map[string]models.AgentReport{
		string(agent.Q1PainScanner):   {AgentID: string(agent.Q1PainScanner), Signals: []models.Signal{dup(10)}},
		string(agent.Q3TrendHunter):   {AgentID: string(agent.Q3TrendHunter), Signals: []models.Signal{dup(30)}},
		string(agent.Q2EmotionMapper): {AgentID: string(agent.Q2EmotionMapper), Error: "failed", Signals: []models.Signal{dup(20)}},
	}

	merged := mergeSignals(reports, agent.P0IDs)
	require.Len(t, merged, 1)
	assert.InDelta(t, 30, merged[0].Score, 1e-9,
		"the later agent in canonical order wins; failed reports are excluded")
}

func TestAgentType(t *testing.T) {
	assert.Equal(t, "pain_scanner", AgentType(agent.Q1PainScanner))
	assert.Equal(t, "scene_connector", AgentType(agent.Q4SceneConnector))
	assert.Equal(t, "plain", AgentType(agent.ID("plain")))
}
