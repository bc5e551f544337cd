package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackeyunjie/growthd/pkg/models"
)

func TestSharedMemory_RecentSignalsWindow(t *testing.T) {
	ctx := context.Background()
	mem := NewSharedMemory(NewMemoryStore())
	defer mem.Close()

	fresh := models.Signal{SignalID: "fresh", Timestamp: time.Now().Add(-time.Hour)}
	old := models.Signal{SignalID: "old", Timestamp: time.Now().Add(-72 * time.Hour)}
	require.NoError(t, mem.StoreSignal(ctx, fresh, 0))
	require.NoError(t, mem.StoreSignal(ctx, old, 0))

	signals, err := mem.RecentSignals(ctx, 48*time.Hour)
	require.NoError(t, err)
	require.Len(t, signals, 1)
	assert.Equal(t, "fresh", signals[0].SignalID)
}

func TestSharedMemory_LearningStateFallsBackToDefaults(t *testing.T) {
	ctx := context.Background()
	mem := NewSharedMemory(NewMemoryStore())
	defer mem.Close()

	state := mem.LearningState(ctx)
	require.NotNil(t, state)
	assert.Equal(t, 1, state.Version)
	assert.InDelta(t, 0.7, state.MinConfidence(0.5), 1e-9, "persisted defaults win over the caller's fallback")

	// A stored state replaces the defaults.
	custom := models.DefaultLearningState()
	custom.Version = 7
	require.NoError(t, mem.Store().Store(ctx, KeyLearningState, custom, 0))
	assert.Equal(t, 7, mem.LearningState(ctx).Version)
}

func TestSharedMemory_DeployedConfigAbsentIsNil(t *testing.T) {
	ctx := context.Background()
	mem := NewSharedMemory(NewMemoryStore())
	defer mem.Close()

	assert.Nil(t, mem.DeployedConfig(ctx, "pain_scanner"))

	cfg := models.DeployedConfig{AgentType: "pain_scanner", StrategyID: "s-1", Parameters: map[string]float64{"urgency_threshold": 55}}
	require.NoError(t, mem.Store().Store(ctx, KeyPrefixDeployedConfig+"pain_scanner", cfg, 0))

	loaded := mem.DeployedConfig(ctx, "pain_scanner")
	require.NotNil(t, loaded)
	assert.Equal(t, "s-1", loaded.StrategyID)
}

func TestSharedMemory_SessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	mem := NewSharedMemory(NewMemoryStore())
	defer mem.Close()

	_, err := mem.LatestSession(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	session := &models.SyncSession{SessionID: "sess-1", Status: models.SessionCompleted}
	require.NoError(t, mem.SaveSession(ctx, session))

	latest, err := mem.LatestSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", latest.SessionID)

	var byKey models.SyncSession
	require.NoError(t, mem.Store().Get(ctx, KeyPrefixSession+"sess-1", &byKey))
	assert.Equal(t, models.SessionCompleted, byKey.Status)
}
