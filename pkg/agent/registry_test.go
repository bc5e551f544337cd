package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackeyunjie/growthd/pkg/models"
)

type stubAgent struct{ id ID }

func (s *stubAgent) ID() ID                            { return s.id }
func (s *stubAgent) Quadrant() models.Quadrant         { return models.QuadrantQ1 }
func (s *stubAgent) Layer() models.Layer               { return models.LayerP0 }
func (s *stubAgent) DefaultConfig() map[string]float64 { return map[string]float64{"knob": 1} }
func (s *stubAgent) Invoke(context.Context, Input) (*models.AgentReport, error) {
	return &models.AgentReport{AgentID: string(s.id)}, nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(&stubAgent{id: Q1PainScanner}))

	got, err := reg.Get(Q1PainScanner)
	require.NoError(t, err)
	assert.Equal(t, Q1PainScanner, got.ID())
	assert.True(t, reg.Has(Q1PainScanner))
	assert.Equal(t, 1, reg.Len())
}

func TestRegistry_DuplicateIDRejected(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(&stubAgent{id: Q1PainScanner}))
	assert.Error(t, reg.Register(&stubAgent{id: Q1PainScanner}))
}

func TestRegistry_FrozenRejectsRegistration(t *testing.T) {
	reg := NewRegistry()
	reg.Freeze()
	assert.Error(t, reg.Register(&stubAgent{id: Q1PainScanner}))
}

func TestRegistry_UnknownID(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Get(Q2EmotionMapper)
	assert.ErrorIs(t, err, ErrUnknownAgent)
}

func TestRegistry_IDsAreSorted(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(&stubAgent{id: Q4SceneFinder}))
	require.NoError(t, reg.Register(&stubAgent{id: Q1PainScanner}))
	require.NoError(t, reg.Register(&stubAgent{id: Q3TrendHunter}))

	assert.Equal(t, []ID{Q1PainScanner, Q3TrendHunter, Q4SceneFinder}, reg.IDs())
}

func TestMergeConfig(t *testing.T) {
	defaults := map[string]float64{"urgency_threshold": 60, "recency_decay": 0.1}

	merged := MergeConfig(defaults, nil)
	assert.Equal(t, defaults, merged)

	merged = MergeConfig(defaults, &models.DeployedConfig{
		Parameters: map[string]float64{
			"urgency_threshold": 48,  // evolved override
			"novelty_weight":    0.4, // new knob introduced by evolution
		},
	})
	assert.InDelta(t, 48, merged["urgency_threshold"], 1e-9)
	assert.InDelta(t, 0.1, merged["recency_decay"], 1e-9)
	assert.InDelta(t, 0.4, merged["novelty_weight"], 1e-9)

	// Defaults are never mutated by the overlay.
	assert.InDelta(t, 60, defaults["urgency_threshold"], 1e-9)
}
