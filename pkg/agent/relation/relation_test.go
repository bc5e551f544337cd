package relation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackeyunjie/growthd/pkg/agent"
	"github.com/jackeyunjie/growthd/pkg/models"
)

func cross(id string, conf float64, prio models.Priority, quadrants ...models.Quadrant) models.CrossQuadrantSignal {
	return models.CrossQuadrantSignal{
		SignalID:        id,
		SignalType:      "pain_trend_convergence",
		SourceQuadrants: quadrants,
		Confidence:      conf,
		Priority:        prio,
	}
}

func invoke(t *testing.T, c agent.Agent, cfg map[string]float64, signals ...models.CrossQuadrantSignal) *models.AgentReport {
	t.Helper()
	if cfg == nil {
		cfg = c.DefaultConfig()
	}
	report, err := c.Invoke(context.Background(), agent.Input{
		SessionID: "sess-1",
		Snapshot:  agent.Snapshot{CrossSignals: signals},
		Config:    cfg,
	})
	require.NoError(t, err)
	require.NotNil(t, report.Assessment)
	return report
}

func TestConnector_PlansActionsForOwnQuadrant(t *testing.T) {
	report := invoke(t, NewPainConnector(), nil,
		cross("x1", 0.7, models.PriorityHigh, models.QuadrantQ1, models.QuadrantQ3),
		cross("x2", 0.9, models.PriorityCritical, models.QuadrantQ1, models.QuadrantQ2),
		cross("x3", 0.95, models.PriorityCritical, models.QuadrantQ2, models.QuadrantQ4), // not Q1
	)

	got := report.Assessment
	assert.InDelta(t, 0.8, got.Dimensions["actionability"], 1e-9, "mean confidence of the two Q1 signals")
	assert.InDelta(t, 1.0, got.Dimensions["urgency"], 1e-9)
	assert.InDelta(t, 0.9, got.OverallScore, 1e-9)
	assert.Equal(t, models.PriorityCritical, got.Priority)
	assert.Contains(t, got.RecommendedAction, "confidence 0.90", "highest-confidence signal leads")
}

func TestConnector_FiltersByMinConfidence(t *testing.T) {
	report := invoke(t, NewTrendConnector(), nil,
		cross("x1", 0.4, models.PriorityHigh, models.QuadrantQ3),
	)

	got := report.Assessment
	assert.Equal(t, "no cross-quadrant opportunities this cycle", got.RecommendedAction)
	assert.InDelta(t, 0, got.OverallScore, 1e-9)
	assert.Equal(t, models.PriorityLow, got.Priority)
}

func TestConnector_MaxActionsTruncates(t *testing.T) {
	cfg := NewSceneConnector().DefaultConfig()
	cfg["max_actions"] = 1

	report := invoke(t, NewSceneConnector(), cfg,
		cross("x1", 0.6, models.PriorityMedium, models.QuadrantQ4),
		cross("x2", 0.8, models.PriorityMedium, models.QuadrantQ4),
	)

	got := report.Assessment
	assert.InDelta(t, 0.8, got.Dimensions["actionability"], 1e-9, "only the strongest signal survives the cap")
	assert.Contains(t, got.RecommendedAction, "confidence 0.80")
}

func TestConnector_TieBreakBySignalID(t *testing.T) {
	// Equal confidence: the lexicographically smaller id leads, regardless
	// of input order.
	a := cross("x-a", 0.8, models.PriorityMedium, models.QuadrantQ2)
	a.SignalType = "emotion_scene_resonance"
	b := cross("x-b", 0.8, models.PriorityMedium, models.QuadrantQ2)
	b.SignalType = "pain_emotion_amplification"

	report := invoke(t, NewEmotionConnector(), nil, b, a)
	assert.Contains(t, report.Assessment.RecommendedAction, "emotion_scene_resonance")

	second := invoke(t, NewEmotionConnector(), nil, a, b)
	assert.Equal(t, report.Assessment.RecommendedAction, second.Assessment.RecommendedAction)
}

func TestConnector_HonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewPainConnector()
	_, err := c.Invoke(ctx, agent.Input{Config: c.DefaultConfig()})
	assert.ErrorIs(t, err, context.Canceled)
}
