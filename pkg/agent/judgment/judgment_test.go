package judgment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackeyunjie/growthd/pkg/agent"
	"github.com/jackeyunjie/growthd/pkg/models"
)

func invoke(t *testing.T, a agent.Agent, snap agent.Snapshot) *models.Assessment {
	t.Helper()
	report, err := a.Invoke(context.Background(), agent.Input{
		SessionID: "sess-1",
		Snapshot:  snap,
		Config:    a.DefaultConfig(),
	})
	require.NoError(t, err)
	require.NotNil(t, report.Assessment)
	return report.Assessment
}

func painSignal(id string, score float64) models.Signal {
	return models.Signal{SignalID: id, Quadrant: models.QuadrantQ1, Kind: models.SignalKindPain, Score: score}
}

func TestPainAssessor_WeighsDimensions(t *testing.T) {
	snap := agent.Snapshot{
		RecentSignals: []models.Signal{
			painSignal("p1", 80),
			painSignal("p2", 60),
			// Other quadrants and kinds are not this assessor's business.
			{SignalID: "e1", Quadrant: models.QuadrantQ2, Kind: models.SignalKindEmotion, Score: 99},
		},
		CrossSignals: []models.CrossQuadrantSignal{
			{SignalID: "x1", SourceQuadrants: []models.Quadrant{models.QuadrantQ1, models.QuadrantQ3}, Confidence: 0.8},
			{SignalID: "x2", SourceQuadrants: []models.Quadrant{models.QuadrantQ2, models.QuadrantQ4}, Confidence: 0.9},
		},
	}

	got := invoke(t, NewPainAssessor(), snap)

	assert.InDelta(t, 0.7, got.Dimensions["urgency"], 1e-9)
	assert.InDelta(t, 0.2, got.Dimensions["reach"], 1e-9)
	assert.InDelta(t, 0.8, got.Dimensions["fit"], 1e-9, "only the Q1-involving cross signal counts")

	// Bootstrap weights 0.4/0.3/0.3.
	assert.InDelta(t, 0.58, got.OverallScore, 1e-9)
	assert.Equal(t, models.PriorityMedium, got.Priority)
	assert.Contains(t, got.RecommendedAction, "2 signals, 1 cross-quadrant")
}

func TestPainAssessor_EmptySnapshotIsLowPriority(t *testing.T) {
	got := invoke(t, NewPainAssessor(), agent.Snapshot{})
	assert.InDelta(t, 0, got.OverallScore, 1e-9)
	assert.Equal(t, models.PriorityLow, got.Priority)
}

func TestPainAssessor_LearnedWeightsOverrideDefaults(t *testing.T) {
	snap := agent.Snapshot{
		RecentSignals: []models.Signal{painSignal("p1", 80), painSignal("p2", 60)},
		LearningState: &models.LearningState{
			P1Weights: map[models.Quadrant]map[string]float64{
				models.QuadrantQ1: {"urgency": 1.0},
			},
		},
	}

	got := invoke(t, NewPainAssessor(), snap)
	assert.InDelta(t, 0.7, got.OverallScore, 1e-9, "urgency-only weights make it the whole score")
	assert.Equal(t, models.PriorityHigh, got.Priority)
}

func TestPainAssessor_CriticalFloor(t *testing.T) {
	snap := agent.Snapshot{
		RecentSignals: []models.Signal{painSignal("p1", 90)},
		LearningState: &models.LearningState{
			P1Weights: map[models.Quadrant]map[string]float64{
				models.QuadrantQ1: {"urgency": 1.0},
			},
		},
	}

	got := invoke(t, NewPainAssessor(), snap)
	assert.InDelta(t, 0.9, got.OverallScore, 1e-9)
	assert.Equal(t, models.PriorityCritical, got.Priority)
}

func TestEmotionAssessor_ReadsPayloadIntensity(t *testing.T) {
	snap := agent.Snapshot{
		RecentSignals: []models.Signal{
			{SignalID: "e1", Quadrant: models.QuadrantQ2, Kind: models.SignalKindEmotion,
				Payload: map[string]interface{}{"intensity": 80.0}},
			{SignalID: "e2", Quadrant: models.QuadrantQ2, Kind: models.SignalKindEmotion,
				Payload: map[string]interface{}{"intensity": 60.0}},
		},
	}

	got := invoke(t, NewEmotionAssessor(), snap)
	assert.InDelta(t, 0.7, got.Dimensions["intensity"], 1e-9)
	assert.InDelta(t, 0.25, got.Dimensions["resonance"], 1e-9, "2 of 8 toward volume saturation")
	assert.InDelta(t, 0, got.Dimensions["fit"], 1e-9)
	assert.Equal(t, models.PriorityLow, got.Priority)
}

func TestTrendAssessor_VelocityScale(t *testing.T) {
	snap := agent.Snapshot{
		RecentSignals: []models.Signal{
			{SignalID: "t1", Quadrant: models.QuadrantQ3, Kind: models.SignalKindTrend, Score: 80,
				Payload: map[string]interface{}{"velocity": 2.5}},
		},
	}

	got := invoke(t, NewTrendAssessor(), snap)
	assert.InDelta(t, 0.5, got.Dimensions["velocity"], 1e-9, "velocity 2.5 on the 0–5 scale")
	assert.InDelta(t, 0.8, got.Dimensions["novelty"], 1e-9)
}

func TestSceneAssessor_CoverageCountsDistinctScenes(t *testing.T) {
	sceneSig := func(id, scene string) models.Signal {
		return models.Signal{SignalID: id, Quadrant: models.QuadrantQ4, Kind: models.SignalKindScene, Score: 60,
			Payload: map[string]interface{}{"scene": scene}}
	}
	snap := agent.Snapshot{
		RecentSignals: []models.Signal{
			sceneSig("s1", "work"), sceneSig("s2", "work"), sceneSig("s3", "commute"),
		},
	}

	got := invoke(t, NewSceneAssessor(), snap)
	assert.InDelta(t, 2.0/6.0, got.Dimensions["coverage"], 1e-9, "two distinct scenes of six known")
	assert.InDelta(t, 0.6, got.Dimensions["relevance"], 1e-9)
}

func TestAssessor_HonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := NewPainAssessor()
	_, err := a.Invoke(ctx, agent.Input{Config: a.DefaultConfig()})
	assert.ErrorIs(t, err, context.Canceled)
}
