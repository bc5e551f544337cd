package synthesis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackeyunjie/growthd/pkg/models"
)

func newTestEngine() *Engine {
	e := NewEngine()
	e.now = func() time.Time { return time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC) }
	return e
}

func painSignal(id string, score float64, keywords ...string) models.Signal {
	return models.Signal{
		SignalID: id,
		Quadrant: models.QuadrantQ1,
		Kind:     models.SignalKindPain,
		Keywords: keywords,
		Score:    score,
		Payload:  map[string]interface{}{"text": "battery drains too fast on long commutes"},
	}
}

func trendSignal(id string, keywords ...string) models.Signal {
	return models.Signal{
		SignalID: id,
		Quadrant: models.QuadrantQ3,
		Kind:     models.SignalKindTrend,
		Keywords: keywords,
		Score:    60,
	}
}

func emotionSignal(id string, intensity float64, trigger string) models.Signal {
	return models.Signal{
		SignalID: id,
		Quadrant: models.QuadrantQ2,
		Kind:     models.SignalKindEmotion,
		Keywords: []string{"frustrated"},
		Score:    intensity,
		Payload:  map[string]interface{}{"intensity": intensity, "trigger": trigger},
	}
}

func sceneSignal(id string) models.Signal {
	return models.Signal{
		SignalID: id,
		Quadrant: models.QuadrantQ4,
		Kind:     models.SignalKindScene,
		Keywords: []string{"commute"},
		Score:    50,
	}
}

func TestSynthesize_PainTrendSharedKeyword(t *testing.T) {
	engine := newTestEngine()
	state := models.DefaultLearningState()

	signals := []models.Signal{
		painSignal("q1:s1:a", 85, "battery", "charging"),
		trendSignal("q3:s1:b", "battery", "foldable"),
	}

	out := engine.Synthesize(signals, state)
	require.Len(t, out, 1)

	cs := out[0]
	assert.Equal(t, models.CrossPainTrend, cs.SignalType)
	assert.InDelta(t, 0.7, cs.Confidence, 1e-9, "one shared keyword yields 0.5 + 0.2")
	assert.Equal(t, models.PriorityCritical, cs.Priority, "pain score above 80 escalates")
	assert.Equal(t, []models.Quadrant{models.QuadrantQ1, models.QuadrantQ3}, cs.SourceQuadrants)
	assert.Equal(t, []string{"q1:s1:a", "q3:s1:b"}, cs.RawSignalIDs)
	assert.Equal(t, models.LayerP1, cs.TargetLayer)
}

func TestSynthesize_PainTrendHighPriorityBelowCriticalScore(t *testing.T) {
	engine := newTestEngine()
	state := models.DefaultLearningState()

	signals := []models.Signal{
		painSignal("q1:s1:a", 80, "battery"),
		trendSignal("q3:s1:b", "battery"),
	}

	out := engine.Synthesize(signals, state)
	require.Len(t, out, 1)
	assert.Equal(t, models.PriorityHigh, out[0].Priority, "score of exactly 80 stays high")
}

func TestSynthesize_PainTrendConfidenceSaturates(t *testing.T) {
	engine := newTestEngine()
	state := models.DefaultLearningState()

	signals := []models.Signal{
		painSignal("q1:s1:a", 50, "a", "b", "c", "d"),
		trendSignal("q3:s1:b", "a", "b", "c", "d"),
	}

	out := engine.Synthesize(signals, state)
	require.Len(t, out, 1)
	assert.InDelta(t, 1.0, out[0].Confidence, 1e-9, "overlap of 4 caps at 1.0")
}

func TestSynthesize_NoSharedKeywordNoPairing(t *testing.T) {
	engine := newTestEngine()
	state := models.DefaultLearningState()

	signals := []models.Signal{
		painSignal("q1:s1:a", 90, "battery"),
		trendSignal("q3:s1:b", "foldable"),
	}

	assert.Empty(t, engine.Synthesize(signals, state))
}

func TestSynthesize_EmotionSceneRequiresHighIntensity(t *testing.T) {
	engine := newTestEngine()
	state := models.DefaultLearningState()

	low := []models.Signal{
		emotionSignal("q2:s1:a", 70, "slow"),
		sceneSignal("q4:s1:b"),
	}
	assert.Empty(t, engine.Synthesize(low, state), "intensity of exactly 70 does not pair")

	high := []models.Signal{
		emotionSignal("q2:s1:a", 71, "slow"),
		sceneSignal("q4:s1:b"),
	}
	out := engine.Synthesize(high, state)
	require.Len(t, out, 1)
	assert.Equal(t, models.CrossEmotionScene, out[0].SignalType)
	assert.InDelta(t, 0.91, out[0].Confidence, 1e-9)
	assert.Equal(t, models.PriorityHigh, out[0].Priority)
}

func TestSynthesize_PainEmotionTriggerMatch(t *testing.T) {
	engine := newTestEngine()
	state := models.DefaultLearningState()

	// Trigger "battery" appears in the pain text; intensity alone is too low.
	pain := painSignal("q1:s1:a", 50, "battery")
	pain.Payload["text"] = "the battery dies before lunch"
	signals := []models.Signal{pain, emotionSignal("q2:s1:b", 40, "battery")}

	out := engine.Synthesize(signals, state)
	require.Len(t, out, 1)
	assert.Equal(t, models.CrossPainEmotion, out[0].SignalType)
	assert.InDelta(t, 0.72, out[0].Confidence, 1e-9, "0.6 + 0.3·40/100")
}

func TestSynthesize_PainEmotionIntensityFallback(t *testing.T) {
	engine := newTestEngine()
	state := models.DefaultLearningState()

	pain := painSignal("q1:s1:a", 50, "battery")
	pain.Payload["text"] = "screen flickers at night"
	signals := []models.Signal{pain, emotionSignal("q2:s1:b", 80, "unrelated")}

	out := engine.Synthesize(signals, state)
	require.Len(t, out, 1)
	assert.InDelta(t, 0.84, out[0].Confidence, 1e-9, "0.6 + 0.3·80/100")
}

func TestSynthesize_ConfidenceFloorFromLearningState(t *testing.T) {
	engine := newTestEngine()

	signals := []models.Signal{
		painSignal("q1:s1:a", 50, "battery"),
		trendSignal("q3:s1:b", "battery"),
	}

	// Default floor of 0.7 admits the 0.7-confidence pairing.
	out := engine.Synthesize(signals, models.DefaultLearningState())
	require.Len(t, out, 1)

	// A raised floor filters it out.
	strict := models.DefaultLearningState()
	strict.P0Thresholds[models.ThresholdMinConfidence] = 0.75
	assert.Empty(t, engine.Synthesize(signals, strict))
}

func TestSynthesize_DeterministicOrdering(t *testing.T) {
	engine := newTestEngine()
	state := models.DefaultLearningState()

	signals := []models.Signal{
		painSignal("q1:s1:b", 90, "battery"),
		painSignal("q1:s1:a", 90, "battery"),
		trendSignal("q3:s1:c", "battery", "charging"),
	}
	// Give one pain a double overlap so confidences differ.
	signals[0].Keywords = []string{"battery", "charging"}

	first := engine.Synthesize(signals, state)
	require.Len(t, first, 2)
	assert.Greater(t, first[0].Confidence, first[1].Confidence, "ordered by confidence descending")

	// Equal-confidence entries order by signal id.
	equal := []models.Signal{
		painSignal("q1:s1:b", 90, "battery"),
		painSignal("q1:s1:a", 90, "battery"),
		trendSignal("q3:s1:c", "battery"),
	}
	out := engine.Synthesize(equal, state)
	require.Len(t, out, 2)
	assert.Less(t, out[0].SignalID, out[1].SignalID)

	again := engine.Synthesize(equal, state)
	assert.Equal(t, out, again, "identical input synthesizes identically")
}
