package perception

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackeyunjie/growthd/pkg/agent"
	"github.com/jackeyunjie/growthd/pkg/models"
)

var fixedNow = time.Date(2026, 8, 24, 6, 0, 0, 0, time.UTC)

// pad pushes the length factor to saturation so score math is exact.
func pad(text string) string {
	return text + " " + strings.Repeat("z", 400)
}

func item(id, text string) agent.ContentItem {
	return agent.ContentItem{ID: id, Text: text, Source: "driver_a", SourceType: models.SourceSensor}
}

func input(cfg map[string]float64, items ...agent.ContentItem) agent.Input {
	return agent.Input{SessionID: "sess-1", Content: items, Config: cfg}
}

func TestPainScanner_ScoresMatchedItems(t *testing.T) {
	a := NewPainScanner(nil)
	a.now = func() time.Time { return fixedNow }

	// 3 vocabulary hits, saturated length, sensor tier: 40 + 15*3 = 85.
	in := input(a.DefaultConfig(), item("c1", pad("so slow and broken, it just crashed again")))
	report, err := a.Invoke(context.Background(), in)
	require.NoError(t, err)

	require.Len(t, report.Signals, 1)
	sig := report.Signals[0]
	assert.Equal(t, "q1_pain_scanner:sess-1:c1", sig.SignalID)
	assert.Equal(t, models.QuadrantQ1, sig.Quadrant)
	assert.Equal(t, models.SignalKindPain, sig.Kind)
	assert.InDelta(t, 85, sig.Score, 1e-9)
	assert.InDelta(t, 85, sig.Payload["urgency_score"], 1e-9)
	assert.Contains(t, sig.Keywords, "broken")
	assert.Contains(t, sig.Keywords, "crash")
}

// stubAnalyzer returns fixed label scores and records the labels asked for.
type stubAnalyzer struct {
	scores map[string]float64
	err    error
	labels []string
}

func (s *stubAnalyzer) Analyze(_ context.Context, _ string, labels []string) (map[string]float64, error) {
	s.labels = append(s.labels, labels...)
	if s.err != nil {
		return nil, s.err
	}
	return s.scores, nil
}

func TestPainScanner_AnalyzerBoostsScore(t *testing.T) {
	analyzer := &stubAnalyzer{scores: map[string]float64{"pain": 0.5}}
	a := NewPainScanner(analyzer)
	a.now = func() time.Time { return fixedNow }

	// Heuristic base 85 plus 0.5 * 20 from the analyzer.
	in := input(a.DefaultConfig(), item("c1", pad("so slow and broken, it just crashed again")))
	report, err := a.Invoke(context.Background(), in)
	require.NoError(t, err)

	require.Len(t, report.Signals, 1)
	assert.InDelta(t, 95, report.Signals[0].Score, 1e-9)
	assert.Contains(t, analyzer.labels, "pain")
}

func TestPainScanner_AnalyzerErrorDegradesToHeuristics(t *testing.T) {
	analyzer := &stubAnalyzer{err: context.DeadlineExceeded}
	a := NewPainScanner(analyzer)
	a.now = func() time.Time { return fixedNow }

	in := input(a.DefaultConfig(), item("c1", pad("so slow and broken, it just crashed again")))
	report, err := a.Invoke(context.Background(), in)
	require.NoError(t, err)

	require.Len(t, report.Signals, 1)
	assert.InDelta(t, 85, report.Signals[0].Score, 1e-9)
}

func TestPainScanner_NoMatchNoSignal(t *testing.T) {
	a := NewPainScanner(nil)
	a.now = func() time.Time { return fixedNow }

	report, err := a.Invoke(context.Background(),
		input(a.DefaultConfig(), item("c1", pad("a perfectly pleasant product review"))))
	require.NoError(t, err)
	assert.Empty(t, report.Signals)
}

func TestPainScanner_LearningThresholdWinsOverConfig(t *testing.T) {
	a := NewPainScanner(nil)
	a.now = func() time.Time { return fixedNow }

	in := input(a.DefaultConfig(), item("c1", pad("so slow and broken, it just crashed again")))

	report, err := a.Invoke(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, report.Signals, 1, "score 85 clears the configured floor of 60")

	in.Snapshot.LearningState = &models.LearningState{
		P0Thresholds: map[string]float64{models.ThresholdMinUrgencyScore: 90},
	}
	report, err = a.Invoke(context.Background(), in)
	require.NoError(t, err)
	assert.Empty(t, report.Signals, "learned floor of 90 overrides the config floor")
}

func TestPainScanner_Deterministic(t *testing.T) {
	a := NewPainScanner(nil)
	a.now = func() time.Time { return fixedNow }

	in := input(a.DefaultConfig(),
		item("c1", pad("the export is broken and painfully slow")),
		item("c2", pad("crashes whenever I open settings, what a waste")))

	first, err := a.Invoke(context.Background(), in)
	require.NoError(t, err)
	second, err := a.Invoke(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, first.Signals, second.Signals)
}

func TestPainScanner_HonorsCancellation(t *testing.T) {
	a := NewPainScanner(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Invoke(ctx, input(a.DefaultConfig(), item("c1", "broken")))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEmotionMapper_ScoresTriggers(t *testing.T) {
	a := NewEmotionMapper(nil)
	a.now = func() time.Time { return fixedNow }

	// 2 triggers, saturated length: (35 + 20*2) * 1.0 = 75.
	in := input(a.DefaultConfig(), item("c1", pad("I love this, the camera is amazing")))
	report, err := a.Invoke(context.Background(), in)
	require.NoError(t, err)

	require.Len(t, report.Signals, 1)
	sig := report.Signals[0]
	assert.Equal(t, models.SignalKindEmotion, sig.Kind)
	assert.InDelta(t, 75, sig.Score, 1e-9)
	assert.InDelta(t, 75, sig.Payload["intensity"], 1e-9)
	assert.Equal(t, "amazing", sig.Payload["trigger"], "triggers are reported in sorted order")
}

func TestEmotionMapper_AnalyzerBoostsScore(t *testing.T) {
	analyzer := &stubAnalyzer{scores: map[string]float64{"emotion": 1.0}}
	a := NewEmotionMapper(analyzer)
	a.now = func() time.Time { return fixedNow }

	// Heuristic base 75 plus the full 20-point analyzer boost, clamped at 95.
	in := input(a.DefaultConfig(), item("c1", pad("I love this, the camera is amazing")))
	report, err := a.Invoke(context.Background(), in)
	require.NoError(t, err)

	require.Len(t, report.Signals, 1)
	assert.InDelta(t, 95, report.Signals[0].Score, 1e-9)
	assert.Contains(t, analyzer.labels, "emotion")
}

func TestEmotionMapper_LearningThresholdWinsOverConfig(t *testing.T) {
	a := NewEmotionMapper(nil)
	a.now = func() time.Time { return fixedNow }

	in := input(a.DefaultConfig(), item("c1", pad("I love this, the camera is amazing")))
	in.Snapshot.LearningState = &models.LearningState{
		P0Thresholds: map[string]float64{models.ThresholdMinEmotionIntensity: 80},
	}

	report, err := a.Invoke(context.Background(), in)
	require.NoError(t, err)
	assert.Empty(t, report.Signals)
}

func TestTrendHunter_ScoresMomentum(t *testing.T) {
	a := NewTrendHunter(nil)
	a.now = func() time.Time { return fixedNow }

	it := item("c1", "trending launch everyone is talking about")
	it.PublishedAt = fixedNow.Add(-24 * time.Hour)
	it.Metrics = map[string]float64{"views_per_hour": 1000} // velocity 1.0

	report, err := a.Invoke(context.Background(), input(a.DefaultConfig(), it))
	require.NoError(t, err)

	require.Len(t, report.Signals, 1)
	sig := report.Signals[0]
	assert.Equal(t, models.SignalKindTrend, sig.Kind)
	// 3 hits, velocity 1, full novelty: 30 + 12*3 + 10 + 0.3*100 = 106 → 100.
	assert.InDelta(t, 100, sig.Score, 1e-9)
	assert.InDelta(t, 1.0, sig.Payload["velocity"], 1e-9)
}

func TestTrendHunter_AnalyzerBoostsScore(t *testing.T) {
	analyzer := &stubAnalyzer{scores: map[string]float64{"trend": 0.5}}
	a := NewTrendHunter(analyzer)
	a.now = func() time.Time { return fixedNow }

	// Fresh topic heuristic 84 plus 0.5 * 20 from the analyzer.
	report, err := a.Invoke(context.Background(),
		input(a.DefaultConfig(), item("c1", "trending launch")))
	require.NoError(t, err)

	require.Len(t, report.Signals, 1)
	assert.InDelta(t, 94, report.Signals[0].Score, 1e-9)
	assert.Contains(t, analyzer.labels, "trend")
}

func TestTrendHunter_WindowExcludesStaleItems(t *testing.T) {
	a := NewTrendHunter(nil)
	a.now = func() time.Time { return fixedNow }

	it := item("c1", "trending launch")
	it.PublishedAt = fixedNow.Add(-10 * 24 * time.Hour) // outside the 7-day window

	report, err := a.Invoke(context.Background(), input(a.DefaultConfig(), it))
	require.NoError(t, err)
	assert.Empty(t, report.Signals)
}

func TestTrendHunter_NoveltyDecaysWithRecentOverlap(t *testing.T) {
	a := NewTrendHunter(nil)
	a.now = func() time.Time { return fixedNow }

	it := item("c1", "trending launch")
	in := input(a.DefaultConfig(), it)

	report, err := a.Invoke(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, report.Signals, 1, "fresh topic: 30 + 24 + 30 = 84 clears the floor")

	// Every salient token already seen: novelty 0, score 54 ≤ floor 55.
	in.Snapshot.RecentSignals = []models.Signal{
		{SignalID: "old", Keywords: []string{"trending", "launch"}},
	}
	report, err = a.Invoke(context.Background(), in)
	require.NoError(t, err)
	assert.Empty(t, report.Signals)
}

func TestEngagementVelocity_CapsAtFive(t *testing.T) {
	assert.InDelta(t, 0, engagementVelocity(nil), 1e-9)
	assert.InDelta(t, 2.0, engagementVelocity(map[string]float64{
		"views_per_hour": 1000, "shares": 50, "comments": 25,
	}), 1e-9)
	assert.InDelta(t, 5.0, engagementVelocity(map[string]float64{"shares": 1e6}), 1e-9)
}

func TestSceneFinder_DetectsScene(t *testing.T) {
	a := NewSceneFinder(nil)
	a.now = func() time.Time { return fixedNow }

	// 2 phrase hits, saturated length: (45 + 18*2) * 1.0 = 81.
	in := input(a.DefaultConfig(), item("c1", pad("stuck in a meeting at the office")))
	report, err := a.Invoke(context.Background(), in)
	require.NoError(t, err)

	require.Len(t, report.Signals, 1)
	sig := report.Signals[0]
	assert.Equal(t, models.SignalKindScene, sig.Kind)
	assert.InDelta(t, 81, sig.Score, 1e-9)
	assert.Equal(t, "work", sig.Payload["scene"])
}

func TestSceneFinder_AnalyzerBoostsScore(t *testing.T) {
	analyzer := &stubAnalyzer{scores: map[string]float64{"scene": 0.5}}
	a := NewSceneFinder(analyzer)
	a.now = func() time.Time { return fixedNow }

	// Heuristic base 81 plus 0.5 * 20 from the analyzer.
	in := input(a.DefaultConfig(), item("c1", pad("stuck in a meeting at the office")))
	report, err := a.Invoke(context.Background(), in)
	require.NoError(t, err)

	require.Len(t, report.Signals, 1)
	assert.InDelta(t, 91, report.Signals[0].Score, 1e-9)
	assert.Contains(t, analyzer.labels, "scene")
}

func TestSceneFinder_StablePrecedence(t *testing.T) {
	a := NewSceneFinder(nil)
	a.now = func() time.Time { return fixedNow }

	// Both fitness and work phrases present; fitness sorts first.
	in := input(a.DefaultConfig(), item("c1", pad("hit the gym before heading to the office")))
	report, err := a.Invoke(context.Background(), in)
	require.NoError(t, err)

	require.Len(t, report.Signals, 1)
	assert.Equal(t, "fitness", report.Signals[0].Payload["scene"])
}

func TestSceneFinder_NoSceneNoSignal(t *testing.T) {
	a := NewSceneFinder(nil)
	a.now = func() time.Time { return fixedNow }

	report, err := a.Invoke(context.Background(),
		input(a.DefaultConfig(), item("c1", pad("generic remarks about nothing in particular"))))
	require.NoError(t, err)
	assert.Empty(t, report.Signals)
}

func TestRecencyFactor(t *testing.T) {
	pub := fixedNow.Add(-5 * 24 * time.Hour)
	assert.InDelta(t, 0.5, recencyFactor(pub, fixedNow, 0.1), 1e-9)
	assert.InDelta(t, 1.0, recencyFactor(time.Time{}, fixedNow, 0.1), 1e-9, "unknown publish time is not penalized")
	assert.InDelta(t, 0, recencyFactor(fixedNow.Add(-30*24*time.Hour), fixedNow, 0.1), 1e-9, "decay floors at zero")
}
