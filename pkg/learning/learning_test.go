package learning

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackeyunjie/growthd/pkg/config"
	"github.com/jackeyunjie/growthd/pkg/memory"
	"github.com/jackeyunjie/growthd/pkg/models"
)

func setupLearning(t *testing.T) (*memory.SharedMemory, *Engine, *Collector) {
	t.Helper()
	mem := memory.NewSharedMemory(memory.NewMemoryStore())
	cfg := *config.DefaultLearningConfig()
	engine := NewEngine(cfg, mem, nil)
	collector := NewCollector(cfg, mem, engine, nil, nil)
	return mem, engine, collector
}

type recordedOutcome struct {
	quadrant models.Quadrant
	success  bool
}

type stubEvolutionSink struct {
	outcomes []recordedOutcome
	ticks    int
}

func (s *stubEvolutionSink) RecordQuadrantOutcome(_ context.Context, q models.Quadrant, success bool) {
	s.outcomes = append(s.outcomes, recordedOutcome{quadrant: q, success: success})
}

func (s *stubEvolutionSink) NoteFeedback(context.Context) { s.ticks++ }

func TestClassify(t *testing.T) {
	assert.Equal(t, models.FeedbackOutcome, Classify(models.FeedbackRecord{
		Metrics: map[string]float64{"conversion_rate": 0.04},
	}))
	assert.Equal(t, models.FeedbackOutcome, Classify(models.FeedbackRecord{
		Metrics: map[string]float64{"revenue": 1200},
	}))
	assert.Equal(t, models.FeedbackQualitative, Classify(models.FeedbackRecord{
		Metrics: map[string]float64{"sentiment": 0.8},
	}))
	assert.Equal(t, models.FeedbackQualitative, Classify(models.FeedbackRecord{
		Metrics: map[string]float64{"comments": 42},
	}))
	assert.Equal(t, models.FeedbackPerformance, Classify(models.FeedbackRecord{
		Metrics: map[string]float64{"impressions": 9000},
	}))
	assert.Equal(t, models.FeedbackMeta, Classify(models.FeedbackRecord{
		Kind:    models.FeedbackMeta,
		Metrics: map[string]float64{"conversion_rate": 0.04},
	}), "meta records pass through unclassified")
}

func TestCollect_AssignsIDAndPersists(t *testing.T) {
	ctx := context.Background()
	mem, _, collector := setupLearning(t)

	stored, err := collector.Collect(ctx, models.FeedbackRecord{
		SourcePlanID:   "plan-1",
		SourceQuadrant: models.QuadrantQ1,
		Metrics:        map[string]float64{"revenue": 300},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, stored.FeedbackID)
	assert.False(t, stored.Timestamp.IsZero())
	assert.Equal(t, models.FeedbackOutcome, stored.Kind)

	var loaded models.FeedbackRecord
	err = mem.Store().Get(ctx, memory.KeyPrefixFeedback+stored.FeedbackID, &loaded)
	require.NoError(t, err)
	assert.Equal(t, stored.FeedbackID, loaded.FeedbackID)
	assert.Equal(t, 1, collector.Buffered())
}

func TestCollect_EngagementInsightAppliedAfterBatch(t *testing.T) {
	ctx := context.Background()
	mem, _, collector := setupLearning(t)

	// Nine records do not trigger analysis.
	for i := 0; i < 9; i++ {
		_, err := collector.Collect(ctx, models.FeedbackRecord{
			SourcePlanID: fmt.Sprintf("plan-%d", i),
			Metrics:      map[string]float64{"engagement_rate": 0.12},
		})
		require.NoError(t, err)
	}
	assert.Equal(t, 1, mem.LearningState(ctx).Version, "no analysis before the batch completes")

	// The tenth record completes the batch; every record clears the
	// engagement floor, so the urgency threshold drops.
	_, err := collector.Collect(ctx, models.FeedbackRecord{
		SourcePlanID: "plan-9",
		Metrics:      map[string]float64{"engagement_rate": 0.12},
	})
	require.NoError(t, err)

	state := mem.LearningState(ctx)
	assert.Equal(t, 2, state.Version, "one applied pass bumps the version once")
	assert.InDelta(t, 0.08, state.P0Thresholds[models.ThresholdMinUrgencyScore], 1e-9)
	assert.NotEmpty(t, state.SuccessfulPatterns)
}

func TestDeriveInsights_EngagementShareTooLow(t *testing.T) {
	_, engine, _ := setupLearning(t)

	// 3 of 10 is exactly the 30% share; the rule requires strictly more.
	var records []models.FeedbackRecord
	for i := 0; i < 10; i++ {
		rate := 0.01
		if i < 3 {
			rate = 0.2
		}
		records = append(records, models.FeedbackRecord{Metrics: map[string]float64{"engagement_rate": rate}})
	}
	assert.Empty(t, engine.DeriveInsights(records))
}

func TestDeriveInsights_QuadrantPerformance(t *testing.T) {
	_, engine, _ := setupLearning(t)

	var records []models.FeedbackRecord
	// Q1: 4 of 5 successes. Q3: 1 of 5.
	for i := 0; i < 5; i++ {
		q1 := models.FeedbackRecord{SourceQuadrant: models.QuadrantQ1, OutcomeValue: 150}
		if i == 4 {
			q1.OutcomeValue = 50
		}
		q3 := models.FeedbackRecord{SourceQuadrant: models.QuadrantQ3, OutcomeValue: 50}
		if i == 0 {
			q3.OutcomeValue = 150
		}
		records = append(records, q1, q3)
	}

	insights := engine.DeriveInsights(records)
	require.Len(t, insights, 1)
	in := insights[0]
	assert.Equal(t, "quadrant_performance", in.Kind)
	assert.Equal(t, models.QuadrantQ1, in.Quadrant)
	assert.InDelta(t, 0.8, in.Confidence, 1e-9, "confidence is the best quadrant's success rate")
	assert.InDelta(t, 1.2, in.WeightScale, 1e-9)
}

func TestDeriveInsights_QuadrantPerformanceMarginTooSmall(t *testing.T) {
	_, engine, _ := setupLearning(t)

	// Both quadrants at 60%: margin below 0.2 yields nothing.
	var records []models.FeedbackRecord
	for i := 0; i < 5; i++ {
		val := 150.0
		if i >= 3 {
			val = 50
		}
		records = append(records,
			models.FeedbackRecord{SourceQuadrant: models.QuadrantQ1, OutcomeValue: val},
			models.FeedbackRecord{SourceQuadrant: models.QuadrantQ2, OutcomeValue: val},
		)
	}
	assert.Empty(t, engine.DeriveInsights(records))
}

func TestApply_WeightScalingClampsAtCap(t *testing.T) {
	ctx := context.Background()
	mem, engine, _ := setupLearning(t)

	insight := models.Insight{
		Kind:        "quadrant_performance",
		Description: "Q1 outperforms",
		Confidence:  0.9,
		Quadrant:    models.QuadrantQ1,
		WeightScale: 1.2,
	}

	// Repeated application saturates every weight at 0.5.
	for i := 0; i < 10; i++ {
		insight.Description = fmt.Sprintf("Q1 outperforms pass %d", i)
		require.NoError(t, engine.Apply(ctx, []models.Insight{insight}))
	}

	state := mem.LearningState(ctx)
	for name, w := range state.P1Weights[models.QuadrantQ1] {
		assert.LessOrEqual(t, w, 0.5, "weight %s exceeds cap", name)
	}
	assert.Equal(t, 11, state.Version, "each applied pass bumps the version once")
}

func TestApply_SkipsLowConfidenceInsights(t *testing.T) {
	ctx := context.Background()
	mem, engine, _ := setupLearning(t)

	err := engine.Apply(ctx, []models.Insight{{
		Kind:       "engagement_pattern",
		Confidence: 0.5,
		Threshold:  models.ThresholdMinUrgencyScore,
		Value:      0.08,
	}})
	require.NoError(t, err)

	state := mem.LearningState(ctx)
	assert.Equal(t, 1, state.Version, "nothing applied, version unchanged")
	assert.InDelta(t, 60, state.P0Thresholds[models.ThresholdMinUrgencyScore], 1e-9)
}

func TestCollect_ForwardsOutcomesToEvolutionSink(t *testing.T) {
	ctx := context.Background()
	mem := memory.NewSharedMemory(memory.NewMemoryStore())
	cfg := *config.DefaultLearningConfig()
	engine := NewEngine(cfg, mem, nil)
	sink := &stubEvolutionSink{}
	collector := NewCollector(cfg, mem, engine, sink, nil)

	_, err := collector.Collect(ctx, models.FeedbackRecord{
		SourceQuadrant: models.QuadrantQ1,
		Metrics:        map[string]float64{"conversion_rate": 0.1},
		OutcomeValue:   150,
	})
	require.NoError(t, err)
	_, err = collector.Collect(ctx, models.FeedbackRecord{
		SourceQuadrant: models.QuadrantQ3,
		Metrics:        map[string]float64{"revenue": 80},
		OutcomeValue:   50,
	})
	require.NoError(t, err)
	// Performance telemetry ticks the schedule but carries no outcome.
	_, err = collector.Collect(ctx, models.FeedbackRecord{
		SourceQuadrant: models.QuadrantQ2,
		Metrics:        map[string]float64{"impressions": 9000},
	})
	require.NoError(t, err)

	require.Len(t, sink.outcomes, 2)
	assert.Equal(t, recordedOutcome{quadrant: models.QuadrantQ1, success: true}, sink.outcomes[0])
	assert.Equal(t, recordedOutcome{quadrant: models.QuadrantQ3, success: false}, sink.outcomes[1])
	assert.Equal(t, 3, sink.ticks, "every record counts toward the feedback schedule")
}

func TestQuadrantSuccessRates(t *testing.T) {
	ctx := context.Background()
	_, _, collector := setupLearning(t)

	// Q1: 2 of 3 successes. Q3: 0 of 1. Performance records do not count.
	outcomes := []models.FeedbackRecord{
		{SourceQuadrant: models.QuadrantQ1, Metrics: map[string]float64{"revenue": 1}, OutcomeValue: 150},
		{SourceQuadrant: models.QuadrantQ1, Metrics: map[string]float64{"revenue": 1}, OutcomeValue: 120},
		{SourceQuadrant: models.QuadrantQ1, Metrics: map[string]float64{"revenue": 1}, OutcomeValue: 50},
		{SourceQuadrant: models.QuadrantQ3, Metrics: map[string]float64{"revenue": 1}, OutcomeValue: 10},
		{SourceQuadrant: models.QuadrantQ2, Metrics: map[string]float64{"impressions": 100}},
	}
	for _, rec := range outcomes {
		_, err := collector.Collect(ctx, rec)
		require.NoError(t, err)
	}

	rates := collector.QuadrantSuccessRates()
	assert.InDelta(t, 2.0/3.0, rates[models.QuadrantQ1], 1e-9)
	assert.Zero(t, rates[models.QuadrantQ3])
	_, ok := rates[models.QuadrantQ2]
	assert.False(t, ok, "quadrants without outcome feedback are absent")
}

func TestApply_RecordsFailedPattern(t *testing.T) {
	ctx := context.Background()
	mem, engine, _ := setupLearning(t)

	err := engine.Apply(ctx, []models.Insight{{
		Kind:          "quadrant_performance",
		Description:   "Q1 outperforms Q3",
		FailedPattern: "quadrant q3 underperforms (20% success)",
		Confidence:    0.8,
		Quadrant:      models.QuadrantQ1,
		WeightScale:   1.2,
	}})
	require.NoError(t, err)

	state := mem.LearningState(ctx)
	assert.Contains(t, state.SuccessfulPatterns, "Q1 outperforms Q3")
	assert.Contains(t, state.FailedPatterns, "quadrant q3 underperforms (20% success)")
}

func TestApply_PatternHistoryBounded(t *testing.T) {
	ctx := context.Background()
	mem, engine, _ := setupLearning(t)

	for i := 0; i < 105; i++ {
		err := engine.Apply(ctx, []models.Insight{{
			Kind:          "quadrant_performance",
			Description:   fmt.Sprintf("Q1 outperforms pass %d", i),
			FailedPattern: fmt.Sprintf("Q3 underperforms pass %d", i),
			Confidence:    0.9,
			Quadrant:      models.QuadrantQ1,
			WeightScale:   1.0,
		}})
		require.NoError(t, err)
	}

	state := mem.LearningState(ctx)
	assert.Len(t, state.SuccessfulPatterns, 100, "pattern history keeps the last 100")
	assert.Len(t, state.FailedPatterns, 100)
	assert.Equal(t, "Q1 outperforms pass 104", state.SuccessfulPatterns[99], "newest entries survive")
	assert.NotContains(t, state.SuccessfulPatterns, "Q1 outperforms pass 0", "oldest entries are evicted")
}

func TestRecentFeedback_WindowFilter(t *testing.T) {
	ctx := context.Background()
	mem, engine, _ := setupLearning(t)

	old := models.FeedbackRecord{FeedbackID: "old", Timestamp: time.Now().Add(-72 * time.Hour)}
	fresh := models.FeedbackRecord{FeedbackID: "fresh", Timestamp: time.Now().Add(-time.Hour)}
	require.NoError(t, mem.Store().Store(ctx, memory.KeyPrefixFeedback+"old", old, 0))
	require.NoError(t, mem.Store().Store(ctx, memory.KeyPrefixFeedback+"fresh", fresh, 0))

	records, err := engine.RecentFeedback(ctx, 24*time.Hour)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "fresh", records[0].FeedbackID)
}
