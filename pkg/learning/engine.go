package learning

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jackeyunjie/growthd/pkg/config"
	"github.com/jackeyunjie/growthd/pkg/memory"
	"github.com/jackeyunjie/growthd/pkg/models"
)

// Weight bounds enforced whenever the state is mutated.
const (
	weightFloor = 0.0
	weightCap   = 0.5
)

// outcomeSuccessValue is the outcome_value above which a feedback record
// counts as a success for quadrant performance.
const outcomeSuccessValue = 100.0

// engagementRateFloor and engagementShare define the engagement-pattern
// insight: when more than engagementShare of recent feedback clears the
// rate floor, the perception urgency threshold is lowered to the floor.
const (
	engagementRateFloor = 0.08
	engagementShare     = 0.30
)

// Engine derives insights from feedback batches and applies the confident
// ones to the learning state. It is the single writer of that state.
type Engine struct {
	cfg    config.LearningConfig
	mem    *memory.SharedMemory
	logger *slog.Logger

	// writeMu serializes state mutation; the state key has one writer.
	writeMu sync.Mutex
	now     func() time.Time
}

// NewEngine builds the learning engine.
func NewEngine(cfg config.LearningConfig, mem *memory.SharedMemory, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		cfg:    cfg,
		mem:    mem,
		logger: logger.With("component", "learning_engine"),
		now:    time.Now,
	}
}

// Analyze derives insights from the batch and applies those at or above the
// configured confidence. The state version increments once per applied pass.
func (e *Engine) Analyze(ctx context.Context, records []models.FeedbackRecord) error {
	insights := e.DeriveInsights(records)
	if len(insights) == 0 {
		e.logger.Info("Analysis pass produced no insights", "records", len(records))
		return nil
	}
	return e.Apply(ctx, insights)
}

// DeriveInsights runs the rule set over a feedback batch.
func (e *Engine) DeriveInsights(records []models.FeedbackRecord) []models.Insight {
	var insights []models.Insight
	if in := e.quadrantPerformance(records); in != nil {
		insights = append(insights, *in)
	}
	if in := e.engagementPattern(records); in != nil {
		insights = append(insights, *in)
	}
	return insights
}

// quadrantPerformance compares per-quadrant success rates (outcome_value
// above the success threshold). When the best quadrant clears a 0.5 success
// rate and beats the worst by a real margin, its judgment weights are scaled
// up by 1.2.
func (e *Engine) quadrantPerformance(records []models.FeedbackRecord) *models.Insight {
	type tally struct{ success, total int }
	byQuadrant := make(map[models.Quadrant]*tally)
	for _, r := range records {
		if r.SourceQuadrant == "" {
			continue
		}
		t := byQuadrant[r.SourceQuadrant]
		if t == nil {
			t = &tally{}
			byQuadrant[r.SourceQuadrant] = t
		}
		t.total++
		if r.OutcomeValue > outcomeSuccessValue {
			t.success++
		}
	}
	if len(byQuadrant) < 2 {
		return nil
	}

	var best, worst models.Quadrant
	bestRate, worstRate := -1.0, 2.0
	for _, q := range models.AllQuadrants {
		t, ok := byQuadrant[q]
		if !ok || t.total == 0 {
			continue
		}
		rate := float64(t.success) / float64(t.total)
		if rate > bestRate {
			best, bestRate = q, rate
		}
		if rate < worstRate {
			worst, worstRate = q, rate
		}
	}
	if best == "" || best == worst {
		return nil
	}
	if bestRate <= 0.5 || bestRate-worstRate < 0.2 {
		return nil
	}

	return &models.Insight{
		Kind:          "quadrant_performance",
		Description:   fmt.Sprintf("quadrant %s outperforms %s (%.0f%% vs %.0f%% success)", best, worst, bestRate*100, worstRate*100),
		FailedPattern: fmt.Sprintf("quadrant %s underperforms (%.0f%% success)", worst, worstRate*100),
		Confidence:    bestRate,
		Quadrant:      best,
		WeightScale:   1.2,
		CreatedAt:     e.now().UTC(),
	}
}

// engagementPattern fires when a meaningful share of recent feedback shows
// strong engagement, recommending a lower perception urgency floor.
func (e *Engine) engagementPattern(records []models.FeedbackRecord) *models.Insight {
	if len(records) == 0 {
		return nil
	}
	engaged := 0
	for _, r := range records {
		if r.Metrics["engagement_rate"] > engagementRateFloor {
			engaged++
		}
	}
	if float64(engaged)/float64(len(records)) <= engagementShare {
		return nil
	}
	return &models.Insight{
		Kind:        "engagement_pattern",
		Description: fmt.Sprintf("%d of %d recent records show engagement above %.0f%%", engaged, len(records), engagementRateFloor*100),
		Confidence:  0.7,
		Threshold:   models.ThresholdMinUrgencyScore,
		Value:       engagementRateFloor,
		CreatedAt:   e.now().UTC(),
	}
}

// Apply mutates the learning state with every insight at or above the apply
// confidence. Applying the same insight twice yields the same state apart
// from the version counter; weight scaling saturates at the cap.
func (e *Engine) Apply(ctx context.Context, insights []models.Insight) error {
	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	state := e.mem.LearningState(ctx)
	applied := 0
	for _, in := range insights {
		if in.Confidence < e.applyConfidence() {
			e.logger.Info("Insight below apply confidence, skipped", "kind", in.Kind, "confidence", in.Confidence)
			continue
		}
		e.applyOne(state, in)
		applied++
	}
	if applied == 0 {
		return nil
	}

	state.Version++
	state.UpdatedAt = e.now().UTC()
	if err := e.mem.Store().Store(ctx, memory.KeyLearningState, state, memory.TTLLearningState); err != nil {
		return fmt.Errorf("failed to persist learning state v%d: %w", state.Version, err)
	}
	e.logger.Info("Learning state updated", "version", state.Version, "insights_applied", applied)
	return nil
}

func (e *Engine) applyOne(state *models.LearningState, in models.Insight) {
	switch in.Kind {
	case "quadrant_performance":
		weights := state.P1Weights[in.Quadrant]
		if weights == nil {
			weights = models.DefaultLearningState().P1Weights[in.Quadrant]
			if state.P1Weights == nil {
				state.P1Weights = make(map[models.Quadrant]map[string]float64)
			}
			state.P1Weights[in.Quadrant] = weights
		}
		for name, w := range weights {
			weights[name] = clampWeight(w * in.WeightScale)
		}
		state.SuccessfulPatterns = appendBounded(state.SuccessfulPatterns, in.Description)
		if in.FailedPattern != "" {
			state.FailedPatterns = appendBounded(state.FailedPatterns, in.FailedPattern)
		}
	case "engagement_pattern":
		if state.P0Thresholds == nil {
			state.P0Thresholds = make(map[string]float64)
		}
		state.P0Thresholds[in.Threshold] = in.Value
		state.SuccessfulPatterns = appendBounded(state.SuccessfulPatterns, in.Description)
	default:
		e.logger.Warn("Unknown insight kind, ignored", "kind", in.Kind)
	}
}

func (e *Engine) applyConfidence() float64 {
	if e.cfg.ApplyConfidence > 0 {
		return e.cfg.ApplyConfidence
	}
	return 0.7
}

func clampWeight(v float64) float64 {
	if v < weightFloor {
		return weightFloor
	}
	if v > weightCap {
		return weightCap
	}
	return v
}

// patternHistoryLimit bounds the pattern lists to the most recent entries.
const patternHistoryLimit = 100

func appendBounded(list []string, s string) []string {
	for _, existing := range list {
		if existing == s {
			return list
		}
	}
	list = append(list, s)
	if len(list) > patternHistoryLimit {
		list = list[len(list)-patternHistoryLimit:]
	}
	return list
}

// recentFeedbackFetchers bounds the parallel store reads during a window
// scan. Feedback keys can number in the hundreds against Redis.
const recentFeedbackFetchers = 8

// RecentFeedback loads the stored feedback records observed within the
// window, for analysis passes driven from persisted data. Records that
// expired between the key scan and the read are skipped.
func (e *Engine) RecentFeedback(ctx context.Context, window time.Duration) ([]models.FeedbackRecord, error) {
	keys, err := e.mem.Store().Keys(ctx, memory.KeyPrefixFeedback)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback keys: %w", err)
	}
	cutoff := e.now().Add(-window)

	results := make([]*models.FeedbackRecord, len(keys))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(recentFeedbackFetchers)
	for i, k := range keys {
		g.Go(func() error {
			var rec models.FeedbackRecord
			if err := e.mem.Store().Get(gctx, k, &rec); err != nil {
				if errors.Is(err, memory.ErrNotFound) {
					return nil
				}
				return fmt.Errorf("failed to load feedback %s: %w", k, err)
			}
			if rec.Timestamp.After(cutoff) {
				results[i] = &rec
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var records []models.FeedbackRecord
	for _, rec := range results {
		if rec != nil {
			records = append(records, *rec)
		}
	}
	return records, nil
}
