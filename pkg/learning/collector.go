// Package learning closes the feedback loop: the collector classifies and
// stores feedback records, and the engine periodically analyzes them to
// derive insights that mutate the shared learning state.
package learning

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jackeyunjie/growthd/pkg/config"
	"github.com/jackeyunjie/growthd/pkg/memory"
	"github.com/jackeyunjie/growthd/pkg/models"
)

// EvolutionSink receives the feedback stream's evolution-relevant events:
// per-quadrant outcomes for strategy attribution and a tick per record for
// the feedback-driven schedule. The evolution engine implements it.
type EvolutionSink interface {
	RecordQuadrantOutcome(ctx context.Context, quadrant models.Quadrant, success bool)
	NoteFeedback(ctx context.Context)
}

// Collector ingests feedback records, classifies them, persists them, and
// triggers an analysis pass once a full batch has accumulated.
type Collector struct {
	cfg       config.LearningConfig
	mem       *memory.SharedMemory
	engine    *Engine
	evolution EvolutionSink
	logger    *slog.Logger

	mu       sync.Mutex
	buffer   []models.FeedbackRecord
	sinceRun int
	now      func() time.Time
}

// NewCollector builds a collector feeding the given engine. evolution may be
// nil when no evolution engine is wired.
func NewCollector(cfg config.LearningConfig, mem *memory.SharedMemory, engine *Engine, evolution EvolutionSink, logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{
		cfg:       cfg,
		mem:       mem,
		engine:    engine,
		evolution: evolution,
		logger:    logger.With("component", "feedback_collector"),
		now:       time.Now,
	}
}

// Collect classifies and persists one feedback record, returning it with
// the assigned id and kind. Every cfg.BatchSize records it runs the engine's
// analysis synchronously so the caller observes the updated state on return.
// Outcome feedback is also forwarded to the evolution sink.
func (c *Collector) Collect(ctx context.Context, record models.FeedbackRecord) (models.FeedbackRecord, error) {
	if record.FeedbackID == "" {
		record.FeedbackID = uuid.NewString()
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = c.now().UTC()
	}
	record.Kind = Classify(record)

	if err := c.mem.Store().Store(ctx, memory.KeyPrefixFeedback+record.FeedbackID, record, memory.TTLFeedback); err != nil {
		return record, fmt.Errorf("failed to persist feedback %s: %w", record.FeedbackID, err)
	}

	c.mu.Lock()
	c.buffer = append(c.buffer, record)
	if limit := c.cfg.BufferLimit; limit > 0 && len(c.buffer) > limit {
		c.buffer = c.buffer[len(c.buffer)-limit:]
	}
	c.sinceRun++
	runAnalysis := c.cfg.BatchSize > 0 && c.sinceRun >= c.cfg.BatchSize
	if runAnalysis {
		c.sinceRun = 0
	}
	recent := make([]models.FeedbackRecord, len(c.buffer))
	copy(recent, c.buffer)
	c.mu.Unlock()

	if c.evolution != nil {
		if record.Kind == models.FeedbackOutcome && record.SourceQuadrant != "" {
			c.evolution.RecordQuadrantOutcome(ctx, record.SourceQuadrant, record.OutcomeValue > outcomeSuccessValue)
		}
		c.evolution.NoteFeedback(ctx)
	}

	if runAnalysis {
		c.logger.Info("Feedback batch complete, running analysis", "records", len(recent))
		if err := c.engine.Analyze(ctx, recent); err != nil {
			return record, fmt.Errorf("feedback analysis failed: %w", err)
		}
	}
	return record, nil
}

// Buffered returns the number of retained records.
func (c *Collector) Buffered() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.buffer)
}

// QuadrantSuccessRates computes per-quadrant success rates over the buffered
// outcome feedback. Quadrants with no outcome records are absent from the
// result. Satisfies the evolution engine's rate source.
func (c *Collector) QuadrantSuccessRates() map[models.Quadrant]float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	type tally struct{ success, total int }
	byQuadrant := make(map[models.Quadrant]*tally)
	for _, r := range c.buffer {
		if r.Kind != models.FeedbackOutcome || r.SourceQuadrant == "" {
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

	rates := make(map[models.Quadrant]float64, len(byQuadrant))
	for q, t := range byQuadrant {
		rates[q] = float64(t.success) / float64(t.total)
	}
	return rates
}

// Classify assigns the feedback kind from the metrics the record carries:
// conversion or revenue metrics mean outcome feedback, sentiment or comment
// metrics mean qualitative, anything else is performance telemetry.
func Classify(record models.FeedbackRecord) models.FeedbackKind {
	if record.Kind == models.FeedbackMeta {
		return models.FeedbackMeta
	}
	if _, ok := record.Metrics["conversion_rate"]; ok {
		return models.FeedbackOutcome
	}
	if _, ok := record.Metrics["revenue"]; ok {
		return models.FeedbackOutcome
	}
	if _, ok := record.Metrics["sentiment"]; ok {
		return models.FeedbackQualitative
	}
	if _, ok := record.Metrics["comments"]; ok {
		return models.FeedbackQualitative
	}
	return models.FeedbackPerformance
}
