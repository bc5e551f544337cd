package perception

import (
	"context"
	"time"

	"github.com/jackeyunjie/growthd/pkg/agent"
	"github.com/jackeyunjie/growthd/pkg/models"
)

var trendVocab = []string{
	"trending", "viral", "everyone", "blowing up", "new", "launch",
	"rising", "growth", "momentum", "wave", "hot", "breakthrough",
}

// TrendHunter is the Q3 perception agent: detects topical momentum, scoring
// velocity from engagement metrics plus trend phrasing.
type TrendHunter struct {
	analyzer agent.TextAnalyzer
	now      func() time.Time
}

// NewTrendHunter creates the Q3 P0 agent. analyzer may be nil.
func NewTrendHunter(analyzer agent.TextAnalyzer) *TrendHunter {
	return &TrendHunter{analyzer: analyzer, now: time.Now}
}

// ID implements agent.Agent.
func (a *TrendHunter) ID() agent.ID { return agent.Q3TrendHunter }

// Quadrant implements agent.Agent.
func (a *TrendHunter) Quadrant() models.Quadrant { return models.QuadrantQ3 }

// Layer implements agent.Agent.
func (a *TrendHunter) Layer() models.Layer { return models.LayerP0 }

// DefaultConfig implements agent.Agent.
func (a *TrendHunter) DefaultConfig() map[string]float64 {
	return map[string]float64{
		"velocity_threshold": 55,
		"novelty_weight":     0.3,
		"window_size":        7, // days of history considered
	}
}

// Invoke hunts for trend signals in the content batch.
func (a *TrendHunter) Invoke(ctx context.Context, in agent.Input) (*models.AgentReport, error) {
	start := time.Now()
	now := a.now()
	floor := in.Config["velocity_threshold"]
	noveltyWeight := in.Config["novelty_weight"]
	window := time.Duration(in.Config["window_size"]) * 24 * time.Hour

	var signals []models.Signal
	for _, item := range in.Content {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if window > 0 && !item.PublishedAt.IsZero() && now.Sub(item.PublishedAt) > window {
			continue
		}

		hits := matchTokens(item.Text, trendVocab)
		velocity := engagementVelocity(item.Metrics)
		if len(hits) == 0 && velocity < 1 {
			continue
		}

		score := clampScore((30 + 12*float64(len(hits)) + 10*velocity +
			noveltyWeight*100*noveltyFactor(item, in.Snapshot.RecentSignals) +
			analyzerBoost(ctx, a.analyzer, item.Text, "trend")) *
			sourceTierFactor(item.SourceType))
		if score <= floor {
			continue
		}

		signals = append(signals, models.Signal{
			SignalID:  signalID(a.ID(), in.SessionID, item.ID),
			Quadrant:  models.QuadrantQ3,
			Kind:      models.SignalKindTrend,
			Keywords:  append(hits, extraKeywords(item.Text)...),
			Score:     score,
			Timestamp: now,
			Payload: map[string]interface{}{
				"topic":    item.Text,
				"velocity": velocity,
				"source":   item.Source,
			},
		})
	}

	return &models.AgentReport{
		AgentID:  string(a.ID()),
		Quadrant: models.QuadrantQ3,
		Layer:    models.LayerP0,
		Signals:  signals,
		Duration: time.Since(start).Milliseconds(),
	}, nil
}

// engagementVelocity folds raw platform metrics into a 0–5 velocity factor.
func engagementVelocity(metrics map[string]float64) float64 {
	if metrics == nil {
		return 0
	}
	v := metrics["views_per_hour"]/1000 + metrics["shares"]/100 + metrics["comments"]/50
	if v > 5 {
		return 5
	}
	return v
}

// noveltyFactor is 1 when none of the item's salient tokens appear in the
// recent signal history, decaying toward 0 as overlap grows.
func noveltyFactor(item agent.ContentItem, recent []models.Signal) float64 {
	if len(recent) == 0 {
		return 1
	}
	toks := extraKeywords(item.Text)
	if len(toks) == 0 {
		return 0.5
	}
	seen := 0
	for _, tok := range toks {
		for i := range recent {
			if recent[i].HasKeyword(tok) {
				seen++
				break
			}
		}
	}
	return 1 - float64(seen)/float64(len(toks))
}
