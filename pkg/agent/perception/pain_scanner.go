package perception

import (
	"context"
	"time"

	"github.com/jackeyunjie/growthd/pkg/agent"
	"github.com/jackeyunjie/growthd/pkg/models"
)

// painVocab are the tokens that mark user pain in content text.
var painVocab = []string{
	"slow", "broken", "bug", "crash", "fail", "error", "stuck",
	"frustrat", "annoy", "hate", "painful", "impossible", "confusing",
	"expensive", "waste", "doesn't work", "can't", "wish", "why is",
}

// PainScanner is the Q1 perception agent. It detects pain expressions and
// scores their urgency from match density, content weight, recency, and
// source tier. The urgency threshold and recency decay are evolvable genes.
type PainScanner struct {
	analyzer agent.TextAnalyzer // optional; nil degrades to pure heuristics
	now      func() time.Time
}

// NewPainScanner creates the Q1 P0 agent. analyzer may be nil.
func NewPainScanner(analyzer agent.TextAnalyzer) *PainScanner {
	return &PainScanner{analyzer: analyzer, now: time.Now}
}

// ID implements agent.Agent.
func (a *PainScanner) ID() agent.ID { return agent.Q1PainScanner }

// Quadrant implements agent.Agent.
func (a *PainScanner) Quadrant() models.Quadrant { return models.QuadrantQ1 }

// Layer implements agent.Agent.
func (a *PainScanner) Layer() models.Layer { return models.LayerP0 }

// DefaultConfig implements agent.Agent.
func (a *PainScanner) DefaultConfig() map[string]float64 {
	return map[string]float64{
		"urgency_threshold": 60,
		"emotion_weight":    0.3,
		"recency_decay":     0.1,
	}
}

// Invoke scans the content items and returns one pain signal per item that
// clears the urgency threshold.
func (a *PainScanner) Invoke(ctx context.Context, in agent.Input) (*models.AgentReport, error) {
	start := time.Now()
	now := a.now()
	floor := threshold(in, models.ThresholdMinUrgencyScore, "urgency_threshold")
	decay := in.Config["recency_decay"]
	emotionWeight := in.Config["emotion_weight"]

	var signals []models.Signal
	for _, item := range in.Content {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		keywords := matchTokens(item.Text, painVocab)
		if len(keywords) == 0 {
			continue
		}

		// Base urgency grows with match density; emotional phrasing adds a
		// configurable boost, recency and source tier scale the result.
		base := 40 + 15*float64(len(keywords))
		if emotional := matchTokens(item.Text, emotionVocab); len(emotional) > 0 {
			base += emotionWeight * 100 * 0.2
		}
		base += analyzerBoost(ctx, a.analyzer, item.Text, "pain")
		urgency := clampScore(base *
			(0.5 + 0.5*lengthFactor(item.Text)) *
			recencyFactor(item.PublishedAt, now, decay) *
			sourceTierFactor(item.SourceType))

		if urgency <= floor {
			continue
		}

		signals = append(signals, models.Signal{
			SignalID:  signalID(a.ID(), in.SessionID, item.ID),
			Quadrant:  models.QuadrantQ1,
			Kind:      models.SignalKindPain,
			Keywords:  append(keywords, extraKeywords(item.Text)...),
			Score:     urgency,
			Timestamp: now,
			Payload: map[string]interface{}{
				"urgency_score": urgency,
				"text":          item.Text,
				"source":        item.Source,
			},
		})
	}

	return &models.AgentReport{
		AgentID:  string(a.ID()),
		Quadrant: models.QuadrantQ1,
		Layer:    models.LayerP0,
		Signals:  signals,
		Duration: time.Since(start).Milliseconds(),
	}, nil
}

// extraKeywords pulls salient plain tokens (length ≥ 4, not stopwords) so
// synthesis can match pain signals against trend topics.
func extraKeywords(text string) []string {
	stop := map[string]struct{}{
		"this": {}, "that": {}, "with": {}, "have": {}, "from": {},
		"they": {}, "been": {}, "were": {}, "what": {}, "when": {},
		"your": {}, "just": {}, "really": {}, "very": {},
	}
	seen := make(map[string]struct{})
	var out []string
	for _, tok := range tokenize(text) {
		if len(tok) < 4 {
			continue
		}
		if _, ok := stop[tok]; ok {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}
