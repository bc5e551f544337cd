package perception

import (
	"context"
	"time"

	"github.com/jackeyunjie/growthd/pkg/agent"
	"github.com/jackeyunjie/growthd/pkg/models"
)

// sceneVocab maps usage-scene names to the phrases that reveal them.
var sceneVocab = map[string][]string{
	"work":    {"at work", "meeting", "deadline", "office", "colleague", "boss"},
	"commute": {"commute", "train", "subway", "traffic", "driving"},
	"home":    {"at home", "couch", "kitchen", "family dinner", "weekend morning"},
	"fitness": {"gym", "workout", "running", "training"},
	"travel":  {"airport", "flight", "hotel", "vacation", "trip"},
	"night":   {"late night", "can't sleep", "midnight", "3am"},
}

// SceneFinder is the Q4 perception agent: detects the usage scenes content
// talks about.
type SceneFinder struct {
	analyzer agent.TextAnalyzer
	now      func() time.Time
}

// NewSceneFinder creates the Q4 P0 agent. analyzer may be nil.
func NewSceneFinder(analyzer agent.TextAnalyzer) *SceneFinder {
	return &SceneFinder{analyzer: analyzer, now: time.Now}
}

// ID implements agent.Agent.
func (a *SceneFinder) ID() agent.ID { return agent.Q4SceneFinder }

// Quadrant implements agent.Agent.
func (a *SceneFinder) Quadrant() models.Quadrant { return models.QuadrantQ4 }

// Layer implements agent.Agent.
func (a *SceneFinder) Layer() models.Layer { return models.LayerP0 }

// DefaultConfig implements agent.Agent.
func (a *SceneFinder) DefaultConfig() map[string]float64 {
	return map[string]float64{
		"relevance_threshold": 45,
		"recency_decay":       0.05,
	}
}

// Invoke finds scene signals in the content batch.
func (a *SceneFinder) Invoke(ctx context.Context, in agent.Input) (*models.AgentReport, error) {
	start := time.Now()
	now := a.now()
	floor := in.Config["relevance_threshold"]
	decay := in.Config["recency_decay"]

	var signals []models.Signal
	for _, item := range in.Content {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		scene, phrases := detectScene(item.Text)
		if scene == "" {
			continue
		}

		score := clampScore((45 + 18*float64(len(phrases)) +
			analyzerBoost(ctx, a.analyzer, item.Text, "scene")) *
			(0.7 + 0.3*lengthFactor(item.Text)) *
			recencyFactor(item.PublishedAt, now, decay) *
			sourceTierFactor(item.SourceType))
		if score <= floor {
			continue
		}

		signals = append(signals, models.Signal{
			SignalID:  signalID(a.ID(), in.SessionID, item.ID),
			Quadrant:  models.QuadrantQ4,
			Kind:      models.SignalKindScene,
			Keywords:  append(phrases, extraKeywords(item.Text)...),
			Score:     score,
			Timestamp: now,
			Payload: map[string]interface{}{
				"scene":  scene,
				"text":   item.Text,
				"source": item.Source,
			},
		})
	}

	return &models.AgentReport{
		AgentID:  string(a.ID()),
		Quadrant: models.QuadrantQ4,
		Layer:    models.LayerP0,
		Signals:  signals,
		Duration: time.Since(start).Milliseconds(),
	}, nil
}

// detectScene returns the first scene (in stable name order) whose phrases
// appear in the text, with the matched phrases.
func detectScene(text string) (string, []string) {
	// Stable iteration order keeps the agent deterministic.
	names := []string{"commute", "fitness", "home", "night", "travel", "work"}
	for _, name := range names {
		if hits := matchTokens(text, sceneVocab[name]); len(hits) > 0 {
			return name, hits
		}
	}
	return "", nil
}
