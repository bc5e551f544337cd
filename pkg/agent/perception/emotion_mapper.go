package perception

import (
	"context"
	"time"

	"github.com/jackeyunjie/growthd/pkg/agent"
	"github.com/jackeyunjie/growthd/pkg/models"
)

// emotionVocab are the trigger tokens that mark strong emotion.
var emotionVocab = []string{
	"love", "hate", "angry", "furious", "excited", "thrilled", "amazing",
	"terrible", "awful", "incredible", "wow", "omg", "crying", "happy",
	"sad", "scared", "obsessed", "blown away",
}

// EmotionMapper is the Q2 perception agent: detects emotional triggers and
// scores their intensity.
type EmotionMapper struct {
	analyzer agent.TextAnalyzer
	now      func() time.Time
}

// NewEmotionMapper creates the Q2 P0 agent. analyzer may be nil.
func NewEmotionMapper(analyzer agent.TextAnalyzer) *EmotionMapper {
	return &EmotionMapper{analyzer: analyzer, now: time.Now}
}

// ID implements agent.Agent.
func (a *EmotionMapper) ID() agent.ID { return agent.Q2EmotionMapper }

// Quadrant implements agent.Agent.
func (a *EmotionMapper) Quadrant() models.Quadrant { return models.QuadrantQ2 }

// Layer implements agent.Agent.
func (a *EmotionMapper) Layer() models.Layer { return models.LayerP0 }

// DefaultConfig implements agent.Agent.
func (a *EmotionMapper) DefaultConfig() map[string]float64 {
	return map[string]float64{
		"intensity_threshold": 50,
		"amplifier_weight":    0.25,
		"recency_decay":       0.15,
	}
}

// Invoke maps emotional triggers in the content to emotion signals.
func (a *EmotionMapper) Invoke(ctx context.Context, in agent.Input) (*models.AgentReport, error) {
	start := time.Now()
	now := a.now()
	floor := threshold(in, models.ThresholdMinEmotionIntensity, "intensity_threshold")
	decay := in.Config["recency_decay"]

	var signals []models.Signal
	for _, item := range in.Content {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		triggers := matchTokens(item.Text, emotionVocab)
		if len(triggers) == 0 {
			continue
		}

		intensity := clampScore((35 + 20*float64(len(triggers)) +
			analyzerBoost(ctx, a.analyzer, item.Text, "emotion")) *
			(0.6 + 0.4*lengthFactor(item.Text)) *
			recencyFactor(item.PublishedAt, now, decay) *
			sourceTierFactor(item.SourceType))
		if intensity <= floor {
			continue
		}

		signals = append(signals, models.Signal{
			SignalID:  signalID(a.ID(), in.SessionID, item.ID),
			Quadrant:  models.QuadrantQ2,
			Kind:      models.SignalKindEmotion,
			Keywords:  append(triggers, extraKeywords(item.Text)...),
			Score:     intensity,
			Timestamp: now,
			Payload: map[string]interface{}{
				"intensity": intensity,
				"trigger":   triggers[0],
				"text":      item.Text,
				"source":    item.Source,
			},
		})
	}

	return &models.AgentReport{
		AgentID:  string(a.ID()),
		Quadrant: models.QuadrantQ2,
		Layer:    models.LayerP0,
		Signals:  signals,
		Duration: time.Since(start).Milliseconds(),
	}, nil
}
