package judgment

import (
	"github.com/jackeyunjie/growthd/pkg/agent"
	"github.com/jackeyunjie/growthd/pkg/models"
)

// NewPainAssessor builds the Q1 judgment agent. Dimensions: urgency (mean
// urgency score), reach (signal volume), fit (cross-quadrant confirmation).
func NewPainAssessor() agent.Agent {
	return &assessor{
		id:         agent.Q1PainAssessor,
		quadrant:   models.QuadrantQ1,
		kind:       models.SignalKindPain,
		actionVerb: "prioritize pain-point remediation content",
		dimensions: func(signals []models.Signal, cross []models.CrossQuadrantSignal) map[string]float64 {
			return map[string]float64{
				"urgency": avgScore(signals),
				"reach":   volumeFactor(len(signals), 10),
				"fit":     crossFactor(cross),
			}
		},
	}
}

// NewEmotionAssessor builds the Q2 judgment agent. Dimensions: intensity
// (mean payload intensity), resonance (signal volume), fit.
func NewEmotionAssessor() agent.Agent {
	return &assessor{
		id:         agent.Q2EmotionAssessor,
		quadrant:   models.QuadrantQ2,
		kind:       models.SignalKindEmotion,
		actionVerb: "craft emotionally resonant messaging",
		dimensions: func(signals []models.Signal, cross []models.CrossQuadrantSignal) map[string]float64 {
			return map[string]float64{
				"intensity": payloadAvg(signals, "intensity", 100),
				"resonance": volumeFactor(len(signals), 8),
				"fit":       crossFactor(cross),
			}
		},
	}
}

// NewTrendAssessor builds the Q3 judgment agent. Dimensions: velocity (mean
// payload velocity on the 0–5 scale), novelty (mean score), fit.
func NewTrendAssessor() agent.Agent {
	return &assessor{
		id:         agent.Q3TrendAssessor,
		quadrant:   models.QuadrantQ3,
		kind:       models.SignalKindTrend,
		actionVerb: "ride the trend while momentum holds",
		dimensions: func(signals []models.Signal, cross []models.CrossQuadrantSignal) map[string]float64 {
			return map[string]float64{
				"velocity": payloadAvg(signals, "velocity", 5),
				"novelty":  avgScore(signals),
				"fit":      crossFactor(cross),
			}
		},
	}
}

// NewSceneAssessor builds the Q4 judgment agent. Dimensions: relevance (mean
// score), coverage (distinct scenes seen over the known set), fit.
func NewSceneAssessor() agent.Agent {
	return &assessor{
		id:         agent.Q4SceneAssessor,
		quadrant:   models.QuadrantQ4,
		kind:       models.SignalKindScene,
		actionVerb: "anchor content in the dominant usage scene",
		dimensions: func(signals []models.Signal, cross []models.CrossQuadrantSignal) map[string]float64 {
			scenes := make(map[string]struct{})
			for i := range signals {
				if name, ok := signals[i].Payload["scene"].(string); ok {
					scenes[name] = struct{}{}
				}
			}
			return map[string]float64{
				"relevance": avgScore(signals),
				"coverage":  volumeFactor(len(scenes), 6),
				"fit":       crossFactor(cross),
			}
		},
	}
}
