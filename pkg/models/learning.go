package models

import "time"

// FeedbackKind classifies a feedback record by the metrics it carries.
type FeedbackKind string

// FeedbackKind values.
const (
	FeedbackPerformance FeedbackKind = "performance"
	FeedbackQualitative FeedbackKind = "qualitative"
	FeedbackOutcome     FeedbackKind = "outcome"
	FeedbackMeta        FeedbackKind = "meta"
)

// FeedbackRecord is the outcome of one executed plan, fed back into the
// learning engine.
type FeedbackRecord struct {
	FeedbackID     string             `json:"feedback_id"`
	SourcePlanID   string             `json:"source_plan_id"`
	SourceQuadrant Quadrant           `json:"source_quadrant"`
	Kind           FeedbackKind       `json:"kind"`
	Metrics        map[string]float64 `json:"metrics"`
	OutcomeValue   float64            `json:"outcome_value"`
	Timestamp      time.Time          `json:"timestamp"`
}

// LearningState is the versioned tunable configuration read by agents on
// every cycle. Singleton under the learning:current_state key; written only
// by the learning engine.
type LearningState struct {
	Version            int                             `json:"version"`
	P0Thresholds       map[string]float64              `json:"p0_thresholds"`
	P1Weights          map[Quadrant]map[string]float64 `json:"p1_weights"`
	SuccessfulPatterns []string                        `json:"successful_patterns"`
	FailedPatterns     []string                        `json:"failed_patterns"`
	UpdatedAt          time.Time                       `json:"updated_at"`
}

// Threshold keys in P0Thresholds.
const (
	ThresholdMinUrgencyScore     = "min_urgency_score"
	ThresholdMinEmotionIntensity = "min_emotion_intensity"
	ThresholdMinConfidence       = "min_confidence_threshold"
)

// MinConfidence returns the synthesis confidence floor, falling back to the
// given default when the state carries no explicit threshold.
func (s *LearningState) MinConfidence(def float64) float64 {
	if s == nil || s.P0Thresholds == nil {
		return def
	}
	if v, ok := s.P0Thresholds[ThresholdMinConfidence]; ok {
		return v
	}
	return def
}

// DefaultLearningState returns the bootstrap state used before any insight
// has been applied.
func DefaultLearningState() *LearningState {
	return &LearningState{
		Version: 1,
		P0Thresholds: map[string]float64{
			ThresholdMinUrgencyScore:     60,
			ThresholdMinEmotionIntensity: 50,
			ThresholdMinConfidence:       0.7,
		},
		P1Weights: map[Quadrant]map[string]float64{
			QuadrantQ1: {"urgency": 0.4, "reach": 0.3, "fit": 0.3},
			QuadrantQ2: {"intensity": 0.4, "resonance": 0.3, "fit": 0.3},
			QuadrantQ3: {"velocity": 0.4, "novelty": 0.3, "fit": 0.3},
			QuadrantQ4: {"relevance": 0.4, "coverage": 0.3, "fit": 0.3},
		},
		UpdatedAt: time.Now().UTC(),
	}
}

// Insight is a rule-derived recommendation produced by the learning engine.
// Insights with Confidence ≥ 0.7 are applied to the LearningState.
type Insight struct {
	Kind          string    `json:"kind"` // "quadrant_performance" | "engagement_pattern"
	Description   string    `json:"description"`
	FailedPattern string    `json:"failed_pattern,omitempty"`
	Confidence    float64   `json:"confidence"`
	Quadrant      Quadrant  `json:"quadrant,omitempty"`
	WeightScale   float64   `json:"weight_scale,omitempty"`
	Threshold     string    `json:"threshold,omitempty"`
	Value         float64   `json:"value,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
