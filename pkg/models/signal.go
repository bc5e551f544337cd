// Package models defines the domain types shared across the pipeline:
// perception signals, synthesized cross-quadrant signals, sync sessions,
// feedback records, learning state, and evolution strategies.
package models

import "time"

// Quadrant identifies one of the four problem spaces the pipeline observes.
type Quadrant string

// Quadrant values.
const (
	QuadrantQ1 Quadrant = "Q1" // pain
	QuadrantQ2 Quadrant = "Q2" // emotion
	QuadrantQ3 Quadrant = "Q3" // trend
	QuadrantQ4 Quadrant = "Q4" // scene
)

// AllQuadrants lists the quadrants in canonical order.
var AllQuadrants = []Quadrant{QuadrantQ1, QuadrantQ2, QuadrantQ3, QuadrantQ4}

// SignalKind classifies a perception-layer observation.
type SignalKind string

// SignalKind values.
const (
	SignalKindPain    SignalKind = "pain"
	SignalKindEmotion SignalKind = "emotion"
	SignalKindTrend   SignalKind = "trend"
	SignalKindScene   SignalKind = "scene"
)

// Signal is one perception-layer observation produced by a P0 agent.
type Signal struct {
	SignalID  string                 `json:"signal_id"`
	Quadrant  Quadrant               `json:"quadrant"`
	Kind      SignalKind             `json:"kind"`
	Keywords  []string               `json:"keywords"`
	Score     float64                `json:"score"` // 0–100 urgency/intensity
	Timestamp time.Time              `json:"timestamp"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
}

// HasKeyword reports whether the signal carries the given keyword.
func (s *Signal) HasKeyword(kw string) bool {
	for _, k := range s.Keywords {
		if k == kw {
			return true
		}
	}
	return false
}

// KeywordOverlap counts keywords shared between two signals.
func (s *Signal) KeywordOverlap(other *Signal) int {
	set := make(map[string]struct{}, len(s.Keywords))
	for _, k := range s.Keywords {
		set[k] = struct{}{}
	}
	overlap := 0
	for _, k := range other.Keywords {
		if _, ok := set[k]; ok {
			overlap++
		}
	}
	return overlap
}

// Priority labels the urgency of a synthesized signal or assessment.
type Priority string

// Priority values, highest first.
const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// CrossSignalType names the synthesis rule that produced a cross-quadrant signal.
type CrossSignalType string

// CrossSignalType values.
const (
	CrossPainTrend    CrossSignalType = "pain+trend"
	CrossEmotionScene CrossSignalType = "emotion+scene"
	CrossPainEmotion  CrossSignalType = "pain+emotion"
)

// CrossQuadrantSignal is a synthesized multi-source opportunity. Its
// confidence is always at or above the LearningState threshold in force
// when it was produced.
type CrossQuadrantSignal struct {
	SignalID          string          `json:"signal_id"`
	SourceQuadrants   []Quadrant      `json:"source_quadrants"`
	SignalType        CrossSignalType `json:"signal_type"`
	Priority          Priority        `json:"priority"`
	Confidence        float64         `json:"confidence"` // [0,1]
	RawSignalIDs      []string        `json:"raw_signals"`
	RecommendedAction string          `json:"recommended_action"`
	TargetLayer       Layer           `json:"target_layer"`
	CreatedAt         time.Time       `json:"created_at"`
}

// Layer identifies one of the five pipeline layers.
type Layer string

// Layer values.
const (
	LayerP0 Layer = "P0" // perception
	LayerP1 Layer = "P1" // judgment
	LayerP2 Layer = "P2" // relationship
	LayerP3 Layer = "P3" // evolution
	LayerP4 Layer = "P4" // data lifecycle
)
