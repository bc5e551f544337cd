// Package judgment implements the four P1 agents. Each assessor weighs its
// quadrant's perception signals against the learning state's P1 weights and
// produces a single assessment: per-dimension scores in [0,1], an overall
// score, a priority, and a recommended action.
package judgment

import (
	"context"
	"fmt"
	"time"

	"github.com/jackeyunjie/growthd/pkg/agent"
	"github.com/jackeyunjie/growthd/pkg/models"
)

// dimensionFunc extracts the quadrant's raw dimension scores ([0,1]) from
// the signals under assessment.
type dimensionFunc func(signals []models.Signal, cross []models.CrossQuadrantSignal) map[string]float64

// assessor is the shared P1 implementation. The four quadrant agents differ
// only in id, quadrant, action template, and dimension extraction.
type assessor struct {
	id         agent.ID
	quadrant   models.Quadrant
	kind       models.SignalKind
	actionVerb string
	dimensions dimensionFunc
}

// ID implements agent.Agent.
func (a *assessor) ID() agent.ID { return a.id }

// Quadrant implements agent.Agent.
func (a *assessor) Quadrant() models.Quadrant { return a.quadrant }

// Layer implements agent.Agent.
func (a *assessor) Layer() models.Layer { return models.LayerP1 }

// DefaultConfig implements agent.Agent.
func (a *assessor) DefaultConfig() map[string]float64 {
	return map[string]float64{
		"priority_floor_high":     0.65,
		"priority_floor_critical": 0.85,
	}
}

// Invoke assesses the quadrant's recent signals and cross-quadrant signals.
func (a *assessor) Invoke(ctx context.Context, in agent.Input) (*models.AgentReport, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var own []models.Signal
	for _, s := range in.Snapshot.RecentSignals {
		if s.Quadrant == a.quadrant && s.Kind == a.kind {
			own = append(own, s)
		}
	}
	var cross []models.CrossQuadrantSignal
	for _, cs := range in.Snapshot.CrossSignals {
		for _, q := range cs.SourceQuadrants {
			if q == a.quadrant {
				cross = append(cross, cs)
				break
			}
		}
	}

	dims := a.dimensions(own, cross)
	weights := quadrantWeights(in.Snapshot.LearningState, a.quadrant)
	overall := weightedScore(dims, weights)
	prio := a.priority(overall, in.Config)

	report := &models.AgentReport{
		AgentID:  string(a.id),
		Quadrant: a.quadrant,
		Layer:    models.LayerP1,
		Assessment: &models.Assessment{
			Dimensions:        dims,
			OverallScore:      overall,
			Priority:          prio,
			RecommendedAction: fmt.Sprintf("%s (%d signals, %d cross-quadrant)", a.actionVerb, len(own), len(cross)),
		},
		Duration: time.Since(start).Milliseconds(),
	}
	return report, nil
}

func (a *assessor) priority(overall float64, cfg map[string]float64) models.Priority {
	switch {
	case overall >= cfg["priority_floor_critical"]:
		return models.PriorityCritical
	case overall >= cfg["priority_floor_high"]:
		return models.PriorityHigh
	case overall >= 0.4:
		return models.PriorityMedium
	default:
		return models.PriorityLow
	}
}

// quadrantWeights resolves the quadrant's P1 weights, falling back to the
// bootstrap defaults when the state carries none.
func quadrantWeights(ls *models.LearningState, q models.Quadrant) map[string]float64 {
	if ls != nil && ls.P1Weights != nil {
		if w, ok := ls.P1Weights[q]; ok && len(w) > 0 {
			return w
		}
	}
	return models.DefaultLearningState().P1Weights[q]
}

// weightedScore combines dimensions by weight, normalizing so that missing
// dimensions do not silently deflate the score.
func weightedScore(dims, weights map[string]float64) float64 {
	var sum, wsum float64
	for name, w := range weights {
		v, ok := dims[name]
		if !ok {
			continue
		}
		sum += v * w
		wsum += w
	}
	if wsum == 0 {
		return 0
	}
	return clamp01(sum / wsum)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// avgScore averages signal scores onto the [0,1] scale.
func avgScore(signals []models.Signal) float64 {
	if len(signals) == 0 {
		return 0
	}
	var sum float64
	for i := range signals {
		sum += signals[i].Score
	}
	return clamp01(sum / float64(len(signals)) / 100)
}

// volumeFactor saturates at n signals.
func volumeFactor(count, n int) float64 {
	if count >= n {
		return 1
	}
	return float64(count) / float64(n)
}

// crossFactor is the mean confidence of cross-quadrant signals involving the
// quadrant, zero when there are none.
func crossFactor(cross []models.CrossQuadrantSignal) float64 {
	if len(cross) == 0 {
		return 0
	}
	var sum float64
	for i := range cross {
		sum += cross[i].Confidence
	}
	return clamp01(sum / float64(len(cross)))
}

// payloadAvg averages a numeric payload field across signals, scaled by div.
func payloadAvg(signals []models.Signal, field string, div float64) float64 {
	var sum float64
	n := 0
	for i := range signals {
		if v, ok := signals[i].Payload[field].(float64); ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return clamp01(sum / float64(n) / div)
}
