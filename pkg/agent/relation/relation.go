// Package relation implements the four P2 agents. Each connector turns its
// quadrant's cross-quadrant signals into concrete connection actions: which
// audience to reach, through which vehicle, with what urgency.
package relation

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jackeyunjie/growthd/pkg/agent"
	"github.com/jackeyunjie/growthd/pkg/models"
)

// actionFunc maps one cross-quadrant signal to a connection action line.
type actionFunc func(cs models.CrossQuadrantSignal) string

type connector struct {
	id       agent.ID
	quadrant models.Quadrant
	action   actionFunc
}

// ID implements agent.Agent.
func (c *connector) ID() agent.ID { return c.id }

// Quadrant implements agent.Agent.
func (c *connector) Quadrant() models.Quadrant { return c.quadrant }

// Layer implements agent.Agent.
func (c *connector) Layer() models.Layer { return models.LayerP2 }

// DefaultConfig implements agent.Agent.
func (c *connector) DefaultConfig() map[string]float64 {
	return map[string]float64{
		"min_confidence": 0.5,
		"max_actions":    5,
	}
}

// Invoke plans connection actions for the quadrant's cross-quadrant signals.
func (c *connector) Invoke(ctx context.Context, in agent.Input) (*models.AgentReport, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	minConf := in.Config["min_confidence"]
	maxActions := int(in.Config["max_actions"])

	var mine []models.CrossQuadrantSignal
	for _, cs := range in.Snapshot.CrossSignals {
		if cs.Confidence < minConf {
			continue
		}
		for _, q := range cs.SourceQuadrants {
			if q == c.quadrant {
				mine = append(mine, cs)
				break
			}
		}
	}
	// Highest confidence first; signal id breaks ties so runs are repeatable.
	sort.SliceStable(mine, func(i, j int) bool {
		if mine[i].Confidence != mine[j].Confidence {
			return mine[i].Confidence > mine[j].Confidence
		}
		return mine[i].SignalID < mine[j].SignalID
	})
	if maxActions > 0 && len(mine) > maxActions {
		mine = mine[:maxActions]
	}

	dims := map[string]float64{
		"actionability": actionability(mine),
		"urgency":       urgency(mine),
	}
	overall := (dims["actionability"] + dims["urgency"]) / 2

	actions := make([]string, 0, len(mine))
	for _, cs := range mine {
		actions = append(actions, c.action(cs))
	}
	recommended := "no cross-quadrant opportunities this cycle"
	if len(actions) > 0 {
		recommended = actions[0]
	}

	return &models.AgentReport{
		AgentID:  string(c.id),
		Quadrant: c.quadrant,
		Layer:    models.LayerP2,
		Assessment: &models.Assessment{
			Dimensions:        dims,
			OverallScore:      overall,
			Priority:          topPriority(mine),
			RecommendedAction: recommended,
		},
		Duration: time.Since(start).Milliseconds(),
	}, nil
}

func actionability(signals []models.CrossQuadrantSignal) float64 {
	if len(signals) == 0 {
		return 0
	}
	var sum float64
	for i := range signals {
		sum += signals[i].Confidence
	}
	return sum / float64(len(signals))
}

func urgency(signals []models.CrossQuadrantSignal) float64 {
	var max float64
	for i := range signals {
		var v float64
		switch signals[i].Priority {
		case models.PriorityCritical:
			v = 1.0
		case models.PriorityHigh:
			v = 0.75
		case models.PriorityMedium:
			v = 0.5
		default:
			v = 0.25
		}
		if v > max {
			max = v
		}
	}
	return max
}

func topPriority(signals []models.CrossQuadrantSignal) models.Priority {
	best := models.PriorityLow
	rank := map[models.Priority]int{
		models.PriorityLow: 0, models.PriorityMedium: 1,
		models.PriorityHigh: 2, models.PriorityCritical: 3,
	}
	for i := range signals {
		if rank[signals[i].Priority] > rank[best] {
			best = signals[i].Priority
		}
	}
	return best
}

// NewPainConnector builds the Q1 relationship agent.
func NewPainConnector() agent.Agent {
	return &connector{
		id:       agent.Q1PainConnector,
		quadrant: models.QuadrantQ1,
		action: func(cs models.CrossQuadrantSignal) string {
			return fmt.Sprintf("reach users hit by %s via solution-first outreach (confidence %.2f)", cs.SignalType, cs.Confidence)
		},
	}
}

// NewEmotionConnector builds the Q2 relationship agent.
func NewEmotionConnector() agent.Agent {
	return &connector{
		id:       agent.Q2EmotionConnector,
		quadrant: models.QuadrantQ2,
		action: func(cs models.CrossQuadrantSignal) string {
			return fmt.Sprintf("amplify %s through community storytelling (confidence %.2f)", cs.SignalType, cs.Confidence)
		},
	}
}

// NewTrendConnector builds the Q3 relationship agent.
func NewTrendConnector() agent.Agent {
	return &connector{
		id:       agent.Q3TrendConnector,
		quadrant: models.QuadrantQ3,
		action: func(cs models.CrossQuadrantSignal) string {
			return fmt.Sprintf("join the %s conversation with timely commentary (confidence %.2f)", cs.SignalType, cs.Confidence)
		},
	}
}

// NewSceneConnector builds the Q4 relationship agent.
func NewSceneConnector() agent.Agent {
	return &connector{
		id:       agent.Q4SceneConnector,
		quadrant: models.QuadrantQ4,
		action: func(cs models.CrossQuadrantSignal) string {
			return fmt.Sprintf("place %s content in its native scene (confidence %.2f)", cs.SignalType, cs.Confidence)
		},
	}
}
