// Package evolution runs the P3 strategy evolution cycle: per-agent-type
// populations of parameter sets are scored by fitness, bred with elitism and
// tournament selection, mutated gene by gene, and the winners deployed for
// the live agents to pick up.
package evolution

import (
	"github.com/jackeyunjie/growthd/pkg/models"
)

// geneTemplate declares one evolvable parameter and its mutation bounds.
type geneTemplate struct {
	name    string
	initial float64
	low     float64
	high    float64
}

// geneTemplates declares the evolvable parameter space per agent type. The
// names match the agents' config keys so deployed values overlay directly.
var geneTemplates = map[string][]geneTemplate{
	"pain_scanner": {
		{name: "urgency_threshold", initial: 60, low: 30, high: 90},
		{name: "emotion_weight", initial: 0.3, low: 0.0, high: 1.0},
		{name: "recency_decay", initial: 0.1, low: 0.01, high: 0.5},
	},
	"emotion_mapper": {
		{name: "intensity_threshold", initial: 50, low: 25, high: 85},
		{name: "amplifier_weight", initial: 0.25, low: 0.0, high: 1.0},
		{name: "recency_decay", initial: 0.15, low: 0.01, high: 0.5},
	},
	"trend_hunter": {
		{name: "velocity_threshold", initial: 55, low: 25, high: 90},
		{name: "novelty_weight", initial: 0.3, low: 0.0, high: 1.0},
		{name: "window_size", initial: 7, low: 1, high: 30},
	},
	"scene_finder": {
		{name: "relevance_threshold", initial: 45, low: 20, high: 80},
		{name: "recency_decay", initial: 0.05, low: 0.01, high: 0.5},
	},
}

// agentTypeQuadrant maps evolvable agent types to their quadrant.
var agentTypeQuadrant = map[string]models.Quadrant{
	"pain_scanner":   models.QuadrantQ1,
	"emotion_mapper": models.QuadrantQ2,
	"trend_hunter":   models.QuadrantQ3,
	"scene_finder":   models.QuadrantQ4,
}

// EvolvableAgentTypes lists the agent types with a declared gene space, in
// canonical quadrant order.
func EvolvableAgentTypes() []string {
	return []string{"pain_scanner", "emotion_mapper", "trend_hunter", "scene_finder"}
}

// AgentTypeForQuadrant is the inverse of the quadrant mapping. Empty for an
// unknown quadrant.
func AgentTypeForQuadrant(q models.Quadrant) string {
	for agentType, quadrant := range agentTypeQuadrant {
		if quadrant == q {
			return agentType
		}
	}
	return ""
}
