// Package agent defines the agent contract shared by all pipeline layers:
// the Agent interface, the typed registry, invocation inputs, and the
// capability interfaces implemented by external collaborators.
package agent

import (
	"context"
	"time"

	"github.com/jackeyunjie/growthd/pkg/models"
)

// ID identifies a concrete agent. The set is fixed at compile time; the
// registry rejects anything else.
type ID string

// Perception (P0) agents.
const (
	Q1PainScanner   ID = "q1_pain_scanner"
	Q2EmotionMapper ID = "q2_emotion_mapper"
	Q3TrendHunter   ID = "q3_trend_hunter"
	Q4SceneFinder   ID = "q4_scene_finder"
)

// Judgment (P1) agents.
const (
	Q1PainAssessor    ID = "q1_pain_assessor"
	Q2EmotionAssessor ID = "q2_emotion_assessor"
	Q3TrendAssessor   ID = "q3_trend_assessor"
	Q4SceneAssessor   ID = "q4_scene_assessor"
)

// Relationship (P2) agents.
const (
	Q1PainConnector    ID = "q1_pain_connector"
	Q2EmotionConnector ID = "q2_emotion_connector"
	Q3TrendConnector   ID = "q3_trend_connector"
	Q4SceneConnector   ID = "q4_scene_connector"
)

// P0IDs lists the perception agents in canonical quadrant order.
var P0IDs = []ID{Q1PainScanner, Q2EmotionMapper, Q3TrendHunter, Q4SceneFinder}

// P1IDs lists the judgment agents in canonical quadrant order.
var P1IDs = []ID{Q1PainAssessor, Q2EmotionAssessor, Q3TrendAssessor, Q4SceneAssessor}

// P2IDs lists the relationship agents in canonical quadrant order.
var P2IDs = []ID{Q1PainConnector, Q2EmotionConnector, Q3TrendConnector, Q4SceneConnector}

// ContentItem is one piece of social content handed to perception agents.
// Items come from platform drivers; the core never fetches them itself.
type ContentItem struct {
	ID          string             `json:"id"`
	Text        string             `json:"text"`
	Source      string             `json:"source"`
	SourceType  models.SourceType  `json:"source_type"`
	PublishedAt time.Time          `json:"published_at"`
	Metrics     map[string]float64 `json:"metrics,omitempty"`
}

// Snapshot is the read-only shared-memory view injected into agents.
// Agents must never write back; they return data for the orchestrator
// to persist.
type Snapshot struct {
	RecentSignals []models.Signal
	CrossSignals  []models.CrossQuadrantSignal
	LearningState *models.LearningState
}

// Input is everything an agent invocation may read. Config is the merged
// parameter set: defaults overlaid with any evolution-deployed values.
type Input struct {
	SessionID string
	Content   []ContentItem
	Snapshot  Snapshot
	Config    map[string]float64
}

// Agent is the common capability every layer agent implements.
//
// Invoke must be deterministic given identical input + config + snapshot,
// must honor ctx cancellation promptly, and must complete within the
// orchestrator's per-agent timeout (exceeding it yields a timeout report,
// not a process failure).
type Agent interface {
	ID() ID
	Quadrant() models.Quadrant
	Layer() models.Layer
	DefaultConfig() map[string]float64
	Invoke(ctx context.Context, in Input) (*models.AgentReport, error)
}

// MergeConfig overlays deployed parameter values on top of the agent's
// defaults. Unknown parameters in the overlay are carried through so
// evolution can introduce new knobs.
func MergeConfig(defaults map[string]float64, deployed *models.DeployedConfig) map[string]float64 {
	merged := make(map[string]float64, len(defaults))
	for k, v := range defaults {
		merged[k] = v
	}
	if deployed != nil {
		for k, v := range deployed.Parameters {
			merged[k] = v
		}
	}
	return merged
}
