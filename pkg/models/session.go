package models

import "time"

// SessionStatus is the lifecycle status of a sync session.
// Transitions: running → completed | failed. No other transitions.
type SessionStatus string

// SessionStatus values.
const (
	SessionRunning   SessionStatus = "running"
	SessionCompleted SessionStatus = "completed"
	SessionFailed    SessionStatus = "failed"
)

// AgentReport is the structured output of a single agent invocation.
// Exactly one of Signals or Assessment is set on success; Error is set
// when the agent failed or timed out (the phase still proceeds).
type AgentReport struct {
	AgentID    string      `json:"agent_id"`
	Quadrant   Quadrant    `json:"quadrant"`
	Layer      Layer       `json:"layer"`
	Signals    []Signal    `json:"signals,omitempty"`
	Assessment *Assessment `json:"assessment,omitempty"`
	Error      string      `json:"error,omitempty"`
	TimedOut   bool        `json:"timed_out,omitempty"`
	Duration   int64       `json:"duration_ms"`
}

// Failed reports whether the agent produced no usable output.
func (r *AgentReport) Failed() bool { return r.Error != "" }

// Assessment is a judgment/relationship layer output: per-dimension scores
// in [0,1], an overall priority, and a recommended action.
type Assessment struct {
	Dimensions        map[string]float64 `json:"dimensions"`
	OverallScore      float64            `json:"overall_score"`
	Priority          Priority           `json:"priority"`
	RecommendedAction string             `json:"recommended_action"`
}

// SyncSession is one orchestration cycle (P0 → synthesis → P1 → P2).
type SyncSession struct {
	SessionID          string                 `json:"session_id"`
	StartedAt          time.Time              `json:"started_at"`
	CompletedAt        *time.Time             `json:"completed_at,omitempty"`
	Status             SessionStatus          `json:"status"`
	AgentReports       map[string]AgentReport `json:"agent_reports"`
	SynthesizedSignals []CrossQuadrantSignal  `json:"synthesized_signals"`
	Insights           []string               `json:"insights"`
	P1Results          map[string]AgentReport `json:"p1_trigger_results,omitempty"`
	P2Results          map[string]AgentReport `json:"p2_trigger_results,omitempty"`
	Error              string                 `json:"error,omitempty"`
}
