// Package config loads, validates, and exposes the growthd configuration:
// orchestrator, scheduler jobs, evolution, data lifecycle, meridian bus,
// and retention settings.
package config

import "time"

// OrchestratorConfig controls the daily sync session.
type OrchestratorConfig struct {
	// AgentsToRun restricts the P0 fan-out to a subset of perception agents.
	// Empty means all four (q1_pain_scanner … q4_scene_scanner).
	AgentsToRun []string `yaml:"agents_to_run,omitempty"`

	// EnableCrossSynthesis toggles the cross-quadrant synthesis phase.
	EnableCrossSynthesis bool `yaml:"enable_cross_synthesis"`

	// SignalTTLHours is the shared-memory TTL for persisted signals (1–168).
	SignalTTLHours int `yaml:"signal_ttl_hours"`

	// MinConfidenceThreshold is the synthesis confidence floor (0–1) used
	// when the learning state carries no override.
	MinConfidenceThreshold float64 `yaml:"min_confidence_threshold"`

	// EnableP1Trigger / EnableP2Trigger toggle the downstream fan-outs.
	EnableP1Trigger bool `yaml:"enable_p1_trigger"`
	EnableP2Trigger bool `yaml:"enable_p2_trigger"`

	// AgentTimeout bounds one agent invocation. The phase timeout is 2×.
	AgentTimeout time.Duration `yaml:"agent_timeout"`

	// SessionHistoryLimit bounds the in-memory session history.
	SessionHistoryLimit int `yaml:"session_history_limit"`
}

// SignalTTL returns SignalTTLHours as a duration.
func (c *OrchestratorConfig) SignalTTL() time.Duration {
	return time.Duration(c.SignalTTLHours) * time.Hour
}

// JobConfig describes one scheduler job.
type JobConfig struct {
	// CronExpression is a strict 5-field spec (minute hour dom month dow).
	CronExpression string `yaml:"cron_expression"`

	// Timezone is an IANA zone name; empty means local time.
	Timezone string `yaml:"timezone,omitempty"`

	// MaxRetries is the number of retry attempts after a failed run.
	MaxRetries int `yaml:"max_retries"`

	// RetryDelay is the fixed delay between retries.
	RetryDelay time.Duration `yaml:"retry_delay"`

	// Timeout bounds one execution, retries excluded.
	Timeout time.Duration `yaml:"timeout"`

	// Enabled toggles the job without removing its history.
	Enabled bool `yaml:"enabled"`
}

// SchedulerConfig holds the per-job table plus scheduler-wide knobs.
type SchedulerConfig struct {
	Jobs map[string]*JobConfig `yaml:"jobs"`

	// HistoryLimit bounds the persisted trigger-record history per job.
	HistoryLimit int `yaml:"history_limit"`

	// HealthBuffer is added to a job's expected interval before its health
	// degrades from healthy to warning.
	HealthBuffer time.Duration `yaml:"health_buffer"`
}

// Default scheduler job ids.
const (
	JobP0DailySync   = "p0_daily_sync"
	JobP3Evolution   = "p3_evolution"
	JobDataLifecycle = "data_lifecycle"
)

// EvolutionScheduleType selects how evolution cycles are triggered.
type EvolutionScheduleType string

// EvolutionScheduleType values.
const (
	EvolutionDaily    EvolutionScheduleType = "daily"
	EvolutionWeekly   EvolutionScheduleType = "weekly"
	EvolutionFeedback EvolutionScheduleType = "feedback"
	EvolutionManual   EvolutionScheduleType = "manual"
)

// IsValid reports whether the schedule type is one of the known values.
func (t EvolutionScheduleType) IsValid() bool {
	switch t {
	case EvolutionDaily, EvolutionWeekly, EvolutionFeedback, EvolutionManual:
		return true
	}
	return false
}

// EvolutionConfig controls the strategy evolution engine.
type EvolutionConfig struct {
	ScheduleType         EvolutionScheduleType `yaml:"schedule_type"`
	FeedbackThreshold    int                   `yaml:"feedback_threshold"`
	MaxGenerationsPerRun int                   `yaml:"max_generations_per_run"`
	EnableAutoDeploy     bool                  `yaml:"enable_auto_deploy"`
	MinFitnessForDeploy  float64               `yaml:"min_fitness_for_deploy"`
	PopulationSize       int                   `yaml:"population_size"`
	MutationRate         float64               `yaml:"mutation_rate"`
}

// LifecycleConfig controls the data-lifecycle agent.
type LifecycleConfig struct {
	// Tier staleness horizons: items untouched longer than these demote.
	RetentionHot  time.Duration `yaml:"retention_hot"`
	RetentionWarm time.Duration `yaml:"retention_warm"`
	RetentionCold time.Duration `yaml:"retention_cold"`

	// RetentionFrozen is the hard-delete horizon from creation.
	RetentionFrozen time.Duration `yaml:"retention_frozen"`

	// Compression codecs recorded on transition (conceptual; the item body
	// lives with the owning driver).
	CompressionWarm string `yaml:"compression_warm"`
	CompressionCold string `yaml:"compression_cold"`

	// QualityCheckInterval drives the recurring quality pass.
	QualityCheckInterval time.Duration `yaml:"quality_check_interval"`

	// Back-pressure alert thresholds over meridian metrics.
	BackpressureQueueSize int           `yaml:"backpressure_queue_size"`
	MaxErrorRate          float64       `yaml:"max_error_rate"`
	MaxLatency            time.Duration `yaml:"max_latency"`
}

// MeridianConfig controls the bus.
type MeridianConfig struct {
	// Capacity is the bounded queue size per meridian.
	Capacity int `yaml:"capacity"`

	// PublishTimeout is the longest a publisher may block before the packet
	// is dropped (≤ 1s per contract).
	PublishTimeout time.Duration `yaml:"publish_timeout"`

	// TimeSyncInterval drives the temporal meridian broadcast.
	TimeSyncInterval time.Duration `yaml:"time_sync_interval"`

	// MetricsFlushInterval drives the meridian_metrics flush.
	MetricsFlushInterval time.Duration `yaml:"metrics_flush_interval"`
}

// LearningConfig controls feedback collection and the learning engine.
type LearningConfig struct {
	// BatchSize is how many new feedback records trigger an analysis pass.
	BatchSize int `yaml:"batch_size"`

	// BufferLimit bounds the in-memory feedback buffer.
	BufferLimit int `yaml:"buffer_limit"`

	// ApplyConfidence is the minimum insight confidence that mutates state.
	ApplyConfidence float64 `yaml:"apply_confidence"`
}
