package config

import "time"

// DefaultOrchestratorConfig returns the built-in orchestrator defaults.
func DefaultOrchestratorConfig() *OrchestratorConfig {
	return &OrchestratorConfig{
		EnableCrossSynthesis:   true,
		SignalTTLHours:         48,
		MinConfidenceThreshold: 0.7,
		EnableP1Trigger:        true,
		EnableP2Trigger:        true,
		AgentTimeout:           30 * time.Second,
		SessionHistoryLimit:    20,
	}
}

// DefaultSchedulerConfig returns the built-in job table: the daily sync at
// 06:00, weekly evolution on Sunday 02:00, and the nightly lifecycle pass.
func DefaultSchedulerConfig() *SchedulerConfig {
	return &SchedulerConfig{
		Jobs: map[string]*JobConfig{
			JobP0DailySync:   defaultJob("0 6 * * *"),
			JobP3Evolution:   defaultJob("0 2 * * 0"),
			JobDataLifecycle: defaultJob("0 2 * * *"),
		},
		HistoryLimit: 100,
		HealthBuffer: 2 * time.Hour,
	}
}

func defaultJob(cronExpr string) *JobConfig {
	return &JobConfig{
		CronExpression: cronExpr,
		MaxRetries:     3,
		RetryDelay:     30 * time.Minute,
		Timeout:        30 * time.Minute,
		Enabled:        true,
	}
}

// DefaultEvolutionConfig returns the built-in evolution defaults.
func DefaultEvolutionConfig() *EvolutionConfig {
	return &EvolutionConfig{
		ScheduleType:         EvolutionWeekly,
		FeedbackThreshold:    50,
		MaxGenerationsPerRun: 5,
		EnableAutoDeploy:     false,
		MinFitnessForDeploy:  0.7,
		PopulationSize:       10,
		MutationRate:         0.2,
	}
}

// DefaultLifecycleConfig returns the built-in tier horizons and monitors.
func DefaultLifecycleConfig() *LifecycleConfig {
	return &LifecycleConfig{
		RetentionHot:          7 * 24 * time.Hour,
		RetentionWarm:         30 * 24 * time.Hour,
		RetentionCold:         365 * 24 * time.Hour,
		RetentionFrozen:       7 * 365 * 24 * time.Hour,
		CompressionWarm:       "lz4",
		CompressionCold:       "zstd",
		QualityCheckInterval:  time.Hour,
		BackpressureQueueSize: 1000,
		MaxErrorRate:          0.01,
		MaxLatency:            time.Second,
	}
}

// DefaultMeridianConfig returns the built-in bus defaults.
func DefaultMeridianConfig() *MeridianConfig {
	return &MeridianConfig{
		Capacity:             1000,
		PublishTimeout:       time.Second,
		TimeSyncInterval:     60 * time.Second,
		MetricsFlushInterval: 60 * time.Second,
	}
}

// DefaultLearningConfig returns the built-in learning defaults.
func DefaultLearningConfig() *LearningConfig {
	return &LearningConfig{
		BatchSize:       10,
		BufferLimit:     500,
		ApplyConfidence: 0.7,
	}
}
