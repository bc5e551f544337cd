package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the umbrella configuration object returned by Initialize and
// passed through the Deps aggregate.
type Config struct {
	configDir string

	Orchestrator *OrchestratorConfig
	Scheduler    *SchedulerConfig
	Evolution    *EvolutionConfig
	Lifecycle    *LifecycleConfig
	Meridian     *MeridianConfig
	Learning     *LearningConfig
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string { return c.configDir }

// growthdYAML mirrors the growthd.yaml file structure.
type growthdYAML struct {
	Orchestrator *OrchestratorConfig `yaml:"orchestrator"`
	Scheduler    *SchedulerConfig    `yaml:"scheduler"`
	Evolution    *EvolutionConfig    `yaml:"evolution"`
	Lifecycle    *LifecycleConfig    `yaml:"data_lifecycle"`
	Meridian     *MeridianConfig     `yaml:"meridian"`
	Learning     *LearningConfig     `yaml:"learning"`
}

// Initialize loads, merges, and validates configuration.
//
// Steps performed:
//  1. Read growthd.yaml from configDir (absence is fine — defaults apply)
//  2. Expand environment variables
//  3. Parse YAML and overlay onto built-in defaults
//  4. Validate everything (fail fast)
func Initialize(_ context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg := &Config{
		configDir:    configDir,
		Orchestrator: DefaultOrchestratorConfig(),
		Scheduler:    DefaultSchedulerConfig(),
		Evolution:    DefaultEvolutionConfig(),
		Lifecycle:    DefaultLifecycleConfig(),
		Meridian:     DefaultMeridianConfig(),
		Learning:     DefaultLearningConfig(),
	}

	path := filepath.Join(configDir, "growthd.yaml")
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		log.Info("No growthd.yaml found, using built-in defaults")
	case err != nil:
		return nil, &LoadError{File: path, Err: err}
	default:
		var parsed growthdYAML
		if err := yaml.Unmarshal(ExpandEnv(data), &parsed); err != nil {
			return nil, &LoadError{File: path, Err: fmt.Errorf("%w: %v", ErrInvalidYAML, err)}
		}
		cfg.overlay(&parsed)
		log.Info("Loaded configuration file", "path", path)
	}

	cfg.reconcileEvolutionSchedule()

	if err := NewValidator(cfg).ValidateAll(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	log.Info("Configuration initialized",
		"jobs", len(cfg.Scheduler.Jobs),
		"synthesis_enabled", cfg.Orchestrator.EnableCrossSynthesis,
		"evolution_schedule", cfg.Evolution.ScheduleType)
	return cfg, nil
}

// reconcileEvolutionSchedule aligns the evolution cron job with the
// configured schedule type: daily rewrites the cron to a nightly fire,
// weekly keeps the configured cron, feedback and manual disable the job so
// cycles run only through their own triggers.
func (c *Config) reconcileEvolutionSchedule() {
	job, ok := c.Scheduler.Jobs[JobP3Evolution]
	if !ok {
		return
	}
	switch c.Evolution.ScheduleType {
	case EvolutionDaily:
		job.CronExpression = "0 2 * * *"
	case EvolutionFeedback, EvolutionManual:
		job.Enabled = false
	}
}

// overlay replaces whole sections that appear in the file. Section-level
// replacement keeps merge semantics predictable: a present section must be
// complete.
func (c *Config) overlay(parsed *growthdYAML) {
	if parsed.Orchestrator != nil {
		c.Orchestrator = parsed.Orchestrator
	}
	if parsed.Scheduler != nil {
		// Keep default jobs that the file does not mention.
		if parsed.Scheduler.Jobs == nil {
			parsed.Scheduler.Jobs = c.Scheduler.Jobs
		} else {
			for id, job := range c.Scheduler.Jobs {
				if _, ok := parsed.Scheduler.Jobs[id]; !ok {
					parsed.Scheduler.Jobs[id] = job
				}
			}
		}
		if parsed.Scheduler.HistoryLimit == 0 {
			parsed.Scheduler.HistoryLimit = c.Scheduler.HistoryLimit
		}
		if parsed.Scheduler.HealthBuffer == 0 {
			parsed.Scheduler.HealthBuffer = c.Scheduler.HealthBuffer
		}
		c.Scheduler = parsed.Scheduler
	}
	if parsed.Evolution != nil {
		c.Evolution = parsed.Evolution
	}
	if parsed.Lifecycle != nil {
		c.Lifecycle = parsed.Lifecycle
	}
	if parsed.Meridian != nil {
		c.Meridian = parsed.Meridian
	}
	if parsed.Learning != nil {
		c.Learning = parsed.Learning
	}
}
