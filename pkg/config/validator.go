package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// CronParser is the strict 5-field parser (minute hour dom month dow) used
// everywhere a cron expression is read. Six-field expressions are rejected.
var CronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// ValidateCron parses a cron expression with the strict 5-field parser.
func ValidateCron(expr string) error {
	if strings.TrimSpace(expr) == "" {
		return fmt.Errorf("%w: empty expression", ErrInvalidCron)
	}
	if len(strings.Fields(expr)) != 5 {
		return fmt.Errorf("%w: %q must have exactly 5 fields (minute hour dom month dow)", ErrInvalidCron, expr)
	}
	if _, err := CronParser.Parse(expr); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidCron, expr, err)
	}
	return nil
}

// Validator validates configuration comprehensively with clear messages.
type Validator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration.
func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateAll performs fail-fast validation of every section.
func (v *Validator) ValidateAll() error {
	if err := v.validateOrchestrator(); err != nil {
		return err
	}
	if err := v.validateScheduler(); err != nil {
		return err
	}
	if err := v.validateEvolution(); err != nil {
		return err
	}
	if err := v.validateLifecycle(); err != nil {
		return err
	}
	if err := v.validateMeridian(); err != nil {
		return err
	}
	if err := v.validateLearning(); err != nil {
		return err
	}
	return nil
}

func (v *Validator) validateOrchestrator() error {
	o := v.cfg.Orchestrator
	if o.SignalTTLHours < 1 || o.SignalTTLHours > 168 {
		return NewValidationError("orchestrator", "", "signal_ttl_hours",
			fmt.Errorf("%w: must be in [1,168], got %d", ErrInvalidValue, o.SignalTTLHours))
	}
	if o.MinConfidenceThreshold < 0 || o.MinConfidenceThreshold > 1 {
		return NewValidationError("orchestrator", "", "min_confidence_threshold",
			fmt.Errorf("%w: must be in [0,1], got %v", ErrInvalidValue, o.MinConfidenceThreshold))
	}
	if o.AgentTimeout <= 0 {
		return NewValidationError("orchestrator", "", "agent_timeout",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if o.SessionHistoryLimit < 1 {
		return NewValidationError("orchestrator", "", "session_history_limit",
			fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	return nil
}

func (v *Validator) validateScheduler() error {
	s := v.cfg.Scheduler
	if len(s.Jobs) == 0 {
		return NewValidationError("scheduler", "", "jobs",
			fmt.Errorf("%w: at least one job required", ErrInvalidValue))
	}
	for id, job := range s.Jobs {
		if err := ValidateCron(job.CronExpression); err != nil {
			return NewValidationError("scheduler", id, "cron_expression", err)
		}
		if job.Timezone != "" {
			if _, err := time.LoadLocation(job.Timezone); err != nil {
				return NewValidationError("scheduler", id, "timezone",
					fmt.Errorf("%w: unknown timezone %q", ErrInvalidValue, job.Timezone))
			}
		}
		if job.MaxRetries < 0 {
			return NewValidationError("scheduler", id, "max_retries",
				fmt.Errorf("%w: must be non-negative", ErrInvalidValue))
		}
		if job.Timeout <= 0 {
			return NewValidationError("scheduler", id, "timeout",
				fmt.Errorf("%w: must be positive", ErrInvalidValue))
		}
	}
	if s.HistoryLimit < 1 {
		return NewValidationError("scheduler", "", "history_limit",
			fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	return nil
}

func (v *Validator) validateEvolution() error {
	e := v.cfg.Evolution
	if !e.ScheduleType.IsValid() {
		return NewValidationError("evolution", "", "schedule_type",
			fmt.Errorf("%w: unknown schedule type %q", ErrInvalidValue, e.ScheduleType))
	}
	if e.PopulationSize < 3 {
		return NewValidationError("evolution", "", "population_size",
			fmt.Errorf("%w: must be at least 3 (elitism keeps 2)", ErrInvalidValue))
	}
	if e.MutationRate < 0 || e.MutationRate > 1 {
		return NewValidationError("evolution", "", "mutation_rate",
			fmt.Errorf("%w: must be in [0,1]", ErrInvalidValue))
	}
	if e.MinFitnessForDeploy < 0 || e.MinFitnessForDeploy > 1 {
		return NewValidationError("evolution", "", "min_fitness_for_deploy",
			fmt.Errorf("%w: must be in [0,1]", ErrInvalidValue))
	}
	if e.MaxGenerationsPerRun < 1 {
		return NewValidationError("evolution", "", "max_generations_per_run",
			fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	return nil
}

func (v *Validator) validateLifecycle() error {
	l := v.cfg.Lifecycle
	if l.RetentionHot <= 0 || l.RetentionWarm <= l.RetentionHot ||
		l.RetentionCold <= l.RetentionWarm || l.RetentionFrozen <= l.RetentionCold {
		return NewValidationError("data_lifecycle", "", "retention",
			fmt.Errorf("%w: horizons must be positive and strictly increasing hot < warm < cold < frozen", ErrInvalidValue))
	}
	if l.BackpressureQueueSize < 1 {
		return NewValidationError("data_lifecycle", "", "backpressure_queue_size",
			fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	return nil
}

func (v *Validator) validateMeridian() error {
	m := v.cfg.Meridian
	if m.Capacity < 1 {
		return NewValidationError("meridian", "", "capacity",
			fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if m.PublishTimeout <= 0 || m.PublishTimeout > time.Second {
		return NewValidationError("meridian", "", "publish_timeout",
			fmt.Errorf("%w: must be in (0s, 1s]", ErrInvalidValue))
	}
	return nil
}

func (v *Validator) validateLearning() error {
	l := v.cfg.Learning
	if l.BatchSize < 1 {
		return NewValidationError("learning", "", "batch_size",
			fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if l.ApplyConfidence < 0 || l.ApplyConfidence > 1 {
		return NewValidationError("learning", "", "apply_confidence",
			fmt.Errorf("%w: must be in [0,1]", ErrInvalidValue))
	}
	return nil
}
