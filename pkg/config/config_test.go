package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCron(t *testing.T) {
	assert.NoError(t, ValidateCron("0 6 * * *"))
	assert.NoError(t, ValidateCron("*/15 2 1 * 0"))

	assert.ErrorIs(t, ValidateCron(""), ErrInvalidCron)
	assert.ErrorIs(t, ValidateCron("0 6 * *"), ErrInvalidCron, "4 fields rejected")
	assert.ErrorIs(t, ValidateCron("0 0 6 * * *"), ErrInvalidCron, "6-field (with seconds) rejected")
	assert.ErrorIs(t, ValidateCron("not a cron at all"), ErrInvalidCron)
	assert.ErrorIs(t, ValidateCron("61 6 * * *"), ErrInvalidCron, "out-of-range minute rejected")
}

func TestInitialize_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.True(t, cfg.Orchestrator.EnableCrossSynthesis)
	assert.Equal(t, 48, cfg.Orchestrator.SignalTTLHours)
	assert.Equal(t, "0 6 * * *", cfg.Scheduler.Jobs[JobP0DailySync].CronExpression)
	assert.Equal(t, "0 2 * * 0", cfg.Scheduler.Jobs[JobP3Evolution].CronExpression)
	assert.Equal(t, "0 2 * * *", cfg.Scheduler.Jobs[JobDataLifecycle].CronExpression)
	assert.Equal(t, EvolutionWeekly, cfg.Evolution.ScheduleType)
	assert.Equal(t, 7*24*time.Hour, cfg.Lifecycle.RetentionHot)
	assert.Equal(t, 1000, cfg.Meridian.Capacity)
	assert.Equal(t, 10, cfg.Learning.BatchSize)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "growthd.yaml"), []byte(content), 0o644))
	return dir
}

func TestInitialize_OverlaysFileSections(t *testing.T) {
	dir := writeConfig(t, `
evolution:
  schedule_type: weekly
  feedback_threshold: 25
  max_generations_per_run: 3
  enable_auto_deploy: true
  min_fitness_for_deploy: 0.65
  population_size: 12
  mutation_rate: 0.3
scheduler:
  jobs:
    p0_daily_sync:
      cron_expression: "30 5 * * *"
      max_retries: 2
      retry_delay: 10m
      timeout: 15m
      enabled: true
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, EvolutionWeekly, cfg.Evolution.ScheduleType)
	assert.Equal(t, 12, cfg.Evolution.PopulationSize)
	assert.True(t, cfg.Evolution.EnableAutoDeploy)

	assert.Equal(t, "30 5 * * *", cfg.Scheduler.Jobs[JobP0DailySync].CronExpression)
	assert.Equal(t, 2, cfg.Scheduler.Jobs[JobP0DailySync].MaxRetries)

	// Jobs the file does not mention keep their defaults.
	require.Contains(t, cfg.Scheduler.Jobs, JobP3Evolution)
	assert.Equal(t, "0 2 * * 0", cfg.Scheduler.Jobs[JobP3Evolution].CronExpression)

	// Untouched sections keep defaults entirely.
	assert.Equal(t, 1000, cfg.Meridian.Capacity)
}

func TestInitialize_EvolutionScheduleReconciled(t *testing.T) {
	evolutionYAML := func(scheduleType string) string {
		return `
evolution:
  schedule_type: ` + scheduleType + `
  feedback_threshold: 50
  max_generations_per_run: 5
  min_fitness_for_deploy: 0.7
  population_size: 10
  mutation_rate: 0.2
`
	}

	t.Run("daily rewrites the cron to nightly", func(t *testing.T) {
		cfg, err := Initialize(context.Background(), writeConfig(t, evolutionYAML("daily")))
		require.NoError(t, err)
		assert.Equal(t, "0 2 * * *", cfg.Scheduler.Jobs[JobP3Evolution].CronExpression)
		assert.True(t, cfg.Scheduler.Jobs[JobP3Evolution].Enabled)
	})

	t.Run("weekly keeps the configured cron", func(t *testing.T) {
		cfg, err := Initialize(context.Background(), writeConfig(t, evolutionYAML("weekly")))
		require.NoError(t, err)
		assert.Equal(t, "0 2 * * 0", cfg.Scheduler.Jobs[JobP3Evolution].CronExpression)
		assert.True(t, cfg.Scheduler.Jobs[JobP3Evolution].Enabled)
	})

	t.Run("feedback disables the cron job", func(t *testing.T) {
		cfg, err := Initialize(context.Background(), writeConfig(t, evolutionYAML("feedback")))
		require.NoError(t, err)
		assert.False(t, cfg.Scheduler.Jobs[JobP3Evolution].Enabled)
	})

	t.Run("manual disables the cron job", func(t *testing.T) {
		cfg, err := Initialize(context.Background(), writeConfig(t, evolutionYAML("manual")))
		require.NoError(t, err)
		assert.False(t, cfg.Scheduler.Jobs[JobP3Evolution].Enabled)
	})
}

func TestInitialize_RejectsInvalidJobCron(t *testing.T) {
	dir := writeConfig(t, `
scheduler:
  jobs:
    p0_daily_sync:
      cron_expression: "0 0 6 * * *"
      max_retries: 3
      timeout: 30m
      enabled: true
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.ErrorIs(t, err, ErrInvalidCron)
}

func TestInitialize_RejectsInvalidYAML(t *testing.T) {
	dir := writeConfig(t, "orchestrator: [not: valid")
	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("GROWTHD_TEST_TZ", "UTC")
	out := ExpandEnv([]byte("timezone: {{.GROWTHD_TEST_TZ}}"))
	assert.Equal(t, "timezone: UTC", string(out))

	// Literal dollars pass through untouched.
	out = ExpandEnv([]byte("password: pa$$word"))
	assert.Equal(t, "password: pa$$word", string(out))
}

func TestValidator_RejectsOutOfRangeValues(t *testing.T) {
	base := func() *Config {
		return &Config{
			Orchestrator: DefaultOrchestratorConfig(),
			Scheduler:    DefaultSchedulerConfig(),
			Evolution:    DefaultEvolutionConfig(),
			Lifecycle:    DefaultLifecycleConfig(),
			Meridian:     DefaultMeridianConfig(),
			Learning:     DefaultLearningConfig(),
		}
	}

	cfg := base()
	require.NoError(t, NewValidator(cfg).ValidateAll())

	cfg = base()
	cfg.Orchestrator.SignalTTLHours = 200
	assert.ErrorIs(t, NewValidator(cfg).ValidateAll(), ErrInvalidValue)

	cfg = base()
	cfg.Evolution.PopulationSize = 2
	assert.ErrorIs(t, NewValidator(cfg).ValidateAll(), ErrInvalidValue)

	cfg = base()
	cfg.Evolution.MutationRate = 1.5
	assert.ErrorIs(t, NewValidator(cfg).ValidateAll(), ErrInvalidValue)

	cfg = base()
	cfg.Lifecycle.RetentionWarm = cfg.Lifecycle.RetentionHot
	assert.ErrorIs(t, NewValidator(cfg).ValidateAll(), ErrInvalidValue)

	cfg = base()
	cfg.Meridian.PublishTimeout = 2 * time.Second
	assert.ErrorIs(t, NewValidator(cfg).ValidateAll(), ErrInvalidValue)

	cfg = base()
	cfg.Scheduler.Jobs[JobP0DailySync].Timezone = "Not/AZone"
	assert.ErrorIs(t, NewValidator(cfg).ValidateAll(), ErrInvalidValue)
}
