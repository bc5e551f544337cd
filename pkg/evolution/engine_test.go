package evolution

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackeyunjie/growthd/pkg/config"
	"github.com/jackeyunjie/growthd/pkg/memory"
	"github.com/jackeyunjie/growthd/pkg/models"
)

func setupEngine(t *testing.T, cfg config.EvolutionConfig) (*Engine, *memory.SharedMemory) {
	t.Helper()
	mem := memory.NewSharedMemory(memory.NewMemoryStore())
	engine := NewEngine(cfg, mem, nil)
	engine.SeedRNG(42)
	return engine, mem
}

// singleGenerationConfig pins one generation per cycle so deployment tests
// see the evaluated seed strategies, not later unproven offspring.
func singleGenerationConfig() config.EvolutionConfig {
	cfg := *config.DefaultEvolutionConfig()
	cfg.MaxGenerationsPerRun = 1
	return cfg
}

func TestPopulation_Initialization(t *testing.T) {
	engine, _ := setupEngine(t, *config.DefaultEvolutionConfig())

	pop := engine.Population("pain_scanner")
	require.Len(t, pop, 10)

	for _, s := range pop {
		assert.NotEmpty(t, s.StrategyID)
		assert.Equal(t, "pain_scanner", s.AgentType)
		assert.Equal(t, models.QuadrantQ1, s.Quadrant)
		require.Len(t, s.Genes, 3)
		for _, g := range s.Genes {
			assert.GreaterOrEqual(t, g.Value, g.MutationRange.Low)
			assert.LessOrEqual(t, g.Value, g.MutationRange.High)
		}
	}

	// Seeds vary: the urgency threshold should not be identical across slots.
	first := pop[0].Genes[0].Value
	varied := false
	for _, s := range pop[1:] {
		if s.Genes[0].Value != first {
			varied = true
			break
		}
	}
	assert.True(t, varied, "initial gene values are jittered per slot")
}

func TestPopulation_UnknownAgentType(t *testing.T) {
	engine, _ := setupEngine(t, *config.DefaultEvolutionConfig())
	assert.Nil(t, engine.Population("pain_connector"))
}

func TestFitness(t *testing.T) {
	engine, _ := setupEngine(t, *config.DefaultEvolutionConfig())

	s := &models.AgentStrategy{SuccessCount: 3, FailureCount: 1}
	assert.InDelta(t, 0.6, engine.Fitness(s, 0.8), 1e-9, "0.75 success rate times 0.8 base")
}

func TestFitness_NoOutcomesGetsJitteredBase(t *testing.T) {
	engine, _ := setupEngine(t, *config.DefaultEvolutionConfig())

	for i := 0; i < 50; i++ {
		f := engine.Fitness(&models.AgentStrategy{}, 0.9)
		assert.GreaterOrEqual(t, f, 0.9*0.8)
		assert.Less(t, f, 0.9*1.2)
	}
}

func TestEvolveGeneration_ElitesCarryOverUnchanged(t *testing.T) {
	cfg := *config.DefaultEvolutionConfig()
	cfg.MutationRate = 0
	engine, _ := setupEngine(t, cfg)

	pop := engine.Population("trend_hunter")
	require.Len(t, pop, 10)

	// Give the population a fitness gradient.
	for i, s := range pop {
		s.SuccessCount = 10 - i
		s.FailureCount = i
	}
	eliteIDs := []string{pop[0].StrategyID, pop[1].StrategyID}
	eliteGenes := [][]models.StrategyGene{
		append([]models.StrategyGene(nil), pop[0].Genes...),
		append([]models.StrategyGene(nil), pop[1].Genes...),
	}
	parentGenes := make(map[string][]models.StrategyGene, len(pop))
	for _, s := range pop {
		parentGenes[s.StrategyID] = append([]models.StrategyGene(nil), s.Genes...)
	}

	next := engine.EvolveGeneration("trend_hunter", 1.0)
	require.Len(t, next, 10)

	// Top two strategies survive with identity and genes intact.
	assert.Equal(t, eliteIDs[0], next[0].StrategyID)
	assert.Equal(t, eliteIDs[1], next[1].StrategyID)
	assert.Equal(t, eliteGenes[0], next[0].Genes)
	assert.Equal(t, eliteGenes[1], next[1].Genes)

	// With mutation disabled the eight offspring are exact gene copies of
	// their parents, with fresh identities and reset counters.
	for _, child := range next[2:] {
		require.NotEmpty(t, child.ParentStrategyID)
		parent, ok := parentGenes[child.ParentStrategyID]
		require.True(t, ok, "offspring parent must come from the prior generation")
		require.Len(t, child.Genes, len(parent))
		for i, g := range child.Genes {
			assert.Equal(t, parent[i].ParameterName, g.ParameterName)
			assert.Equal(t, parent[i].Value, g.Value, "zero mutation rate copies gene values")
			assert.Equal(t, 1, g.Generation)
		}
		assert.Zero(t, child.SuccessCount)
		assert.Zero(t, child.FailureCount)
		assert.NotContains(t, eliteIDs, child.StrategyID)
	}
}

func TestEvolveGeneration_MutationStaysInBounds(t *testing.T) {
	cfg := *config.DefaultEvolutionConfig()
	cfg.MutationRate = 1.0
	engine, _ := setupEngine(t, cfg)

	engine.Population("emotion_mapper")
	for gen := 0; gen < 20; gen++ {
		next := engine.EvolveGeneration("emotion_mapper", 1.0)
		for _, s := range next {
			for _, g := range s.Genes {
				assert.GreaterOrEqual(t, g.Value, g.MutationRange.Low)
				assert.LessOrEqual(t, g.Value, g.MutationRange.High)
			}
		}
	}
}

func TestRecordOutcome(t *testing.T) {
	engine, _ := setupEngine(t, *config.DefaultEvolutionConfig())
	pop := engine.Population("scene_finder")

	engine.RecordOutcome("scene_finder", pop[0].StrategyID, true)
	engine.RecordOutcome("scene_finder", pop[0].StrategyID, false)
	engine.RecordOutcome("scene_finder", "no-such-strategy", true)

	assert.Equal(t, 1, pop[0].SuccessCount)
	assert.Equal(t, 1, pop[0].FailureCount)
}

func TestRecordQuadrantOutcome_AttributesToDeployedStrategy(t *testing.T) {
	ctx := context.Background()
	engine, mem := setupEngine(t, *config.DefaultEvolutionConfig())
	pop := engine.Population("pain_scanner")

	deployed := models.DeployedConfig{AgentType: "pain_scanner", StrategyID: pop[0].StrategyID}
	require.NoError(t, mem.Store().Store(ctx, memory.KeyPrefixDeployedConfig+"pain_scanner", deployed, 0))

	engine.RecordQuadrantOutcome(ctx, models.QuadrantQ1, true)
	engine.RecordQuadrantOutcome(ctx, models.QuadrantQ1, false)
	assert.Equal(t, 1, pop[0].SuccessCount)
	assert.Equal(t, 1, pop[0].FailureCount)

	// Quadrants without a deployed strategy are skipped.
	engine.RecordQuadrantOutcome(ctx, models.QuadrantQ2, true)
	for _, s := range engine.Population("emotion_mapper") {
		assert.Zero(t, s.SuccessCount)
	}
}

func TestRunCycle_RunsConfiguredGenerations(t *testing.T) {
	ctx := context.Background()
	cfg := *config.DefaultEvolutionConfig()
	cfg.MaxGenerationsPerRun = 3
	engine, _ := setupEngine(t, cfg)

	report, err := engine.RunCycle(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Generations)

	for _, agentType := range EvolvableAgentTypes() {
		assert.Equal(t, 3, highestGeneration(engine.Population(agentType)),
			"each cycle advances %s by the configured generation count", agentType)
	}
}

func TestRunCycle_HighFitnessAutoDeploys(t *testing.T) {
	ctx := context.Background()
	engine, mem := setupEngine(t, singleGenerationConfig())

	// Every strategy of every type wins everything: fitness 1.0 > 0.8.
	for _, agentType := range EvolvableAgentTypes() {
		for _, s := range engine.Population(agentType) {
			s.SuccessCount = 10
		}
	}

	report, err := engine.RunCycle(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, report.Best, 4)
	assert.Len(t, report.Deployed, 4, "fitness above 0.8 deploys without confirmation")

	for _, agentType := range EvolvableAgentTypes() {
		deployed := mem.DeployedConfig(ctx, agentType)
		require.NotNil(t, deployed, "deployed config missing for %s", agentType)
		assert.NotEmpty(t, deployed.Parameters)
	}

	// The cycle report is retrievable by id.
	loaded, err := engine.Report(ctx, report.ReportID)
	require.NoError(t, err)
	assert.Equal(t, report.ReportID, loaded.ReportID)
}

func TestRunCycle_MediumFitnessParksPending(t *testing.T) {
	ctx := context.Background()
	engine, mem := setupEngine(t, singleGenerationConfig())

	// 15 of 20 successes: fitness 0.75 clears the floor but not auto-deploy.
	for _, agentType := range EvolvableAgentTypes() {
		for _, s := range engine.Population(agentType) {
			s.SuccessCount = 15
			s.FailureCount = 5
		}
	}

	report, err := engine.RunCycle(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, report.Deployed, "medium fitness waits for confirmation")
	assert.Len(t, engine.PendingDeployments(), 4)
	assert.Nil(t, mem.DeployedConfig(ctx, "pain_scanner"))

	// Confirming releases the deployment.
	deployed, err := engine.ConfirmDeploy(ctx, "pain_scanner")
	require.NoError(t, err)
	assert.Equal(t, "pain_scanner", deployed.AgentType)
	require.NotNil(t, mem.DeployedConfig(ctx, "pain_scanner"))

	// A second confirmation has nothing left to release.
	_, err = engine.ConfirmDeploy(ctx, "pain_scanner")
	assert.True(t, errors.Is(err, ErrNoPendingDeployment))
}

func TestRunCycle_LowFitnessDoesNotDeploy(t *testing.T) {
	ctx := context.Background()
	engine, mem := setupEngine(t, singleGenerationConfig())

	for _, agentType := range EvolvableAgentTypes() {
		for _, s := range engine.Population(agentType) {
			s.SuccessCount = 5
			s.FailureCount = 5
		}
	}

	report, err := engine.RunCycle(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, report.Deployed)
	assert.Empty(t, engine.PendingDeployments(), "fitness at or below the floor never parks")
	assert.Nil(t, mem.DeployedConfig(ctx, "trend_hunter"))
}

func TestRunCycle_UnprovenPopulationNeverDeploys(t *testing.T) {
	ctx := context.Background()
	engine, mem := setupEngine(t, *config.DefaultEvolutionConfig())

	// No outcomes recorded anywhere: jittered fitness can exceed 0.8 but
	// must not trigger a deployment.
	report, err := engine.RunCycle(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, report.Deployed)
	assert.Empty(t, engine.PendingDeployments())
	for _, agentType := range EvolvableAgentTypes() {
		assert.Nil(t, mem.DeployedConfig(ctx, agentType))
	}
}

func TestRunCycle_BaseSuccessRateScalesFitness(t *testing.T) {
	ctx := context.Background()
	engine, _ := setupEngine(t, singleGenerationConfig())

	for _, agentType := range EvolvableAgentTypes() {
		for _, s := range engine.Population(agentType) {
			s.SuccessCount = 10
		}
	}

	// A low base rate drags perfect strategies below the deploy floor.
	rates := map[string]float64{}
	for _, agentType := range EvolvableAgentTypes() {
		rates[agentType] = 0.5
	}
	report, err := engine.RunCycle(ctx, rates)
	require.NoError(t, err)
	assert.Empty(t, report.Deployed)
	for _, rec := range report.Best {
		assert.InDelta(t, 0.5, rec.BestFitness, 1e-9)
	}
}

type stubRateSource struct {
	rates map[models.Quadrant]float64
}

func (s *stubRateSource) QuadrantSuccessRates() map[models.Quadrant]float64 { return s.rates }

func TestRunCycle_NilRatesFallBackToRateSource(t *testing.T) {
	ctx := context.Background()
	engine, _ := setupEngine(t, singleGenerationConfig())
	engine.SetRateSource(&stubRateSource{rates: map[models.Quadrant]float64{
		models.QuadrantQ1: 0.4,
		models.QuadrantQ2: 0.4,
		models.QuadrantQ3: 0.4,
		models.QuadrantQ4: 0.4,
	}})

	for _, agentType := range EvolvableAgentTypes() {
		for _, s := range engine.Population(agentType) {
			s.SuccessCount = 10
		}
	}

	report, err := engine.RunCycle(ctx, nil)
	require.NoError(t, err)
	for _, rec := range report.Best {
		assert.InDelta(t, 0.4, rec.BestFitness, 1e-9,
			"observed quadrant rates feed the base success rate")
	}
}

func TestNoteFeedback_TriggersCycleAtThreshold(t *testing.T) {
	ctx := context.Background()
	cfg := singleGenerationConfig()
	cfg.ScheduleType = config.EvolutionFeedback
	cfg.FeedbackThreshold = 5
	engine, mem := setupEngine(t, cfg)

	reportCount := func() int {
		keys, err := mem.Store().Keys(ctx, memory.KeyPrefixEvolutionReport)
		require.NoError(t, err)
		return len(keys)
	}

	for i := 0; i < 4; i++ {
		engine.NoteFeedback(ctx)
	}
	assert.Zero(t, reportCount(), "below the threshold no cycle runs")

	engine.NoteFeedback(ctx)
	assert.Equal(t, 1, reportCount(), "the threshold record triggers one cycle")

	// The counter resets: another full batch is needed for the next cycle.
	for i := 0; i < 5; i++ {
		engine.NoteFeedback(ctx)
	}
	assert.Equal(t, 2, reportCount())
}

func TestNoteFeedback_IgnoredForOtherSchedules(t *testing.T) {
	ctx := context.Background()
	cfg := singleGenerationConfig()
	cfg.ScheduleType = config.EvolutionWeekly
	cfg.FeedbackThreshold = 1
	engine, mem := setupEngine(t, cfg)

	engine.NoteFeedback(ctx)
	engine.NoteFeedback(ctx)

	keys, err := mem.Store().Keys(ctx, memory.KeyPrefixEvolutionReport)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestAgentTypeForQuadrant(t *testing.T) {
	assert.Equal(t, "pain_scanner", AgentTypeForQuadrant(models.QuadrantQ1))
	assert.Equal(t, "scene_finder", AgentTypeForQuadrant(models.QuadrantQ4))
	assert.Empty(t, AgentTypeForQuadrant(models.Quadrant("q9")))
}
