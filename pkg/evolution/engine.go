package evolution

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jackeyunjie/growthd/pkg/config"
	"github.com/jackeyunjie/growthd/pkg/memory"
	"github.com/jackeyunjie/growthd/pkg/models"
)

// ErrNoPendingDeployment indicates no strategy awaits confirmation for the
// agent type.
var ErrNoPendingDeployment = errors.New("no pending deployment")

// Selection and deployment constants.
const (
	eliteCount = 2

	// tournamentSize is how many candidates compete per offspring slot.
	tournamentSize = 3

	// deployFitnessFloor gates any deployment; autoDeployFitness bypasses
	// the manual-confirmation requirement regardless of configuration.
	deployFitnessFloor = 0.6
	autoDeployFitness  = 0.8

	// mutationDeltaScale scales a gene's bounds into its mutation delta.
	mutationDeltaScale = 0.1
)

// RateSource supplies observed per-quadrant success rates, used as the base
// success rate for fitness scoring. The learning collector implements it.
type RateSource interface {
	QuadrantSuccessRates() map[models.Quadrant]float64
}

// Engine drives evolution cycles. Populations live in process memory;
// deployed configs and cycle reports are persisted to shared memory.
type Engine struct {
	cfg    config.EvolutionConfig
	mem    *memory.SharedMemory
	logger *slog.Logger

	mu          sync.Mutex
	populations map[string][]*models.AgentStrategy
	pending     map[string]models.DeployedConfig // awaiting manual confirmation
	rates       RateSource
	feedback    int // records seen since the last feedback-driven cycle

	rng   *rand.Rand
	now   func() time.Time
	newID func() string
}

// NewEngine builds the evolution engine with a randomly seeded RNG.
func NewEngine(cfg config.EvolutionConfig, mem *memory.SharedMemory, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		cfg:         cfg,
		mem:         mem,
		logger:      logger.With("component", "evolution_engine"),
		populations: make(map[string][]*models.AgentStrategy),
		pending:     make(map[string]models.DeployedConfig),
		rng:         rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now:         time.Now,
		newID:       func() string { return uuid.NewString() },
	}
}

// SeedRNG replaces the engine's randomness source. Test hook.
func (e *Engine) SeedRNG(seed int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rng = rand.New(rand.NewPCG(uint64(seed), 0))
}

// SetRateSource wires the feedback-rate provider. Set once at startup,
// before any cycles run.
func (e *Engine) SetRateSource(rates RateSource) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rates = rates
}

// Population returns the current population for an agent type, initializing
// it on first use: one seed strategy per slot, each gene scaled by a uniform
// factor in [0.8, 1.2).
func (e *Engine) Population(agentType string) []*models.AgentStrategy {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.populationLocked(agentType)
}

func (e *Engine) populationLocked(agentType string) []*models.AgentStrategy {
	if pop, ok := e.populations[agentType]; ok {
		return pop
	}
	templates, ok := geneTemplates[agentType]
	if !ok {
		return nil
	}
	size := e.populationSize()
	pop := make([]*models.AgentStrategy, 0, size)
	for i := 0; i < size; i++ {
		genes := make([]models.StrategyGene, 0, len(templates))
		for _, t := range templates {
			genes = append(genes, models.StrategyGene{
				ParameterName: t.name,
				Value:         clampGene(t.initial*e.uniform(0.8, 1.2), t.low, t.high),
				MutationRange: models.MutationRange{Low: t.low, High: t.high},
			})
		}
		pop = append(pop, &models.AgentStrategy{
			StrategyID: e.newID(),
			AgentType:  agentType,
			Quadrant:   agentTypeQuadrant[agentType],
			Genes:      genes,
			CreatedAt:  e.now().UTC(),
		})
	}
	e.populations[agentType] = pop
	return pop
}

// RecordOutcome attributes one plan outcome to a strategy, feeding its
// success and failure counters.
func (e *Engine) RecordOutcome(agentType, strategyID string, success bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, s := range e.populations[agentType] {
		if s.StrategyID == strategyID {
			if success {
				s.SuccessCount++
			} else {
				s.FailureCount++
			}
			return
		}
	}
}

// RecordQuadrantOutcome attributes an outcome observed for a quadrant to the
// currently deployed strategy of that quadrant's agent type. Quadrants with
// no deployed strategy are skipped; outcomes then only shape the base rate.
func (e *Engine) RecordQuadrantOutcome(ctx context.Context, quadrant models.Quadrant, success bool) {
	agentType := AgentTypeForQuadrant(quadrant)
	if agentType == "" {
		return
	}
	deployed := e.mem.DeployedConfig(ctx, agentType)
	if deployed == nil {
		return
	}
	e.RecordOutcome(agentType, deployed.StrategyID, success)
}

// NoteFeedback counts one feedback record toward the feedback-driven
// schedule. Once the configured threshold of records accumulates, a cycle
// runs and the counter resets. No-op for the other schedule types.
func (e *Engine) NoteFeedback(ctx context.Context) {
	if e.cfg.ScheduleType != config.EvolutionFeedback {
		return
	}
	e.mu.Lock()
	e.feedback++
	due := e.feedback >= e.feedbackThreshold()
	if due {
		e.feedback = 0
	}
	e.mu.Unlock()
	if !due {
		return
	}
	if _, err := e.RunCycle(ctx, nil); err != nil {
		e.logger.Error("Feedback-driven evolution cycle failed", "error", err)
	}
}

// Fitness scores a strategy: its observed success rate scaled by the agent
// type's base success rate. A strategy with no outcomes yet gets the base
// rate jittered by a uniform factor in [0.8, 1.2).
func (e *Engine) Fitness(s *models.AgentStrategy, baseSuccessRate float64) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.fitnessLocked(s, baseSuccessRate)
}

func (e *Engine) fitnessLocked(s *models.AgentStrategy, baseSuccessRate float64) float64 {
	total := s.SuccessCount + s.FailureCount
	if total == 0 {
		return baseSuccessRate * e.uniform(0.8, 1.2)
	}
	return float64(s.SuccessCount) / float64(total) * baseSuccessRate
}

// EvolveGeneration breeds the next generation for one agent type: the
// population is scored and sorted, the top two carry over unchanged, and
// the remaining slots are filled by mutated tournament winners.
func (e *Engine) EvolveGeneration(agentType string, baseSuccessRate float64) []*models.AgentStrategy {
	e.mu.Lock()
	defer e.mu.Unlock()

	pop := e.populationLocked(agentType)
	if len(pop) == 0 {
		return nil
	}
	for _, s := range pop {
		s.FitnessScore = e.fitnessLocked(s, baseSuccessRate)
	}
	sortByFitness(pop)

	nextGen := highestGeneration(pop) + 1
	next := make([]*models.AgentStrategy, 0, len(pop))
	for i := 0; i < eliteCount && i < len(pop); i++ {
		next = append(next, pop[i])
	}
	for len(next) < len(pop) {
		parent := e.tournament(pop)
		next = append(next, e.offspring(parent, nextGen))
	}

	e.populations[agentType] = next
	return next
}

// tournament picks the fittest of tournamentSize random candidates.
func (e *Engine) tournament(pop []*models.AgentStrategy) *models.AgentStrategy {
	best := pop[e.rng.IntN(len(pop))]
	for i := 1; i < tournamentSize; i++ {
		c := pop[e.rng.IntN(len(pop))]
		if c.FitnessScore > best.FitnessScore {
			best = c
		}
	}
	return best
}

// offspring clones the parent and mutates each gene independently with the
// configured mutation rate. Counters reset; lineage is recorded.
func (e *Engine) offspring(parent *models.AgentStrategy, generation int) *models.AgentStrategy {
	child := parent.Clone()
	child.StrategyID = e.newID()
	child.ParentStrategyID = parent.StrategyID
	child.SuccessCount = 0
	child.FailureCount = 0
	child.FitnessScore = 0
	child.CreatedAt = e.now().UTC()
	for i := range child.Genes {
		g := &child.Genes[i]
		g.Generation = generation
		if e.rng.Float64() >= e.cfg.MutationRate {
			continue
		}
		delta := e.uniform(g.MutationRange.Low*mutationDeltaScale, g.MutationRange.High*mutationDeltaScale)
		g.Value = clampGene(g.Value+delta, g.MutationRange.Low, g.MutationRange.High)
	}
	return child
}

// RunCycle evolves every agent type for the configured number of
// generations, deploys qualifying strategies, and persists a cycle report
// under a 90-day TTL. A nil baseSuccessRates falls back to the observed
// per-quadrant rates from the rate source, defaulting to 1.0.
func (e *Engine) RunCycle(ctx context.Context, baseSuccessRates map[string]float64) (*models.EvolutionReport, error) {
	if baseSuccessRates == nil {
		baseSuccessRates = e.baseRates()
	}
	gens := e.generationsPerRun()
	report := &models.EvolutionReport{
		ReportID:    e.newID(),
		StartedAt:   e.now().UTC(),
		Generations: gens,
	}

	for _, agentType := range EvolvableAgentTypes() {
		base := baseSuccessRates[agentType]
		if base == 0 {
			base = 1.0
		}
		var pop []*models.AgentStrategy
		for g := 0; g < gens; g++ {
			pop = e.EvolveGeneration(agentType, base)
		}
		if len(pop) == 0 {
			continue
		}
		best := pop[0]
		report.Best = append(report.Best, models.MetaLearningRecord{
			AgentType:      agentType,
			Generation:     highestGeneration(pop),
			BestStrategyID: best.StrategyID,
			BestFitness:    best.FitnessScore,
			RecordedAt:     e.now().UTC(),
		})

		deployed, err := e.maybeDeploy(ctx, bestEvaluated(pop))
		if err != nil {
			return nil, err
		}
		if deployed != nil {
			report.Deployed = append(report.Deployed, *deployed)
		}
	}

	report.CompletedAt = e.now().UTC()
	key := memory.KeyPrefixEvolutionReport + report.ReportID
	if err := e.mem.Store().Store(ctx, key, report, memory.TTLEvolutionReport); err != nil {
		return nil, fmt.Errorf("failed to persist evolution report: %w", err)
	}
	e.logger.Info("Evolution cycle complete",
		"report_id", report.ReportID,
		"generations", gens,
		"agent_types", len(report.Best),
		"deployed", len(report.Deployed))
	return report, nil
}

// baseRates maps the rate source's per-quadrant success rates onto agent
// types. Nil when no rate source is wired; RunCycle then defaults to 1.0.
func (e *Engine) baseRates() map[string]float64 {
	e.mu.Lock()
	rates := e.rates
	e.mu.Unlock()
	if rates == nil {
		return nil
	}
	byQuadrant := rates.QuadrantSuccessRates()
	if len(byQuadrant) == 0 {
		return nil
	}
	out := make(map[string]float64, len(byQuadrant))
	for agentType, q := range agentTypeQuadrant {
		if rate, ok := byQuadrant[q]; ok {
			out[agentType] = rate
		}
	}
	return out
}

// bestEvaluated returns the fittest strategy that has observed outcomes.
// Unproven strategies carry jittered fitness and never deploy on it.
func bestEvaluated(pop []*models.AgentStrategy) *models.AgentStrategy {
	var best *models.AgentStrategy
	for _, s := range pop {
		if s.SuccessCount+s.FailureCount == 0 {
			continue
		}
		if best == nil || s.FitnessScore > best.FitnessScore {
			best = s
		}
	}
	return best
}

// maybeDeploy deploys the strategy when its fitness clears the floor. Very
// fit strategies and auto-deploy mode skip manual confirmation; others are
// parked as pending until ConfirmDeploy.
func (e *Engine) maybeDeploy(ctx context.Context, best *models.AgentStrategy) (*models.DeployedConfig, error) {
	if best == nil {
		return nil, nil
	}
	floor := e.cfg.MinFitnessForDeploy
	if floor <= 0 {
		floor = deployFitnessFloor
	}
	if best.FitnessScore <= floor {
		return nil, nil
	}
	cfg := models.DeployedConfig{
		AgentType:  best.AgentType,
		StrategyID: best.StrategyID,
		Fitness:    best.FitnessScore,
		Generation: highestGeneration([]*models.AgentStrategy{best}),
		Parameters: best.GeneValues(),
		DeployedAt: e.now().UTC(),
	}
	if best.FitnessScore > autoDeployFitness || e.cfg.EnableAutoDeploy {
		if err := e.deploy(ctx, cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	e.mu.Lock()
	e.pending[best.AgentType] = cfg
	e.mu.Unlock()
	e.logger.Info("Strategy awaiting manual deploy confirmation",
		"agent_type", best.AgentType, "strategy_id", best.StrategyID, "fitness", best.FitnessScore)
	return nil, nil
}

// ConfirmDeploy releases a pending deployment for the agent type.
func (e *Engine) ConfirmDeploy(ctx context.Context, agentType string) (*models.DeployedConfig, error) {
	e.mu.Lock()
	cfg, ok := e.pending[agentType]
	if ok {
		delete(e.pending, agentType)
	}
	e.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: agent type %s", ErrNoPendingDeployment, agentType)
	}
	if err := e.deploy(ctx, cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// PendingDeployments lists agent types with a parked deployment.
func (e *Engine) PendingDeployments() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	types := make([]string, 0, len(e.pending))
	for t := range e.pending {
		types = append(types, t)
	}
	return types
}

func (e *Engine) deploy(ctx context.Context, cfg models.DeployedConfig) error {
	key := memory.KeyPrefixDeployedConfig + cfg.AgentType
	if err := e.mem.Store().Store(ctx, key, cfg, memory.TTLDeployedConfig); err != nil {
		return fmt.Errorf("failed to deploy strategy %s: %w", cfg.StrategyID, err)
	}
	e.logger.Info("Strategy deployed", "agent_type", cfg.AgentType, "strategy_id", cfg.StrategyID, "fitness", cfg.Fitness)
	return nil
}

// Report loads a persisted cycle report by id.
func (e *Engine) Report(ctx context.Context, reportID string) (*models.EvolutionReport, error) {
	var report models.EvolutionReport
	if err := e.mem.Store().Get(ctx, memory.KeyPrefixEvolutionReport+reportID, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (e *Engine) populationSize() int {
	if e.cfg.PopulationSize > 0 {
		return e.cfg.PopulationSize
	}
	return 10
}

func (e *Engine) generationsPerRun() int {
	if e.cfg.MaxGenerationsPerRun > 0 {
		return e.cfg.MaxGenerationsPerRun
	}
	return 5
}

func (e *Engine) feedbackThreshold() int {
	if e.cfg.FeedbackThreshold > 0 {
		return e.cfg.FeedbackThreshold
	}
	return 50
}

// uniform returns a value in [low, high).
func (e *Engine) uniform(low, high float64) float64 {
	return low + e.rng.Float64()*(high-low)
}

func clampGene(v, low, high float64) float64 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

func sortByFitness(pop []*models.AgentStrategy) {
	// Insertion sort keeps ordering stable for equal fitness.
	for i := 1; i < len(pop); i++ {
		for j := i; j > 0 && pop[j].FitnessScore > pop[j-1].FitnessScore; j-- {
			pop[j], pop[j-1] = pop[j-1], pop[j]
		}
	}
}

func highestGeneration(pop []*models.AgentStrategy) int {
	max := 0
	for _, s := range pop {
		for _, g := range s.Genes {
			if g.Generation > max {
				max = g.Generation
			}
		}
	}
	return max
}
