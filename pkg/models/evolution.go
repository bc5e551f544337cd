package models

import "time"

// MutationRange bounds the random delta applied to a gene value.
type MutationRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// StrategyGene is one evolvable numeric parameter.
type StrategyGene struct {
	ParameterName string        `json:"parameter_name"`
	Value         float64       `json:"value"`
	MutationRange MutationRange `json:"mutation_range"`
	FitnessScore  float64       `json:"fitness_score"`
	Generation    int           `json:"generation"`
}

// AgentStrategy is one candidate parameter set for an evolvable agent type.
type AgentStrategy struct {
	StrategyID       string         `json:"strategy_id"`
	AgentType        string         `json:"agent_type"`
	Quadrant         Quadrant       `json:"quadrant"`
	Genes            []StrategyGene `json:"genes"`
	FitnessScore     float64        `json:"fitness_score"`
	SuccessCount     int            `json:"success_count"`
	FailureCount     int            `json:"failure_count"`
	ParentStrategyID string         `json:"parent_strategy_id,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
}

// Clone returns a deep copy of the strategy (genes included).
func (s *AgentStrategy) Clone() *AgentStrategy {
	cp := *s
	cp.Genes = make([]StrategyGene, len(s.Genes))
	copy(cp.Genes, s.Genes)
	return &cp
}

// GeneValues flattens the genes into a parameter→value map, the shape
// deployed under p3:deployed_config:{agent}.
func (s *AgentStrategy) GeneValues() map[string]float64 {
	out := make(map[string]float64, len(s.Genes))
	for _, g := range s.Genes {
		out[g.ParameterName] = g.Value
	}
	return out
}

// DeployedConfig is the snapshot written for agents to read before their
// next invocation.
type DeployedConfig struct {
	AgentType  string             `json:"agent_type"`
	StrategyID string             `json:"strategy_id"`
	Fitness    float64            `json:"fitness"`
	Generation int                `json:"generation"`
	Parameters map[string]float64 `json:"parameters"`
	DeployedAt time.Time          `json:"deployed_at"`
}

// MetaLearningRecord captures the best strategy of one generation.
type MetaLearningRecord struct {
	AgentType      string    `json:"agent_type"`
	Generation     int       `json:"generation"`
	BestStrategyID string    `json:"best_strategy_id"`
	BestFitness    float64   `json:"best_fitness"`
	RecordedAt     time.Time `json:"recorded_at"`
}

// EvolutionReport summarizes one evolution cycle across agent types.
type EvolutionReport struct {
	ReportID    string               `json:"report_id"`
	StartedAt   time.Time            `json:"started_at"`
	CompletedAt time.Time            `json:"completed_at"`
	Generations int                  `json:"generations"`
	Best        []MetaLearningRecord `json:"best"`
	Deployed    []DeployedConfig     `json:"deployed"`
}
