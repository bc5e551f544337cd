// Package agents wires the twelve concrete agents into a frozen registry.
package agents

import (
	"fmt"

	"github.com/jackeyunjie/growthd/pkg/agent"
	"github.com/jackeyunjie/growthd/pkg/agent/judgment"
	"github.com/jackeyunjie/growthd/pkg/agent/perception"
	"github.com/jackeyunjie/growthd/pkg/agent/relation"
)

// BuildRegistry constructs and freezes the full agent set. analyzer may be
// nil; perception agents then rely on their built-in heuristics.
func BuildRegistry(analyzer agent.TextAnalyzer) (*agent.Registry, error) {
	reg := agent.NewRegistry()
	all := []agent.Agent{
		perception.NewPainScanner(analyzer),
		perception.NewEmotionMapper(analyzer),
		perception.NewTrendHunter(analyzer),
		perception.NewSceneFinder(analyzer),
		judgment.NewPainAssessor(),
		judgment.NewEmotionAssessor(),
		judgment.NewTrendAssessor(),
		judgment.NewSceneAssessor(),
		relation.NewPainConnector(),
		relation.NewEmotionConnector(),
		relation.NewTrendConnector(),
		relation.NewSceneConnector(),
	}
	for _, a := range all {
		if err := reg.Register(a); err != nil {
			return nil, fmt.Errorf("failed to build agent registry: %w", err)
		}
	}
	reg.Freeze()
	return reg, nil
}
