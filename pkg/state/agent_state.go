package state

import (
	"context"
	"fmt"
	"time"

	"github.com/jackeyunjie/growthd/ent"
	"github.com/jackeyunjie/growthd/ent/agentstate"
)

// Energy dynamics: success restores, failure drains. An exhausted agent is
// marked degraded until successes recover it.
const (
	energyRecovery = 0.1
	energyDrain    = 0.25
	degradedEnergy = 0.3
	stressPerRetry = 0.1
	stressRelief   = 0.05
)

// AgentStateService maintains per-agent execution health.
type AgentStateService struct {
	client *ent.Client
}

// NewAgentStateService creates the service.
func NewAgentStateService(client *ent.Client) *AgentStateService {
	return &AgentStateService{client: client}
}

func (s *AgentStateService) ensure(ctx context.Context, agentID string) (*ent.AgentState, error) {
	row, err := s.client.AgentState.Get(ctx, agentID)
	if err == nil {
		return row, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load agent state %s: %w", agentID, err)
	}
	row, err = s.client.AgentState.Create().
		SetID(agentID).
		SetName(agentID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return s.client.AgentState.Get(ctx, agentID)
		}
		return nil, fmt.Errorf("failed to create agent state %s: %w", agentID, err)
	}
	return row, nil
}

// RecordExecution folds one agent invocation into its health counters.
func (s *AgentStateService) RecordExecution(ctx context.Context, agentID string, duration time.Duration, failed bool) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	row, err := s.ensure(writeCtx, agentID)
	if err != nil {
		return err
	}

	completed, failedCount := row.TasksCompleted, row.TasksFailed
	energy, stress := row.EnergyLevel, row.StressLevel
	if failed {
		failedCount++
		energy = clamp01(energy - energyDrain)
		stress = clamp01(stress + stressPerRetry)
	} else {
		completed++
		energy = clamp01(energy + energyRecovery)
		stress = clamp01(stress - stressRelief)
	}

	total := completed + failedCount
	avg := row.AvgResponseTimeMs
	if total > 0 {
		avg = (row.AvgResponseTimeMs*int64(total-1) + duration.Milliseconds()) / int64(total)
	}

	status := agentstate.StatusActive
	if energy < degradedEnergy {
		status = agentstate.StatusDegraded
	}

	err = s.client.AgentState.UpdateOneID(agentID).
		SetStatus(status).
		SetEnergyLevel(energy).
		SetStressLevel(stress).
		SetTasksCompleted(completed).
		SetTasksFailed(failedCount).
		SetAvgResponseTimeMs(avg).
		SetLastExecuted(time.Now()).
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to record execution for agent %s: %w", agentID, err)
	}
	return nil
}

// SetDisabled marks an agent administratively disabled or re-enabled.
func (s *AgentStateService) SetDisabled(ctx context.Context, agentID string, disabled bool) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := s.ensure(writeCtx, agentID); err != nil {
		return err
	}
	status := agentstate.StatusIdle
	if disabled {
		status = agentstate.StatusDisabled
	}
	if err := s.client.AgentState.UpdateOneID(agentID).SetStatus(status).Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to set disabled=%v for agent %s: %w", disabled, agentID, err)
	}
	return nil
}

// Get returns one agent's state.
func (s *AgentStateService) Get(ctx context.Context, agentID string) (*ent.AgentState, error) {
	row, err := s.client.AgentState.Get(ctx, agentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get agent state %s: %w", agentID, err)
	}
	return row, nil
}

// List returns all agent states.
func (s *AgentStateService) List(ctx context.Context) ([]*ent.AgentState, error) {
	rows, err := s.client.AgentState.Query().
		Order(ent.Asc(agentstate.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agent states: %w", err)
	}
	return rows, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
