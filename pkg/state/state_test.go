package state

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackeyunjie/growthd/ent/agentstate"
	"github.com/jackeyunjie/growthd/ent/cellstate"
	testdb "github.com/jackeyunjie/growthd/test/database"
)

func setupServices(t *testing.T) (*CellStateService, *AgentStateService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	return NewCellStateService(client.Client), NewAgentStateService(client.Client)
}

func TestCellState_RecordResultCountsRuns(t *testing.T) {
	ctx := context.Background()
	cells, _ := setupServices(t)

	require.NoError(t, cells.MarkRunning(ctx, "p0_daily_sync"))
	require.NoError(t, cells.RecordResult(ctx, "p0_daily_sync", 100*time.Millisecond, nil))
	require.NoError(t, cells.RecordResult(ctx, "p0_daily_sync", 300*time.Millisecond, nil))

	row, err := cells.Get(ctx, "p0_daily_sync")
	require.NoError(t, err)
	assert.Equal(t, cellstate.StateIdle, row.State)
	assert.Equal(t, 2, row.RunCount)
	assert.Equal(t, 2, row.SuccessCount)
	assert.Zero(t, row.FailCount)
	assert.Equal(t, int64(200), row.AvgDurationMs)
}

func TestCellState_FailureDegrades(t *testing.T) {
	ctx := context.Background()
	cells, _ := setupServices(t)

	require.NoError(t, cells.RecordResult(ctx, "p3_evolution", 50*time.Millisecond, errors.New("boom")))

	row, err := cells.Get(ctx, "p3_evolution")
	require.NoError(t, err)
	assert.Equal(t, cellstate.StateDegraded, row.State)
	assert.Equal(t, 1, row.FailCount)
	assert.Equal(t, "boom", *row.LastError)

	// A later success returns the cell to idle.
	require.NoError(t, cells.RecordResult(ctx, "p3_evolution", 50*time.Millisecond, nil))
	row, err = cells.Get(ctx, "p3_evolution")
	require.NoError(t, err)
	assert.Equal(t, cellstate.StateIdle, row.State)
}

func TestCellState_SetNextRun(t *testing.T) {
	ctx := context.Background()
	cells, _ := setupServices(t)

	next := time.Now().Add(6 * time.Hour)
	require.NoError(t, cells.SetNextRun(ctx, "data_lifecycle", next))

	row, err := cells.Get(ctx, "data_lifecycle")
	require.NoError(t, err)
	assert.Equal(t, cellstate.StateScheduled, row.State)
	assert.WithinDuration(t, next, *row.NextRun, time.Second)
}

func TestCellState_List(t *testing.T) {
	ctx := context.Background()
	cells, _ := setupServices(t)

	require.NoError(t, cells.MarkRunning(ctx, "b-cell"))
	require.NoError(t, cells.MarkRunning(ctx, "a-cell"))

	rows, err := cells.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "a-cell", rows[0].ID)
	assert.Equal(t, "b-cell", rows[1].ID)
}

func TestAgentState_SuccessRestoresEnergy(t *testing.T) {
	ctx := context.Background()
	_, agents := setupServices(t)

	require.NoError(t, agents.RecordExecution(ctx, "q1_pain_scanner", 80*time.Millisecond, false))

	row, err := agents.Get(ctx, "q1_pain_scanner")
	require.NoError(t, err)
	assert.Equal(t, agentstate.StatusActive, row.Status)
	assert.Equal(t, 1, row.TasksCompleted)
	assert.Zero(t, row.TasksFailed)
	assert.InDelta(t, 1.0, row.EnergyLevel, 1e-9, "energy is capped at 1")
	assert.InDelta(t, 0.0, row.StressLevel, 1e-9)
	assert.Equal(t, int64(80), row.AvgResponseTimeMs)
}

func TestAgentState_RepeatedFailureDegrades(t *testing.T) {
	ctx := context.Background()
	_, agents := setupServices(t)

	// 0.25 drain per failure: 3 failures take energy from 1.0 to 0.25,
	// which is below the 0.3 degraded floor.
	for i := 0; i < 3; i++ {
		require.NoError(t, agents.RecordExecution(ctx, "q2_emotion_mapper", 50*time.Millisecond, true))
	}

	row, err := agents.Get(ctx, "q2_emotion_mapper")
	require.NoError(t, err)
	assert.Equal(t, agentstate.StatusDegraded, row.Status)
	assert.Equal(t, 3, row.TasksFailed)
	assert.InDelta(t, 0.25, row.EnergyLevel, 1e-9)
	assert.InDelta(t, 0.3, row.StressLevel, 1e-6)

	// Recovery: successes climb back above the floor.
	require.NoError(t, agents.RecordExecution(ctx, "q2_emotion_mapper", 50*time.Millisecond, false))
	row, err = agents.Get(ctx, "q2_emotion_mapper")
	require.NoError(t, err)
	assert.Equal(t, agentstate.StatusActive, row.Status)
	assert.InDelta(t, 0.35, row.EnergyLevel, 1e-6)
}

func TestAgentState_SetDisabled(t *testing.T) {
	ctx := context.Background()
	_, agents := setupServices(t)

	require.NoError(t, agents.SetDisabled(ctx, "q3_trend_hunter", true))
	row, err := agents.Get(ctx, "q3_trend_hunter")
	require.NoError(t, err)
	assert.Equal(t, agentstate.StatusDisabled, row.Status)

	require.NoError(t, agents.SetDisabled(ctx, "q3_trend_hunter", false))
	row, err = agents.Get(ctx, "q3_trend_hunter")
	require.NoError(t, err)
	assert.Equal(t, agentstate.StatusIdle, row.Status)
}
