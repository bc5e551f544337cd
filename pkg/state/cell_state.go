// Package state persists execution health: cell states track scheduler jobs
// and pipeline skills, agent states track the individual agents. Both are
// upsert-style services over the relational store.
package state

import (
	"context"
	"fmt"
	"time"

	"github.com/jackeyunjie/growthd/ent"
	"github.com/jackeyunjie/growthd/ent/cellstate"
)

// CellStateService maintains per-cell execution counters.
type CellStateService struct {
	client *ent.Client
}

// NewCellStateService creates the service.
func NewCellStateService(client *ent.Client) *CellStateService {
	return &CellStateService{client: client}
}

// ensure creates the row if absent.
func (s *CellStateService) ensure(ctx context.Context, cellID string) (*ent.CellState, error) {
	row, err := s.client.CellState.Get(ctx, cellID)
	if err == nil {
		return row, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load cell state %s: %w", cellID, err)
	}
	row, err = s.client.CellState.Create().
		SetID(cellID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return s.client.CellState.Get(ctx, cellID)
		}
		return nil, fmt.Errorf("failed to create cell state %s: %w", cellID, err)
	}
	return row, nil
}

// MarkRunning transitions the cell to running.
func (s *CellStateService) MarkRunning(ctx context.Context, cellID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := s.ensure(writeCtx, cellID); err != nil {
		return err
	}
	err := s.client.CellState.UpdateOneID(cellID).
		SetState(cellstate.StateRunning).
		SetLastRun(time.Now()).
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to mark cell %s running: %w", cellID, err)
	}
	return nil
}

// RecordResult folds one execution into the cell's counters. A failure run
// moves the cell to degraded; success returns it to idle.
func (s *CellStateService) RecordResult(ctx context.Context, cellID string, duration time.Duration, runErr error) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	row, err := s.ensure(writeCtx, cellID)
	if err != nil {
		return err
	}

	runs := row.RunCount + 1
	avg := (row.AvgDurationMs*int64(row.RunCount) + duration.Milliseconds()) / int64(runs)
	update := s.client.CellState.UpdateOneID(cellID).
		SetRunCount(runs).
		SetAvgDurationMs(avg).
		SetLastRun(time.Now())
	if runErr != nil {
		update = update.
			SetState(cellstate.StateDegraded).
			SetFailCount(row.FailCount + 1).
			SetLastError(runErr.Error()).
			SetLastErrorAt(time.Now())
	} else {
		update = update.
			SetState(cellstate.StateIdle).
			SetSuccessCount(row.SuccessCount + 1)
	}
	if err := update.Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to record result for cell %s: %w", cellID, err)
	}
	return nil
}

// SetNextRun records the cell's next scheduled fire.
func (s *CellStateService) SetNextRun(ctx context.Context, cellID string, next time.Time) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := s.ensure(writeCtx, cellID); err != nil {
		return err
	}
	err := s.client.CellState.UpdateOneID(cellID).
		SetState(cellstate.StateScheduled).
		SetNextRun(next).
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to set next run for cell %s: %w", cellID, err)
	}
	return nil
}

// Get returns one cell's state.
func (s *CellStateService) Get(ctx context.Context, cellID string) (*ent.CellState, error) {
	row, err := s.client.CellState.Get(ctx, cellID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cell state %s: %w", cellID, err)
	}
	return row, nil
}

// List returns all cell states.
func (s *CellStateService) List(ctx context.Context) ([]*ent.CellState, error) {
	rows, err := s.client.CellState.Query().
		Order(ent.Asc(cellstate.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cell states: %w", err)
	}
	return rows, nil
}
