package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/jackeyunjie/growthd/pkg/config"
	"github.com/jackeyunjie/growthd/pkg/lifecycle"
	"github.com/jackeyunjie/growthd/pkg/models"
	"github.com/jackeyunjie/growthd/pkg/orchestrator"
)

// EvolutionRunner is the slice of the evolution engine the scheduler needs.
type EvolutionRunner interface {
	RunCycle(ctx context.Context, baseSuccessRates map[string]float64) (*models.EvolutionReport, error)
}

// JobDeps are the services the standard jobs execute against.
type JobDeps struct {
	Runner    *orchestrator.SyncRunner
	Source    orchestrator.ContentSource
	Evolution EvolutionRunner
	Lifecycle *lifecycle.Agent
}

// RegisterStandardJobs binds the three built-in jobs to their services.
func RegisterStandardJobs(s *Scheduler, deps JobDeps) error {
	jobs := map[string]JobFunc{
		config.JobP0DailySync:   dailySyncJob(deps),
		config.JobDataLifecycle: lifecycleJob(deps),
		config.JobP3Evolution:   evolutionJob(deps),
	}
	for id, fn := range jobs {
		if err := s.RegisterJob(id, fn); err != nil {
			return err
		}
	}
	return nil
}

// dailySyncJob fetches the last day's content and runs one sync session.
func dailySyncJob(deps JobDeps) JobFunc {
	return func(ctx context.Context) (*Outcome, error) {
		items, err := deps.Source.FetchContent(ctx, time.Now().Add(-24*time.Hour))
		if err != nil {
			return nil, fmt.Errorf("content fetch failed: %w", err)
		}
		session, err := deps.Runner.RunSession(ctx, items)
		if err != nil {
			return nil, err
		}
		if session.Status == models.SessionFailed {
			return nil, fmt.Errorf("sync session %s failed: %s", session.SessionID, session.Error)
		}
		return &Outcome{
			Summary: fmt.Sprintf("session %s: %d cross-quadrant signals", session.SessionID, len(session.SynthesizedSignals)),
			Data: map[string]interface{}{
				"session_id":  session.SessionID,
				"synthesized": len(session.SynthesizedSignals),
				"insights":    len(session.Insights),
			},
		}, nil
	}
}

// evolutionJob runs one full evolution cycle.
func evolutionJob(deps JobDeps) JobFunc {
	return func(ctx context.Context) (*Outcome, error) {
		report, err := deps.Evolution.RunCycle(ctx, nil)
		if err != nil {
			return nil, err
		}
		return &Outcome{
			Summary: fmt.Sprintf("report %s: %d agent types evolved, %d deployed", report.ReportID, len(report.Best), len(report.Deployed)),
			Data: map[string]interface{}{
				"report_id": report.ReportID,
				"deployed":  len(report.Deployed),
			},
		}, nil
	}
}

// lifecycleJob runs one tier-aging pass.
func lifecycleJob(deps JobDeps) JobFunc {
	return func(ctx context.Context) (*Outcome, error) {
		result, err := deps.Lifecycle.RunPass(ctx)
		if err != nil {
			return nil, err
		}
		return &Outcome{
			Summary: fmt.Sprintf("%d demoted, %d purged, %d errors",
				result.Demoted[models.TierWarm]+result.Demoted[models.TierCold]+result.Demoted[models.TierFrozen],
				result.Purged, result.Errors),
			Data: map[string]interface{}{
				"to_warm":   result.Demoted[models.TierWarm],
				"to_cold":   result.Demoted[models.TierCold],
				"to_frozen": result.Demoted[models.TierFrozen],
				"purged":    result.Purged,
				"errors":    result.Errors,
			},
		}, nil
	}
}
