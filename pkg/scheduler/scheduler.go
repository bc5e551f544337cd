// Package scheduler runs the recurring jobs (daily sync, weekly evolution,
// nightly lifecycle pass) on strict 5-field cron schedules. Every execution
// is persisted as a trigger record; failed runs retry with a fixed delay; a
// fire missed while the process was down is coalesced into one catch-up run
// at startup.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/jackeyunjie/growthd/ent"
	"github.com/jackeyunjie/growthd/ent/triggerrecord"
	"github.com/jackeyunjie/growthd/pkg/config"
)

// Sentinel errors for scheduler operations.
var (
	// ErrJobRunning indicates the job already has an instance in flight.
	ErrJobRunning = errors.New("job instance already running")

	// ErrUnknownJob indicates no handler is registered for the job id.
	ErrUnknownJob = errors.New("unknown job")
)

// HealthStatus grades a job's recent behavior.
type HealthStatus string

// HealthStatus values.
const (
	HealthHealthy  HealthStatus = "healthy"
	HealthWarning  HealthStatus = "warning"
	HealthCritical HealthStatus = "critical"
	HealthStopped  HealthStatus = "stopped"
	HealthUnknown  HealthStatus = "unknown"
)

// Outcome is what a job handler returns on success.
type Outcome struct {
	Summary string
	Data    map[string]interface{}
}

// JobFunc executes one job run within the given deadline.
type JobFunc func(ctx context.Context) (*Outcome, error)

// CellRecorder persists per-job execution state alongside the trigger
// records. The cell state service implements it; a nil recorder is valid.
type CellRecorder interface {
	MarkRunning(ctx context.Context, cellID string) error
	RecordResult(ctx context.Context, cellID string, duration time.Duration, runErr error) error
	SetNextRun(ctx context.Context, cellID string, next time.Time) error
}

// JobStatus is the externally visible state of one job.
type JobStatus struct {
	JobID     string       `json:"job_id"`
	Enabled   bool         `json:"enabled"`
	Running   bool         `json:"running"`
	Health    HealthStatus `json:"health"`
	NextRun   *time.Time   `json:"next_run,omitempty"`
	LastRun   *RunSummary  `json:"last_run,omitempty"`
	CronExpr  string       `json:"cron_expression"`
	CheckedAt time.Time    `json:"checked_at"`
}

// RunSummary is the condensed view of one trigger record.
type RunSummary struct {
	ExecutionID   string     `json:"execution_id"`
	ScheduledTime time.Time  `json:"scheduled_time"`
	StartedAt     *time.Time `json:"started_at,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	Status        string     `json:"status"`
	RetryCount    int        `json:"retry_count"`
	Error         string     `json:"error,omitempty"`
	Summary       string     `json:"outcome_summary,omitempty"`
}

type jobState struct {
	cfg     *config.JobConfig
	fn      JobFunc
	entryID cron.EntryID
	running bool
}

// Scheduler owns the cron runner and the per-job execution pipeline.
type Scheduler struct {
	cfg    config.SchedulerConfig
	client *ent.Client
	cells  CellRecorder
	logger *slog.Logger

	mu      sync.Mutex
	jobs    map[string]*jobState
	cron    *cron.Cron
	started bool

	runWG sync.WaitGroup
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// New builds a scheduler over the configured job table. cells may be nil.
func New(cfg config.SchedulerConfig, client *ent.Client, cells CellRecorder, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		cfg:    cfg,
		client: client,
		cells:  cells,
		logger: logger.With("component", "scheduler"),
		jobs:   make(map[string]*jobState),
		now:    time.Now,
		sleep:  sleepCtx,
	}
}

// RegisterJob binds a handler to a configured job id. Must be called before
// Start.
func (s *Scheduler) RegisterJob(jobID string, fn JobFunc) error {
	jobCfg, ok := s.cfg.Jobs[jobID]
	if !ok {
		return fmt.Errorf("%w: %s has no configuration", ErrUnknownJob, jobID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[jobID] = &jobState{cfg: jobCfg, fn: fn}
	return nil
}

// Start schedules every enabled job and runs one coalesced catch-up for any
// fire missed while the scheduler was down.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil
	}
	s.cron = cron.New(cron.WithParser(config.CronParser))

	type catchUp struct {
		jobID string
		at    time.Time
	}
	var missed []catchUp

	for jobID, state := range s.jobs {
		if !state.cfg.Enabled {
			continue
		}
		sched, err := s.schedule(state.cfg)
		if err != nil {
			s.mu.Unlock()
			return err
		}

		if at, ok := s.missedFire(ctx, jobID, sched); ok {
			missed = append(missed, catchUp{jobID: jobID, at: at})
		}

		id := jobID
		state.entryID = s.cron.Schedule(sched, cron.FuncJob(func() {
			if _, err := s.Execute(ctx, id, s.now()); err != nil && !errors.Is(err, ErrJobRunning) {
				s.logger.Error("Scheduled job failed", "job_id", id, "error", err)
			}
		}))
	}
	s.started = true
	s.mu.Unlock()

	s.cron.Start()
	s.logger.Info("Scheduler started", "jobs", len(s.jobs))

	if s.cells != nil {
		s.mu.Lock()
		for jobID, state := range s.jobs {
			if !state.cfg.Enabled {
				continue
			}
			next := s.cron.Entry(state.entryID).Next
			if next.IsZero() {
				continue
			}
			if err := s.cells.SetNextRun(ctx, jobID, next); err != nil {
				s.logger.Warn("Failed to record next run", "job_id", jobID, "error", err)
			}
		}
		s.mu.Unlock()
	}

	// Catch-up runs happen after the cron is live, one per job regardless of
	// how many fires were missed.
	for _, m := range missed {
		s.logger.Info("Running catch-up for missed fire", "job_id", m.jobID, "missed_at", m.at)
		if _, err := s.Execute(ctx, m.jobID, m.at); err != nil && !errors.Is(err, ErrJobRunning) {
			s.logger.Error("Catch-up run failed", "job_id", m.jobID, "error", err)
		}
	}
	return nil
}

// Stop halts scheduling and waits for in-flight runs to complete.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	s.started = false
	c := s.cron
	s.mu.Unlock()

	<-c.Stop().Done()
	s.runWG.Wait()
	s.logger.Info("Scheduler stopped")
}

// missedFire returns the latest fire time between the last recorded run and
// now, when at least one fire was missed. Multiple missed fires coalesce
// into the most recent one.
func (s *Scheduler) missedFire(ctx context.Context, jobID string, sched cron.Schedule) (time.Time, bool) {
	last, err := s.lastRecord(ctx, jobID)
	if err != nil || last == nil {
		return time.Time{}, false
	}
	now := s.now()
	var latest time.Time
	next := sched.Next(last.ScheduledTime)
	for !next.After(now) {
		latest = next
		next = sched.Next(next)
	}
	return latest, !latest.IsZero()
}

// TriggerNow runs the job immediately, outside its schedule.
func (s *Scheduler) TriggerNow(ctx context.Context, jobID string) (*RunSummary, error) {
	return s.Execute(ctx, jobID, s.now())
}

// Execute runs one job instance end to end: persist the trigger record, run
// with the job timeout, retry failed runs with the fixed delay, and prune
// old history. At most one instance per job runs at a time.
func (s *Scheduler) Execute(ctx context.Context, jobID string, scheduledTime time.Time) (*RunSummary, error) {
	s.mu.Lock()
	state, ok := s.jobs[jobID]
	if !ok {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrUnknownJob, jobID)
	}
	if state.running {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrJobRunning, jobID)
	}
	state.running = true
	s.runWG.Add(1)
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		state.running = false
		s.mu.Unlock()
		s.runWG.Done()
	}()

	executionID := uuid.NewString()
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	rec, err := s.client.TriggerRecord.Create().
		SetID(executionID).
		SetTriggerID(jobID).
		SetScheduledTime(scheduledTime).
		SetStatus(triggerrecord.StatusPending).
		Save(writeCtx)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("failed to create trigger record for %s: %w", jobID, err)
	}

	if s.cells != nil {
		if err := s.cells.MarkRunning(ctx, jobID); err != nil {
			s.logger.Warn("Failed to mark cell running", "job_id", jobID, "error", err)
		}
	}
	started := s.now()
	summary := s.runWithRetries(ctx, jobID, state, rec)
	if s.cells != nil {
		var runErr error
		if summary.Status == string(triggerrecord.StatusFailed) {
			runErr = errors.New(summary.Error)
		}
		if err := s.cells.RecordResult(ctx, jobID, s.now().Sub(started), runErr); err != nil {
			s.logger.Warn("Failed to record cell result", "job_id", jobID, "error", err)
		}
	}
	s.pruneHistory(ctx, jobID)
	return summary, nil
}

// runWithRetries drives the attempt loop. The record moves pending →
// running → success, or through retrying back to running until the retry
// budget is spent, then failed.
func (s *Scheduler) runWithRetries(ctx context.Context, jobID string, state *jobState, rec *ent.TriggerRecord) *RunSummary {
	started := s.now()
	s.writeRecord(func(ctx context.Context) error {
		return s.client.TriggerRecord.UpdateOneID(rec.ID).
			SetStatus(triggerrecord.StatusRunning).
			SetStartedAt(started).
			Exec(ctx)
	})

	var lastErr error
	for attempt := 0; ; attempt++ {
		outcome, err := s.runOnce(ctx, state)
		if err == nil {
			completed := s.now()
			s.writeRecord(func(ctx context.Context) error {
				update := s.client.TriggerRecord.UpdateOneID(rec.ID).
					SetStatus(triggerrecord.StatusSuccess).
					SetCompletedAt(completed).
					SetRetryCount(attempt).
					SetProcessingTimeMs(completed.Sub(started).Milliseconds())
				if outcome != nil {
					update = update.SetOutcomeSummary(outcome.Summary)
					if outcome.Data != nil {
						update = update.SetData(outcome.Data)
					}
				}
				return update.Exec(ctx)
			})
			s.logger.Info("Job run succeeded", "job_id", jobID, "execution_id", rec.ID, "attempts", attempt+1)
			return s.summarize(ctx, rec.ID)
		}

		lastErr = err
		if attempt >= state.cfg.MaxRetries {
			break
		}
		s.writeRecord(func(ctx context.Context) error {
			return s.client.TriggerRecord.UpdateOneID(rec.ID).
				SetStatus(triggerrecord.StatusRetrying).
				SetRetryCount(attempt + 1).
				SetError(err.Error()).
				Exec(ctx)
		})
		s.logger.Warn("Job run failed, retrying",
			"job_id", jobID, "execution_id", rec.ID,
			"attempt", attempt+1, "retry_delay", state.cfg.RetryDelay, "error", err)
		if err := s.sleep(ctx, state.cfg.RetryDelay); err != nil {
			lastErr = fmt.Errorf("retry aborted: %w", err)
			break
		}
		s.writeRecord(func(ctx context.Context) error {
			return s.client.TriggerRecord.UpdateOneID(rec.ID).
				SetStatus(triggerrecord.StatusRunning).
				Exec(ctx)
		})
	}

	completed := s.now()
	s.writeRecord(func(ctx context.Context) error {
		return s.client.TriggerRecord.UpdateOneID(rec.ID).
			SetStatus(triggerrecord.StatusFailed).
			SetCompletedAt(completed).
			SetError(lastErr.Error()).
			SetProcessingTimeMs(completed.Sub(started).Milliseconds()).
			Exec(ctx)
	})
	s.logger.Error("Job run exhausted retries", "job_id", jobID, "execution_id", rec.ID, "error", lastErr)
	return s.summarize(ctx, rec.ID)
}

func (s *Scheduler) runOnce(ctx context.Context, state *jobState) (*Outcome, error) {
	runCtx, cancel := context.WithTimeout(ctx, state.cfg.Timeout)
	defer cancel()
	return state.fn(runCtx)
}

// UpdateSchedule replaces a job's cron expression at runtime. The new
// expression is validated with the strict 5-field parser before the old
// entry is removed.
func (s *Scheduler) UpdateSchedule(jobID, cronExpr string) error {
	if err := config.ValidateCron(cronExpr); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.jobs[jobID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownJob, jobID)
	}
	state.cfg.CronExpression = cronExpr

	if s.started && state.cfg.Enabled {
		sched, err := s.schedule(state.cfg)
		if err != nil {
			return err
		}
		s.cron.Remove(state.entryID)
		id := jobID
		ctx := context.Background()
		state.entryID = s.cron.Schedule(sched, cron.FuncJob(func() {
			if _, err := s.Execute(ctx, id, s.now()); err != nil && !errors.Is(err, ErrJobRunning) {
				s.logger.Error("Scheduled job failed", "job_id", id, "error", err)
			}
		}))
	}
	s.logger.Info("Job schedule updated", "job_id", jobID, "cron", cronExpr)
	return nil
}

// Status reports the job's current state and health grade.
func (s *Scheduler) Status(ctx context.Context, jobID string) (*JobStatus, error) {
	s.mu.Lock()
	state, ok := s.jobs[jobID]
	if !ok {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrUnknownJob, jobID)
	}
	running := state.running
	enabled := state.cfg.Enabled
	cronExpr := state.cfg.CronExpression
	started := s.started
	var next *time.Time
	if started && enabled {
		entry := s.cron.Entry(state.entryID)
		if !entry.Next.IsZero() {
			n := entry.Next
			next = &n
		}
	}
	s.mu.Unlock()

	last, err := s.lastRecord(ctx, jobID)
	if err != nil {
		return nil, err
	}

	status := &JobStatus{
		JobID:     jobID,
		Enabled:   enabled,
		Running:   running,
		NextRun:   next,
		LastRun:   last,
		CronExpr:  cronExpr,
		CheckedAt: s.now().UTC(),
	}
	status.Health = s.health(started, enabled, state.cfg, last)
	return status, nil
}

// health grades the job: stopped when disabled or the scheduler is down,
// unknown with no history, critical on a failed last run or a badly overdue
// schedule, warning on retries or mild overdue, healthy otherwise.
func (s *Scheduler) health(started, enabled bool, jobCfg *config.JobConfig, last *RunSummary) HealthStatus {
	if !started || !enabled {
		return HealthStopped
	}
	if last == nil {
		return HealthUnknown
	}
	if last.Status == string(triggerrecord.StatusFailed) {
		return HealthCritical
	}

	sched, err := config.CronParser.Parse(jobCfg.CronExpression)
	if err == nil {
		// Interval between the last scheduled fire and the one after it.
		interval := sched.Next(last.ScheduledTime).Sub(last.ScheduledTime)
		overdue := s.now().Sub(last.ScheduledTime) - interval
		if overdue > interval+s.cfg.HealthBuffer {
			return HealthCritical
		}
		if overdue > s.cfg.HealthBuffer {
			return HealthWarning
		}
	}
	if last.Status == string(triggerrecord.StatusRetrying) || last.RetryCount > 0 {
		return HealthWarning
	}
	return HealthHealthy
}

// History returns the job's retained run summaries, newest first.
func (s *Scheduler) History(ctx context.Context, jobID string, limit int) ([]*RunSummary, error) {
	if limit <= 0 || limit > s.cfg.HistoryLimit {
		limit = s.cfg.HistoryLimit
	}
	rows, err := s.client.TriggerRecord.Query().
		Where(triggerrecord.TriggerIDEQ(jobID)).
		Order(ent.Desc(triggerrecord.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load history for %s: %w", jobID, err)
	}
	out := make([]*RunSummary, len(rows))
	for i, row := range rows {
		out[i] = fromRecord(row)
	}
	return out, nil
}

// pruneHistory deletes records beyond the per-job history limit.
func (s *Scheduler) pruneHistory(ctx context.Context, jobID string) {
	ids, err := s.client.TriggerRecord.Query().
		Where(triggerrecord.TriggerIDEQ(jobID)).
		Order(ent.Desc(triggerrecord.FieldCreatedAt)).
		Offset(s.cfg.HistoryLimit).
		IDs(ctx)
	if err != nil || len(ids) == 0 {
		return
	}
	s.writeRecord(func(ctx context.Context) error {
		_, err := s.client.TriggerRecord.Delete().
			Where(triggerrecord.IDIn(ids...)).
			Exec(ctx)
		return err
	})
}

func (s *Scheduler) lastRecord(ctx context.Context, jobID string) (*RunSummary, error) {
	row, err := s.client.TriggerRecord.Query().
		Where(triggerrecord.TriggerIDEQ(jobID)).
		Order(ent.Desc(triggerrecord.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load last record for %s: %w", jobID, err)
	}
	return fromRecord(row), nil
}

func (s *Scheduler) summarize(ctx context.Context, executionID string) *RunSummary {
	row, err := s.client.TriggerRecord.Get(ctx, executionID)
	if err != nil {
		return &RunSummary{ExecutionID: executionID}
	}
	return fromRecord(row)
}

func (s *Scheduler) schedule(jobCfg *config.JobConfig) (cron.Schedule, error) {
	sched, err := config.CronParser.Parse(jobCfg.CronExpression)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", config.ErrInvalidCron, jobCfg.CronExpression, err)
	}
	if jobCfg.Timezone != "" {
		loc, err := time.LoadLocation(jobCfg.Timezone)
		if err != nil {
			return nil, fmt.Errorf("unknown timezone %q: %w", jobCfg.Timezone, err)
		}
		if spec, ok := sched.(*cron.SpecSchedule); ok {
			spec.Location = loc
		}
	}
	return sched, nil
}

// writeRecord applies a record mutation with a bounded write context that
// survives caller cancellation, so terminal statuses are always persisted.
func (s *Scheduler) writeRecord(exec func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := exec(ctx); err != nil {
		s.logger.Warn("Trigger record write failed", "error", err)
	}
}

func fromRecord(row *ent.TriggerRecord) *RunSummary {
	sum := &RunSummary{
		ExecutionID:   row.ID,
		ScheduledTime: row.ScheduledTime,
		StartedAt:     row.StartedAt,
		CompletedAt:   row.CompletedAt,
		Status:        string(row.Status),
		RetryCount:    row.RetryCount,
	}
	if row.Error != nil {
		sum.Error = *row.Error
	}
	if row.OutcomeSummary != nil {
		sum.Summary = *row.OutcomeSummary
	}
	return sum
}

// sleepCtx sleeps for d or until the context is cancelled.
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
