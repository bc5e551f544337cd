package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackeyunjie/growthd/ent/cellstate"
	"github.com/jackeyunjie/growthd/ent/triggerrecord"
	"github.com/jackeyunjie/growthd/pkg/config"
	"github.com/jackeyunjie/growthd/pkg/state"
	testdb "github.com/jackeyunjie/growthd/test/database"
)

func testSchedulerConfig() config.SchedulerConfig {
	return config.SchedulerConfig{
		Jobs: map[string]*config.JobConfig{
			config.JobP0DailySync: {
				CronExpression: "0 6 * * *",
				MaxRetries:     3,
				RetryDelay:     time.Minute,
				Timeout:        time.Minute,
				Enabled:        true,
			},
		},
		HistoryLimit: 100,
		HealthBuffer: 2 * time.Hour,
	}
}

func setupScheduler(t *testing.T, cfg config.SchedulerConfig) *Scheduler {
	t.Helper()
	client := testdb.NewTestClient(t)
	s := New(cfg, client.Client, nil, nil)
	// Retries must not actually wait in tests.
	s.sleep = func(ctx context.Context, d time.Duration) error { return nil }
	return s
}

type countingJob struct {
	mu    sync.Mutex
	runs  int
	times []time.Time
}

func (j *countingJob) fn(ctx context.Context) (*Outcome, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.runs++
	j.times = append(j.times, time.Now())
	return &Outcome{Summary: "ok", Data: map[string]interface{}{"run": j.runs}}, nil
}

func (j *countingJob) count() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.runs
}

func TestTriggerNow_RecordsSuccess(t *testing.T) {
	ctx := context.Background()
	s := setupScheduler(t, testSchedulerConfig())
	job := &countingJob{}
	require.NoError(t, s.RegisterJob(config.JobP0DailySync, job.fn))

	summary, err := s.TriggerNow(ctx, config.JobP0DailySync)
	require.NoError(t, err)
	assert.Equal(t, 1, job.count())
	assert.Equal(t, string(triggerrecord.StatusSuccess), summary.Status)
	assert.Equal(t, "ok", summary.Summary)
	assert.Zero(t, summary.RetryCount)
	require.NotNil(t, summary.CompletedAt)

	history, err := s.History(ctx, config.JobP0DailySync, 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, summary.ExecutionID, history[0].ExecutionID)
}

func TestTriggerNow_UnknownJob(t *testing.T) {
	s := setupScheduler(t, testSchedulerConfig())
	_, err := s.TriggerNow(context.Background(), "no_such_job")
	assert.True(t, errors.Is(err, ErrUnknownJob))
}

func TestExecute_RetriesThenSucceeds(t *testing.T) {
	ctx := context.Background()
	s := setupScheduler(t, testSchedulerConfig())

	attempts := 0
	require.NoError(t, s.RegisterJob(config.JobP0DailySync, func(ctx context.Context) (*Outcome, error) {
		attempts++
		if attempts < 3 {
			return nil, errors.New("transient failure")
		}
		return &Outcome{Summary: "recovered"}, nil
	}))

	summary, err := s.TriggerNow(ctx, config.JobP0DailySync)
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, string(triggerrecord.StatusSuccess), summary.Status)
	assert.Equal(t, 2, summary.RetryCount)
	assert.Equal(t, "recovered", summary.Summary)
}

func TestExecute_ExhaustsRetries(t *testing.T) {
	ctx := context.Background()
	cfg := testSchedulerConfig()
	cfg.Jobs[config.JobP0DailySync].MaxRetries = 1
	s := setupScheduler(t, cfg)

	attempts := 0
	require.NoError(t, s.RegisterJob(config.JobP0DailySync, func(ctx context.Context) (*Outcome, error) {
		attempts++
		return nil, errors.New("persistent failure")
	}))

	summary, err := s.TriggerNow(ctx, config.JobP0DailySync)
	require.NoError(t, err, "a failed run is recorded, not returned as an error")
	assert.Equal(t, 2, attempts, "one run plus one retry")
	assert.Equal(t, string(triggerrecord.StatusFailed), summary.Status)
	assert.Contains(t, summary.Error, "persistent failure")
}

func TestExecute_TimeoutFailsTheRun(t *testing.T) {
	ctx := context.Background()
	cfg := testSchedulerConfig()
	cfg.Jobs[config.JobP0DailySync].Timeout = 20 * time.Millisecond
	cfg.Jobs[config.JobP0DailySync].MaxRetries = 0
	s := setupScheduler(t, cfg)

	require.NoError(t, s.RegisterJob(config.JobP0DailySync, func(ctx context.Context) (*Outcome, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}))

	summary, err := s.TriggerNow(ctx, config.JobP0DailySync)
	require.NoError(t, err)
	assert.Equal(t, string(triggerrecord.StatusFailed), summary.Status)
	assert.Contains(t, summary.Error, context.DeadlineExceeded.Error())
}

func TestExecute_SingleInstancePerJob(t *testing.T) {
	ctx := context.Background()
	s := setupScheduler(t, testSchedulerConfig())

	started := make(chan struct{})
	release := make(chan struct{})
	var startedOnce sync.Once
	require.NoError(t, s.RegisterJob(config.JobP0DailySync, func(ctx context.Context) (*Outcome, error) {
		startedOnce.Do(func() { close(started) })
		<-release
		return &Outcome{Summary: "done"}, nil
	}))

	errCh := make(chan error, 1)
	go func() {
		_, err := s.TriggerNow(ctx, config.JobP0DailySync)
		errCh <- err
	}()
	<-started

	_, err := s.TriggerNow(ctx, config.JobP0DailySync)
	assert.True(t, errors.Is(err, ErrJobRunning))

	close(release)
	require.NoError(t, <-errCh)

	// The slot is free again once the first run completes.
	_, err = s.TriggerNow(ctx, config.JobP0DailySync)
	require.NoError(t, err)
}

func TestStart_CatchUpRunsMissedFireOnce(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)
	s := New(testSchedulerConfig(), client.Client, nil, nil)
	s.sleep = func(ctx context.Context, d time.Duration) error { return nil }

	job := &countingJob{}
	require.NoError(t, s.RegisterJob(config.JobP0DailySync, job.fn))

	// Seed a run whose schedule has since fired multiple times.
	lastScheduled := time.Now().Add(-72 * time.Hour)
	_, err := client.TriggerRecord.Create().
		SetID(uuid.NewString()).
		SetTriggerID(config.JobP0DailySync).
		SetScheduledTime(lastScheduled).
		SetStatus(triggerrecord.StatusSuccess).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, s.Start(ctx))
	defer s.Stop()

	assert.Equal(t, 1, job.count(), "multiple missed fires coalesce into one catch-up run")

	history, err := s.History(ctx, config.JobP0DailySync, 0)
	require.NoError(t, err)
	require.Len(t, history, 2, "the seeded record plus exactly one catch-up")

	// The catch-up carries the latest missed fire time, not the first.
	catchUp := history[0]
	assert.True(t, catchUp.ScheduledTime.After(lastScheduled))
	assert.True(t, catchUp.ScheduledTime.Before(time.Now()))
	sched, err := config.CronParser.Parse("0 6 * * *")
	require.NoError(t, err)
	assert.True(t, sched.Next(catchUp.ScheduledTime).After(time.Now()),
		"no further fire lies between the catch-up and now")
}

func TestStart_NoHistoryMeansNoCatchUp(t *testing.T) {
	ctx := context.Background()
	s := setupScheduler(t, testSchedulerConfig())
	job := &countingJob{}
	require.NoError(t, s.RegisterJob(config.JobP0DailySync, job.fn))

	require.NoError(t, s.Start(ctx))
	defer s.Stop()
	assert.Zero(t, job.count(), "a job with no history has nothing to catch up")
}

func TestUpdateSchedule_RejectsInvalidCron(t *testing.T) {
	s := setupScheduler(t, testSchedulerConfig())
	job := &countingJob{}
	require.NoError(t, s.RegisterJob(config.JobP0DailySync, job.fn))

	err := s.UpdateSchedule(config.JobP0DailySync, "*/5 * * * * *")
	assert.True(t, errors.Is(err, config.ErrInvalidCron), "6-field expressions are rejected")

	err = s.UpdateSchedule(config.JobP0DailySync, "not a cron")
	assert.True(t, errors.Is(err, config.ErrInvalidCron))

	err = s.UpdateSchedule("no_such_job", "0 6 * * *")
	assert.True(t, errors.Is(err, ErrUnknownJob))
}

func TestUpdateSchedule_SwapsLiveEntry(t *testing.T) {
	ctx := context.Background()
	s := setupScheduler(t, testSchedulerConfig())
	job := &countingJob{}
	require.NoError(t, s.RegisterJob(config.JobP0DailySync, job.fn))

	require.NoError(t, s.Start(ctx))
	defer s.Stop()

	require.NoError(t, s.UpdateSchedule(config.JobP0DailySync, "30 4 * * *"))

	status, err := s.Status(ctx, config.JobP0DailySync)
	require.NoError(t, err)
	assert.Equal(t, "30 4 * * *", status.CronExpr)
	require.NotNil(t, status.NextRun)
	assert.Equal(t, 30, status.NextRun.Minute())
	assert.Equal(t, 4, status.NextRun.Hour())
}

func TestStatus_HealthGrades(t *testing.T) {
	ctx := context.Background()
	s := setupScheduler(t, testSchedulerConfig())
	job := &countingJob{}
	require.NoError(t, s.RegisterJob(config.JobP0DailySync, job.fn))

	// Not started: stopped.
	status, err := s.Status(ctx, config.JobP0DailySync)
	require.NoError(t, err)
	assert.Equal(t, HealthStopped, status.Health)

	require.NoError(t, s.Start(ctx))
	defer s.Stop()

	// Started with no history: unknown.
	status, err = s.Status(ctx, config.JobP0DailySync)
	require.NoError(t, err)
	assert.Equal(t, HealthUnknown, status.Health)

	// A fresh successful run: healthy.
	_, err = s.TriggerNow(ctx, config.JobP0DailySync)
	require.NoError(t, err)
	status, err = s.Status(ctx, config.JobP0DailySync)
	require.NoError(t, err)
	assert.Equal(t, HealthHealthy, status.Health)
}

func TestStatus_FailedRunIsCritical(t *testing.T) {
	ctx := context.Background()
	cfg := testSchedulerConfig()
	cfg.Jobs[config.JobP0DailySync].MaxRetries = 0
	s := setupScheduler(t, cfg)
	require.NoError(t, s.RegisterJob(config.JobP0DailySync, func(ctx context.Context) (*Outcome, error) {
		return nil, errors.New("boom")
	}))
	require.NoError(t, s.Start(ctx))
	defer s.Stop()

	_, err := s.TriggerNow(ctx, config.JobP0DailySync)
	require.NoError(t, err)

	status, err := s.Status(ctx, config.JobP0DailySync)
	require.NoError(t, err)
	assert.Equal(t, HealthCritical, status.Health)
}

func TestExecute_RecordsCellState(t *testing.T) {
	ctx := context.Background()
	cfg := testSchedulerConfig()
	cfg.Jobs[config.JobP0DailySync].MaxRetries = 0
	client := testdb.NewTestClient(t)
	cells := state.NewCellStateService(client.Client)
	s := New(cfg, client.Client, cells, nil)
	s.sleep = func(ctx context.Context, d time.Duration) error { return nil }

	job := &countingJob{}
	require.NoError(t, s.RegisterJob(config.JobP0DailySync, job.fn))

	_, err := s.TriggerNow(ctx, config.JobP0DailySync)
	require.NoError(t, err)

	row, err := cells.Get(ctx, config.JobP0DailySync)
	require.NoError(t, err)
	assert.Equal(t, cellstate.StateIdle, row.State)
	assert.Equal(t, 1, row.RunCount)
	assert.Equal(t, 1, row.SuccessCount)
	assert.Zero(t, row.FailCount)
	require.NotNil(t, row.LastRun)

	// A failed run degrades the cell and records the error.
	require.NoError(t, s.RegisterJob(config.JobP0DailySync, func(ctx context.Context) (*Outcome, error) {
		return nil, errors.New("boom")
	}))
	_, err = s.TriggerNow(ctx, config.JobP0DailySync)
	require.NoError(t, err)

	row, err = cells.Get(ctx, config.JobP0DailySync)
	require.NoError(t, err)
	assert.Equal(t, cellstate.StateDegraded, row.State)
	assert.Equal(t, 2, row.RunCount)
	assert.Equal(t, 1, row.FailCount)
	require.NotNil(t, row.LastError)
	assert.Contains(t, *row.LastError, "boom")
}

func TestStart_RecordsNextRun(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)
	cells := state.NewCellStateService(client.Client)
	s := New(testSchedulerConfig(), client.Client, cells, nil)
	s.sleep = func(ctx context.Context, d time.Duration) error { return nil }
	job := &countingJob{}
	require.NoError(t, s.RegisterJob(config.JobP0DailySync, job.fn))

	require.NoError(t, s.Start(ctx))
	defer s.Stop()

	row, err := cells.Get(ctx, config.JobP0DailySync)
	require.NoError(t, err)
	assert.Equal(t, cellstate.StateScheduled, row.State)
	require.NotNil(t, row.NextRun)
	assert.True(t, row.NextRun.After(time.Now()))
}

func TestHistory_PrunedToLimit(t *testing.T) {
	ctx := context.Background()
	cfg := testSchedulerConfig()
	cfg.HistoryLimit = 3
	s := setupScheduler(t, cfg)
	job := &countingJob{}
	require.NoError(t, s.RegisterJob(config.JobP0DailySync, job.fn))

	for i := 0; i < 5; i++ {
		_, err := s.TriggerNow(ctx, config.JobP0DailySync)
		require.NoError(t, err)
	}

	history, err := s.History(ctx, config.JobP0DailySync, 0)
	require.NoError(t, err)
	assert.Len(t, history, 3, "records beyond the history limit are pruned")
}
