// Package lifecycle implements the P4 data-lifecycle agent: tier aging over
// the lineage store, recurring data-quality checks, and back-pressure
// monitoring over the meridian bus.
package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackeyunjie/growthd/pkg/config"
	"github.com/jackeyunjie/growthd/pkg/lineage"
	"github.com/jackeyunjie/growthd/pkg/meridian"
	"github.com/jackeyunjie/growthd/pkg/models"
)

// alertHistoryLimit bounds the retained alert list.
const alertHistoryLimit = 200

// PassResult summarizes one lifecycle pass.
type PassResult struct {
	Demoted   map[models.Tier]int `json:"demoted"`
	Purged    int                 `json:"purged"`
	Errors    int                 `json:"errors"`
	StartedAt time.Time           `json:"started_at"`
	Duration  time.Duration       `json:"duration"`
}

// Agent is the lifecycle service. Start launches the recurring quality and
// back-pressure loops; the aging pass itself is driven by the scheduler.
type Agent struct {
	cfg     config.LifecycleConfig
	lineage *lineage.Service
	bus     *meridian.Bus
	logger  *slog.Logger

	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once

	mu     sync.Mutex
	alerts []models.Alert

	now func() time.Time
}

// NewAgent builds the lifecycle agent. bus may be nil; back-pressure
// monitoring is then disabled.
func NewAgent(cfg config.LifecycleConfig, lineageSvc *lineage.Service, bus *meridian.Bus, logger *slog.Logger) *Agent {
	if logger == nil {
		logger = slog.Default()
	}
	return &Agent{
		cfg:     cfg,
		lineage: lineageSvc,
		bus:     bus,
		logger:  logger.With("component", "lifecycle_agent"),
		now:     time.Now,
	}
}

// RunPass executes one full aging pass: hot→warm, warm→cold, cold→frozen,
// then the hard purge. A failing record is logged and skipped; the pass
// continues with the rest.
func (a *Agent) RunPass(ctx context.Context) (*PassResult, error) {
	start := a.now()
	result := &PassResult{
		Demoted:   make(map[models.Tier]int, 3),
		StartedAt: start.UTC(),
	}

	type step struct {
		from      models.Tier
		retention time.Duration
		codec     string
	}
	steps := []step{
		{models.TierHot, a.cfg.RetentionHot, a.cfg.CompressionWarm},
		{models.TierWarm, a.cfg.RetentionWarm, a.cfg.CompressionCold},
		{models.TierCold, a.cfg.RetentionCold, ""},
	}

	for _, st := range steps {
		stale, err := a.lineage.FindStale(ctx, st.from, st.retention)
		if err != nil {
			return nil, fmt.Errorf("lifecycle pass failed scanning %s tier: %w", st.from, err)
		}
		for _, rec := range stale {
			target := st.from.Next()
			if err := a.lineage.UpdateTier(ctx, rec.DataID, target, false); err != nil {
				result.Errors++
				a.logger.Error("Tier demotion failed, skipping record",
					"data_id", rec.DataID, "from", st.from, "to", target, "error", err)
				continue
			}
			result.Demoted[target]++
			if st.codec != "" {
				a.logger.Debug("Item demoted with compression", "data_id", rec.DataID, "tier", target, "codec", st.codec)
			}
		}
	}

	purged, err := a.lineage.CleanupExpired(ctx, a.cfg.RetentionFrozen)
	if err != nil {
		return nil, fmt.Errorf("lifecycle purge failed: %w", err)
	}
	result.Purged = purged
	result.Duration = a.now().Sub(start)

	a.logger.Info("Lifecycle pass complete",
		"to_warm", result.Demoted[models.TierWarm],
		"to_cold", result.Demoted[models.TierCold],
		"to_frozen", result.Demoted[models.TierFrozen],
		"purged", result.Purged,
		"errors", result.Errors,
		"duration", result.Duration)
	return result, nil
}

// Start launches the recurring quality-check and back-pressure loops.
func (a *Agent) Start(ctx context.Context) {
	runCtx, cancel := context.WithCancel(ctx)
	a.cancel = cancel
	a.done = make(chan struct{})

	interval := a.cfg.QualityCheckInterval
	if interval <= 0 {
		interval = time.Hour
	}

	go func() {
		defer close(a.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		a.logger.Info("Lifecycle agent started", "quality_check_interval", interval)
		for {
			select {
			case <-runCtx.Done():
				return
			case <-ticker.C:
				if _, err := a.RunQualityCheck(runCtx); err != nil {
					a.logger.Error("Quality check failed", "error", err)
				}
				a.CheckBackpressure()
			}
		}
	}()
}

// Stop terminates the recurring loops and waits for them to exit.
func (a *Agent) Stop() {
	a.stopOnce.Do(func() {
		if a.cancel != nil {
			a.cancel()
			<-a.done
		}
		a.logger.Info("Lifecycle agent stopped")
	})
}

// RunQualityCheck inspects the most recent items against the quality rules.
// Repairable findings are fixed in place; the rest raise alerts.
func (a *Agent) RunQualityCheck(ctx context.Context) ([]models.QualityIssue, error) {
	items, err := a.lineage.RecentItems(ctx, 100)
	if err != nil {
		return nil, fmt.Errorf("quality check failed to load items: %w", err)
	}

	var issues []models.QualityIssue
	for _, rec := range items {
		for _, issue := range inspect(rec) {
			issues = append(issues, issue)
			if issue.Repairable {
				if issue.Rule == "missing_quality_score" {
					if err := a.lineage.SetQualityScore(ctx, rec.DataID, 0.5); err != nil {
						a.logger.Error("Quality repair failed", "data_id", rec.DataID, "error", err)
					}
				}
				continue
			}
			a.raise(models.Alert{
				Type:    "quality",
				Subject: rec.DataID,
				Detail:  fmt.Sprintf("%s: %s", issue.Rule, issue.Detail),
			})
		}
	}
	if len(issues) > 0 {
		a.logger.Info("Quality check found issues", "count", len(issues))
	}
	return issues, nil
}

// inspect applies the quality rules to one record.
func inspect(rec *models.LineageRecord) []models.QualityIssue {
	var issues []models.QualityIssue
	if rec.QualityScore == nil {
		issues = append(issues, models.QualityIssue{
			DataID:     rec.DataID,
			Rule:       "missing_quality_score",
			Detail:     "record has no quality score; assigning neutral default",
			Repairable: true,
		})
	}
	if rec.Source == "" {
		issues = append(issues, models.QualityIssue{
			DataID: rec.DataID,
			Rule:   "missing_source",
			Detail: "record has no provenance source",
		})
	}
	if rec.QualityScore != nil && *rec.QualityScore < 0.2 {
		issues = append(issues, models.QualityIssue{
			DataID: rec.DataID,
			Rule:   "low_quality",
			Detail: fmt.Sprintf("quality score %.2f below 0.20 floor", *rec.QualityScore),
		})
	}
	return issues
}

// CheckBackpressure evaluates every meridian against the alert thresholds:
// queue depth, dropped-packet error rate, and publish latency.
func (a *Agent) CheckBackpressure() []models.Alert {
	if a.bus == nil {
		return nil
	}
	var raised []models.Alert
	for _, id := range meridian.AllMeridians {
		stats := a.bus.Stats(id)
		if limit := a.cfg.BackpressureQueueSize; limit > 0 && stats.QueueSize > limit {
			raised = append(raised, a.raise(models.Alert{
				Type:    "backpressure",
				Subject: string(id),
				Detail:  fmt.Sprintf("queue size %d exceeds limit %d", stats.QueueSize, limit),
			}))
		}
		if maxRate := a.cfg.MaxErrorRate; maxRate > 0 && stats.ErrorRate() > maxRate {
			raised = append(raised, a.raise(models.Alert{
				Type:    "error_rate",
				Subject: string(id),
				Detail:  fmt.Sprintf("drop rate %.2f%% exceeds %.2f%%", stats.ErrorRate()*100, maxRate*100),
			}))
		}
		if maxLat := a.cfg.MaxLatency; maxLat > 0 && stats.AvgLatency() > maxLat {
			raised = append(raised, a.raise(models.Alert{
				Type:    "latency",
				Subject: string(id),
				Detail:  fmt.Sprintf("average publish latency %s exceeds %s", stats.AvgLatency(), maxLat),
			}))
		}
	}
	return raised
}

// raise records an alert in the bounded history and logs it.
func (a *Agent) raise(alert models.Alert) models.Alert {
	alert.CreatedAt = a.now().UTC()
	a.mu.Lock()
	a.alerts = append(a.alerts, alert)
	if len(a.alerts) > alertHistoryLimit {
		a.alerts = a.alerts[len(a.alerts)-alertHistoryLimit:]
	}
	a.mu.Unlock()
	a.logger.Warn("Lifecycle alert raised", "type", alert.Type, "subject", alert.Subject, "detail", alert.Detail)
	return alert
}

// Alerts returns the retained alerts, oldest first.
func (a *Agent) Alerts() []models.Alert {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]models.Alert, len(a.alerts))
	copy(out, a.alerts)
	return out
}

// Health summarizes the data plane for the health endpoint.
type Health struct {
	TierDistribution map[models.Tier]int       `json:"tier_distribution"`
	Alerts           []models.Alert            `json:"alerts"`
	Meridians        map[string]MeridianHealth `json:"meridians"`
	CheckedAt        time.Time                 `json:"checked_at"`
}

// MeridianHealth is one meridian's health snapshot.
type MeridianHealth struct {
	QueueSize int     `json:"queue_size"`
	Dropped   int64   `json:"dropped"`
	ErrorRate float64 `json:"error_rate"`
}

// CheckHealth builds the data-plane health report.
func (a *Agent) CheckHealth(ctx context.Context) (*Health, error) {
	dist, err := a.lineage.TierDistribution(ctx)
	if err != nil {
		return nil, fmt.Errorf("health check failed: %w", err)
	}
	h := &Health{
		TierDistribution: dist,
		Alerts:           a.Alerts(),
		Meridians:        make(map[string]MeridianHealth, len(meridian.AllMeridians)),
		CheckedAt:        a.now().UTC(),
	}
	if a.bus != nil {
		for _, id := range meridian.AllMeridians {
			stats := a.bus.Stats(id)
			h.Meridians[string(id)] = MeridianHealth{
				QueueSize: stats.QueueSize,
				Dropped:   stats.Dropped,
				ErrorRate: stats.ErrorRate(),
			}
		}
	}
	return h, nil
}
