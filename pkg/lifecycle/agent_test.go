package lifecycle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackeyunjie/growthd/pkg/config"
	"github.com/jackeyunjie/growthd/pkg/lineage"
	"github.com/jackeyunjie/growthd/pkg/meridian"
	"github.com/jackeyunjie/growthd/pkg/models"
	testdb "github.com/jackeyunjie/growthd/test/database"
)

func setupAgent(t *testing.T) (*Agent, *lineage.Service) {
	t.Helper()
	client := testdb.NewTestClient(t)
	svc := lineage.NewService(client.Client)
	return NewAgent(*config.DefaultLifecycleConfig(), svc, nil, nil), svc
}

func recordAged(t *testing.T, svc *lineage.Service, dataID string, age time.Duration) {
	t.Helper()
	err := svc.Record(context.Background(), models.LineageRecord{
		DataID:     dataID,
		Source:     "q1_pain_scanner",
		SourceType: models.SourceProcessor,
		CreatedAt:  time.Now().Add(-age),
	})
	require.NoError(t, err)
}

func TestRunPass_StaleHotItemDemotesToWarm(t *testing.T) {
	ctx := context.Background()
	agent, svc := setupAgent(t)

	recordAged(t, svc, "item-stale", 8*24*time.Hour)
	recordAged(t, svc, "item-fresh", 2*24*time.Hour)

	result, err := agent.RunPass(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Demoted[models.TierWarm])
	assert.Zero(t, result.Purged)
	assert.Zero(t, result.Errors)

	stale, err := svc.Get(ctx, "item-stale")
	require.NoError(t, err)
	assert.Equal(t, models.TierWarm, stale.CurrentTier)

	fresh, err := svc.Get(ctx, "item-fresh")
	require.NoError(t, err)
	assert.Equal(t, models.TierHot, fresh.CurrentTier, "items inside the horizon stay hot")
}

func TestRunPass_FullLadderAndPurge(t *testing.T) {
	ctx := context.Background()
	agent, svc := setupAgent(t)

	recordAged(t, svc, "item-old", 8*365*24*time.Hour)
	recordAged(t, svc, "item-warmish", 10*24*time.Hour)

	result, err := agent.RunPass(ctx)
	require.NoError(t, err)

	// Demotion refreshes last_accessed, so the ancient item moves one tier
	// per pass; the purge still removes it because the frozen retention keys
	// on creation time, not tier.
	assert.Equal(t, 2, result.Demoted[models.TierWarm])
	assert.Equal(t, 1, result.Purged, "items created beyond the frozen horizon are hard-deleted")

	_, err = svc.Get(ctx, "item-old")
	assert.ErrorIs(t, err, lineage.ErrNotFound)

	warmish, err := svc.Get(ctx, "item-warmish")
	require.NoError(t, err)
	assert.Equal(t, models.TierWarm, warmish.CurrentTier)
}

func TestRunQualityCheck_RepairsAndAlerts(t *testing.T) {
	ctx := context.Background()
	agent, svc := setupAgent(t)

	// No quality score: repairable, assigned the neutral default.
	recordAged(t, svc, "item-unscored", time.Hour)

	// Low quality score: alert, not repairable.
	low := 0.1
	err := svc.Record(ctx, models.LineageRecord{
		DataID:       "item-low",
		Source:       "q3_trend_hunter",
		SourceType:   models.SourceEvent,
		QualityScore: &low,
	})
	require.NoError(t, err)

	// Missing provenance: alert.
	err = svc.Record(ctx, models.LineageRecord{
		DataID:     "item-nosource",
		SourceType: models.SourceManual,
	})
	require.NoError(t, err)

	issues, err := agent.RunQualityCheck(ctx)
	require.NoError(t, err)

	rules := make(map[string]int)
	for _, issue := range issues {
		rules[issue.Rule]++
	}
	assert.Equal(t, 2, rules["missing_quality_score"], "unscored and sourceless items both lack a score")
	assert.Equal(t, 1, rules["missing_source"])
	assert.Equal(t, 1, rules["low_quality"])

	repaired, err := svc.Get(ctx, "item-unscored")
	require.NoError(t, err)
	require.NotNil(t, repaired.QualityScore)
	assert.InDelta(t, 0.5, *repaired.QualityScore, 1e-9)

	alerts := agent.Alerts()
	require.NotEmpty(t, alerts)
	for _, alert := range alerts {
		assert.Equal(t, "quality", alert.Type)
	}
}

func TestCheckBackpressure_QueueDepth(t *testing.T) {
	cfg := *config.DefaultLifecycleConfig()
	cfg.MaxErrorRate = 0 // isolate the queue rule
	cfg.MaxLatency = 0

	busCfg := *config.DefaultMeridianConfig()
	busCfg.Capacity = 2000
	bus := meridian.NewBus(busCfg, nil)
	agent := NewAgent(cfg, nil, bus, nil)

	_, unsub := bus.Subscribe(meridian.MeridianData, "monitor")
	defer unsub()
	for i := 0; i < 1500; i++ {
		bus.Publish(context.Background(), meridian.MeridianData, "signal", nil, models.PriorityMedium)
	}

	alerts := agent.CheckBackpressure()
	require.Len(t, alerts, 1)
	assert.Equal(t, "backpressure", alerts[0].Type)
	assert.Equal(t, string(meridian.MeridianData), alerts[0].Subject)
	assert.Equal(t, alerts, agent.Alerts())
}

func TestCheckBackpressure_ErrorRate(t *testing.T) {
	cfg := *config.DefaultLifecycleConfig()
	cfg.BackpressureQueueSize = 0
	cfg.MaxLatency = 0

	busCfg := *config.DefaultMeridianConfig()
	busCfg.Capacity = 1
	busCfg.PublishTimeout = time.Millisecond
	bus := meridian.NewBus(busCfg, nil)
	agent := NewAgent(cfg, nil, bus, nil)

	_, unsub := bus.Subscribe(meridian.MeridianControl, "monitor")
	defer unsub()
	bus.SendCommand(context.Background(), "pause_sync", nil, "")
	bus.SendCommand(context.Background(), "pause_sync", nil, "") // dropped

	alerts := agent.CheckBackpressure()
	require.Len(t, alerts, 1)
	assert.Equal(t, "error_rate", alerts[0].Type)
}

func TestCheckBackpressure_NilBus(t *testing.T) {
	agent := NewAgent(*config.DefaultLifecycleConfig(), nil, nil, nil)
	assert.Nil(t, agent.CheckBackpressure())
}

func TestAlerts_HistoryIsBounded(t *testing.T) {
	agent := NewAgent(*config.DefaultLifecycleConfig(), nil, nil, nil)
	for i := 0; i < alertHistoryLimit+50; i++ {
		agent.raise(models.Alert{Type: "quality", Subject: "item"})
	}
	assert.Len(t, agent.Alerts(), alertHistoryLimit)
}

func TestCheckHealth(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)
	svc := lineage.NewService(client.Client)
	bus := meridian.NewBus(*config.DefaultMeridianConfig(), nil)
	agent := NewAgent(*config.DefaultLifecycleConfig(), svc, bus, nil)

	recordAged(t, svc, "item-1", time.Hour)

	health, err := agent.CheckHealth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, health.TierDistribution[models.TierHot])
	assert.Len(t, health.Meridians, 3)
	assert.False(t, health.CheckedAt.IsZero())
}
