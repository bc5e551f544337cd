package lineage_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackeyunjie/growthd/pkg/lineage"
	"github.com/jackeyunjie/growthd/pkg/models"
	testdb "github.com/jackeyunjie/growthd/test/database"
)

func setupService(t *testing.T) *lineage.Service {
	t.Helper()
	client := testdb.NewTestClient(t)
	return lineage.NewService(client.Client)
}

func record(t *testing.T, svc *lineage.Service, dataID string, createdAt time.Time) {
	t.Helper()
	err := svc.Record(context.Background(), models.LineageRecord{
		DataID:        dataID,
		Source:        "q3_trend_hunter",
		SourceType:    models.SourceProcessor,
		CreatedAt:     createdAt,
		Dependencies:  []string{"content-batch-1"},
		SchemaVersion: 1,
	})
	require.NoError(t, err)
}

func TestRecord_StartsAtHotTier(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	createdAt := time.Now().Add(-time.Hour)
	record(t, svc, "item-1", createdAt)

	got, err := svc.Get(ctx, "item-1")
	require.NoError(t, err)
	assert.Equal(t, models.TierHot, got.CurrentTier)
	assert.Equal(t, "q3_trend_hunter", got.Source)
	assert.Equal(t, models.SourceProcessor, got.SourceType)
	assert.Equal(t, []string{"content-batch-1"}, got.Dependencies)
	assert.WithinDuration(t, createdAt, got.CreatedAt, time.Second)
	assert.WithinDuration(t, createdAt, got.LastAccessed, time.Second, "backfilled items start as old as their creation")
	assert.Nil(t, got.QualityScore)
}

func TestRecord_DuplicateIDFails(t *testing.T) {
	svc := setupService(t)
	record(t, svc, "item-1", time.Now())

	err := svc.Record(context.Background(), models.LineageRecord{
		DataID: "item-1", Source: "q1_pain_scanner", SourceType: models.SourceSensor,
	})
	assert.Error(t, err)
}

func TestGet_Missing(t *testing.T) {
	svc := setupService(t)
	_, err := svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, lineage.ErrNotFound)
}

func TestTouch_RefreshesLastAccessed(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	record(t, svc, "item-1", time.Now().Add(-30*24*time.Hour))
	require.NoError(t, svc.Touch(ctx, "item-1"))

	got, err := svc.Get(ctx, "item-1")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), got.LastAccessed, 5*time.Second)

	assert.ErrorIs(t, svc.Touch(ctx, "absent"), lineage.ErrNotFound)
}

func TestUpdateTier_OneStepDemotion(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)
	record(t, svc, "item-1", time.Now())

	require.NoError(t, svc.UpdateTier(ctx, "item-1", models.TierWarm, false))
	require.NoError(t, svc.UpdateTier(ctx, "item-1", models.TierCold, false))
	require.NoError(t, svc.UpdateTier(ctx, "item-1", models.TierFrozen, false))

	got, err := svc.Get(ctx, "item-1")
	require.NoError(t, err)
	assert.Equal(t, models.TierFrozen, got.CurrentTier)
}

func TestUpdateTier_SkippingTiersRejected(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)
	record(t, svc, "item-1", time.Now())

	err := svc.UpdateTier(ctx, "item-1", models.TierCold, false)
	assert.ErrorIs(t, err, lineage.ErrTierOrder)

	got, getErr := svc.Get(ctx, "item-1")
	require.NoError(t, getErr)
	assert.Equal(t, models.TierHot, got.CurrentTier, "rejected transition leaves the row untouched")
}

func TestUpdateTier_PromotionNeedsFlag(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)
	record(t, svc, "item-1", time.Now())
	require.NoError(t, svc.UpdateTier(ctx, "item-1", models.TierWarm, false))

	assert.ErrorIs(t, svc.UpdateTier(ctx, "item-1", models.TierHot, false), lineage.ErrTierOrder)
	require.NoError(t, svc.UpdateTier(ctx, "item-1", models.TierHot, true))

	got, err := svc.Get(ctx, "item-1")
	require.NoError(t, err)
	assert.Equal(t, models.TierHot, got.CurrentTier)
}

func TestUpdateTier_Missing(t *testing.T) {
	svc := setupService(t)
	err := svc.UpdateTier(context.Background(), "absent", models.TierWarm, false)
	assert.ErrorIs(t, err, lineage.ErrNotFound)
}

func TestFindStale_FiltersByTierAndAge(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	record(t, svc, "item-old", time.Now().Add(-10*24*time.Hour))
	record(t, svc, "item-older", time.Now().Add(-20*24*time.Hour))
	record(t, svc, "item-fresh", time.Now().Add(-time.Hour))

	stale, err := svc.FindStale(ctx, models.TierHot, 7*24*time.Hour)
	require.NoError(t, err)
	require.Len(t, stale, 2)
	assert.Equal(t, "item-older", stale[0].DataID, "oldest first")
	assert.Equal(t, "item-old", stale[1].DataID)

	// A demoted item no longer matches the hot scan.
	require.NoError(t, svc.UpdateTier(ctx, "item-old", models.TierWarm, false))
	stale, err = svc.FindStale(ctx, models.TierHot, 7*24*time.Hour)
	require.NoError(t, err)
	require.Len(t, stale, 1)
	assert.Equal(t, "item-older", stale[0].DataID)
}

func TestCleanupExpired_DeletesByCreationTime(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	record(t, svc, "item-ancient", time.Now().Add(-8*365*24*time.Hour))
	record(t, svc, "item-recent", time.Now().Add(-time.Hour))

	n, err := svc.CleanupExpired(ctx, 7*365*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = svc.Get(ctx, "item-ancient")
	assert.ErrorIs(t, err, lineage.ErrNotFound)
	_, err = svc.Get(ctx, "item-recent")
	assert.NoError(t, err)

	// Idempotent: a second pass deletes nothing.
	n, err = svc.CleanupExpired(ctx, 7*365*24*time.Hour)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSetQualityScore(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)
	record(t, svc, "item-1", time.Now())

	require.NoError(t, svc.SetQualityScore(ctx, "item-1", 0.85))

	got, err := svc.Get(ctx, "item-1")
	require.NoError(t, err)
	require.NotNil(t, got.QualityScore)
	assert.InDelta(t, 0.85, *got.QualityScore, 1e-9)

	assert.ErrorIs(t, svc.SetQualityScore(ctx, "absent", 0.5), lineage.ErrNotFound)
}

func TestRecentItems_NewestFirst(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	record(t, svc, "item-1", time.Now().Add(-3*time.Hour))
	record(t, svc, "item-2", time.Now().Add(-2*time.Hour))
	record(t, svc, "item-3", time.Now().Add(-time.Hour))

	items, err := svc.RecentItems(ctx, 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "item-3", items[0].DataID)
	assert.Equal(t, "item-2", items[1].DataID)
}

func TestTierDistribution(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	record(t, svc, "item-1", time.Now())
	record(t, svc, "item-2", time.Now())
	record(t, svc, "item-3", time.Now())
	require.NoError(t, svc.UpdateTier(ctx, "item-3", models.TierWarm, false))

	dist, err := svc.TierDistribution(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, dist[models.TierHot])
	assert.Equal(t, 1, dist[models.TierWarm])
	assert.Zero(t, dist[models.TierCold])
	assert.Zero(t, dist[models.TierFrozen])
}
