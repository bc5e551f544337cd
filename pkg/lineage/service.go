// Package lineage provides the persistent lineage store: provenance, tier,
// and last-access metadata for every produced data item, backed by the
// relational store.
package lineage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackeyunjie/growthd/ent"
	"github.com/jackeyunjie/growthd/ent/datalineage"
	"github.com/jackeyunjie/growthd/pkg/models"
)

// Sentinel errors for lineage operations.
var (
	// ErrNotFound indicates the data item has no lineage record.
	ErrNotFound = errors.New("lineage record not found")

	// ErrTierOrder indicates a transition that skips tiers or heats an item
	// without the explicit promote flag.
	ErrTierOrder = errors.New("tier transition violates hot→warm→cold→frozen ordering")
)

// Service is the lineage store. All writes are transactional per record.
type Service struct {
	client *ent.Client
}

// NewService creates a lineage service over the given Ent client.
func NewService(client *ent.Client) *Service {
	return &Service{client: client}
}

// Record registers a newly produced data item at the hot tier.
func (s *Service) Record(ctx context.Context, rec models.LineageRecord) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	create := s.client.DataLineage.Create().
		SetID(rec.DataID).
		SetSource(rec.Source).
		SetSourceType(datalineage.SourceType(rec.SourceType)).
		SetCurrentTier(datalineage.CurrentTierHot).
		SetDependencies(rec.Dependencies).
		SetConsumers(rec.Consumers).
		SetSchemaVersion(rec.SchemaVersion)
	if rec.QualityScore != nil {
		create = create.SetQualityScore(*rec.QualityScore)
	}
	if !rec.CreatedAt.IsZero() {
		create = create.SetCreatedAt(rec.CreatedAt).SetLastAccessed(rec.CreatedAt)
	}

	if _, err := create.Save(writeCtx); err != nil {
		return fmt.Errorf("failed to record lineage for %s: %w", rec.DataID, err)
	}
	return nil
}

// Get returns the lineage record for a data item.
func (s *Service) Get(ctx context.Context, dataID string) (*models.LineageRecord, error) {
	row, err := s.client.DataLineage.Get(ctx, dataID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, dataID)
		}
		return nil, fmt.Errorf("failed to get lineage for %s: %w", dataID, err)
	}
	return fromRow(row), nil
}

// Touch updates last_accessed, keeping the item warm against staleness scans.
func (s *Service) Touch(ctx context.Context, dataID string) error {
	err := s.client.DataLineage.UpdateOneID(dataID).
		SetLastAccessed(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, dataID)
		}
		return fmt.Errorf("failed to touch lineage for %s: %w", dataID, err)
	}
	return nil
}

// FindStale returns items in the given tier whose last access predates the
// horizon.
func (s *Service) FindStale(ctx context.Context, tier models.Tier, olderThan time.Duration) ([]*models.LineageRecord, error) {
	cutoff := time.Now().Add(-olderThan)
	rows, err := s.client.DataLineage.Query().
		Where(
			datalineage.CurrentTierEQ(datalineage.CurrentTier(tier)),
			datalineage.LastAccessedLT(cutoff),
		).
		Order(ent.Asc(datalineage.FieldLastAccessed)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find stale %s items: %w", tier, err)
	}

	out := make([]*models.LineageRecord, len(rows))
	for i, row := range rows {
		out[i] = fromRow(row)
	}
	return out, nil
}

// UpdateTier transitions an item to a new tier. Demotions must move exactly
// one step down the hot→warm→cold→frozen ladder; promotions (re-heating)
// require the promote flag, which marks a manual operator action.
func (s *Service) UpdateTier(ctx context.Context, dataID string, newTier models.Tier, promote bool) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row, err := tx.DataLineage.Get(writeCtx, dataID)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, dataID)
		}
		return fmt.Errorf("failed to load lineage for %s: %w", dataID, err)
	}

	current := models.Tier(row.CurrentTier)
	if newTier.ColderThan(current) {
		if current.Next() != newTier {
			return fmt.Errorf("%w: %s → %s", ErrTierOrder, current, newTier)
		}
	} else if newTier != current && !promote {
		return fmt.Errorf("%w: %s → %s requires manual promotion", ErrTierOrder, current, newTier)
	}

	err = tx.DataLineage.UpdateOneID(dataID).
		SetCurrentTier(datalineage.CurrentTier(newTier)).
		SetLastAccessed(time.Now()).
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to update tier for %s: %w", dataID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tier update: %w", err)
	}
	return nil
}

// CleanupExpired hard-deletes records created before the retention horizon.
// Idempotent — aged reads during cleanup are tolerated.
func (s *Service) CleanupExpired(ctx context.Context, retention time.Duration) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cutoff := time.Now().Add(-retention)
	count, err := s.client.DataLineage.Delete().
		Where(datalineage.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup expired lineage: %w", err)
	}
	return count, nil
}

// RecentItems returns the most recently created items, newest first.
// Used by the hourly quality check.
func (s *Service) RecentItems(ctx context.Context, limit int) ([]*models.LineageRecord, error) {
	rows, err := s.client.DataLineage.Query().
		Order(ent.Desc(datalineage.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent lineage items: %w", err)
	}
	out := make([]*models.LineageRecord, len(rows))
	for i, row := range rows {
		out[i] = fromRow(row)
	}
	return out, nil
}

// SetQualityScore records the outcome of a quality check.
func (s *Service) SetQualityScore(ctx context.Context, dataID string, score float64) error {
	err := s.client.DataLineage.UpdateOneID(dataID).
		SetQualityScore(score).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, dataID)
		}
		return fmt.Errorf("failed to set quality score for %s: %w", dataID, err)
	}
	return nil
}

// TierDistribution returns item counts grouped by tier.
func (s *Service) TierDistribution(ctx context.Context) (map[models.Tier]int, error) {
	dist := make(map[models.Tier]int, 4)
	for _, tier := range []models.Tier{models.TierHot, models.TierWarm, models.TierCold, models.TierFrozen} {
		count, err := s.client.DataLineage.Query().
			Where(datalineage.CurrentTierEQ(datalineage.CurrentTier(tier))).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s items: %w", tier, err)
		}
		dist[tier] = count
	}
	return dist, nil
}

func fromRow(row *ent.DataLineage) *models.LineageRecord {
	rec := &models.LineageRecord{
		DataID:        row.ID,
		Source:        row.Source,
		SourceType:    models.SourceType(row.SourceType),
		CreatedAt:     row.CreatedAt,
		LastAccessed:  row.LastAccessed,
		CurrentTier:   models.Tier(row.CurrentTier),
		Dependencies:  row.Dependencies,
		Consumers:     row.Consumers,
		SchemaVersion: row.SchemaVersion,
	}
	if row.QualityScore != nil {
		rec.QualityScore = row.QualityScore
	}
	return rec
}
