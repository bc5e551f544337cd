package memory

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackeyunjie/growthd/pkg/models"
)

// SharedMemory wraps a Store with the typed helpers the pipeline uses.
// Agents receive read-only snapshots; writes are confined to the
// orchestrator, learning engine, evolution engine, and lifecycle agent.
type SharedMemory struct {
	store Store
}

// NewSharedMemory wraps the given backend.
func NewSharedMemory(store Store) *SharedMemory {
	return &SharedMemory{store: store}
}

// Store exposes the raw backend for namespaced access.
func (m *SharedMemory) Store() Store { return m.store }

// StoreSignal persists a perception signal under signal:{id}.
func (m *SharedMemory) StoreSignal(ctx context.Context, sig models.Signal, ttl time.Duration) error {
	return m.store.Store(ctx, KeyPrefixSignal+sig.SignalID, sig, ttl)
}

// RecentSignals returns all stored signals observed within the window.
func (m *SharedMemory) RecentSignals(ctx context.Context, window time.Duration) ([]models.Signal, error) {
	keys, err := m.store.Keys(ctx, KeyPrefixSignal)
	if err != nil {
		return nil, fmt.Errorf("failed to list signal keys: %w", err)
	}

	cutoff := time.Now().Add(-window)
	signals := make([]models.Signal, 0, len(keys))
	for _, k := range keys {
		var sig models.Signal
		if err := m.store.Get(ctx, k, &sig); err != nil {
			// Expired between Keys and Get — tolerated.
			continue
		}
		if sig.Timestamp.After(cutoff) {
			signals = append(signals, sig)
		}
	}
	return signals, nil
}

// LearningState reads the current learning state, falling back to the
// defaults when none has been persisted yet.
func (m *SharedMemory) LearningState(ctx context.Context) *models.LearningState {
	var state models.LearningState
	if err := m.store.Get(ctx, KeyLearningState, &state); err != nil {
		return models.DefaultLearningState()
	}
	return &state
}

// DeployedConfig reads the evolution-deployed parameter overlay for an
// agent type, or nil when nothing has been deployed.
func (m *SharedMemory) DeployedConfig(ctx context.Context, agentType string) *models.DeployedConfig {
	var cfg models.DeployedConfig
	if err := m.store.Get(ctx, KeyPrefixDeployedConfig+agentType, &cfg); err != nil {
		return nil
	}
	return &cfg
}

// SaveSession persists a committed session snapshot and the latest-session
// pointer. The pointer carries no TTL.
func (m *SharedMemory) SaveSession(ctx context.Context, session *models.SyncSession) error {
	if err := m.store.Store(ctx, KeyPrefixSession+session.SessionID, session, TTLSessionSnapshot); err != nil {
		return fmt.Errorf("failed to store session %s: %w", session.SessionID, err)
	}
	if err := m.store.Store(ctx, KeyLatestSession, session, 0); err != nil {
		return fmt.Errorf("failed to store latest session pointer: %w", err)
	}
	return nil
}

// LatestSession returns the most recently committed session snapshot.
func (m *SharedMemory) LatestSession(ctx context.Context) (*models.SyncSession, error) {
	var session models.SyncSession
	if err := m.store.Get(ctx, KeyLatestSession, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// SaveLatestSignals stores the p0:latest_signals snapshot (no TTL).
func (m *SharedMemory) SaveLatestSignals(ctx context.Context, signals []models.Signal) error {
	return m.store.Store(ctx, KeyLatestSignals, signals, 0)
}

// Close closes the underlying backend.
func (m *SharedMemory) Close() {
	if err := m.store.Close(); err != nil {
		slog.Warn("Failed to close shared memory backend", "error", err)
	}
}
