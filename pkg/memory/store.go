// Package memory provides the process-wide keyed store with TTL that holds
// signals, session snapshots, and learned state. Two implementations exist:
// an in-process map (default) and a Redis-backed store for multi-replica
// deployments. Both speak JSON values under a single namespace.
package memory

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound indicates the key is absent or its TTL has elapsed.
	ErrNotFound = errors.New("key not found")
)

// Store is the KVStore capability consumed by the pipeline. Values must be
// JSON-serializable. A zero ttl means the entry never expires.
//
// Contract: a Get after a Store in the same process observes the value
// within the same cycle; Get never returns an expired value.
type Store interface {
	Store(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string, dst any) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)

	// ClearExpired eagerly removes expired entries and returns the count.
	// Backends with native expiry (Redis) return 0.
	ClearExpired(ctx context.Context) (int, error)

	Close() error
}

// Well-known key prefixes and keys (single namespace, JSON values).
const (
	KeyPrefixSignal   = "signal:"
	KeyPrefixSession  = "session:"
	KeyPrefixFeedback = "feedback:"

	KeyLatestSession = "p0:latest_session"
	KeyLatestSignals = "p0:latest_signals"
	KeyLearningState = "learning:current_state"

	KeyPrefixDeployedConfig  = "p3:deployed_config:"
	KeyPrefixEvolutionReport = "p3:evolution_report:"
)

// Standard TTLs for the namespace.
const (
	TTLSignalDefault   = 48 * time.Hour
	TTLFeedback        = 30 * 24 * time.Hour
	TTLLearningState   = 30 * 24 * time.Hour
	TTLDeployedConfig  = 30 * 24 * time.Hour
	TTLEvolutionReport = 90 * 24 * time.Hour
	TTLSessionSnapshot = 30 * 24 * time.Hour
)
