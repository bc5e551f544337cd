package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackeyunjie/growthd/pkg/models"
)

// fakeClock is a settable time source for TTL tests.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 8, 24, 6, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	defer store.Close()

	sig := models.Signal{SignalID: "q1:s:1", Quadrant: models.QuadrantQ1, Score: 72}
	require.NoError(t, store.Store(ctx, KeyPrefixSignal+sig.SignalID, sig, 0))

	var loaded models.Signal
	require.NoError(t, store.Get(ctx, KeyPrefixSignal+sig.SignalID, &loaded))
	assert.Equal(t, sig.SignalID, loaded.SignalID)
	assert.InDelta(t, 72, loaded.Score, 1e-9)
}

func TestMemoryStore_GetMissingKey(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	var dst models.Signal
	err := store.Get(context.Background(), "signal:absent", &dst)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	store := NewMemoryStore(WithClock(clock.Now))
	defer store.Close()

	require.NoError(t, store.Store(ctx, "signal:short", "v", time.Hour))
	require.NoError(t, store.Store(ctx, "signal:forever", "v", 0))

	var dst string
	require.NoError(t, store.Get(ctx, "signal:short", &dst))

	clock.Advance(2 * time.Hour)

	err := store.Get(ctx, "signal:short", &dst)
	assert.ErrorIs(t, err, ErrNotFound, "expired entries read as absent")
	assert.NoError(t, store.Get(ctx, "signal:forever", &dst), "zero ttl never expires")
}

func TestMemoryStore_KeysFiltersPrefixAndExpired(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	store := NewMemoryStore(WithClock(clock.Now))
	defer store.Close()

	require.NoError(t, store.Store(ctx, "signal:a", "v", time.Hour))
	require.NoError(t, store.Store(ctx, "signal:b", "v", 0))
	require.NoError(t, store.Store(ctx, "feedback:c", "v", 0))

	keys, err := store.Keys(ctx, KeyPrefixSignal)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"signal:a", "signal:b"}, keys)

	clock.Advance(2 * time.Hour)
	keys, err = store.Keys(ctx, KeyPrefixSignal)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"signal:b"}, keys)
}

func TestMemoryStore_ClearExpired(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	store := NewMemoryStore(WithClock(clock.Now))
	defer store.Close()

	require.NoError(t, store.Store(ctx, "a", "v", time.Minute))
	require.NoError(t, store.Store(ctx, "b", "v", time.Hour))
	require.NoError(t, store.Store(ctx, "c", "v", 0))

	clock.Advance(30 * time.Minute)
	n, err := store.ClearExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 2, store.Len())
}

func TestMemoryStore_OverwriteResetsTTL(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	store := NewMemoryStore(WithClock(clock.Now))
	defer store.Close()

	require.NoError(t, store.Store(ctx, "k", "v1", time.Hour))
	clock.Advance(50 * time.Minute)
	require.NoError(t, store.Store(ctx, "k", "v2", time.Hour))
	clock.Advance(50 * time.Minute)

	var dst string
	require.NoError(t, store.Get(ctx, "k", &dst))
	assert.Equal(t, "v2", dst)
}

func TestMemoryStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	defer store.Close()

	require.NoError(t, store.Store(ctx, "k", "v", 0))
	require.NoError(t, store.Delete(ctx, "k"))
	require.NoError(t, store.Delete(ctx, "k"), "deleting an absent key is not an error")

	var dst string
	assert.ErrorIs(t, store.Get(ctx, "k", &dst), ErrNotFound)
}
