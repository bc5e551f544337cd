package memory

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackeyunjie/growthd/pkg/models"
)

func setupRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStoreFromClient(client)
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

func TestRedisStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, _ := setupRedisStore(t)

	state := models.DefaultLearningState()
	require.NoError(t, store.Store(ctx, KeyLearningState, state, TTLLearningState))

	var loaded models.LearningState
	require.NoError(t, store.Get(ctx, KeyLearningState, &loaded))
	assert.Equal(t, state.Version, loaded.Version)
	assert.InDelta(t, 60, loaded.P0Thresholds[models.ThresholdMinUrgencyScore], 1e-9)
}

func TestRedisStore_GetMissingKey(t *testing.T) {
	store, _ := setupRedisStore(t)
	var dst string
	err := store.Get(context.Background(), "absent", &dst)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStore_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	store, mr := setupRedisStore(t)

	require.NoError(t, store.Store(ctx, "signal:short", "v", time.Hour))
	mr.FastForward(2 * time.Hour)

	var dst string
	assert.ErrorIs(t, store.Get(ctx, "signal:short", &dst), ErrNotFound)
}

func TestRedisStore_KeysByPrefix(t *testing.T) {
	ctx := context.Background()
	store, _ := setupRedisStore(t)

	require.NoError(t, store.Store(ctx, "signal:a", "v", 0))
	require.NoError(t, store.Store(ctx, "signal:b", "v", 0))
	require.NoError(t, store.Store(ctx, "feedback:c", "v", 0))

	keys, err := store.Keys(ctx, KeyPrefixSignal)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"signal:a", "signal:b"}, keys)
}

func TestRedisStore_Delete(t *testing.T) {
	ctx := context.Background()
	store, _ := setupRedisStore(t)

	require.NoError(t, store.Store(ctx, "k", "v", 0))
	require.NoError(t, store.Delete(ctx, "k"))

	var dst string
	assert.ErrorIs(t, store.Get(ctx, "k", &dst), ErrNotFound)
}
