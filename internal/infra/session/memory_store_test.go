package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_CreateAndResolve(t *testing.T) {
	store := newMemoryStore(time.Hour, time.Now)
	ctx := context.Background()

	token, err := store.Create(ctx, 42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, ok := store.Resolve(ctx, token)
	assert.True(t, ok)
	assert.Equal(t, uint(42), userID)
}

func TestMemoryStore_ResolveUnknownToken(t *testing.T) {
	store := newMemoryStore(time.Hour, time.Now)

	_, ok := store.Resolve(context.Background(), "no-such-token")
	assert.False(t, ok)
}

func TestMemoryStore_Expiry(t *testing.T) {
	current := time.Now()
	store := newMemoryStore(time.Minute, func() time.Time { return current })
	ctx := context.Background()

	token, err := store.Create(ctx, 7)
	require.NoError(t, err)

	// Still valid just before the TTL.
	current = current.Add(59 * time.Second)
	_, ok := store.Resolve(ctx, token)
	assert.True(t, ok)

	// Expired after the TTL; the entry is dropped.
	current = current.Add(2 * time.Second)
	_, ok = store.Resolve(ctx, token)
	assert.False(t, ok)

	// A second lookup stays invalid.
	_, ok = store.Resolve(ctx, token)
	assert.False(t, ok)
}

func TestMemoryStore_Destroy(t *testing.T) {
	store := newMemoryStore(time.Hour, time.Now)
	ctx := context.Background()

	token, err := store.Create(ctx, 1)
	require.NoError(t, err)

	store.Destroy(ctx, token)
	_, ok := store.Resolve(ctx, token)
	assert.False(t, ok)

	// Destroying an unknown token is a no-op.
	store.Destroy(ctx, "no-such-token")
}

func TestMemoryStore_SweepDropsAbandonedTokens(t *testing.T) {
	current := time.Now()
	store := newMemoryStore(time.Minute, func() time.Time { return current })
	ctx := context.Background()

	_, err := store.Create(ctx, 1)
	require.NoError(t, err)
	_, err = store.Create(ctx, 2)
	require.NoError(t, err)
	live, err := store.Create(ctx, 3)
	require.NoError(t, err)

	// Two sessions expire without ever being resolved again.
	current = current.Add(2 * time.Minute)
	store.mu.Lock()
	entry := store.sessions[live]
	entry.expiresAt = current.Add(time.Minute)
	store.sessions[live] = entry
	store.mu.Unlock()

	store.sweepExpired()

	store.mu.RLock()
	defer store.mu.RUnlock()
	assert.Len(t, store.sessions, 1)
	_, ok := store.sessions[live]
	assert.True(t, ok)
}

func TestMemoryStore_TokensAreUnique(t *testing.T) {
	store := newMemoryStore(time.Hour, time.Now)
	ctx := context.Background()

	t1, err := store.Create(ctx, 1)
	require.NoError(t, err)
	t2, err := store.Create(ctx, 1)
	require.NoError(t, err)

	assert.NotEqual(t, t1, t2)
}
