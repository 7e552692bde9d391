package sessionstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RevokeAndExpire(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	store := NewMemoryStore()
	store.now = func() time.Time { return now }

	require.NoError(t, store.Revoke(ctx, "s1", now.Add(time.Hour)))

	revoked, err := store.IsRevoked(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = store.IsRevoked(ctx, "s2")
	require.NoError(t, err)
	assert.False(t, revoked)

	// После истечения токена запись больше не нужна
	now = now.Add(2 * time.Hour)
	revoked, err = store.IsRevoked(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestMemoryStore_IgnoresAlreadyExpired(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Revoke(ctx, "old", time.Now().Add(-time.Minute)))

	revoked, err := store.IsRevoked(ctx, "old")
	require.NoError(t, err)
	assert.False(t, revoked)
}
