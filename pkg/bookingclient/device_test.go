package bookingclient

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device", "appointments.json")
	ctx := context.Background()
	a, b := uuid.New(), uuid.New()

	empty, err := NewFileStore(path).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	store := NewFileStore(path)
	require.NoError(t, store.Append(ctx, a))
	require.NoError(t, store.Append(ctx, b))

	got, err := NewFileStore(path).List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a, b}, got)
}

func TestMemoryStore_ListIsCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Append(ctx, uuid.New()))

	ids, _ := store.List(ctx)
	ids[0] = uuid.Nil

	again, _ := store.List(ctx)
	assert.NotEqual(t, uuid.Nil, again[0])
}
