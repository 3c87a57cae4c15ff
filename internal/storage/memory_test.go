package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/pkg/models"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	record := models.DefaultResume()
	require.NoError(t, store.Save(ctx, "abc", &record))

	loaded, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, record, *loaded)
}

func TestMemoryStoreNotFound(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Load(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreCorruptSnapshot(t *testing.T) {
	store := NewMemoryStore()
	store.Put("bad", []byte("not json at all"))

	_, err := store.Load(context.Background(), "bad")
	assert.ErrorIs(t, err, ErrCorruptSnapshot)
}

func TestMemoryStoreSaveIsSnapshot(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	record := models.DefaultResume()
	require.NoError(t, store.Save(ctx, "abc", &record))

	// Mutating the saved record must not affect the stored snapshot
	record.FullName = "Changed After Save"
	loaded, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultResume().FullName, loaded.FullName)
}
