package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/windoze95/recipefinder-api/internal/kvstore"
)

func TestDarkMode(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	repo := NewPreferencesRepository(store)

	_, found, err := repo.DarkMode(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.SetDarkMode(ctx, true))
	raw, _, _ := store.Get(ctx, DarkModeKey)
	assert.Equal(t, "true", raw)

	enabled, found, err := repo.DarkMode(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, enabled)

	require.NoError(t, repo.SetDarkMode(ctx, false))
	enabled, found, err = repo.DarkMode(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.False(t, enabled)
}

func TestDarkMode_UnreadableValue(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	require.NoError(t, store.Set(ctx, DarkModeKey, "maybe"))

	_, found, err := NewPreferencesRepository(store).DarkMode(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}
