package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/cbd-helper/internal/storage"
)

func seededDataTypes(t *testing.T) *DataTypesUseCase {
	t.Helper()
	u := NewDataTypesUseCase(storage.NewMemoryStore())
	require.NoError(t, u.Set(context.Background(), []string{"history", "cookies", "cache"}))
	return u
}

func TestDataTypesDisableAndEnable(t *testing.T) {
	ctx := context.Background()
	u := seededDataTypes(t)

	require.NoError(t, u.Disable(ctx, "cookies", "cache", "cookies"))
	snapshot, err := u.Show(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"cookies", "cache"}, snapshot.DisabledDataTypes)
	assert.Equal(t, []string{"history"}, EnabledDataTypes(snapshot))

	require.NoError(t, u.Enable(ctx, "cookies"))
	snapshot, err = u.Show(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"cache"}, snapshot.DisabledDataTypes)
}

func TestDataTypesDisableRejectsUnknown(t *testing.T) {
	err := seededDataTypes(t).Disable(context.Background(), "passwords")
	assert.ErrorContains(t, err, "unknown data type")
}

func TestDataTypesSetDropsStaleDisabledEntries(t *testing.T) {
	ctx := context.Background()
	u := seededDataTypes(t)
	require.NoError(t, u.Disable(ctx, "cache", "history"))

	require.NoError(t, u.Set(ctx, []string{" history ", "downloads", ""}))

	snapshot, err := u.Show(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"history", "downloads"}, snapshot.DataTypes)
	assert.Equal(t, []string{"history"}, snapshot.DisabledDataTypes)
}

func TestDataTypesSetRequiresEntries(t *testing.T) {
	err := NewDataTypesUseCase(storage.NewMemoryStore()).Set(context.Background(), []string{" "})
	assert.Error(t, err)
}

func TestDataTypesToggle(t *testing.T) {
	ctx := context.Background()
	u := seededDataTypes(t)

	enabled, err := u.Toggle(ctx, "history")
	require.NoError(t, err)
	assert.False(t, enabled)

	enabled, err = u.Toggle(ctx, "history")
	require.NoError(t, err)
	assert.True(t, enabled)

	snapshot, err := u.Show(ctx)
	require.NoError(t, err)
	assert.Empty(t, snapshot.DisabledDataTypes)
}
