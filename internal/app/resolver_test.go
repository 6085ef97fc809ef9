package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/cristianoliveira/cbd-helper/internal/errors"
	"github.com/cristianoliveira/cbd-helper/internal/storage"
)

func TestEnabledDataTypes(t *testing.T) {
	tests := []struct {
		name     string
		snapshot Snapshot
		want     []string
	}{
		{
			name:     "nothing disabled",
			snapshot: Snapshot{DataTypes: []string{"history", "cookies"}},
			want:     []string{"history", "cookies"},
		},
		{
			name: "keeps data type order",
			snapshot: Snapshot{
				DataTypes:         []string{"history", "cookies", "cache", "downloads"},
				DisabledDataTypes: []string{"downloads", "cookies"},
			},
			want: []string{"history", "cache"},
		},
		{
			name: "unknown disabled entries are ignored",
			snapshot: Snapshot{
				DataTypes:         []string{"history"},
				DisabledDataTypes: []string{"passwords"},
			},
			want: []string{"history"},
		},
		{
			name: "duplicates follow data types",
			snapshot: Snapshot{
				DataTypes:         []string{"cache", "history", "cache"},
				DisabledDataTypes: []string{"history"},
			},
			want: []string{"cache", "cache"},
		},
		{
			name:     "all disabled",
			snapshot: Snapshot{DataTypes: []string{"a"}, DisabledDataTypes: []string{"a"}},
			want:     []string{},
		},
		{
			name:     "empty snapshot",
			snapshot: Snapshot{},
			want:     []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EnabledDataTypes(tt.snapshot)
			assert.Equal(t, tt.want, got)
			for _, id := range got {
				assert.Contains(t, tt.snapshot.DataTypes, id)
			}
		})
	}
}

func TestEnabledDataTypesFromStore(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, storage.NamespaceSync, map[string]any{
		KeyDataTypes:         []string{"history", "cookies", "cache"},
		KeyDisabledDataTypes: []string{"cookies"},
	}))
	// Local namespace is never consulted.
	require.NoError(t, store.Set(ctx, storage.NamespaceLocal, map[string]any{
		KeyDisabledDataTypes: []string{"history"},
	}))

	got, err := EnabledDataTypesFromStore(ctx, store)

	require.NoError(t, err)
	assert.Equal(t, []string{"history", "cache"}, got)
}

func TestLoadSnapshotMissingKeysAreEmpty(t *testing.T) {
	snapshot, err := LoadSnapshot(context.Background(), storage.NewMemoryStore())
	require.NoError(t, err)
	assert.Equal(t, Snapshot{DataTypes: []string{}, DisabledDataTypes: []string{}}, snapshot)
}

func TestEnabledDataTypesFromStorePropagatesStorageFailure(t *testing.T) {
	var journal []string
	store := newRecordingStore(&journal)
	store.getErr = errors.New("disk gone")

	_, err := EnabledDataTypesFromStore(context.Background(), store)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrStorage)
	assert.ErrorContains(t, err, "disk gone")
}

func TestLoadSnapshotRejectsMalformedValues(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, storage.NamespaceSync, map[string]any{KeyDataTypes: "history"}))

	_, err := LoadSnapshot(ctx, store)

	assert.ErrorIs(t, err, apperrors.ErrStorage)
	assert.ErrorIs(t, err, storage.ErrUnexpectedType)
}
