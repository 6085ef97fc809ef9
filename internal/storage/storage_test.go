package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backends returns one instance of every Store implementation.
func backends(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()

	tomlStore, err := NewTOMLStore(filepath.Join(dir, "storage.toml"))
	require.NoError(t, err)
	sqliteStore, err := NewForBackend(BackendSQLite, filepath.Join(dir, "sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqliteStore.Close() })

	return map[string]Store{
		"memory": NewMemoryStore(),
		"toml":   tomlStore,
		"sqlite": sqliteStore,
	}
}

func TestBackendsRoundTripTypedValues(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Set(ctx, NamespaceSync, map[string]any{
				"dataTypes":           []string{"history", "cookies", "cache"},
				"disabledDataTypes":   []string{},
				"contribPageLastOpen": int64(1767225600123),
			}))

			types, err := GetStrings(ctx, s, NamespaceSync, "dataTypes")
			require.NoError(t, err)
			assert.Equal(t, []string{"history", "cookies", "cache"}, types)

			disabled, err := GetStrings(ctx, s, NamespaceSync, "disabledDataTypes")
			require.NoError(t, err)
			assert.Empty(t, disabled)

			missing, err := GetStrings(ctx, s, NamespaceSync, "nope")
			require.NoError(t, err)
			assert.Equal(t, []string{}, missing)

			ts, ok, err := GetInt64(ctx, s, NamespaceSync, "contribPageLastOpen")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, int64(1767225600123), ts)

			_, ok, err = GetInt64(ctx, s, NamespaceLocal, "contribPageLastOpen")
			require.NoError(t, err)
			assert.False(t, ok, "namespaces must be isolated")
		})
	}
}

func TestBackendsDeleteWithNil(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Set(ctx, NamespaceLocal, map[string]any{"a": "x", "b": "y"}))
			require.NoError(t, s.Set(ctx, NamespaceLocal, map[string]any{"a": nil}))

			all, err := s.Get(ctx, NamespaceLocal)
			require.NoError(t, err)
			assert.Equal(t, map[string]any{"b": "y"}, all)
		})
	}
}

func TestBackendsRejectInvalidInput(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Get(ctx, "managed", "a")
			assert.ErrorIs(t, err, ErrInvalidNamespace)
			assert.ErrorIs(t, s.Set(ctx, "", map[string]any{"a": 1}), ErrInvalidNamespace)
			_, err = s.Get(ctx, NamespaceSync, " ")
			assert.ErrorIs(t, err, ErrInvalidKey)
		})
	}
}

func TestStringSliceRejectsWrongShapes(t *testing.T) {
	_, err := StringSlice("history")
	assert.ErrorIs(t, err, ErrUnexpectedType)
	_, err = StringSlice([]any{"ok", 3})
	assert.ErrorIs(t, err, ErrUnexpectedType)
}

func TestInt64AcceptsDecodedNumbers(t *testing.T) {
	for _, v := range []any{int(5), int64(5), float64(5), json.Number("5"), "5"} {
		n, err := Int64(v)
		require.NoError(t, err)
		assert.Equal(t, int64(5), n)
	}
	_, err := Int64([]any{})
	assert.ErrorIs(t, err, ErrUnexpectedType)
}

func TestMemoryStoreDoesNotAliasCallerSlices(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	types := []string{"history"}
	require.NoError(t, s.Set(ctx, NamespaceSync, map[string]any{"dataTypes": types}))
	types[0] = "mutated"

	got, err := GetStrings(ctx, s, NamespaceSync, "dataTypes")
	require.NoError(t, err)
	assert.Equal(t, []string{"history"}, got)
}

func TestTOMLStoreFileLayout(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "storage.toml")
	s, err := NewTOMLStore(path)
	require.NoError(t, err)

	require.NoError(t, s.Set(ctx, NamespaceSync, map[string]any{"dataTypes": []string{"history"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[sync]")
	assert.Contains(t, string(data), "dataTypes")
	_, err = os.Stat(s.lockDir())
	assert.True(t, os.IsNotExist(err), "lock must be released after write")
}

func TestTOMLStoreConcurrentWritesLastWriteWins(t *testing.T) {
	ctx := context.Background()
	s, err := NewTOMLStore(filepath.Join(t.TempDir(), "storage.toml"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, s.Set(ctx, NamespaceSync, map[string]any{"contribPageLastOpen": int64(i)}))
		}(i)
	}
	wg.Wait()

	n, ok, err := GetInt64(ctx, s, NamespaceSync, "contribPageLastOpen")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, n, int64(0))
	assert.Less(t, n, int64(8))
}

func TestNewForBackendMigratesTOMLIntoSQLite(t *testing.T) {
	ctx := context.Background()
	stateDir := t.TempDir()

	legacy, err := NewForBackend(BackendTOML, stateDir)
	require.NoError(t, err)
	require.NoError(t, legacy.Set(ctx, NamespaceSync, map[string]any{"dataTypes": []string{"history", "downloads"}}))

	s, err := NewForBackend(BackendSQLite, stateDir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	types, err := GetStrings(ctx, s, NamespaceSync, "dataTypes")
	require.NoError(t, err)
	assert.Equal(t, []string{"history", "downloads"}, types)
}

func TestNewForBackendMemoryNeedsNoStateDir(t *testing.T) {
	s, err := NewForBackend(BackendMemory, "")
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	_, err = NewForBackend(BackendTOML, "")
	assert.Error(t, err)
}

func TestLockIsExclusive(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "x.lock")
	first := NewLock(dir)
	require.NoError(t, first.Acquire(ctx))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	assert.ErrorIs(t, NewLock(dir).Acquire(cancelled), context.Canceled)

	require.NoError(t, first.Release())
	require.NoError(t, WithLock(ctx, dir, func() error { return nil }))
}
