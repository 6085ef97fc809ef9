package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cristianoliveira/cbd-helper/internal/colors"
	"github.com/cristianoliveira/cbd-helper/internal/config"
	"github.com/cristianoliveira/cbd-helper/internal/storage/sqlite"
)

const (
	// BackendSQLite selects the SQLite store.
	BackendSQLite = "sqlite"
	// BackendTOML selects the TOML file store.
	BackendTOML = "toml"
	// BackendMemory selects a process-local store; nothing is persisted.
	BackendMemory = "memory"

	storageDBFileName   = "storage.db"
	storageTOMLFileName = "storage.toml"
)

var _ Store = (*sqlite.Store)(nil)

// NewFromConfig creates a storage backend based on configuration.
func NewFromConfig() (Store, error) {
	config.Load()
	return NewForBackend(config.Get("storage_backend", BackendSQLite), config.Get("state_dir", ""))
}

// NewForBackend creates the named backend with its files under stateDir.
// SQLite failures fall back to the TOML store with a warning.
func NewForBackend(backend, stateDir string) (Store, error) {
	backend = strings.ToLower(strings.TrimSpace(backend))
	if backend == BackendMemory {
		return NewMemoryStore(), nil
	}
	if strings.TrimSpace(stateDir) == "" {
		return nil, fmt.Errorf("storage: state_dir not configured")
	}
	if err := os.MkdirAll(stateDir, FileModeDir); err != nil {
		return nil, fmt.Errorf("storage: create state directory: %w", err)
	}
	tomlPath := filepath.Join(stateDir, storageTOMLFileName)
	dbPath := filepath.Join(stateDir, storageDBFileName)

	switch backend {
	case "", BackendSQLite:
		if err := maybeMigrateTOMLToSQLite(tomlPath, dbPath); err != nil {
			colors.Warning(fmt.Sprintf("sqlite migration failed, falling back to toml: %v", err))
			return NewTOMLStore(tomlPath)
		}
		store, err := sqlite.Open(dbPath)
		if err != nil {
			colors.Warning(fmt.Sprintf("failed to initialize sqlite backend, falling back to toml: %v", err))
			return NewTOMLStore(tomlPath)
		}
		return &validatingStore{Store: store}, nil
	case BackendTOML:
		return NewTOMLStore(tomlPath)
	default:
		colors.Warning(fmt.Sprintf("unknown storage backend '%s', falling back to sqlite", backend))
		return NewForBackend(BackendSQLite, stateDir)
	}
}

// validatingStore applies namespace and key checks in front of a backend
// that does not perform them itself.
type validatingStore struct {
	Store
}

func (v *validatingStore) Get(ctx context.Context, namespace string, keys ...string) (map[string]any, error) {
	if err := ValidateNamespace(namespace); err != nil {
		return nil, err
	}
	if err := validateKeys(keys); err != nil {
		return nil, err
	}
	return v.Store.Get(ctx, namespace, keys...)
}

func (v *validatingStore) Set(ctx context.Context, namespace string, values map[string]any) error {
	if err := ValidateNamespace(namespace); err != nil {
		return err
	}
	return v.Store.Set(ctx, namespace, values)
}

// maybeMigrateTOMLToSQLite imports an existing TOML store the first time the
// SQLite database is created. The TOML file is left in place.
func maybeMigrateTOMLToSQLite(tomlPath, dbPath string) error {
	dbExists, err := pathExists(dbPath)
	if err != nil {
		return fmt.Errorf("check sqlite database path: %w", err)
	}
	if dbExists {
		return nil
	}
	hasData, err := fileHasContent(tomlPath)
	if err != nil {
		return fmt.Errorf("check toml data: %w", err)
	}
	if !hasData {
		return nil
	}

	src, err := NewTOMLStore(tomlPath)
	if err != nil {
		return err
	}
	dst, err := sqlite.Open(dbPath)
	if err != nil {
		return err
	}
	defer dst.Close()

	stats, err := dst.Import(context.Background(), src, NamespaceSync, NamespaceLocal)
	if err != nil {
		_ = dst.Close()
		_ = os.Remove(dbPath)
		return fmt.Errorf("migrate toml to sqlite: %w", err)
	}
	colors.Info(fmt.Sprintf("Migrated %d settings from %s to SQLite", stats.Keys, tomlPath))
	return nil
}

func pathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func fileHasContent(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if info.IsDir() {
		return false, fmt.Errorf("expected file but found directory: %s", path)
	}
	return info.Size() > 0, nil
}
