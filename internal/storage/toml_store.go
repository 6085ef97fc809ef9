package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// TOMLStore persists every namespace as a table of a single TOML file:
//
//	[sync]
//	dataTypes = ["history", "cookies"]
//	contribPageLastOpen = 1767225600000
//
// Writes take a directory lock next to the file and replace it atomically.
type TOMLStore struct {
	path string
	mu   sync.RWMutex
}

var _ Store = (*TOMLStore)(nil)

// NewTOMLStore creates a store backed by the file at path. The file is
// created on first write.
func NewTOMLStore(path string) (*TOMLStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("toml store: path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), FileModeDir); err != nil {
		return nil, fmt.Errorf("toml store: create directory: %w", err)
	}
	return &TOMLStore{path: path}, nil
}

// Path returns the backing file path.
func (s *TOMLStore) Path() string { return s.path }

func (s *TOMLStore) lockDir() string { return s.path + ".lock" }

func (s *TOMLStore) read() (map[string]map[string]any, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]map[string]any{}, nil
		}
		return nil, fmt.Errorf("toml store: read %s: %w", s.path, err)
	}
	doc := map[string]map[string]any{}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("toml store: parse %s: %w", s.path, err)
	}
	return doc, nil
}

func (s *TOMLStore) write(doc map[string]map[string]any) error {
	data, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("toml store: encode: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("toml store: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("toml store: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("toml store: close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, FileModeFile); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("toml store: chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("toml store: replace %s: %w", s.path, err)
	}
	return nil
}

// Get implements Store.
func (s *TOMLStore) Get(ctx context.Context, namespace string, keys ...string) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ValidateNamespace(namespace); err != nil {
		return nil, err
	}
	if err := validateKeys(keys); err != nil {
		return nil, err
	}

	s.mu.RLock()
	doc, err := s.read()
	s.mu.RUnlock()
	if err != nil {
		return nil, err
	}

	area := doc[namespace]
	out := make(map[string]any)
	if len(keys) == 0 {
		for k, v := range area {
			out[k] = v
		}
		return out, nil
	}
	for _, k := range keys {
		if v, ok := area[k]; ok {
			out[k] = v
		}
	}
	return out, nil
}

// Set implements Store.
func (s *TOMLStore) Set(ctx context.Context, namespace string, values map[string]any) error {
	if err := ValidateNamespace(namespace); err != nil {
		return err
	}
	for k := range values {
		if k == "" {
			return ErrInvalidKey
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return WithLock(ctx, s.lockDir(), func() error {
		doc, err := s.read()
		if err != nil {
			return err
		}
		area, ok := doc[namespace]
		if !ok {
			area = make(map[string]any)
			doc[namespace] = area
		}
		for k, v := range values {
			if v == nil {
				delete(area, k)
				continue
			}
			area[k] = v
		}
		if len(area) == 0 {
			delete(doc, namespace)
		}
		return s.write(doc)
	})
}

// Close implements Store.
func (s *TOMLStore) Close() error { return nil }
