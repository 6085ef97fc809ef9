package storage

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore keeps values in process memory. It is used by tests and by the
// memory storage backend.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]map[string]any
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]map[string]any)}
}

// Get implements Store.
func (m *MemoryStore) Get(ctx context.Context, namespace string, keys ...string) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ValidateNamespace(namespace); err != nil {
		return nil, err
	}
	if err := validateKeys(keys); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	area := m.data[namespace]
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
func (m *MemoryStore) Set(ctx context.Context, namespace string, values map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ValidateNamespace(namespace); err != nil {
		return err
	}

	normalized := make(map[string]any, len(values))
	for k, v := range values {
		if k == "" {
			return ErrInvalidKey
		}
		if v == nil {
			normalized[k] = nil
			continue
		}
		n, err := normalize(v)
		if err != nil {
			return fmt.Errorf("memory store: encode %s: %w", k, err)
		}
		normalized[k] = n
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	area, ok := m.data[namespace]
	if !ok {
		area = make(map[string]any)
		m.data[namespace] = area
	}
	for k, v := range normalized {
		if v == nil {
			delete(area, k)
			continue
		}
		area[k] = v
	}
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error { return nil }
