package sqlite

import (
	"context"
	"fmt"
)

// Source is anything that can list a namespace's entries.
type Source interface {
	Get(ctx context.Context, namespace string, keys ...string) (map[string]any, error)
}

// MigrationStats summarizes a migration run.
type MigrationStats struct {
	Namespaces int
	Keys       int
}

// Import copies every entry of the given namespaces from src into s.
// Existing keys in s are overwritten; each namespace is written in one transaction.
func (s *Store) Import(ctx context.Context, src Source, namespaces ...string) (MigrationStats, error) {
	var stats MigrationStats
	for _, ns := range namespaces {
		values, err := src.Get(ctx, ns)
		if err != nil {
			return stats, fmt.Errorf("migration: read %s: %w", ns, err)
		}
		if len(values) == 0 {
			continue
		}
		if err := s.Set(ctx, ns, values); err != nil {
			return stats, fmt.Errorf("migration: write %s: %w", ns, err)
		}
		stats.Namespaces++
		stats.Keys += len(values)
	}
	return stats, nil
}
