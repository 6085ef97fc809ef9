package app

import (
	"context"

	apperrors "github.com/cristianoliveira/cbd-helper/internal/errors"
	"github.com/cristianoliveira/cbd-helper/internal/storage"
)

// Storage keys in the sync namespace.
const (
	KeyDataTypes           = "dataTypes"
	KeyDisabledDataTypes   = "disabledDataTypes"
	KeyContribPageLastOpen = "contribPageLastOpen"
)

// Snapshot is the persisted data type configuration.
type Snapshot struct {
	DataTypes         []string `json:"dataTypes"`
	DisabledDataTypes []string `json:"disabledDataTypes"`
}

// EnabledDataTypes returns the entries of DataTypes that are not disabled,
// in DataTypes order. Duplicates in DataTypes are kept.
func EnabledDataTypes(s Snapshot) []string {
	disabled := make(map[string]struct{}, len(s.DisabledDataTypes))
	for _, id := range s.DisabledDataTypes {
		disabled[id] = struct{}{}
	}
	enabled := make([]string, 0, len(s.DataTypes))
	for _, id := range s.DataTypes {
		if _, off := disabled[id]; !off {
			enabled = append(enabled, id)
		}
	}
	return enabled
}

// LoadSnapshot reads the data type configuration from the sync namespace.
// Missing keys load as empty lists.
func LoadSnapshot(ctx context.Context, store storage.Store) (Snapshot, error) {
	values, err := store.Get(ctx, storage.NamespaceSync, KeyDataTypes, KeyDisabledDataTypes)
	if err != nil {
		return Snapshot{}, apperrors.Storage("load data types", err)
	}
	dataTypes, err := storage.StringSlice(values[KeyDataTypes])
	if err != nil {
		return Snapshot{}, apperrors.Storage("load data types", err)
	}
	disabled, err := storage.StringSlice(values[KeyDisabledDataTypes])
	if err != nil {
		return Snapshot{}, apperrors.Storage("load disabled data types", err)
	}
	return Snapshot{DataTypes: dataTypes, DisabledDataTypes: disabled}, nil
}

// EnabledDataTypesFromStore loads the snapshot and resolves it.
func EnabledDataTypesFromStore(ctx context.Context, store storage.Store) ([]string, error) {
	snapshot, err := LoadSnapshot(ctx, store)
	if err != nil {
		return nil, err
	}
	return EnabledDataTypes(snapshot), nil
}
