// Package storage provides the namespaced key-value store that backs the
// extension's persisted settings, and the backends that implement it.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Namespaces mirror the browser storage areas.
const (
	// NamespaceSync holds settings that follow the user across devices.
	NamespaceSync = "sync"
	// NamespaceLocal holds per-device state.
	NamespaceLocal = "local"
)

// File permission constants.
const (
	FileModeDir  os.FileMode = 0755
	FileModeFile os.FileMode = 0644
)

var (
	// ErrInvalidNamespace is returned for an empty or unknown namespace.
	ErrInvalidNamespace = errors.New("invalid storage namespace")
	// ErrInvalidKey is returned for an empty key.
	ErrInvalidKey = errors.New("invalid storage key")
	// ErrUnexpectedType is returned by the typed accessors when a stored
	// value has an incompatible shape.
	ErrUnexpectedType = errors.New("unexpected stored value type")
)

// Store is a namespaced key-value store.
//
// Get returns the values present for keys; absent keys are omitted from the
// result. Calling Get without keys returns every entry in the namespace.
// Set writes all values; a nil value removes the key. Values are plain data
// (strings, numbers, booleans, lists) and come back in their decoded form, so
// callers should read them through the typed accessors below.
type Store interface {
	Get(ctx context.Context, namespace string, keys ...string) (map[string]any, error)
	Set(ctx context.Context, namespace string, values map[string]any) error
	Close() error
}

// ValidateNamespace rejects namespaces other than sync and local.
func ValidateNamespace(namespace string) error {
	switch namespace {
	case NamespaceSync, NamespaceLocal:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidNamespace, namespace)
	}
}

func validateKeys(keys []string) error {
	for _, k := range keys {
		if strings.TrimSpace(k) == "" {
			return ErrInvalidKey
		}
	}
	return nil
}

// StringSlice converts a stored list value into []string.
// A nil value yields an empty slice.
func StringSlice(value any) ([]string, error) {
	switch typed := value.(type) {
	case nil:
		return []string{}, nil
	case []string:
		out := make([]string, len(typed))
		copy(out, typed)
		return out, nil
	case []any:
		out := make([]string, 0, len(typed))
		for _, item := range typed {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: list item %T", ErrUnexpectedType, item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %T is not a list", ErrUnexpectedType, value)
	}
}

// Int64 converts a stored numeric value into int64.
func Int64(value any) (int64, error) {
	switch typed := value.(type) {
	case int:
		return int64(typed), nil
	case int64:
		return typed, nil
	case float64:
		return int64(typed), nil
	case json.Number:
		return typed.Int64()
	case string:
		return strconv.ParseInt(typed, 10, 64)
	default:
		return 0, fmt.Errorf("%w: %T is not a number", ErrUnexpectedType, value)
	}
}

// GetStrings reads a single list value. A missing key yields an empty slice.
func GetStrings(ctx context.Context, s Store, namespace, key string) ([]string, error) {
	values, err := s.Get(ctx, namespace, key)
	if err != nil {
		return nil, err
	}
	return StringSlice(values[key])
}

// GetInt64 reads a single numeric value. ok is false when the key is missing.
func GetInt64(ctx context.Context, s Store, namespace, key string) (n int64, ok bool, err error) {
	values, err := s.Get(ctx, namespace, key)
	if err != nil {
		return 0, false, err
	}
	raw, present := values[key]
	if !present {
		return 0, false, nil
	}
	n, err = Int64(raw)
	if err != nil {
		return 0, false, err
	}
	return n, true, nil
}

// normalize gives a value the shape it would have after a round trip through
// a persistent backend, so the memory store behaves like the others.
func normalize(value any) (any, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}
