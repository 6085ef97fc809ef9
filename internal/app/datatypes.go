package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/cristianoliveira/cbd-helper/internal/colors"
	apperrors "github.com/cristianoliveira/cbd-helper/internal/errors"
	"github.com/cristianoliveira/cbd-helper/internal/storage"
)

// DataTypesUseCase edits the persisted data type configuration.
type DataTypesUseCase struct {
	store storage.Store
}

// NewDataTypesUseCase creates a data types use-case.
func NewDataTypesUseCase(store storage.Store) *DataTypesUseCase {
	if store == nil {
		panic("NewDataTypesUseCase: store dependency cannot be nil")
	}
	return &DataTypesUseCase{store: store}
}

// Show returns the stored snapshot.
func (u *DataTypesUseCase) Show(ctx context.Context) (Snapshot, error) {
	return LoadSnapshot(ctx, u.store)
}

// Set replaces the list of known data types. Disabled entries that are no
// longer known are dropped.
func (u *DataTypesUseCase) Set(ctx context.Context, dataTypes []string) error {
	cleaned := cleanIDs(dataTypes)
	if len(cleaned) == 0 {
		return fmt.Errorf("datatypes: at least one data type is required")
	}
	snapshot, err := LoadSnapshot(ctx, u.store)
	if err != nil {
		return err
	}
	disabled := lo.Filter(snapshot.DisabledDataTypes, func(id string, _ int) bool {
		return lo.Contains(cleaned, id)
	})
	return u.save(ctx, map[string]any{
		KeyDataTypes:         cleaned,
		KeyDisabledDataTypes: disabled,
	})
}

// Disable adds ids to the disabled list. Unknown ids are rejected.
func (u *DataTypesUseCase) Disable(ctx context.Context, ids ...string) error {
	snapshot, err := LoadSnapshot(ctx, u.store)
	if err != nil {
		return err
	}
	disabled := snapshot.DisabledDataTypes
	for _, id := range cleanIDs(ids) {
		if !lo.Contains(snapshot.DataTypes, id) {
			return fmt.Errorf("datatypes: unknown data type %q", id)
		}
		if !lo.Contains(disabled, id) {
			disabled = append(disabled, id)
		}
	}
	return u.save(ctx, map[string]any{KeyDisabledDataTypes: disabled})
}

// Enable removes ids from the disabled list.
func (u *DataTypesUseCase) Enable(ctx context.Context, ids ...string) error {
	snapshot, err := LoadSnapshot(ctx, u.store)
	if err != nil {
		return err
	}
	remove := cleanIDs(ids)
	for _, id := range lo.Without(remove, snapshot.DisabledDataTypes...) {
		colors.Warning(fmt.Sprintf("data type %q is not disabled", id))
	}
	disabled := lo.Without(snapshot.DisabledDataTypes, remove...)
	return u.save(ctx, map[string]any{KeyDisabledDataTypes: disabled})
}

// Toggle flips id between enabled and disabled and reports whether it is
// enabled afterwards.
func (u *DataTypesUseCase) Toggle(ctx context.Context, id string) (bool, error) {
	snapshot, err := LoadSnapshot(ctx, u.store)
	if err != nil {
		return false, err
	}
	if lo.Contains(snapshot.DisabledDataTypes, id) {
		return true, u.Enable(ctx, id)
	}
	return false, u.Disable(ctx, id)
}

func (u *DataTypesUseCase) save(ctx context.Context, values map[string]any) error {
	if err := u.store.Set(ctx, storage.NamespaceSync, values); err != nil {
		return apperrors.Storage("save data types", err)
	}
	return nil
}

// cleanIDs trims ids, drops empty ones and removes repeats.
func cleanIDs(ids []string) []string {
	return lo.Uniq(lo.Compact(lo.Map(ids, func(id string, _ int) string {
		return strings.TrimSpace(id)
	})))
}
