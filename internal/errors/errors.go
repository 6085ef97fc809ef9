// Package errors defines the failure taxonomy shared by cbd-helper components
// and the handlers that surface failures to users.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Failure kinds. Components wrap collaborator errors with one of these so
// callers can classify them with errors.Is.
var (
	// ErrStorage marks a failed read or write against the persistent store.
	ErrStorage = stderrors.New("storage failure")

	// ErrHostAPI marks a failed tab or notification call into the host.
	ErrHostAPI = stderrors.New("host api failure")

	// ErrLocalizationMiss marks a lookup key without a translation.
	// Localization is treated as total, so this is only ever logged.
	ErrLocalizationMiss = stderrors.New("localization miss")
)

// Storage wraps err as a storage failure for the named operation.
// Returns nil when err is nil.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, stderrors.Join(ErrStorage, err))
}

// HostAPI wraps err as a host api failure for the named operation.
// Returns nil when err is nil.
func HostAPI(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, stderrors.Join(ErrHostAPI, err))
}

// Kind returns a short label for the failure class of err.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case stderrors.Is(err, ErrStorage):
		return "storage"
	case stderrors.Is(err, ErrHostAPI):
		return "host"
	case stderrors.Is(err, ErrLocalizationMiss):
		return "localization"
	default:
		return "unknown"
	}
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}
