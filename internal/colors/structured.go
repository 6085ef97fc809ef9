package colors

import (
	"encoding/json"
	"sync/atomic"
	"time"
)

var structuredLoggingEnabled atomic.Bool

func init() {
	structuredLoggingEnabled.Store(true)
}

// StructuredLogLevel represents log level for structured logs.
type StructuredLogLevel string

const (
	LevelDebug StructuredLogLevel = "debug"
	LevelInfo  StructuredLogLevel = "info"
	LevelWarn  StructuredLogLevel = "warn"
	LevelError StructuredLogLevel = "error"
)

// StructuredLogEntry is one JSON line written to stderr in debug mode.
type StructuredLogEntry struct {
	Timestamp string             `json:"timestamp"`
	Level     StructuredLogLevel `json:"level"`
	Component string             `json:"component"`
	Action    string             `json:"action"`
	Status    string             `json:"status"`
	Error     string             `json:"error,omitempty"`
	Ref       string             `json:"ref,omitempty"`
	Fields    map[string]any     `json:"fields,omitempty"`
}

// DisableStructuredLogging turns structured output off.
// The options page does this so JSON lines do not corrupt the terminal UI.
func DisableStructuredLogging() {
	structuredLoggingEnabled.Store(false)
}

// EnableStructuredLogging turns structured output back on.
func EnableStructuredLogging() {
	structuredLoggingEnabled.Store(true)
}

// StructuredLog writes a structured log entry to stderr when debug is enabled.
func StructuredLog(level StructuredLogLevel, component, action, status string, err error, ref string, fields map[string]any) {
	if !debugEnabled || !structuredLoggingEnabled.Load() {
		return
	}

	entry := StructuredLogEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     level,
		Component: component,
		Action:    action,
		Status:    status,
		Ref:       ref,
		Fields:    fields,
	}
	if err != nil {
		entry.Error = err.Error()
	}

	data, marshalErr := json.Marshal(entry)
	if marshalErr != nil {
		emit(stderr, "failed to marshal structured log: %v\n", marshalErr)
		return
	}
	emit(stderr, "%s\n", data)
}

// StructuredDebug logs a structured debug entry.
func StructuredDebug(component, action, status string, err error, ref string, fields map[string]any) {
	StructuredLog(LevelDebug, component, action, status, err, ref, fields)
}

// StructuredInfo logs a structured info entry.
func StructuredInfo(component, action, status string, err error, ref string, fields map[string]any) {
	StructuredLog(LevelInfo, component, action, status, err, ref, fields)
}

// StructuredWarn logs a structured warning entry.
func StructuredWarn(component, action, status string, err error, ref string, fields map[string]any) {
	StructuredLog(LevelWarn, component, action, status, err, ref, fields)
}

// StructuredError logs a structured error entry.
func StructuredError(component, action, status string, err error, ref string, fields map[string]any) {
	StructuredLog(LevelError, component, action, status, err, ref, fields)
}

