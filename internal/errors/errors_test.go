package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingOutput struct {
	errors   []string
	warnings []string
}

func (r *recordingOutput) Error(msgs ...string)   { r.errors = append(r.errors, msgs...) }
func (r *recordingOutput) Warning(msgs ...string) { r.warnings = append(r.warnings, msgs...) }
func (r *recordingOutput) Info(msgs ...string)    {}
func (r *recordingOutput) Success(msgs ...string) {}

func TestWrapHelpersClassifyFailures(t *testing.T) {
	cause := stderrors.New("disk full")

	storageErr := Storage("write contribPageLastOpen", cause)
	require.Error(t, storageErr)
	assert.ErrorIs(t, storageErr, ErrStorage)
	assert.ErrorIs(t, storageErr, cause)
	assert.Contains(t, storageErr.Error(), "write contribPageLastOpen")
	assert.Equal(t, "storage", Kind(storageErr))

	hostErr := HostAPI("create tab", cause)
	assert.ErrorIs(t, hostErr, ErrHostAPI)
	assert.NotErrorIs(t, hostErr, ErrStorage)
	assert.Equal(t, "host", Kind(hostErr))

	assert.Equal(t, "unknown", Kind(cause))
	assert.Equal(t, "", Kind(nil))
}

func TestWrapHelpersPassNil(t *testing.T) {
	assert.NoError(t, Storage("read", nil))
	assert.NoError(t, HostAPI("read", nil))
}

func TestReportRoutesByKind(t *testing.T) {
	out := &recordingOutput{}
	h := NewCLIHandler(out)

	Report(h, Storage("read dataTypes", stderrors.New("locked")))
	Report(h, HostAPI("active tab", stderrors.New("no window")))
	Report(h, ErrLocalizationMiss)
	Report(h, nil)

	require.Len(t, out.errors, 2)
	assert.Contains(t, out.errors[0], "storage:")
	assert.Contains(t, out.errors[1], "browser host:")
	require.Len(t, out.warnings, 1)
}

func TestTUIHandlerKeepsLatest(t *testing.T) {
	var seen []Message
	h := NewTUIHandler(func(msg Message) { seen = append(seen, msg) })

	_, ok := h.GetLatest()
	assert.False(t, ok)

	h.Info("saved")
	h.Error("failed")

	latest, ok := h.GetLatest()
	require.True(t, ok)
	assert.Equal(t, "failed", latest.Text)
	assert.Equal(t, MessageTypeError, latest.Type)
	assert.Len(t, seen, 2)

	h.Clear()
	_, ok = h.GetLatest()
	assert.False(t, ok)
}
