package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestPrintHelpTextListsCommandsInOrder(t *testing.T) {
	root := &cobra.Command{Use: "cbd", Short: "Helpers."}
	for _, name := range []string{"version", "enabled", "unlisted", "labels"} {
		root.AddCommand(&cobra.Command{Use: name, Short: name + " short", Run: func(*cobra.Command, []string) {}})
	}
	var buf bytes.Buffer
	root.SetOut(&buf)

	printHelpText(root)

	out := buf.String()
	assert.Contains(t, out, "USAGE:\n    cbd [COMMAND] [OPTIONS]")
	assert.NotContains(t, out, "unlisted")
	enabled := bytes.Index(buf.Bytes(), []byte("enabled short"))
	labels := bytes.Index(buf.Bytes(), []byte("labels short"))
	ver := bytes.Index(buf.Bytes(), []byte("version short"))
	assert.True(t, enabled < labels && labels < ver, "commands follow commandOrder")
}

func TestSetupIsRepeatable(t *testing.T) {
	t.Setenv("CBD_CONFIG_DIR", t.TempDir())
	t.Setenv("CBD_STATE_DIR", t.TempDir())
	assert.NoError(t, Setup())
	assert.NoError(t, Setup())
}
