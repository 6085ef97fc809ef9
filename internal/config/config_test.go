package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "state"))
	t.Setenv("CBD_CONFIG_PATH", "")
	return tmp
}

func TestLoadDefaults(t *testing.T) {
	tmp := isolate(t)
	Load()

	require.Equal(t, filepath.Join(tmp, "config", appName), Get("config_dir", ""))
	require.Equal(t, filepath.Join(tmp, "state", appName), Get("state_dir", ""))
	require.Equal(t, "sqlite", Get("storage_backend", ""))
	require.Equal(t, "tmux", Get("host_backend", ""))
	require.Equal(t, DefaultProjectURL, Get("project_url", ""))
	require.Equal(t, 4000, GetInt("notification_duration_ms", 0))
	require.False(t, GetBool("debug", true))
	require.Equal(t, "default", Get("missing", "default"))
}

func TestLoadingPrecedence(t *testing.T) {
	tmp := isolate(t)
	configFile := filepath.Join(tmp, "cbd.toml")
	content := `
storage_backend = "toml"
host_backend = "desktop"
notification_duration_ms = 1500
logging_enabled = true
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), FileModeFile))
	t.Setenv("CBD_CONFIG_PATH", configFile)
	t.Setenv("CBD_STORAGE_BACKEND", "memory")

	Load()

	require.Equal(t, "memory", Get("storage_backend", ""), "environment should override config file")
	require.Equal(t, "desktop", Get("host_backend", ""))
	require.Equal(t, 1500, GetInt("notification_duration_ms", 0))
	require.True(t, GetBool("logging_enabled", false))
}

func TestInvalidValuesFallBackToDefaults(t *testing.T) {
	isolate(t)
	t.Setenv("CBD_STORAGE_BACKEND", "postgres")
	t.Setenv("CBD_NOTIFICATION_DURATION_MS", "-5")
	t.Setenv("CBD_DEBUG", "maybe")
	t.Setenv("CBD_PROJECT_URL", "not a url")

	Load()

	require.Equal(t, "sqlite", Get("storage_backend", ""))
	require.Equal(t, "4000", Get("notification_duration_ms", ""))
	require.Equal(t, "false", Get("debug", ""))
	require.Equal(t, DefaultProjectURL, Get("project_url", ""))
}

func TestURLValidatorTrimsTrailingSlash(t *testing.T) {
	v := URLValidator()
	got, err := v("extension_base_url", "moz-extension://abc/", "")
	require.NoError(t, err)
	require.Equal(t, "moz-extension://abc", got)
}

func TestLocalesDirFollowsConfigDir(t *testing.T) {
	tmp := isolate(t)
	custom := filepath.Join(tmp, "custom")
	t.Setenv("CBD_CONFIG_DIR", custom)

	Load()

	require.Equal(t, filepath.Join(custom, "_locales"), Get("locales_dir", ""))
}

func TestRegisterValidatorPanicsOnDuplicate(t *testing.T) {
	require.Panics(t, func() {
		RegisterValidator("debug", BoolValidator())
	})
}

func TestDotenvSitsBetweenFileAndEnvironment(t *testing.T) {
	tmp := isolate(t)
	configDir := filepath.Join(tmp, "config", appName)
	require.NoError(t, os.MkdirAll(configDir, FileModeDir))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"),
		[]byte("browser_command = \"lynx\"\nlocale = \"fr\"\n"), FileModeFile))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, ".env"), []byte(`
# local overrides
CBD_LOCALE=de
CBD_HOST_BACKEND=desktop
CBD_CONFIG_PATH=/ignored.toml
OTHER_APP_SETTING=1
`), FileModeFile))
	t.Setenv("CBD_HOST_BACKEND", "tmux")

	Load()

	require.Equal(t, "lynx", Get("browser_command", ""))
	require.Equal(t, "de", Get("locale", ""), ".env should override config file")
	require.Equal(t, "tmux", Get("host_backend", ""), "environment should override .env")
	require.Equal(t, "", Get("other_app_setting", ""))
	require.Equal(t, "", Get("config_path", ""))
	_, set := os.LookupEnv("CBD_LOCALE")
	require.False(t, set, ".env must not leak into the process environment")
}
