// Package config provides configuration loading.
//
// Values are resolved in order: defaults, CBD_* environment variables,
// {config_dir}/config.toml (or CBD_CONFIG_PATH), CBD_* entries of
// {config_dir}/.env, then the environment again so that it always wins over
// the files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/cristianoliveira/cbd-helper/internal/colors"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

const (
	// FileModeDir is the permission for directories (rwxr-xr-x).
	FileModeDir os.FileMode = 0755
	// FileModeFile is the permission for data files (rw-r--r--).
	FileModeFile os.FileMode = 0644

	// FileExtTOML is the file extension for TOML configuration files.
	FileExtTOML = ".toml"

	envPrefix  = "CBD_"
	appName    = "cbd-helper"
	dotenvFile = ".env"
)

// DefaultProjectURL is the project homepage opened by the project page launcher.
const DefaultProjectURL = "https://github.com/dessant/clear-browsing-data"

var (
	config    map[string]string
	configMap map[string]string
	mu        sync.RWMutex
)

func init() {
	initValidators()
}

// Load initializes configuration.
func Load() {
	mu.Lock()
	defer mu.Unlock()

	config = make(map[string]string)
	configMap = make(map[string]string)

	setDefaults()
	loadFromEnv()
	loadFromFile()
	loadFromDotenv()
	loadFromEnv()
	validate()
	computeDirs()
}

func setDefaults() {
	home, _ := os.UserHomeDir()
	xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfigHome == "" {
		xdgConfigHome = filepath.Join(home, ".config")
	}
	xdgStateHome := os.Getenv("XDG_STATE_HOME")
	if xdgStateHome == "" {
		xdgStateHome = filepath.Join(home, ".local", "state")
	}

	configDir := filepath.Join(xdgConfigHome, appName)
	stateDir := filepath.Join(xdgStateHome, appName)

	setDefault("config_dir", configDir)
	setDefault("state_dir", stateDir)
	setDefault("storage_backend", "sqlite")
	setDefault("host_backend", "tmux")
	setDefault("locales_dir", filepath.Join(configDir, "_locales"))
	setDefault("locale", "")
	setDefault("default_locale", "en")
	setDefault("extension_base_url", "file://"+filepath.Join(configDir, "extension"))
	setDefault("project_url", DefaultProjectURL)
	setDefault("browser_command", "w3m")
	setDefault("notification_duration_ms", "4000")
	setDefault("tmux_socket", "")
	setDefault("debug", "false")
	setDefault("logging_enabled", "false")
	setDefault("logging_level", "info")
	setDefault("logging_max_files", "10")
}

func setDefault(key, value string) {
	config[key] = value
	configMap[key] = value
}

func loadFromFile() {
	configPath := os.Getenv(envPrefix + "CONFIG_PATH")
	if configPath == "" {
		if configDir, ok := config["config_dir"]; ok {
			configPath = filepath.Join(configDir, "config"+FileExtTOML)
			if _, err := os.Stat(configPath); err != nil {
				configPath = ""
			}
		}
	}
	if configPath == "" {
		return
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		colors.Debug(fmt.Sprintf("unable to read config file %s: %v", configPath, err))
		return
	}

	if !strings.EqualFold(filepath.Ext(configPath), FileExtTOML) {
		colors.Warning(fmt.Sprintf("unsupported config file format: %s", configPath))
		return
	}
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		colors.Warning(fmt.Sprintf("unable to parse config file %s: %v", configPath, err))
		return
	}

	for k, v := range raw {
		key := strings.ToLower(k)
		converted, ok := coerceConfigValue(v)
		if !ok {
			colors.Warning(fmt.Sprintf("unsupported config value type for %s: %T", key, v))
			continue
		}
		config[key] = converted
	}
}

// loadFromDotenv applies CBD_* entries of {config_dir}/.env without touching
// the process environment.
func loadFromDotenv() {
	configDir := config["config_dir"]
	if configDir == "" {
		return
	}
	path := filepath.Join(configDir, dotenvFile)
	if _, err := os.Stat(path); err != nil {
		return
	}
	entries, err := godotenv.Read(path)
	if err != nil {
		colors.Warning(fmt.Sprintf("unable to parse %s: %v", path, err))
		return
	}
	for name, value := range entries {
		if key, ok := envKey(name); ok {
			config[key] = value
		}
	}
}

// envKey maps CBD_FOO_BAR to foo_bar. CBD_CONFIG_PATH is not a config key.
func envKey(name string) (string, bool) {
	if !strings.HasPrefix(name, envPrefix) {
		return "", false
	}
	key := strings.ToLower(strings.TrimPrefix(name, envPrefix))
	if key == "" || key == "config_path" {
		return "", false
	}
	return key, true
}

// coerceConfigValue converts a TOML value to its string representation.
func coerceConfigValue(value any) (string, bool) {
	switch typed := value.(type) {
	case string:
		return typed, true
	case int:
		return strconv.Itoa(typed), true
	case int64:
		return strconv.FormatInt(typed, 10), true
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(typed), true
	default:
		return "", false
	}
}

func loadFromEnv() {
	for _, env := range os.Environ() {
		name, value, found := strings.Cut(env, "=")
		if !found {
			continue
		}
		if key, ok := envKey(name); ok {
			config[key] = value
		}
	}
}

func validate() {
	for key, value := range config {
		validator := getValidator(key)
		if validator == nil {
			continue
		}
		defaultValue := configMap[key]
		normalizedValue, err := validator(key, value, defaultValue)
		if err != nil {
			colors.Warning(fmt.Sprintf("validation error for %s: %v, using default: %s", key, err, defaultValue))
			config[key] = defaultValue
		} else {
			config[key] = normalizedValue
		}
	}
}

// computeDirs keeps locales_dir under config_dir when only config_dir was overridden.
func computeDirs() {
	configDir := config["config_dir"]
	if configDir == "" {
		return
	}
	if config["locales_dir"] == configMap["locales_dir"] && configDir != filepath.Dir(configMap["locales_dir"]) {
		config["locales_dir"] = filepath.Join(configDir, "_locales")
	}
}

// Get returns a configuration value or default.
func Get(key, defaultValue string) string {
	mu.RLock()
	defer mu.RUnlock()
	if val, ok := config[key]; ok {
		return val
	}
	return defaultValue
}

// GetInt returns a configuration value as integer, or default.
func GetInt(key string, defaultValue int) int {
	mu.RLock()
	defer mu.RUnlock()
	val, ok := config[key]
	if !ok {
		return defaultValue
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return n
}

// GetBool returns a configuration value as boolean, or default.
func GetBool(key string, defaultValue bool) bool {
	mu.RLock()
	defer mu.RUnlock()
	val, ok := config[key]
	if !ok {
		return defaultValue
	}
	switch strings.ToLower(val) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return defaultValue
	}
}
