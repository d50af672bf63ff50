package controller

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/kacebover/algorithm-runner/catalog"
	"github.com/kacebover/algorithm-runner/logging"
	"github.com/kacebover/algorithm-runner/runner"
)

// Environment variables that override the config file
const (
	EnvTheme            = "ALGORUN_THEME"
	EnvMaxSteps         = "ALGORUN_MAX_STEPS"
	EnvCacheSize        = "ALGORUN_CACHE_SIZE"
	EnvLogLevel         = "ALGORUN_LOG_LEVEL"
	EnvDefaultAlgorithm = "ALGORUN_DEFAULT_ALGORITHM"
)

// AppConfig holds all application configuration
type AppConfig struct {
	// Runner settings
	MaxSteps  uint64 `json:"max_steps"`  // 0 = unlimited
	CacheSize int    `json:"cache_size"` // compiled programs kept, 0 = off

	// UI settings
	Theme            string `json:"theme"` // "dark", "light", "system"
	DefaultAlgorithm string `json:"default_algorithm"`
	MonospaceEditor  bool   `json:"monospace_editor"`

	// Window settings
	WindowWidth  int `json:"window_width"`
	WindowHeight int `json:"window_height"`

	// Logging
	LogLevel       string `json:"log_level"`
	LogDevelopment bool   `json:"log_development"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *AppConfig {
	evalDefaults := runner.DefaultEvaluatorConfig()

	return &AppConfig{
		MaxSteps:  evalDefaults.MaxSteps,
		CacheSize: evalDefaults.CacheSize,

		Theme:            "light",
		DefaultAlgorithm: "",
		MonospaceEditor:  true,

		WindowWidth:  1000,
		WindowHeight: 760,

		LogLevel:       "info",
		LogDevelopment: false,
	}
}

// getConfigDir returns the configuration directory path
func getConfigDir() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, "Library", "Application Support")
	default: // linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			homeDir, _ := os.UserHomeDir()
			configDir = filepath.Join(homeDir, ".config")
		}
	}

	return filepath.Join(configDir, "AlgorithmRunner")
}

// getConfigPath returns the full path to the config file
func getConfigPath() string {
	return filepath.Join(getConfigDir(), "config.json")
}

// LoadConfig loads .env, the user config file and environment overrides.
// Any problem with the file falls back to defaults.
func LoadConfig() *AppConfig {
	_ = godotenv.Load()
	return LoadConfigFrom(getConfigPath())
}

// LoadConfigFrom loads configuration from path, then applies environment
// overrides and validation
func LoadConfigFrom(path string) *AppConfig {
	config := DefaultConfig()

	if data, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(data, config); err != nil {
			config = DefaultConfig()
		}
	}

	config.applyEnv()
	config.ValidateConfig()
	return config
}

// applyEnv overrides fields from ALGORUN_* variables
func (c *AppConfig) applyEnv() {
	if v, ok := lookupEnv(EnvTheme); ok {
		c.Theme = v
	}
	if v, ok := lookupEnv(EnvMaxSteps); ok {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.MaxSteps = n
		}
	}
	if v, ok := lookupEnv(EnvCacheSize); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.CacheSize = n
		}
	}
	if v, ok := lookupEnv(EnvLogLevel); ok {
		c.LogLevel = v
	}
	if v, ok := lookupEnv(EnvDefaultAlgorithm); ok {
		c.DefaultAlgorithm = v
	}
}

func lookupEnv(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

// ValidateConfig validates and normalizes configuration values
func (c *AppConfig) ValidateConfig() {
	if c.CacheSize < 0 {
		c.CacheSize = 0
	}
	if c.CacheSize > 1024 {
		c.CacheSize = 1024
	}

	switch c.Theme {
	case "dark", "light", "system":
	default:
		c.Theme = "light"
	}

	if _, ok := catalog.Lookup(c.DefaultAlgorithm); !ok {
		c.DefaultAlgorithm = ""
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		c.LogLevel = "info"
	}

	if c.WindowWidth < 640 {
		c.WindowWidth = 640
	}
	if c.WindowHeight < 480 {
		c.WindowHeight = 480
	}
}

// EvaluatorConfig returns the runner settings
func (c *AppConfig) EvaluatorConfig() runner.EvaluatorConfig {
	return runner.EvaluatorConfig{
		MaxSteps:  c.MaxSteps,
		CacheSize: c.CacheSize,
	}
}

// Clone creates a copy of the config
func (c *AppConfig) Clone() *AppConfig {
	clone := *c
	return &clone
}
