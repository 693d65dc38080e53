// Package config provides unified configuration loading for gridsweep.
// It supports loading from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config contains all gridsweep configuration settings.
type Config struct {
	// Logging contains settings for operational and step-trace logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`

	// Render contains settings for the terminal display.
	Render RenderConfig `json:"render" yaml:"render"`

	// History contains settings for the run-history store.
	History HistoryConfig `json:"history" yaml:"history"`
}

// LoggingConfig configures gridsweep's logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	// "debug" enables step tracing to <history dir>/trace.jsonl.
	// "trace" additionally logs every move and clean to stderr.
	Level string `json:"level" yaml:"level"`
}

// RenderConfig configures the terminal display sink.
type RenderConfig struct {
	// DelayMS is the pacing delay between frames in milliseconds.
	// Purely cosmetic; zero renders as fast as the terminal allows.
	DelayMS int `json:"delay_ms" yaml:"delay_ms"`

	// Disabled suppresses frame output entirely (headless runs).
	Disabled bool `json:"disabled" yaml:"disabled"`
}

// HistoryConfig configures the SQLite run-history store.
type HistoryConfig struct {
	// Enabled turns run recording on.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Dir is the directory holding history.db and trace files.
	// Empty means ~/.gridsweep.
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info"},
		Render:  RenderConfig{DelayMS: 150},
		History: HistoryConfig{Enabled: true},
	}
}

// Load loads configuration from the default locations and environment variables.
// Order: defaults -> ~/.gridsweep/config.yaml -> environment variables
func Load() (*Config, error) {
	cfg := Default()

	homeDir, err := os.UserHomeDir()
	if err == nil {
		path := filepath.Join(homeDir, ".gridsweep", "config.yaml")
		if _, statErr := os.Stat(path); statErr == nil {
			fileCfg, loadErr := LoadFromFile(path)
			if loadErr != nil {
				return nil, fmt.Errorf("loading config file: %w", loadErr)
			}
			cfg = fileCfg
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromFile loads configuration from a specific YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// HistoryDir resolves the history directory, defaulting to ~/.gridsweep.
func (c *Config) HistoryDir() (string, error) {
	if c.History.Dir != "" {
		return c.History.Dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(homeDir, ".gridsweep"), nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	validLevels := map[string]bool{"info": true, "debug": true, "trace": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}

	if c.Render.DelayMS < 0 {
		return fmt.Errorf("delay_ms must be non-negative, got %d", c.Render.DelayMS)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("GRIDSWEEP_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}

	if v := os.Getenv("GRIDSWEEP_RENDER_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Render.DelayMS = n
		}
	}

	if v := os.Getenv("GRIDSWEEP_HISTORY_DIR"); v != "" {
		cfg.History.Dir = v
	}

	if v := os.Getenv("GRIDSWEEP_HISTORY_ENABLED"); v != "" {
		cfg.History.Enabled = v == "true" || v == "1"
	}
}
