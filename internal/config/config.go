package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Application identity constants. The short name is part of every generated
// descriptor filename; the hyphenated name is the directory name under the
// XDG data and config roots.
const (
	AppName       = "Web Apps Manager"
	AppNameShort  = "webapps"
	AppNameHyphen = "webapps-manager"
)

const (
	// DefaultLogLevel is used when the config file does not set one.
	DefaultLogLevel = "info"
	// DefaultProbeTimeoutSeconds bounds a single browser install probe.
	DefaultProbeTimeoutSeconds = 5
	// DefaultProbeCacheSeconds is how long probe results are reused.
	DefaultProbeCacheSeconds = 30
)

// Config holds the application configuration.
type Config struct {
	LogLevel            string `json:"log_level"`
	ProbeTimeoutSeconds int    `json:"probe_timeout_seconds"`
	ProbeCacheSeconds   int    `json:"probe_cache_seconds"`
	// ApplicationsDir overrides the user applications directory where
	// generated descriptors are written. Empty means the XDG default.
	ApplicationsDir string `json:"applications_dir,omitempty"`
}

// LoadConfig loads the configuration from a JSON file, falling back to
// defaults for anything unset or unreadable.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{
		LogLevel:            DefaultLogLevel,
		ProbeTimeoutSeconds: DefaultProbeTimeoutSeconds,
		ProbeCacheSeconds:   DefaultProbeCacheSeconds,
	}

	if _, err := os.Stat(configPath); err == nil {
		data, err := os.ReadFile(configPath)
		if err == nil {
			if err := json.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
			}
		}
	}

	if config.LogLevel == "" {
		config.LogLevel = DefaultLogLevel
	}
	if config.ProbeTimeoutSeconds <= 0 {
		config.ProbeTimeoutSeconds = DefaultProbeTimeoutSeconds
	}
	if config.ProbeCacheSeconds <= 0 {
		config.ProbeCacheSeconds = DefaultProbeCacheSeconds
	}

	return config, nil
}

// SaveConfig saves the configuration to a JSON file.
func SaveConfig(config *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
