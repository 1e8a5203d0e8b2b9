package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the userprep tool configuration
type Config struct {
	// Input/output settings
	ProfilePath string `json:"profile_path"`          // Path to the credentials profile to normalize
	OutputPath  string `json:"output_path,omitempty"` // Where to write the normalized profile; empty skips writing

	// Display settings
	Language string `json:"language,omitempty"` // Locale for strength labels (default "en")

	// Logging settings
	AppLogPath string `json:"app_log_path,omitempty"` // Optional: path to application log file
	LogLevel   string `json:"log_level,omitempty"`    // debug, info, warn, error
}

// LoadConfig loads configuration from a JSON file
func LoadConfig(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := json.Unmarshal(data, config); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	// Resolve relative paths against the config file location
	configDir := filepath.Dir(path)
	if config.ProfilePath != "" && !filepath.IsAbs(config.ProfilePath) {
		config.ProfilePath = filepath.Join(configDir, config.ProfilePath)
	}
	if config.OutputPath != "" && !filepath.IsAbs(config.OutputPath) {
		config.OutputPath = filepath.Join(configDir, config.OutputPath)
	}
	if config.AppLogPath != "" && !filepath.IsAbs(config.AppLogPath) {
		config.AppLogPath = filepath.Join(configDir, config.AppLogPath)
	}

	// Defaults for optional settings
	if config.Language == "" {
		config.Language = "en"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}

	return nil
}
