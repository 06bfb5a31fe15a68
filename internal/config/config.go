// Package config loads and validates the svg-embed YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-svg-embed/internal/fileutil"
	"github.com/alnah/go-svg-embed/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidDuration = errors.New("invalid duration")
)

// Field length limits.
const (
	MaxPathLength      = 4096 // generous filesystem limit
	MaxUserAgentLength = 512  // longest real-world UA strings are ~300 chars
)

// configDirName is the subdirectory of the user config dir searched for
// named configs.
const configDirName = "go-svg-embed"

// Config holds all configuration for the svg-embed CLI.
type Config struct {
	Input     string        `yaml:"input"`     // source SVG path
	Output    string        `yaml:"output"`    // embedded output path
	AssetsDir string        `yaml:"assetsDir"` // directory qualifying hrefs must lie under
	Refresh   RefreshConfig `yaml:"refresh"`
}

// RefreshConfig defines asset-refresher options. Durations are Go
// duration strings ("15s", "500ms"); empty means use the built-in default.
type RefreshConfig struct {
	Timeout   string `yaml:"timeout"`   // per-request timeout
	Delay     string `yaml:"delay"`     // pause between requests
	UserAgent string `yaml:"userAgent"` // empty = built-in browser UA
}

// DefaultConfig returns the configuration matching the original banner
// layout: source and output in the working directory, assets alongside.
func DefaultConfig() *Config {
	return &Config{
		Input:     "new_readme.svg",
		Output:    "new_readme_embedded.svg",
		AssetsDir: "assets",
	}
}

// Validate checks field lengths and duration syntax.
// Called automatically by LoadConfig, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("input", c.Input, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output", c.Output, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assetsDir", c.AssetsDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("refresh.userAgent", c.Refresh.UserAgent, MaxUserAgentLength); err != nil {
		return err
	}

	if _, err := parseDuration("refresh.timeout", c.Refresh.Timeout); err != nil {
		return err
	}
	if _, err := parseDuration("refresh.delay", c.Refresh.Delay); err != nil {
		return err
	}

	return nil
}

// Timeout returns the configured per-request timeout, or fallback if unset.
func (c *Config) Timeout(fallback time.Duration) (time.Duration, error) {
	return durationOr("refresh.timeout", c.Refresh.Timeout, fallback)
}

// Delay returns the configured inter-request delay, or fallback if unset.
func (c *Config) Delay(fallback time.Duration) (time.Duration, error) {
	return durationOr("refresh.delay", c.Refresh.Delay, fallback)
}

func durationOr(field, value string, fallback time.Duration) (time.Duration, error) {
	if value == "" {
		return fallback, nil
	}
	return parseDuration(field, value)
}

// parseDuration validates a duration field. Empty is allowed and means
// "use the default"; negative values are rejected.
func parseDuration(field, value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q", ErrInvalidDuration, field, value)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: %s: must not be negative, got %s", ErrInvalidDuration, field, d)
	}
	return d, nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the locations tried when resolving a config name,
// for use in error hints.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, configDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath searches for a config file by name in standard
// locations: current directory first, then the user config directory.
// Extensions tried in order: .yaml, .yml.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q (searched %s)", ErrConfigNotFound, name, strings.Join(tried, ", "))
}
