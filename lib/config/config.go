// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for Carewell tools.
//
// Configuration is loaded from a single file specified by:
//   - CAREWELL_CONFIG environment variable, or
//   - --config flag passed to the command
//
// There are no fallbacks or automatic discovery. This ensures deterministic,
// auditable configuration with no hidden overrides.
//
// The config file may contain environment-specific sections (development,
// staging, production) that override base values when the environment matches.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment represents the deployment environment.
type Environment string

const (
	// Development is for local development machines.
	Development Environment = "development"
	// Staging is for pre-production testing.
	Staging Environment = "staging"
	// Production is for production deployments.
	Production Environment = "production"
)

// Config is the master configuration for the Carewell tools.
type Config struct {
	// Environment identifies the deployment type (development, staging, production).
	Environment Environment `yaml:"environment"`

	// API configures the hospital content API endpoint.
	API APIConfig `yaml:"api"`

	// Paths configures directory locations.
	Paths PathsConfig `yaml:"paths"`

	// Logging configures the structured log output.
	Logging LoggingConfig `yaml:"logging"`

	// EnvironmentOverrides contains per-environment overrides.
	// These are applied after the base config is loaded.
	Development *ConfigOverrides `yaml:"development,omitempty"`
	Staging     *ConfigOverrides `yaml:"staging,omitempty"`
	Production  *ConfigOverrides `yaml:"production,omitempty"`
}

// ConfigOverrides contains fields that can be overridden per environment.
type ConfigOverrides struct {
	API     *APIConfig     `yaml:"api,omitempty"`
	Paths   *PathsConfig   `yaml:"paths,omitempty"`
	Logging *LoggingConfig `yaml:"logging,omitempty"`
}

// APIConfig configures the hospital content API endpoint.
type APIConfig struct {
	// BaseURL is the root of the API, without a trailing slash.
	// Example: https://api.carewell.example/v1
	BaseURL string `yaml:"base_url"`

	// Timeout is the per-request deadline as a duration string.
	// Default: 15s
	Timeout string `yaml:"timeout"`
}

// RequestTimeout parses the configured timeout. A blank or invalid
// value falls back to 15 seconds.
func (a APIConfig) RequestTimeout() time.Duration {
	timeout, err := time.ParseDuration(a.Timeout)
	if err != nil || timeout <= 0 {
		return 15 * time.Second
	}
	return timeout
}

// PathsConfig configures directory locations.
type PathsConfig struct {
	// Root is the base directory for Carewell state.
	Root string `yaml:"root"`

	// Credentials is where the sealed token and its identity live.
	Credentials string `yaml:"credentials"`

	// Cache is where session snapshots are written.
	Cache string `yaml:"cache"`

	// Prefs is the dashboard preferences file.
	Prefs string `yaml:"prefs"`
}

// LoggingConfig configures the structured log output.
type LoggingConfig struct {
	// Level is the minimum level emitted: debug, info, warn, error.
	// Default: info
	Level string `yaml:"level"`

	// File is an optional log file path. Blank logs to stderr.
	File string `yaml:"file"`
}

// Default returns the default configuration.
// These defaults are used as a base before loading the config file.
// They exist primarily to ensure all fields have sensible zero-values,
// not as a fallback - the config file is required.
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultRoot := filepath.Join(homeDir, ".config", "carewell")

	return &Config{
		Environment: Development,
		API: APIConfig{
			BaseURL: "http://localhost:4000",
			Timeout: "15s",
		},
		Paths: PathsConfig{
			Root:        defaultRoot,
			Credentials: filepath.Join(defaultRoot, "credentials"),
			Cache:       filepath.Join(defaultRoot, "cache"),
			Prefs:       filepath.Join(defaultRoot, "prefs.jsonc"),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from the CAREWELL_CONFIG environment variable.
//
// This is the only way to load configuration without an explicit path.
// There are no fallbacks or defaults - if CAREWELL_CONFIG is not set, this fails.
// This ensures deterministic, auditable configuration with no hidden overrides.
func Load() (*Config, error) {
	configPath := os.Getenv("CAREWELL_CONFIG")
	if configPath == "" {
		return nil, fmt.Errorf("CAREWELL_CONFIG environment variable not set; " +
			"set it to the path of your carewell.yaml config file, or use --config flag")
	}

	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path.
//
// The config file is the single source of truth. Environment variables do not
// override config values - this ensures deterministic, auditable configuration.
// The only expansion performed is ${HOME} and similar path variables for portability.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}

	// Apply environment-specific overrides (development/staging/production sections in the file).
	cfg.applyEnvironmentOverrides()

	// Expand ${HOME} and similar variables in paths for portability.
	cfg.expandVariables()

	return cfg, nil
}

// loadFile loads a single configuration file, merging into the current config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, c)
}

// applyEnvironmentOverrides applies the environment-specific overrides.
func (c *Config) applyEnvironmentOverrides() {
	var overrides *ConfigOverrides

	switch c.Environment {
	case Development:
		overrides = c.Development
	case Staging:
		overrides = c.Staging
	case Production:
		overrides = c.Production
		// Production defaults: quieter logs.
		if overrides == nil {
			overrides = &ConfigOverrides{
				Logging: &LoggingConfig{Level: "warn"},
			}
		}
	}

	if overrides == nil {
		return
	}

	if overrides.API != nil {
		if overrides.API.BaseURL != "" {
			c.API.BaseURL = overrides.API.BaseURL
		}
		if overrides.API.Timeout != "" {
			c.API.Timeout = overrides.API.Timeout
		}
	}

	if overrides.Paths != nil {
		if overrides.Paths.Root != "" {
			c.Paths.Root = overrides.Paths.Root
		}
		if overrides.Paths.Credentials != "" {
			c.Paths.Credentials = overrides.Paths.Credentials
		}
		if overrides.Paths.Cache != "" {
			c.Paths.Cache = overrides.Paths.Cache
		}
		if overrides.Paths.Prefs != "" {
			c.Paths.Prefs = overrides.Paths.Prefs
		}
	}

	if overrides.Logging != nil {
		if overrides.Logging.Level != "" {
			c.Logging.Level = overrides.Logging.Level
		}
		if overrides.Logging.File != "" {
			c.Logging.File = overrides.Logging.File
		}
	}
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"CAREWELL_ROOT": c.Paths.Root,
		"HOME":          os.Getenv("HOME"),
	}

	c.Paths.Root = expandVars(c.Paths.Root, vars)
	vars["CAREWELL_ROOT"] = c.Paths.Root // Update for dependent paths.

	c.Paths.Credentials = expandVars(c.Paths.Credentials, vars)
	c.Paths.Cache = expandVars(c.Paths.Cache, vars)
	c.Paths.Prefs = expandVars(c.Paths.Prefs, vars)
	c.Logging.File = expandVars(c.Logging.File, vars)
}

// expandVars expands ${VAR} and ${VAR:-default} patterns.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Environment != Development && c.Environment != Staging && c.Environment != Production {
		errs = append(errs, fmt.Errorf("invalid environment: %s", c.Environment))
	}

	if c.API.BaseURL == "" {
		errs = append(errs, fmt.Errorf("api.base_url is required"))
	} else if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		errs = append(errs, fmt.Errorf("api.base_url must start with http:// or https://"))
	}
	if strings.HasSuffix(c.API.BaseURL, "/") {
		errs = append(errs, fmt.Errorf("api.base_url must not end with a slash"))
	}

	if c.API.Timeout != "" {
		if _, err := time.ParseDuration(c.API.Timeout); err != nil {
			errs = append(errs, fmt.Errorf("api.timeout is not a valid duration: %q", c.API.Timeout))
		}
	}

	if c.Paths.Root == "" {
		errs = append(errs, fmt.Errorf("paths.root is required"))
	}

	levels := []string{"debug", "info", "warn", "error"}
	if !contains(levels, c.Logging.Level) {
		errs = append(errs, fmt.Errorf("logging.level must be one of: %v", levels))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// EnsurePaths creates all configured directories if they don't exist.
func (c *Config) EnsurePaths() error {
	paths := []string{
		c.Paths.Root,
		c.Paths.Credentials,
		c.Paths.Cache,
	}

	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := os.MkdirAll(path, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
	}

	return nil
}

func contains(slice []string, s string) bool {
	for _, v := range slice {
		if v == s {
			return true
		}
	}
	return false
}
