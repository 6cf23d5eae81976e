// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "carewell.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
environment: staging
api:
  base_url: https://staging.carewell.example/v1
  timeout: 30s
logging:
  level: debug
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Environment != Staging {
		t.Errorf("Environment = %q", cfg.Environment)
	}
	if cfg.API.BaseURL != "https://staging.carewell.example/v1" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.RequestTimeout() != 30*time.Second {
		t.Errorf("RequestTimeout = %v", cfg.API.RequestTimeout())
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q", cfg.Logging.Level)
	}
}

func TestEnvironmentOverridesApply(t *testing.T) {
	path := writeConfig(t, `
environment: production
api:
  base_url: http://localhost:4000
production:
  api:
    base_url: https://api.carewell.example/v1
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.API.BaseURL != "https://api.carewell.example/v1" {
		t.Errorf("BaseURL = %q, want the production override", cfg.API.BaseURL)
	}
}

func TestProductionDefaultsQuietLogs(t *testing.T) {
	path := writeConfig(t, `
environment: production
api:
  base_url: https://api.carewell.example/v1
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Level = %q, want warn in production", cfg.Logging.Level)
	}
}

func TestOverridesIgnoredForOtherEnvironment(t *testing.T) {
	path := writeConfig(t, `
environment: development
api:
  base_url: http://localhost:4000
staging:
  api:
    base_url: https://staging.carewell.example/v1
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:4000" {
		t.Errorf("BaseURL = %q, staging override must not apply", cfg.API.BaseURL)
	}
}

func TestVariableExpansion(t *testing.T) {
	path := writeConfig(t, `
paths:
  root: ${HOME}/carewell-state
  cache: ${CAREWELL_ROOT}/cache
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	home := os.Getenv("HOME")
	if cfg.Paths.Root != home+"/carewell-state" {
		t.Errorf("Root = %q", cfg.Paths.Root)
	}
	if cfg.Paths.Cache != home+"/carewell-state/cache" {
		t.Errorf("Cache = %q, want expansion against the expanded root", cfg.Paths.Cache)
	}
}

func TestVariableDefaultValue(t *testing.T) {
	if got := expandVars("${CAREWELL_NO_SUCH_VAR:-fallback}/x", nil); got != "fallback/x" {
		t.Errorf("expandVars = %q", got)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := Default()
	cfg.API.BaseURL = "api.carewell.example"
	cfg.API.Timeout = "soon"
	cfg.Logging.Level = "loud"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}
	for _, want := range []string{"base_url", "timeout", "logging.level"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate error %q missing %q", err, want)
		}
	}
}

func TestValidateRejectsTrailingSlash(t *testing.T) {
	cfg := Default()
	cfg.API.BaseURL = "https://api.carewell.example/"
	if err := cfg.Validate(); err == nil {
		t.Error("trailing slash must be rejected")
	}
}

func TestLoadRequiresEnvVar(t *testing.T) {
	t.Setenv("CAREWELL_CONFIG", "")
	if _, err := Load(); err == nil {
		t.Error("Load without CAREWELL_CONFIG must fail")
	}
}

func TestRequestTimeoutFallback(t *testing.T) {
	if got := (APIConfig{}).RequestTimeout(); got != 15*time.Second {
		t.Errorf("blank timeout = %v, want 15s", got)
	}
	if got := (APIConfig{Timeout: "-1s"}).RequestTimeout(); got != 15*time.Second {
		t.Errorf("negative timeout = %v, want 15s", got)
	}
}
