package cfg

import (
	"testing"
)

func TestGetVersion(t *testing.T) {
	// Test default version
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}

	// Test that version is at least "dev" or "unknown"
	version := GetVersion()
	if version != "dev" && version != "unknown" {
		// This is fine, version could be set at build time
		t.Logf("Version: %s", version)
	}
}

func TestConfigFields(t *testing.T) {
	// Create a config instance to test field access
	cfg := &Cfg{
		DBFile:       "test.db",
		Port:         "8080",
		SourcesFile:  "./sources.yml",
		WorkerCount:  5,
		FetchTimeout: 10,
		APIAccessKey: "test-key",
		UserAgent:    "Test Agent",
		Timezone:     "UTC",
		Debug:        true,
		Version:      "test-version",
	}

	// Test direct field access
	if cfg.DBFile != "test.db" {
		t.Errorf("Expected DB file 'test.db', got '%s'", cfg.DBFile)
	}
	if cfg.Port != "8080" {
		t.Errorf("Expected port '8080', got '%s'", cfg.Port)
	}
	if cfg.SourcesFile != "./sources.yml" {
		t.Errorf("Expected sources file './sources.yml', got '%s'", cfg.SourcesFile)
	}
	if cfg.WorkerCount != 5 {
		t.Errorf("Expected worker count 5, got %d", cfg.WorkerCount)
	}
	if cfg.FetchTimeout != 10 {
		t.Errorf("Expected fetch timeout 10, got %d", cfg.FetchTimeout)
	}
	if cfg.APIAccessKey != "test-key" {
		t.Errorf("Expected API key 'test-key', got '%s'", cfg.APIAccessKey)
	}
	if cfg.UserAgent != "Test Agent" {
		t.Errorf("Expected user agent 'Test Agent', got '%s'", cfg.UserAgent)
	}
	if cfg.Timezone != "UTC" {
		t.Errorf("Expected timezone 'UTC', got '%s'", cfg.Timezone)
	}
	if !cfg.Debug {
		t.Error("Expected debug to be enabled")
	}
	if cfg.Version != "test-version" {
		t.Errorf("Expected version 'test-version', got '%s'", cfg.Version)
	}
}
