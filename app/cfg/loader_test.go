package cfg

import (
	"testing"
)

func TestGetVersion(t *testing.T) {
	// Test default version
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}

	version := GetVersion()
	if version != "dev" && version != "unknown" {
		// This is fine, version could be set at build time
		t.Logf("Version: %s", version)
	}
}

func TestConfigFields(t *testing.T) {
	cfg := &Cfg{
		StoreURL:        "redis://localhost:6379/0",
		Port:            "8080",
		RefreshInterval: 30,
		SampleNewsLimit: 50,
		RulesFile:       "./rules.yaml",
		APIAccessKey:    "test-key",
		Timezone:        "UTC",
		Debug:           true,
		Version:         "test-version",
	}

	if cfg.StoreURL != "redis://localhost:6379/0" {
		t.Errorf("Expected store URL 'redis://localhost:6379/0', got '%s'", cfg.StoreURL)
	}
	if cfg.Port != "8080" {
		t.Errorf("Expected port '8080', got '%s'", cfg.Port)
	}
	if cfg.RefreshInterval != 30 {
		t.Errorf("Expected refresh interval 30, got %d", cfg.RefreshInterval)
	}
	if cfg.SampleNewsLimit != 50 {
		t.Errorf("Expected sample news limit 50, got %d", cfg.SampleNewsLimit)
	}
	if cfg.RulesFile != "./rules.yaml" {
		t.Errorf("Expected rules file './rules.yaml', got '%s'", cfg.RulesFile)
	}
	if cfg.APIAccessKey != "test-key" {
		t.Errorf("Expected API key 'test-key', got '%s'", cfg.APIAccessKey)
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
