package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadYAMLConfigMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := LoadYAMLConfig()
	if err != nil {
		t.Fatalf("LoadYAMLConfig() error = %v", err)
	}
	if len(cfg.BusinessTypes) == 0 || len(cfg.FocusAreas) == 0 || len(cfg.DefaultCategories) == 0 {
		t.Errorf("defaults must be populated, got %+v", cfg)
	}
}

func TestLoadYAMLConfigOverridesLists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "business_types:\n  - Cafe\n  - Gym\ndefault_categories:\n  - Coffee\n  - Seating\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_FILE", path)

	cfg, err := LoadYAMLConfig()
	if err != nil {
		t.Fatalf("LoadYAMLConfig() error = %v", err)
	}
	if len(cfg.BusinessTypes) != 2 || cfg.BusinessTypes[0] != "Cafe" {
		t.Errorf("BusinessTypes = %v, want [Cafe Gym]", cfg.BusinessTypes)
	}
	if len(cfg.DefaultCategories) != 2 || cfg.DefaultCategories[1] != "Seating" {
		t.Errorf("DefaultCategories = %v, want [Coffee Seating]", cfg.DefaultCategories)
	}
	// Unset lists keep their defaults.
	if len(cfg.FocusAreas) == 0 {
		t.Error("FocusAreas must fall back to defaults when not set in YAML")
	}
}

func TestLoadYAMLConfigMalformedFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("business_types: {not valid"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_FILE", path)

	if _, err := LoadYAMLConfig(); err == nil {
		t.Error("LoadYAMLConfig() on malformed YAML error = nil, want error")
	}
}
