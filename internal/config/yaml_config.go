package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLConfig customizes the option lists offered on the company setup
// form. Kept in YAML because these are small curated lists that are
// awkward to express as env vars.
type YAMLConfig struct {
	BusinessTypes     []string `yaml:"business_types"`
	FocusAreas        []string `yaml:"focus_areas"`
	DefaultCategories []string `yaml:"default_categories"`
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// Returns built-in defaults without error if the config file doesn't exist.
func LoadYAMLConfig() (*YAMLConfig, error) {
	path := getEnv("CONFIG_FILE", "config.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return defaultYAMLConfig(), nil
		}
		return nil, err
	}

	cfg := defaultYAMLConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if len(cfg.BusinessTypes) == 0 {
		cfg.BusinessTypes = defaultYAMLConfig().BusinessTypes
	}
	if len(cfg.FocusAreas) == 0 {
		cfg.FocusAreas = defaultYAMLConfig().FocusAreas
	}
	if len(cfg.DefaultCategories) == 0 {
		cfg.DefaultCategories = defaultYAMLConfig().DefaultCategories
	}

	return cfg, nil
}

func defaultYAMLConfig() *YAMLConfig {
	return &YAMLConfig{
		BusinessTypes: []string{
			"Restaurant", "School", "Hotel", "Retail Store", "Healthcare", "Other",
		},
		FocusAreas: []string{
			"Customer Service", "Product Quality", "Cleanliness", "Speed",
			"Value for Money", "Ambiance", "Communication",
		},
		DefaultCategories: []string{
			"General", "Service", "Quality", "Environment",
		},
	}
}
