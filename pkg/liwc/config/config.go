package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the recognizer configuration
type Config struct {
	Dictionary          string `yaml:"dictionary"`
	IncludeWordCount    bool   `yaml:"include_word_count"`
	AllowMissingNumbers bool   `yaml:"allow_missing_numbers"`
	Database            string `yaml:"database"`
}

// Load loads the configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
