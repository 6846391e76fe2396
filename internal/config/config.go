package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level fiskal.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Tax      TaxConfig      `yaml:"tax"`
	Elster   ElsterConfig   `yaml:"elster"`
}

// BusinessConfig identifies the freelancer.
type BusinessConfig struct {
	Name  string `yaml:"name"`
	Owner string `yaml:"owner,omitempty"`
}

// TaxConfig holds the tax identifiers used in filings.
type TaxConfig struct {
	Steuernummer string `yaml:"steuernummer"`
	UStIDNr      string `yaml:"ust_idnr,omitempty"`
}

// ElsterConfig points at the external filing service.
type ElsterConfig struct {
	BaseURL  string `yaml:"base_url"`
	TestMode bool   `yaml:"test_mode"`
}

// Load reads a fiskal.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
// Test mode stays on until the user flips it deliberately.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name: businessName,
		},
		Elster: ElsterConfig{
			BaseURL:  "http://localhost:8571",
			TestMode: true,
		},
	}
}
