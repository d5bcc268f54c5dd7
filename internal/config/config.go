package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level txnotify.yaml configuration.
type Config struct {
	Output OutputConfig `yaml:"output"`
}

// OutputConfig controls where and how batch results are written.
type OutputConfig struct {
	// Dir overrides the destination directory; empty keeps results next
	// to their source files.
	Dir string `yaml:"dir,omitempty"`
	// Suffix is appended to the source name before ".json".
	Suffix string `yaml:"suffix"`
}

// Load reads a txnotify.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Output.Suffix == "" {
		cfg.Output.Suffix = Default().Output.Suffix
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

// Default returns the configuration used when no txnotify.yaml exists.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Suffix: "_result",
		},
	}
}
