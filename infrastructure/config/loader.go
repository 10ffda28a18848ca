package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the complete application configuration
type Config struct {
	Paths   PathsConfig   `yaml:"paths"`
	Tools   ToolsConfig   `yaml:"tools"`
	Convert ConvertConfig `yaml:"convert"`
}

// PathsConfig contains directory paths for batch conversion
type PathsConfig struct {
	InputDirectory  string `yaml:"input_directory"`
	OutputDirectory string `yaml:"output_directory"`
	TempDirectory   string `yaml:"temp_directory"`
}

// ToolsConfig contains external tool locations; empty values resolve
// the default executable names from PATH
type ToolsConfig struct {
	Bnkextr   string `yaml:"bnkextr"`
	Vgmstream string `yaml:"vgmstream"`
}

// ConvertConfig contains conversion defaults, overridable by flags
type ConvertConfig struct {
	Format           string `yaml:"format"`
	Verbosity        int    `yaml:"verbosity"`
	KeepStreams      bool   `yaml:"keep_streams"`
	MinOutputSize    int64  `yaml:"min_output_size"`
	RemoveDuplicates bool   `yaml:"remove_duplicates"`
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			InputDirectory:  "input",
			OutputDirectory: "output",
		},
		Convert: ConvertConfig{
			Verbosity: 2,
		},
	}
}

// Load reads and parses the configuration from the specified YAML file.
// Unset fields fall back to defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Paths.InputDirectory == "" {
		cfg.Paths.InputDirectory = "input"
	}
	if cfg.Paths.OutputDirectory == "" {
		cfg.Paths.OutputDirectory = "output"
	}
	if cfg.Convert.Verbosity == 0 {
		cfg.Convert.Verbosity = 2
	}

	return cfg, nil
}

// LoadOrDefault loads the config file if it exists. A missing file yields
// the built-in defaults; a file that exists but cannot be read or parsed is
// an error, so a typo in the YAML is never silently ignored.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the specified YAML file
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
