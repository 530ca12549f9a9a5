// Package config provides configuration loading and management for porenet.
// It handles loading configuration from YAML files and provides default
// values matching the standard SNOW parameters.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration loaded from YAML.
type Config struct {
	// Partition parameters feed the SNOW pipeline.
	Partition struct {
		// RMax is the peak-detection neighborhood radius in voxels.
		RMax int `yaml:"rMax"`

		// Sigma is the Gaussian blur standard deviation; 0 disables
		// smoothing.
		Sigma float64 `yaml:"sigma"`

		// MaxIters bounds the saddle-point trimming loop.
		MaxIters int `yaml:"maxIters"`

		// Mask confines watershed flooding to the void phase.
		Mask bool `yaml:"mask"`

		// Randomize shuffles region labels for visual distinction.
		Randomize bool `yaml:"randomize"`

		// Seed fixes the label shuffle; 0 draws from the clock.
		Seed int64 `yaml:"seed"`
	} `yaml:"partition"`

	// Input parameters control how slice images become a phase mask.
	Input struct {
		// Threshold is the normalized luminance above which a pixel is
		// treated as void.
		Threshold float64 `yaml:"threshold"`

		// Invert swaps the phases, for stacks that draw solid bright.
		Invert bool `yaml:"invert"`
	} `yaml:"input"`

	// Output parameters.
	Output struct {
		// Verbose enables progress logging.
		Verbose bool `yaml:"verbose"`

		// SliceAxis selects the axis along which labeled slices are
		// exported ("x", "y" or "z").
		SliceAxis string `yaml:"sliceAxis"`
	} `yaml:"output"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Partition.RMax = 4
	cfg.Partition.Sigma = 0.4
	cfg.Partition.MaxIters = 500
	cfg.Partition.Mask = true
	cfg.Partition.Randomize = true
	cfg.Partition.Seed = 0

	cfg.Input.Threshold = 0.5
	cfg.Input.Invert = false

	cfg.Output.Verbose = true
	cfg.Output.SliceAxis = "z"

	return cfg
}

// LoadConfig loads configuration from a YAML file. If the file doesn't
// exist, it returns the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file.
func SaveConfig(cfg *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile creates a default configuration file at the
// specified path.
func CreateDefaultConfigFile(configPath string) error {
	return SaveConfig(DefaultConfig(), configPath)
}
