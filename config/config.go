// Package config loads the tool configuration from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iamNilotpal/koopman/pkg/koopman"
)

type Config struct {
	Checksum    ChecksumConfig    `yaml:"checksum"`
	Compression CompressionConfig `yaml:"compression"`
}

// Holds checksum-specific configuration.
type ChecksumConfig struct {
	Algorithm string `yaml:"algorithm"` // Checksum algorithm name
	Seed      uint8  `yaml:"seed"`      // Seed mixed into the first byte; part of the wire contract
}

// Holds frame compression configuration.
type CompressionConfig struct {
	Enable bool  `yaml:"enable"` // Compress frame payloads
	Level  uint8 `yaml:"level"`  // zstd level (1-4)
}

// Returns a Config struct with reasonable default values.
func DefaultConfig() *Config {
	return &Config{
		Checksum: ChecksumConfig{
			Algorithm: "koopman32",
			Seed:      koopman.DefaultSeed,
		},
		Compression: CompressionConfig{
			Enable: false,
			Level:  3,
		},
	}
}

// Loads configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Checksum.Algorithm == "" {
		return fmt.Errorf("checksum.algorithm is required")
	}

	if config.Compression.Enable && (config.Compression.Level < 1 || config.Compression.Level > 4) {
		return fmt.Errorf("compression.level must be between 1 and 4")
	}

	return nil
}
