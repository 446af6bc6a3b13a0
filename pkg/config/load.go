package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ajxudir/depgroups/pkg/verbose"
)

// DefaultConfigFile is the configuration file name looked up in the working
// directory when no explicit path is given.
const DefaultConfigFile = ".depgroups.yml"

// Load reads, parses, and validates a configuration file.
//
// It performs the following operations:
//   - Step 1: Reads the file content
//   - Step 2: Unmarshals the YAML into a Config
//   - Step 3: Validates group names and rules
//   - Step 4: Logs the loaded groups in verbose mode
//
// Parameters:
//   - path: Path to the configuration file
//
// Returns:
//   - *Config: The loaded configuration
//   - error: Error if the file cannot be read, parsed, or validated
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	verbose.ConfigLoaded(path, cfg.Groups.Names())
	return cfg, nil
}

// Parse parses and validates configuration content.
//
// Parameters:
//   - content: Raw YAML bytes
//
// Returns:
//   - *Config: The parsed configuration
//   - error: Error if the content cannot be parsed or validated
func Parse(content []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return nil, err
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
