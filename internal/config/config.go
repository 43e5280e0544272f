// Package config handles the optional YAML run configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultPrecision = 4

// Config represents the root configuration file structure.
type Config struct {
	// Precision is the number of decimals used by the structural printout.
	Precision int `yaml:"precision,omitempty"`
	// Steps restricts the run to the named built-in steps; empty runs all.
	Steps []string `yaml:"steps,omitempty"`
	Extra []Extra  `yaml:"extra,omitempty"`
}

// Extra is an additional step given as WKT.
type Extra struct {
	Name string `yaml:"name"`
	WKT  string `yaml:"wkt"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{Precision: DefaultPrecision}
}

// Load reads and parses the YAML configuration file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Precision < 0 || c.Precision > 17 {
		return fmt.Errorf("precision %d out of range [0, 17]", c.Precision)
	}
	seen := make(map[string]bool, len(c.Extra))
	for i, e := range c.Extra {
		if e.Name == "" {
			return fmt.Errorf("extra[%d]: missing name", i)
		}
		if e.WKT == "" {
			return fmt.Errorf("extra %q: missing wkt", e.Name)
		}
		if seen[e.Name] {
			return fmt.Errorf("extra %q: duplicate name", e.Name)
		}
		seen[e.Name] = true
	}
	return nil
}
