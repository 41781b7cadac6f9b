// Package rasterconfig loads and validates the TOML configuration used by
// cmd/raster, mirroring the teacher's config package (BurntSushi/toml
// decoded straight into a typed, tagged struct).
package rasterconfig

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// InputConfig describes one CSV data set to run clustering against.
type InputConfig struct {
	Path string `toml:"path"`
}

// Config is the root of raster.toml.
type Config struct {
	Precision      []float64     `toml:"precision"`
	Threshold      int           `toml:"threshold"`
	MinClusterSize int           `toml:"minClusterSize"`
	Iterations     int           `toml:"iterations"`
	Cores          []int         `toml:"cores"`
	Prime          bool          `toml:"prime"`
	Dual           bool          `toml:"dual"`
	OutputDir      string        `toml:"outputDir"`
	Input          []InputConfig `toml:"input"`
}

// LoadConfig reads and validates a TOML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rasterconfig: read %s: %w", path, err)
	}

	cfg := &Config{
		Threshold:      1,
		MinClusterSize: 1,
		Iterations:     1,
	}
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("rasterconfig: parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("rasterconfig: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports whether the decoded configuration carries legal
// clustering parameters (spec.md §7 error-handling design, tightened to
// return errors instead of the original's panics).
func (c *Config) Validate() error {
	if len(c.Precision) == 0 {
		return fmt.Errorf("precision must list at least one value")
	}
	if c.Threshold < 1 {
		return fmt.Errorf("threshold must be >= 1, got %d", c.Threshold)
	}
	if c.MinClusterSize < 1 {
		return fmt.Errorf("minClusterSize must be >= 1, got %d", c.MinClusterSize)
	}
	if c.Iterations < 1 {
		return fmt.Errorf("iterations must be >= 1, got %d", c.Iterations)
	}
	for _, cores := range c.Cores {
		if cores < 1 {
			return fmt.Errorf("cores entries must be >= 1, got %d", cores)
		}
	}
	for _, in := range c.Input {
		if in.Path == "" {
			return fmt.Errorf("input entries must set a path")
		}
	}
	return nil
}
