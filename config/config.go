// Package config holds the settings for one terrain generation run and
// loads them from YAML.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a setting outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config describes one generation run.
type Config struct {
	// Width and Height of the sampled rectangle, anchored at the origin.
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Radius is the minimum spacing between sampled sites.
	Radius float64 `yaml:"radius"`

	// Relax is the number of Lloyd iterations applied to the sites.
	Relax int `yaml:"relax"`

	// Seed drives every random draw; 0 selects the fixed default.
	Seed int64 `yaml:"seed"`

	Seeds     int     `yaml:"seeds"`
	SeaLevel  float64 `yaml:"sea_level"`
	Workers   int     `yaml:"workers"`
	Revisits  bool    `yaml:"revisits"`
	LogLevel  string  `yaml:"log_level"`
	LogIndent bool    `yaml:"log_indent"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Width:    800,
		Height:   600,
		Radius:   15,
		Relax:    1,
		Seeds:    5,
		SeaLevel: 0.3,
		Workers:  1,
		LogLevel: "info",
	}
}

// Load reads path over Default, so keys missing from the file keep their
// default values. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config YAML: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate reports the first setting outside its range.
func (c Config) Validate() error {
	switch {
	case !positive(c.Width) || !positive(c.Height):
		return fmt.Errorf("%w: width and height must be positive (%g×%g)", ErrInvalidConfig, c.Width, c.Height)
	case !positive(c.Radius):
		return fmt.Errorf("%w: radius must be positive (%g)", ErrInvalidConfig, c.Radius)
	case c.Radius >= math.Min(c.Width, c.Height):
		return fmt.Errorf("%w: radius %g does not fit in %g×%g", ErrInvalidConfig, c.Radius, c.Width, c.Height)
	case c.Relax < 0:
		return fmt.Errorf("%w: relax must be ≥ 0 (%d)", ErrInvalidConfig, c.Relax)
	case c.Seeds < 1:
		return fmt.Errorf("%w: seeds must be ≥ 1 (%d)", ErrInvalidConfig, c.Seeds)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be ≥ 1 (%d)", ErrInvalidConfig, c.Workers)
	case math.IsNaN(c.SeaLevel):
		return fmt.Errorf("%w: sea level is NaN", ErrInvalidConfig)
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
