// SPDX-License-Identifier: MIT
// Package: tessera/builder
//
// config.go - internal configuration, deterministic defaults and options.
//
// Deterministic defaults:
//   • spacing = 1.0   (cell pitch / arc length between ring sites)
//   • origin  = (0,0) (lower-left corner of the layout)

package builder

import (
	"math"

	"github.com/katalvlaran/tessera/point"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	spacing float64
	origin  point.Point
}

const defaultSpacing = 1.0

// BuilderOption customizes a constructor by mutating builderConfig.
type BuilderOption func(*builderConfig)

// WithSpacing sets the distance between neighboring sites.
// Panics on non-positive or non-finite values.
func WithSpacing(s float64) BuilderOption {
	if !(s > 0) || math.IsInf(s, 0) {
		panic("builder: WithSpacing requires a finite positive value")
	}
	return func(c *builderConfig) {
		c.spacing = s
	}
}

// WithOrigin shifts the whole layout so its lower-left corner sits at p.
func WithOrigin(p point.Point) BuilderOption {
	return func(c *builderConfig) {
		c.origin = p
	}
}

// newBuilderConfig applies opts in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{spacing: defaultSpacing}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// at maps layout coordinates (in spacing units) to world coordinates.
func (c builderConfig) at(x, y float64) point.Point {
	return point.Pt(c.origin.X+x*c.spacing, c.origin.Y+y*c.spacing)
}

// square returns the unit cell whose lower-left corner is (x,y), in layout units.
func (c builderConfig) square(x, y float64) []point.Point {
	return []point.Point{c.at(x, y), c.at(x+1, y), c.at(x+1, y+1), c.at(x, y+1)}
}
