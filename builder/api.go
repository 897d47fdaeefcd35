// SPDX-License-Identifier: MIT
// Package: tessera/builder
//
// api.go - public entry points.
//
// Design contract:
//   • One orchestrator: Build(cons, opts...). Resolves cfg, runs cons.
//   • Thin shorthands (Single/Path/Ring/Grid) for the common no-option case.
//   • Determinism: same constructor and options ⇒ identical partition.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tessera/partition"
)

// Constructor lays out one synthetic partition from the resolved config.
// Constructors validate their size parameters and return ErrTooFewCells
// (wrapped with method context) instead of panicking.
type Constructor func(cfg builderConfig) (*partition.Partition, error)

// Build resolves opts and runs cons. Constructor errors are wrapped with
// "Build: %w".
func Build(cons Constructor, opts ...BuilderOption) (*partition.Partition, error) {
	cfg := newBuilderConfig(opts...)
	p, err := cons(cfg)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	return p, nil
}

// MustBuild is Build for fixtures whose parameters are known good.
// It panics on error.
func MustBuild(cons Constructor, opts ...BuilderOption) *partition.Partition {
	p, err := Build(cons, opts...)
	if err != nil {
		panic(err)
	}
	return p
}
