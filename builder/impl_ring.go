// SPDX-License-Identifier: MIT
// Package: tessera/builder
//
// impl_ring.go - Ring(n).
//
// Contract:
//   • n ≥ 3 (else ErrTooFewCells).
//   • Sites sit on a circle whose circumference is n·spacing, centered at
//     origin + (R, R); site i at angle 2πi/n.
//   • Cell i is the wedge (hub, arc(i-½), arc(i+½)).
//   • Neighbors of i: (i-1) mod n then (i+1) mod n.
//
// Complexity: O(n) time and memory.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tessera/partition"
	"github.com/katalvlaran/tessera/point"
)

const (
	methodRing   = "Ring"
	minRingCells = 3
)

// Ring returns a Constructor for n wedge cells arranged in a cycle.
func Ring(n int) Constructor {
	return func(cfg builderConfig) (*partition.Partition, error) {
		if n < minRingCells {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingCells, ErrTooFewCells)
		}

		r := float64(n) / (2 * math.Pi)
		hub := cfg.at(r, r)
		step := 2 * math.Pi / float64(n)
		arc := func(theta float64) point.Point {
			return cfg.at(r+r*math.Cos(theta), r+r*math.Sin(theta))
		}

		sites := make([]point.Point, n)
		cells := make([]partition.Polygon, n)
		nbrs := make([][]int, n)
		for i := 0; i < n; i++ {
			theta := step * float64(i)
			// Halfway between hub and rim keeps the site inside its wedge.
			rim := arc(theta)
			sites[i] = point.Pt((hub.X+rim.X)/2, (hub.Y+rim.Y)/2)
			cells[i] = partition.Polygon{hub, arc(theta - step/2), arc(theta + step/2)}
			nbrs[i] = []int{(i - 1 + n) % n, (i + 1) % n}
		}

		return partition.New(sites, cells, nbrs, nil), nil
	}
}
