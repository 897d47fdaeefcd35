// SPDX-License-Identifier: MIT
// Package: tessera/builder
//
// impl_path.go - Single() and Path(n).
//
// Contract:
//   • n ≥ 1 (else ErrTooFewCells). Path(1) equals Single().
//   • Cell i is the square [i, i+1]×[0, 1] in layout units, site at its center.
//   • Neighbors of i: i-1 (if any) then i+1 (if any).
//
// Complexity: O(n) time and memory.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tessera/partition"
	"github.com/katalvlaran/tessera/point"
)

const (
	methodPath   = "Path"
	minPathCells = 1
)

// Single returns a Constructor for one isolated cell.
func Single() Constructor {
	return Path(1)
}

// Path returns a Constructor for n cells in a row.
func Path(n int) Constructor {
	return func(cfg builderConfig) (*partition.Partition, error) {
		if n < minPathCells {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathCells, ErrTooFewCells)
		}

		sites := make([]point.Point, n)
		cells := make([]partition.Polygon, n)
		nbrs := make([][]int, n)
		for i := 0; i < n; i++ {
			x := float64(i)
			sites[i] = cfg.at(x+0.5, 0.5)
			cells[i] = cfg.square(x, 0)

			ns := make([]int, 0, 2)
			if i > 0 {
				ns = append(ns, i-1)
			}
			if i+1 < n {
				ns = append(ns, i+1)
			}
			nbrs[i] = ns
		}

		return partition.New(sites, cells, nbrs, nil), nil
	}
}
