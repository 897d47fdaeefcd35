// SPDX-License-Identifier: MIT
// Package: tessera/builder
//
// impl_grid.go - Grid(cols, rows).
//
// Contract:
//   • cols ≥ 1 and rows ≥ 1 (else ErrTooFewCells).
//   • Row-major indices: cell (c, r) has index r*cols + c.
//   • Cell (c, r) is the square [c, c+1]×[r, r+1], site at its center.
//   • Neighbors in fixed order: up (r-1), left (c-1), right (c+1), down (r+1).
//
// Complexity: O(cols·rows) time and memory.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tessera/partition"
	"github.com/katalvlaran/tessera/point"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor for a cols×rows orthogonal grid.
func Grid(cols, rows int) Constructor {
	return func(cfg builderConfig) (*partition.Partition, error) {
		if cols < minGridDim || rows < minGridDim {
			return nil, fmt.Errorf("%s: cols=%d, rows=%d (each must be ≥ %d): %w",
				methodGrid, cols, rows, minGridDim, ErrTooFewCells)
		}

		n := cols * rows
		sites := make([]point.Point, n)
		cells := make([]partition.Polygon, n)
		nbrs := make([][]int, n)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				i := r*cols + c
				sites[i] = cfg.at(float64(c)+0.5, float64(r)+0.5)
				cells[i] = cfg.square(float64(c), float64(r))

				ns := make([]int, 0, 4)
				if r > 0 {
					ns = append(ns, i-cols)
				}
				if c > 0 {
					ns = append(ns, i-1)
				}
				if c+1 < cols {
					ns = append(ns, i+1)
				}
				if r+1 < rows {
					ns = append(ns, i+cols)
				}
				nbrs[i] = ns
			}
		}

		return partition.New(sites, cells, nbrs, nil), nil
	}
}
