package partition

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/tessera/point"
)

// Polygon is a closed cell boundary. The closing edge from the last vertex
// back to the first is implicit.
type Polygon []point.Point

// Diagram is the read-only view of a finished cell diagram.
//
// Implementations must keep Sites, Cells and Neighbors index-aligned.
// Triangulation returns whatever handle the builder used; consumers pass it
// through without inspecting it.
type Diagram interface {
	Sites() []point.Point
	Cells() []Polygon
	Neighbors() [][]int
	Triangulation() any
}

// Partition is the copied, index-aligned form of a Diagram.
// It is immutable once built: accessors return the internal slices and
// callers must not modify them.
type Partition struct {
	sites     []point.Point
	cells     []Polygon
	neighbors [][]int
	source    any
}

// New assembles a Partition from already index-aligned parts. The slices are
// retained, not copied. No validation is performed; call Validate when the
// parts come from an untrusted builder.
func New(sites []point.Point, cells []Polygon, neighbors [][]int, source any) *Partition {
	return &Partition{
		sites:     sites,
		cells:     cells,
		neighbors: neighbors,
		source:    source,
	}
}

// FromDiagram deep-copies d into a Partition, preserving index
// correspondence and passing d.Triangulation() through untouched.
//
// Contracts:
//   - Later changes to d's slices are not visible through the result.
//   - A malformed diagram is copied as-is; call Validate to check it.
//
// Errors: none.
//
// Complexity: O(n + e + v), v = total polygon vertices.
func FromDiagram(d Diagram) *Partition {
	sites := slices.Clone(d.Sites())

	src := d.Cells()
	cells := make([]Polygon, len(src))
	for i, c := range src {
		cells[i] = slices.Clone(c)
	}

	srcNbrs := d.Neighbors()
	nbrs := make([][]int, len(srcNbrs))
	for i, ns := range srcNbrs {
		nbrs[i] = slices.Clone(ns)
	}

	return New(sites, cells, nbrs, d.Triangulation())
}

// Sites returns the generating point of every cell.
func (p *Partition) Sites() []point.Point { return p.sites }

// Cells returns the polygon of every cell.
func (p *Partition) Cells() []Polygon { return p.cells }

// Neighbors returns the adjacency list of every cell.
func (p *Partition) Neighbors() [][]int { return p.neighbors }

// Triangulation returns the builder's opaque handle.
func (p *Partition) Triangulation() any { return p.source }

// Len returns the number of cells.
func (p *Partition) Len() int { return len(p.sites) }

// Validate runs the hardened checks on p. See the package-level Validate.
func (p *Partition) Validate() error { return Validate(p) }

// Validate checks the structural invariants of d:
//  1. at least one cell;
//  2. Sites, Cells and Neighbors have equal length;
//  3. every site is finite, so it has a usable point.Key;
//  4. every neighbor index lies in [0, n) and differs from its owner;
//  5. adjacency is symmetric.
//
// The first violation found is returned, wrapping one of the package
// sentinels together with the offending indices.
// Complexity: O(n + e·d) time where d is the maximum degree, O(1) extra memory.
func Validate(d Diagram) error {
	sites, cells, nbrs := d.Sites(), d.Cells(), d.Neighbors()
	n := len(sites)
	if n == 0 {
		return ErrEmpty
	}
	if len(cells) != n || len(nbrs) != n {
		return fmt.Errorf("%w: sites=%d cells=%d neighbors=%d", ErrLengthMismatch, n, len(cells), len(nbrs))
	}
	for i, s := range sites {
		if !s.Finite() {
			return fmt.Errorf("%w: site %d at (%g,%g)", ErrNonFiniteSite, i, s.X, s.Y)
		}
	}

	for i, ns := range nbrs {
		for _, j := range ns {
			if j < 0 || j >= n {
				return fmt.Errorf("%w: cell %d lists %d (n=%d)", ErrNeighborIndex, i, j, n)
			}
			if j == i {
				return fmt.Errorf("%w: cell %d", ErrSelfNeighbor, i)
			}
		}
	}

	// Bounds are known good, so the reverse lookup cannot fault.
	for i, ns := range nbrs {
		for _, j := range ns {
			if !slices.Contains(nbrs[j], i) {
				return fmt.Errorf("%w: %d lists %d but %d does not list %d", ErrAsymmetric, i, j, j, i)
			}
		}
	}

	return nil
}
