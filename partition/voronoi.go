package partition

import (
	"fmt"
	"slices"

	"github.com/golang/geo/r2"
	"github.com/pzsz/voronoi"

	"github.com/katalvlaran/tessera/point"
)

// Build computes the Voronoi diagram of sites clipped to bounds and returns
// it as a Partition whose index i describes sites[i].
//
// Behavior:
//  1. Reject an empty input, non-finite sites, sites outside bounds and
//     duplicate sites (the sweep silently merges duplicates, which would
//     break alignment).
//  2. Run the Fortune sweep with closed border cells.
//  3. Re-align the sweep-ordered cells to input order via point.Key.
//  4. Derive adjacency from every edge shared by two cells, sorted ascending.
//
// The *voronoi.Diagram is kept as the Triangulation handle.
// Complexity: O(n log n) time, O(n + e) memory.
func Build(sites []point.Point, bounds r2.Rect) (*Partition, error) {
	if len(sites) == 0 {
		return nil, ErrEmpty
	}

	index := make(map[point.Key]int, len(sites))
	verts := make([]voronoi.Vertex, len(sites))
	for i, s := range sites {
		if !s.Finite() {
			return nil, fmt.Errorf("%w: site %d at (%g,%g)", ErrNonFiniteSite, i, s.X, s.Y)
		}
		if !bounds.ContainsPoint(s.R2()) {
			return nil, fmt.Errorf("%w: site %d at (%g,%g)", ErrSiteOutOfBounds, i, s.X, s.Y)
		}
		k := s.Key()
		if j, dup := index[k]; dup {
			return nil, fmt.Errorf("%w: sites %d and %d at (%g,%g)", ErrDuplicateSite, j, i, s.X, s.Y)
		}
		index[k] = i
		verts[i] = voronoi.Vertex{X: s.X, Y: s.Y}
	}

	bbox := voronoi.BBox{Xl: bounds.X.Lo, Xr: bounds.X.Hi, Yt: bounds.Y.Lo, Yb: bounds.Y.Hi}
	d := voronoi.ComputeDiagram(verts, bbox, true)

	n := len(sites)
	cells := make([]Polygon, n)
	nbrSets := make([]map[int]struct{}, n)
	seen := make([]bool, n)

	for _, c := range d.Cells {
		i, ok := index[point.Pt(c.Site.X, c.Site.Y).Key()]
		if !ok {
			continue
		}
		seen[i] = true

		poly := make(Polygon, 0, len(c.Halfedges))
		for _, he := range c.Halfedges {
			v := he.GetStartpoint()
			poly = append(poly, point.Pt(v.X, v.Y))

			other := he.Edge.LeftCell
			if other == c {
				other = he.Edge.RightCell
			}
			if other == nil {
				continue // border edge
			}
			j, ok := index[point.Pt(other.Site.X, other.Site.Y).Key()]
			if !ok || j == i {
				continue
			}
			link(nbrSets, i, j)
		}
		cells[i] = poly
	}

	for i, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("%w: site %d at (%g,%g)", ErrMissingCell, i, sites[i].X, sites[i].Y)
		}
	}

	return New(slices.Clone(sites), cells, flatten(nbrSets), d), nil
}

// link records i~j in both directions so the result is symmetric even when
// the builder only reports one half-edge of a pair.
func link(sets []map[int]struct{}, i, j int) {
	if sets[i] == nil {
		sets[i] = make(map[int]struct{})
	}
	if sets[j] == nil {
		sets[j] = make(map[int]struct{})
	}
	sets[i][j] = struct{}{}
	sets[j][i] = struct{}{}
}

func flatten(sets []map[int]struct{}) [][]int {
	out := make([][]int, len(sets))
	for i, s := range sets {
		ns := make([]int, 0, len(s))
		for j := range s {
			ns = append(ns, j)
		}
		slices.Sort(ns)
		out[i] = ns
	}
	return out
}

// Relax applies iterations rounds of Lloyd relaxation: build the diagram,
// move every site to its cell centroid, repeat. The returned Partition is
// built from the final sites, so it is the centroidal diagram of the input.
//
// Contracts:
//   - iterations <= 0 is equivalent to Build.
//   - Centroids are clamped into bounds, so every round stays buildable.
//   - A site whose clamped centroid is not finite, or lands on a point
//     already taken by a lower-indexed site, does not jump there: it tries
//     the midpoint between its old position and the centroid, then stays
//     where it was. Cell count and index order never change.
//
// Errors: any Build error for the input sites; a later round can only fail
// if a site's old position is itself taken after both fallbacks, which is
// reported as ErrDuplicateSite with the round number.
//
// Complexity: iterations × O(n log n).
func Relax(sites []point.Point, bounds r2.Rect, iterations int) (*Partition, error) {
	p, err := Build(sites, bounds)
	if err != nil {
		return nil, err
	}
	for it := 0; it < iterations; it++ {
		if p, err = Build(lloydStep(p, bounds), bounds); err != nil {
			return nil, fmt.Errorf("partition: relax iteration %d: %w", it+1, err)
		}
	}
	return p, nil
}

// lloydStep returns the next site of every cell of p.
func lloydStep(p *Partition, bounds r2.Rect) []point.Point {
	prev := p.Sites()
	next := make([]point.Point, len(prev))
	taken := make(map[point.Key]struct{}, len(prev))

	for i, c := range p.Cells() {
		target := clampTo(bounds, c.Centroid())
		next[i] = prev[i]
		for _, cand := range [...]point.Point{target, prev[i].Add(target).Scale(0.5)} {
			if _, dup := taken[cand.Key()]; cand.Finite() && !dup {
				next[i] = cand
				break
			}
		}
		taken[next[i].Key()] = struct{}{}
	}
	return next
}

func clampTo(r r2.Rect, p point.Point) point.Point {
	return point.FromR2(r.ClampPoint(p.R2()))
}
