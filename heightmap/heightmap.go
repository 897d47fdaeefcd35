package heightmap

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/tessera/partition"
	"github.com/katalvlaran/tessera/point"
)

// Heightmap is a cell partition plus one elevation per cell.
//
// Cells, Sites and CellNeighbors are index-aligned and must not be modified
// after New. Heights and PlateVectors are mutated by Propagate and
// GeneratePlateVectors.
type Heightmap struct {
	Cells         []partition.Polygon
	Sites         []point.Point
	Heights       []float64
	CellNeighbors [][]int

	// SeedPoints are the plate origins, each a member of Sites.
	SeedPoints []point.Point
	// PlateVectors holds one drift vector per entry of SeedPoints.
	PlateVectors []mgl64.Vec3

	// Triangulation is the diagram builder's handle, passed through as-is.
	Triangulation any

	cellIndex polygonIndex
	siteIndex map[point.Key]int
	seeds     []int

	opts options
	rng  *rand.Rand
}

// New builds a Heightmap from d with all heights at 0.
//
// Stages:
//  1. Apply opts; the first invalid option aborts with ErrOptionViolation.
//  2. Unless WithSkipValidation, run partition.Validate on d.
//  3. Deep-copy d (partition.FromDiagram); later changes to d are not seen.
//  4. Build the site and polygon lookup tables in one pass each.
//  5. Resolve seeds: WithSeedPoints when given, otherwise draw WithSeedCount
//     (default 5) sites, one per equal-width band of the site list.
//  6. Attach plate vectors: WithPlateVectors when given, otherwise one zero
//     vector per seed for GeneratePlateVectors to fill.
//
// Contracts:
//   - len(Heights) == len(Cells) == len(Sites) == len(CellNeighbors).
//   - Every SeedPoints[i] is a site and SeedIndices()[i] is its index.
//   - len(PlateVectors) == len(SeedPoints).
//   - Auto-selected seeds are distinct; explicit seeds may repeat.
//
// Errors:
//   - ErrOptionViolation  a meaningless option value.
//   - ErrInvalidDiagram   d failed validation; the partition sentinel
//     (ErrAsymmetric, ErrNonFiniteSite, ...) is wrapped too.
//   - ErrTooFewSites      auto-selection over fewer sites than seeds.
//   - ErrSeedNotFound     an explicit seed matches no site; never a silent
//     fallback index.
//   - ErrPlateVectorCount explicit vectors disagree with the seed count.
//
// Complexity: O(n + e + v) time and memory, v = total polygon vertices.
func New(d partition.Diagram, opts ...Option) (*Heightmap, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !o.skipValidation {
		if err := partition.Validate(d); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDiagram, err)
		}
	}

	p := partition.FromDiagram(d)
	h := &Heightmap{
		Cells:         p.Cells(),
		Sites:         p.Sites(),
		Heights:       make([]float64, p.Len()),
		CellNeighbors: p.Neighbors(),
		Triangulation: p.Triangulation(),
		cellIndex:     newPolygonIndex(p.Cells()),
		siteIndex:     newSiteIndex(p.Sites()),
		opts:          o,
		rng:           o.rng,
	}
	if h.rng == nil {
		h.rng = newRand(0)
	}

	if o.seedPoints != nil {
		if err := h.resolveSeeds(o.seedPoints); err != nil {
			return nil, err
		}
	} else if err := h.pickSeeds(o.seedCount); err != nil {
		return nil, err
	}

	switch {
	case o.plateVectors == nil:
		h.PlateVectors = make([]mgl64.Vec3, len(h.seeds))
	case len(o.plateVectors) != len(h.seeds):
		return nil, fmt.Errorf("%w: %d vectors for %d seeds", ErrPlateVectorCount, len(o.plateVectors), len(h.seeds))
	default:
		h.PlateVectors = o.plateVectors
	}

	return h, nil
}

func (h *Heightmap) resolveSeeds(pts []point.Point) error {
	h.seeds = make([]int, len(pts))
	for i, p := range pts {
		idx, ok := h.SiteIndex(p)
		if !ok || !p.Finite() {
			return fmt.Errorf("%w: (%g, %g)", ErrSeedNotFound, p.X, p.Y)
		}
		h.seeds[i] = idx
	}
	h.SeedPoints = pts

	return nil
}

// pickSeeds draws one site index from each of k equal-width bands over the
// site list. The last band absorbs the remainder, so bands never overlap and
// the seeds are distinct.
func (h *Heightmap) pickSeeds(k int) error {
	n := len(h.Sites)
	if n < k {
		return fmt.Errorf("%w: %d sites, %d seeds", ErrTooFewSites, n, k)
	}

	width := n / k
	h.seeds = make([]int, k)
	h.SeedPoints = make([]point.Point, k)
	for b := 0; b < k; b++ {
		lo, hi := b*width, (b+1)*width
		if b == k-1 {
			hi = n
		}
		idx := lo + h.rng.Intn(hi-lo)
		h.seeds[b] = idx
		h.SeedPoints[b] = h.Sites[idx]
	}

	return nil
}

// Len returns the number of cells.
func (h *Heightmap) Len() int { return len(h.Cells) }

// SiteIndex returns the index of the cell generated by p, matching through
// point.Key. When several sites share a key the lowest index wins.
// Non-finite points never match. Complexity: O(1).
func (h *Heightmap) SiteIndex(p point.Point) (int, bool) {
	idx, ok := h.siteIndex[p.Key()]
	return idx, ok
}

// CellIndex returns the index of the cell whose polygon equals pg vertex by
// vertex (point.Equal, same starting vertex and winding).
// Complexity: O(len(pg)) expected.
func (h *Heightmap) CellIndex(pg partition.Polygon) (int, bool) {
	return h.cellIndex.lookup(pg)
}

// SeedIndices returns the cell index of every seed, in seed order.
func (h *Heightmap) SeedIndices() []int {
	return slices.Clone(h.seeds)
}
