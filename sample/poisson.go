package sample

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/golang/geo/r2"

	"github.com/katalvlaran/tessera/point"
)

// DefaultTries is the number of candidates tried around an active point
// before it is retired.
const DefaultTries = 30

// Option configures Poisson.
type Option func(*config)

type config struct {
	tries int
	limit int
	err   error
}

// WithTries sets the candidates per active point (n ≥ 1).
func WithTries(n int) Option {
	return func(c *config) {
		if n < 1 {
			c.err = fmt.Errorf("%w: tries must be ≥ 1 (%d)", ErrOption, n)
			return
		}
		c.tries = n
	}
}

// WithLimit stops sampling once n points have been placed (n ≥ 1).
func WithLimit(n int) Option {
	return func(c *config) {
		if n < 1 {
			c.err = fmt.Errorf("%w: limit must be ≥ 1 (%d)", ErrOption, n)
			return
		}
		c.limit = n
	}
}

// Poisson returns points inside bounds, pairwise at least radius apart.
// Points lie in the half-open rectangle [lo, hi) on both axes.
func Poisson(rng *rand.Rand, bounds r2.Rect, radius float64, opts ...Option) ([]point.Point, error) {
	cfg := config{tries: DefaultTries}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("%w: %v", ErrRadius, radius)
	}
	size := bounds.Size()
	if bounds.IsEmpty() || !(size.X > 0) || !(size.Y > 0) {
		return nil, fmt.Errorf("%w: %v", ErrBounds, bounds)
	}

	g := newGrid(bounds, radius)
	lo := bounds.Lo()
	start := point.Pt(lo.X+rng.Float64()*size.X, lo.Y+rng.Float64()*size.Y)
	g.insert(start)
	active := []int{0}

	for len(active) > 0 && (cfg.limit == 0 || len(g.points) < cfg.limit) {
		ai := rng.Intn(len(active))
		p := g.points[active[ai]]

		found := false
		for k := 0; k < cfg.tries; k++ {
			angle := rng.Float64() * 2 * math.Pi
			dist := radius * (1 + rng.Float64())
			c := point.Pt(p.X+dist*math.Cos(angle), p.Y+dist*math.Sin(angle))
			if g.fits(c) {
				active = append(active, g.insert(c))
				found = true
				break
			}
		}
		if !found {
			active[ai] = active[len(active)-1]
			active = active[:len(active)-1]
		}
	}

	return g.points, nil
}

// grid is the acceleration structure: cell size radius/√2, one point each.
type grid struct {
	lo, hi  r2.Point
	cell    float64
	minDist float64 // squared radius
	w, h    int
	slots   []int
	points  []point.Point
}

func newGrid(bounds r2.Rect, radius float64) *grid {
	cell := radius / math.Sqrt2
	size := bounds.Size()
	g := &grid{
		lo:      bounds.Lo(),
		hi:      bounds.Hi(),
		cell:    cell,
		minDist: radius * radius,
		w:       int(math.Ceil(size.X / cell)),
		h:       int(math.Ceil(size.Y / cell)),
	}
	g.slots = make([]int, g.w*g.h)
	for i := range g.slots {
		g.slots[i] = -1
	}

	return g
}

func (g *grid) slot(p point.Point) (int, int) {
	gx := min(max(int((p.X-g.lo.X)/g.cell), 0), g.w-1)
	gy := min(max(int((p.Y-g.lo.Y)/g.cell), 0), g.h-1)
	return gx, gy
}

func (g *grid) insert(p point.Point) int {
	idx := len(g.points)
	g.points = append(g.points, p)
	gx, gy := g.slot(p)
	g.slots[gy*g.w+gx] = idx
	return idx
}

func (g *grid) fits(p point.Point) bool {
	if p.X < g.lo.X || p.X >= g.hi.X || p.Y < g.lo.Y || p.Y >= g.hi.Y {
		return false
	}
	gx, gy := g.slot(p)
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			nx, ny := gx+dx, gy+dy
			if nx < 0 || nx >= g.w || ny < 0 || ny >= g.h {
				continue
			}
			if i := g.slots[ny*g.w+nx]; i >= 0 && g.points[i].Dist2(p) < g.minDist {
				return false
			}
		}
	}
	return true
}
