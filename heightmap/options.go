package heightmap

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/tessera/point"
)

// DefaultSeedCount is the number of seeds picked when none are supplied.
const DefaultSeedCount = 5

// Option configures New via functional arguments. Invalid values are
// recorded and surfaced by New as ErrOptionViolation.
type Option func(*options)

type options struct {
	seedPoints     []point.Point
	plateVectors   []mgl64.Vec3
	seedCount      int
	rng            *rand.Rand
	onAssign       func(seed, cell int, height float64)
	revisits       bool
	workers        int
	skipValidation bool

	err error
}

func defaultOptions() options {
	return options{
		seedCount: DefaultSeedCount,
		onAssign:  func(int, int, float64) {},
		workers:   1,
	}
}

// WithSeedPoints supplies the seed coordinates explicitly. Each must be a
// site of the diagram. A non-nil empty slice means "no seeds".
func WithSeedPoints(pts []point.Point) Option {
	return func(o *options) {
		if pts == nil {
			o.err = fmt.Errorf("%w: WithSeedPoints(nil)", ErrOptionViolation)
			return
		}
		o.seedPoints = slices.Clone(pts)
	}
}

// WithPlateVectors supplies one drift vector per seed.
func WithPlateVectors(vs []mgl64.Vec3) Option {
	return func(o *options) {
		if vs == nil {
			o.err = fmt.Errorf("%w: WithPlateVectors(nil)", ErrOptionViolation)
			return
		}
		o.plateVectors = slices.Clone(vs)
	}
}

// WithSeedCount sets how many seeds auto-selection picks (k ≥ 1).
// Ignored when WithSeedPoints is given.
func WithSeedCount(k int) Option {
	return func(o *options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: seed count must be ≥ 1 (%d)", ErrOptionViolation, k)
			return
		}
		o.seedCount = k
	}
}

// WithRand injects the random source for every draw. Nil is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		if r != nil {
			o.rng = r
		}
	}
}

// WithSeed is WithRand(rand.New(rand.NewSource(seed))) with the package
// seed policy (0 ⇒ fixed default).
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = newRand(seed)
	}
}

// WithOnAssign registers a hook called for every height assignment, in the
// order assignments land in Heights. seed is the seed ordinal.
func WithOnAssign(fn func(seed, cell int, height float64)) Option {
	return func(o *options) {
		if fn != nil {
			o.onAssign = fn
		}
	}
}

// WithRevisits disables the per-seed visited set: every queued occurrence
// of a cell is assigned again and re-rolls the decay and stop draws.
func WithRevisits() Option {
	return func(o *options) {
		o.revisits = true
	}
}

// WithWorkers runs up to n seed fills concurrently (n ≥ 1, default 1).
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.workers = n
	}
}

// WithSkipValidation trusts the diagram as-is. A malformed diagram then
// surfaces as an index fault during construction or propagation.
func WithSkipValidation() Option {
	return func(o *options) {
		o.skipValidation = true
	}
}
