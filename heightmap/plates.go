package heightmap

import (
	"math/rand"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

// GeneratePlateVectors replaces PlateVectors with one random drift vector
// per seed and reports whether it did.
//
// Contracts:
//   - Runs only when every current vector equals the zero vector, compared
//     by value against a fresh zero slice of the same length. Supplied or
//     previously generated vectors are never touched, so a second call is a
//     no-op.
//   - Each axis is drawn independently, uniform in [-1, 1).
//   - A nil rng means the Heightmap's own source.
//   - With no seeds there is nothing to generate and the result is false.
//
// The vectors are kept for callers; Propagate does not read them.
//
// Complexity: O(k) time and memory.
func (h *Heightmap) GeneratePlateVectors(rng *rand.Rand) bool {
	if len(h.seeds) == 0 {
		return false
	}
	zero := make([]mgl64.Vec3, len(h.PlateVectors))
	if !slices.Equal(h.PlateVectors, zero) {
		return false
	}
	if rng == nil {
		rng = h.rng
	}

	vs := make([]mgl64.Vec3, len(h.seeds))
	for i := range vs {
		vs[i] = mgl64.Vec3{
			uniform(rng, -1, 1),
			uniform(rng, -1, 1),
			uniform(rng, -1, 1),
		}
	}
	h.PlateVectors = vs

	return true
}
