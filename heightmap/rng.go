// Random sources for seed selection, plate vectors and flood fills.
//
// A Heightmap owns one *rand.Rand. Seed selection and GeneratePlateVectors
// draw from it directly. Propagate never hands it to a fill: it first splits
// off one stream per seed ordinal (fillStreams), on the calling goroutine
// and in seed order, so the draws a fill sees depend only on the source
// state and the ordinal, not on which worker runs it.

package heightmap

import "math/rand"

// defaultSeed backs WithSeed(0) and a Heightmap built without a source.
const defaultSeed int64 = 1

// newRand returns a source for seed, mapping 0 to defaultSeed.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// mixSeed combines a parent draw with a seed ordinal through the SplitMix64
// finalizer, so neighboring ordinals give unrelated streams.
func mixSeed(parent int64, ordinal uint64) int64 {
	x := uint64(parent) ^ (ordinal + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// fillStreams consumes k draws from src and returns one independent source
// per seed ordinal. Calling it twice on the same src yields different
// streams, so repeated Propagate calls do not replay the same fills.
func fillStreams(src *rand.Rand, k int) []*rand.Rand {
	out := make([]*rand.Rand, k)
	for i := range out {
		out[i] = rand.New(rand.NewSource(mixSeed(src.Int63(), uint64(i))))
	}
	return out
}

// uniform returns a draw from [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
