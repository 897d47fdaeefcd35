// Package heightmap assigns an elevation to every cell of a partition by
// flooding outward from a handful of seed cells ("plates").
//
// What
//
//   - Heightmap: the aggregate. Cells, Sites, CellNeighbors and the lookup
//     tables are fixed at construction; Heights and PlateVectors are the only
//     state mutated afterwards.
//   - New: copies a partition.Diagram, validates it, builds the site and
//     polygon lookup tables, selects or resolves seeds and plate vectors.
//   - Propagate: the randomized multi-source flood fill.
//   - GeneratePlateVectors: one random drift vector per seed when none were
//     supplied. Propagation does not read them yet.
//   - Generate: GeneratePlateVectors followed by Propagate.
//   - Islands, Summary: read-only analysis of the result.
//
// Flood fill (per seed, FIFO):
//
//	queue  ← [seed] + neighbors(seed)
//	height ← StartHeight
//	while queue not empty:
//	    cell ← pop front
//	    if cell already assigned by this seed: continue
//	    Heights[cell] ← height
//	    with probability PHeight: height ← max(0, height - U[MinDecay, MaxDecay))
//	    if not stopped and (U[0,1) < PStop or height < HeightFloor): stopped ← true
//	    if not stopped: push neighbors(cell)
//
// The "already assigned" test uses a visited set private to the seed. A
// later seed therefore overwrites cells claimed by an earlier one; the final
// value of a cell comes from the last seed (in seed order) that reached it.
// WithRevisits disables the visited set and lets every queued occurrence of
// a cell go through assignment and the decay/stop draws again.
//
// Randomness
//
//	All draws come from an injected *rand.Rand (WithRand / WithSeed; the
//	default is a fixed seed). Each seed's fill uses its own stream derived
//	from that source and the seed's ordinal, so results do not depend on
//	WithWorkers.
//
// Concurrency
//
//	With WithWorkers(n > 1) fills run on n goroutines. Each fill records its
//	assignments privately; the calling goroutine replays them into Heights
//	in seed order. Heights is never written concurrently, and the result is
//	identical to the sequential run. A Heightmap is not safe for concurrent
//	mutation by multiple callers.
//
// Errors
//
//   - ErrInvalidDiagram   the diagram failed partition.Validate.
//   - ErrTooFewSites      fewer sites than seeds to auto-select.
//   - ErrSeedNotFound     an explicit seed point is not a site.
//   - ErrPlateVectorCount explicit plate vectors do not match the seed count.
//   - ErrCellIndex        a cell index outside [0, n).
//   - ErrOptionViolation  an Option received a meaningless value.
//
// Complexity (n cells, e adjacency entries, k seeds)
//
//   - New:       O(n + e + v) time and memory, v = total polygon vertices.
//   - Propagate: O(k·(n + e)) time worst case, O(n + e) memory per fill.
package heightmap
