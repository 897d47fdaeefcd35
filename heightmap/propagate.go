package heightmap

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
)

// Flood fill parameters.
const (
	// StartHeight is the height assigned to a seed cell.
	StartHeight = 0.9
	// PHeight is the probability that an assignment decays the running height.
	PHeight = 0.75
	// MinDecay and MaxDecay bound the uniform decay step [MinDecay, MaxDecay).
	MinDecay = 0.01
	MaxDecay = 0.1
	// PStop is the per-assignment probability of ending expansion.
	PStop = 0.01
	// HeightFloor ends expansion once the running height drops below it.
	HeightFloor = 0.1
)

// Fill is the outcome of one seed's flood fill, in assignment order.
// Cells[i] received Heights[i]. Pops counts every queue pop, skipped
// duplicates included.
type Fill struct {
	Seed    int
	Cells   []int
	Heights []float64
	Pops    int
}

// Generate runs one full terrain pass: GeneratePlateVectors with the
// Heightmap's own source, then Propagate.
//
// Contracts:
//   - Supplied (non-zero) plate vectors are kept as they are.
//   - Heights is reset before the fills run; see Propagate.
//
// Errors: none. Every index was checked by New.
//
// Complexity: O(k) for the vectors plus the cost of Propagate.
func (h *Heightmap) Generate() {
	h.GeneratePlateVectors(h.rng)
	h.Propagate()
}

// Propagate zeroes Heights, runs one flood fill per seed and writes the
// results into Heights in seed order. A cell reached by several seeds ends
// with the height from the last of them; a cell reached by none stays 0.
//
// Contracts:
//   - Each call starts from a flat map, so repeated calls do not accumulate.
//     Every call consumes k draws from the Heightmap's source, so a second
//     call produces a different terrain unless the source is reset.
//   - Fill i draws only from stream i (see fillStreams). The result is the
//     same for any WithWorkers value.
//   - Heights is written only by the calling goroutine, after all fills
//     finished. The WithOnAssign hook runs on that goroutine too.
//
// Errors: none.
//
// Complexity:
//   - Time:   O(k·(n + e)) with the visited set; revisit mode is bounded by
//     the stop rule instead of n.
//   - Memory: O(n) visited flags per running fill plus the fill logs.
func (h *Heightmap) Propagate() {
	clear(h.Heights)

	k := len(h.seeds)
	if k == 0 {
		return
	}
	streams := fillStreams(h.rng, k)

	fills := make([]Fill, k)
	workers := min(h.opts.workers, k)
	if workers <= 1 {
		for i, s := range h.seeds {
			fills[i] = h.fill(s, streams[i])
		}
	} else {
		jobs := make(chan int)
		var wg sync.WaitGroup
		wg.Add(workers)
		for w := 0; w < workers; w++ {
			go func() {
				defer wg.Done()
				for i := range jobs {
					fills[i] = h.fill(h.seeds[i], streams[i])
				}
			}()
		}
		for i := range h.seeds {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
	}

	for i, f := range fills {
		h.apply(i, f)
	}
}

// FillFrom runs a single flood fill from cell and returns it without
// touching Heights or calling the WithOnAssign hook.
//
// Contracts:
//   - cell need not be a seed; any index in [0, n) works.
//   - rng is used directly, not split. A nil rng means newRand(0), so
//     FillFrom(c, nil) is reproducible.
//   - WithRevisits applies here as it does in Propagate.
//
// Errors: ErrCellIndex if cell is outside [0, n).
//
// Complexity: O(n + e) time and memory with the visited set.
func (h *Heightmap) FillFrom(cell int, rng *rand.Rand) (Fill, error) {
	if cell < 0 || cell >= len(h.CellNeighbors) {
		return Fill{}, fmt.Errorf("%w: %d (n=%d)", ErrCellIndex, cell, len(h.CellNeighbors))
	}
	if rng == nil {
		rng = newRand(0)
	}

	return h.fill(cell, rng), nil
}

func (h *Heightmap) apply(seed int, f Fill) {
	for i, c := range f.Cells {
		h.Heights[c] = f.Heights[i]
		h.opts.onAssign(seed, c, f.Heights[i])
	}
}

// fill is the FIFO expansion from one seed. It only reads shared state.
func (h *Heightmap) fill(seed int, rng *rand.Rand) Fill {
	nbrs := h.CellNeighbors
	f := Fill{Seed: seed}

	queue := make([]int, 0, 1+len(nbrs[seed]))
	queue = append(queue, seed)
	queue = append(queue, nbrs[seed]...)

	var visited []bool
	if !h.opts.revisits {
		visited = make([]bool, len(nbrs))
	}

	height := StartHeight
	stopped := false
	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]
		f.Pops++

		if visited != nil {
			if visited[cell] {
				continue
			}
			visited[cell] = true
		}

		f.Cells = append(f.Cells, cell)
		f.Heights = append(f.Heights, height)

		if rng.Float64() < PHeight {
			height = math.Max(0, height-uniform(rng, MinDecay, MaxDecay))
		}
		// Once stopped, cells already queued drain without adding frontier.
		if !stopped && (rng.Float64() < PStop || height < HeightFloor) {
			stopped = true
		}
		if !stopped {
			queue = append(queue, nbrs[cell]...)
		}
	}

	return f
}
