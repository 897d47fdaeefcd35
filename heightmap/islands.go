package heightmap

// Islands returns the connected groups of cells whose height is at least
// seaLevel, following CellNeighbors. Components are discovered in cell index
// order; each lists its cells in BFS order starting from its lowest index.
//
// Time:   O(n + e).
// Memory: O(n) for visited flags and output.
func (h *Heightmap) Islands(seaLevel float64) [][]int {
	n := len(h.Heights)
	seen := make([]bool, n)
	var comps [][]int

	for i0 := 0; i0 < n; i0++ {
		if seen[i0] || h.Heights[i0] < seaLevel {
			continue
		}
		queue := []int{i0}
		seen[i0] = true

		for qi := 0; qi < len(queue); qi++ {
			for _, v := range h.CellNeighbors[queue[qi]] {
				if !seen[v] && h.Heights[v] >= seaLevel {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
