package heightmap

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the distribution of Heights.
type Summary struct {
	Cells  int     `json:"cells" yaml:"cells"`
	Raised int     `json:"raised" yaml:"raised"` // cells with a non-zero height
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
	Mean   float64 `json:"mean" yaml:"mean"`
	StdDev float64 `json:"std_dev" yaml:"std_dev"`
}

// Summary computes statistics over Heights: population mean and standard
// deviation, extremes and the count of non-zero cells. An empty heightmap
// yields the zero Summary.
//
// Complexity: O(n) time, O(1) extra memory.
func (h *Heightmap) Summary() Summary {
	if len(h.Heights) == 0 {
		return Summary{}
	}

	mean, std := stat.PopMeanStdDev(h.Heights, nil)
	return Summary{
		Cells:  len(h.Heights),
		Raised: floats.Count(func(v float64) bool { return v != 0 }, h.Heights),
		Min:    floats.Min(h.Heights),
		Max:    floats.Max(h.Heights),
		Mean:   mean,
		StdDev: std,
	}
}
