package heightmap_test

import (
	"fmt"

	"github.com/katalvlaran/tessera/builder"
	"github.com/katalvlaran/tessera/heightmap"
	"github.com/katalvlaran/tessera/point"
)

// ExampleHeightmap_Propagate raises a single isolated cell.
func ExampleHeightmap_Propagate() {
	h, err := heightmap.New(builder.MustBuild(builder.Single()), heightmap.WithSeedCount(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	h.Propagate()
	fmt.Println(h.Heights)
	// Output: [0.9]
}

// ExampleNew shows explicit seeds being resolved to cell indices.
func ExampleNew() {
	h, err := heightmap.New(builder.MustBuild(builder.Grid(3, 3)),
		heightmap.WithSeedPoints([]point.Point{point.Pt(2.5, 0.5), point.Pt(0.5, 2.5)}),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cells:", h.Len())
	fmt.Println("seeds:", h.SeedIndices())
	fmt.Println("vectors:", len(h.PlateVectors))

	_, err = heightmap.New(builder.MustBuild(builder.Path(3)))
	fmt.Println(err)
	// Output:
	// cells: 9
	// seeds: [2 6]
	// vectors: 2
	// heightmap: too few sites for seed selection: 3 sites, 5 seeds
}

// ExampleHeightmap_Islands groups raised cells of a path.
func ExampleHeightmap_Islands() {
	h, _ := heightmap.New(builder.MustBuild(builder.Path(6)), heightmap.WithSeedCount(1))
	copy(h.Heights, []float64{0.8, 0.7, 0.05, 0.4, 0.3, 0})
	fmt.Println(h.Islands(0.2))
	// Output: [[0 1] [3 4]]
}
