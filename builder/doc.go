// Package builder lays out small synthetic partitions with known topology:
// a single isolated cell, a path, a ring and an orthogonal grid.
//
// They stand in for a real Voronoi diagram wherever a test, benchmark or
// example needs an adjacency graph whose shape is known in advance:
//
//   - Single():          one unit cell, no neighbors.
//   - Path(n):           n cells in a row, cell i adjacent to i-1 and i+1.
//   - Ring(n):           n wedge cells around a hub, cell i adjacent to i±1 mod n.
//   - Grid(cols, rows):  row-major square cells with 4-neighborhood.
//
// Every constructor returns a *partition.Partition that passes
// partition.Validate. Sites and polygons are derived from the resolved
// builderConfig (spacing and origin), so identical inputs always yield
// identical partitions.
//
// Options (BuilderOption) panic on meaningless values; constructors never
// panic and report bad sizes through ErrTooFewCells.
package builder
