// Package partition adapts a Voronoi (or centroidal) cell diagram into the
// index-aligned form consumed by heightmap: one site, one polygon and one
// neighbor list per cell, plus the diagram's triangulation handle passed
// through untouched.
//
// What
//
//   - Diagram: the read-only contract a diagram builder satisfies.
//   - Partition: the concrete, copied representation. FromDiagram copies any
//     Diagram without altering topology or validating it.
//   - Validate: the hardened checks (lengths, finite sites, index bounds,
//     self-adjacency, symmetry) that a caller opts into before trusting a
//     foreign diagram.
//   - Build: bounded Voronoi construction from scattered sites using
//     github.com/pzsz/voronoi, re-aligned to input order.
//   - Relax: Lloyd relaxation, yielding the centroidal flavor of the diagram.
//
// Index invariant
//
//	Sites()[i], Cells()[i] and Neighbors()[i] always describe the same cell.
//	A cell's index is its identity for the lifetime of the partition.
//
// Errors
//
//   - ErrEmpty           the diagram has no cells.
//   - ErrLengthMismatch  sites, cells and neighbor lists differ in length.
//   - ErrNeighborIndex   a neighbor index is outside [0, n).
//   - ErrSelfNeighbor    a cell lists itself as a neighbor.
//   - ErrAsymmetric      j is a neighbor of i but i is not a neighbor of j.
//   - ErrNonFiniteSite   a site has a NaN or infinite coordinate.
//   - ErrDuplicateSite   two input sites snap to the same point.Key.
//   - ErrSiteOutOfBounds an input site lies outside the bounding rectangle.
//   - ErrMissingCell     the diagram builder produced no cell for a site.
//
// Complexity
//
//   - FromDiagram, Validate: O(n + e) time and memory, e = adjacency entries.
//   - Build: O(n log n) for the sweep plus O(n + e) for re-alignment.
//   - Relax: iterations × Build.
package partition
