package partition

import "errors"

// Sentinel errors for partition construction and validation.
var (
	// ErrEmpty indicates a diagram without cells.
	ErrEmpty = errors.New("partition: diagram has no cells")

	// ErrLengthMismatch indicates sites, cells and neighbor lists differ in length.
	ErrLengthMismatch = errors.New("partition: sites, cells and neighbors differ in length")

	// ErrNeighborIndex indicates a neighbor index outside [0, n).
	ErrNeighborIndex = errors.New("partition: neighbor index out of range")

	// ErrSelfNeighbor indicates a cell listed as its own neighbor.
	ErrSelfNeighbor = errors.New("partition: cell is its own neighbor")

	// ErrAsymmetric indicates a one-way adjacency entry.
	ErrAsymmetric = errors.New("partition: adjacency is not symmetric")

	// ErrNonFiniteSite indicates a site with a NaN or infinite coordinate.
	ErrNonFiniteSite = errors.New("partition: site coordinate is not finite")

	// ErrDuplicateSite indicates two input sites sharing one point.Key.
	ErrDuplicateSite = errors.New("partition: duplicate site")

	// ErrSiteOutOfBounds indicates an input site outside the bounding rectangle.
	ErrSiteOutOfBounds = errors.New("partition: site outside bounds")

	// ErrMissingCell indicates the diagram builder dropped a site.
	ErrMissingCell = errors.New("partition: no cell produced for site")
)
