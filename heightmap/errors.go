package heightmap

import "errors"

// Sentinel errors for heightmap construction and queries.
var (
	// ErrInvalidDiagram indicates the diagram failed structural validation.
	// The partition sentinel describing the violation is wrapped as well.
	ErrInvalidDiagram = errors.New("heightmap: invalid diagram")

	// ErrTooFewSites indicates auto seed selection over too few sites.
	ErrTooFewSites = errors.New("heightmap: too few sites for seed selection")

	// ErrSeedNotFound indicates an explicit seed point that is not a site.
	ErrSeedNotFound = errors.New("heightmap: seed point is not a site")

	// ErrPlateVectorCount indicates explicit plate vectors whose count differs
	// from the number of seeds.
	ErrPlateVectorCount = errors.New("heightmap: plate vector count does not match seed count")

	// ErrCellIndex indicates a cell index outside [0, n).
	ErrCellIndex = errors.New("heightmap: cell index out of range")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("heightmap: invalid option supplied")
)
