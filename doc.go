// Package tessera generates terrain heightmaps over irregular cell
// partitions of the plane.
//
// The pipeline, leaves first:
//
//	point/      coordinates with tolerance-aware identity (Key)
//	sample/     Poisson-disc (blue-noise) site sampling
//	partition/  bounded Voronoi diagrams, Lloyd relaxation, validation
//	heightmap/  seed selection, plate vectors, randomized flood fill
//	builder/    small synthetic partitions (path, ring, grid)
//	config/     YAML run settings
//	cmd/tessera the generate command
//
// Quick example:
//
//	p, _ := partition.Relax(sites, bounds, 1)
//	h, _ := heightmap.New(p, heightmap.WithSeed(42))
//	h.Generate()
//	land := h.Islands(0.3)
//
// Every random draw comes from an injected *rand.Rand, so equal seeds give
// equal terrain regardless of how many workers run the fills.
package tessera
