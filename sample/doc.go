// Package sample produces blue-noise point sets for building cell diagrams.
//
// Poisson implements Bridson's algorithm: points inside a rectangle with no
// two closer than a given radius, grown outward from a random start until
// no active point can place a neighbor. A background grid with cell size
// radius/√2 holds at most one point per cell, so each candidate is checked
// against a 5×5 neighborhood.
//
// All randomness comes from the caller's *rand.Rand; equal seeds give equal
// point sets.
//
// Errors:
//   - ErrRadius   radius not finite and positive.
//   - ErrBounds   empty or degenerate rectangle.
//   - ErrOption   an Option received a meaningless value.
//
// Complexity: O(n·t) time for n points and t tries, O(area/radius²) memory.
package sample
