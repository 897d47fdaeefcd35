// Package point defines the 2D coordinate used as site, polygon vertex and
// seed position throughout tessera.
//
// What
//
//   - Point{X, Y} with approximate equality (ApproxEqual) inside Epsilon.
//   - ApproxCompare, the coarse ordering used when placing sites: two points
//     inside Epsilon compare equal, otherwise the one whose |dx| is smaller
//     than |dy| sorts first. It is NOT a total order; do not hand it to sort.
//   - Key, a snapped copy of the point on an Epsilon-pitch grid. Key is the
//     only map key type for points: Equal and Compare are defined on Key, so
//     hashing and equality always agree.
//
// Why Key
//
//	Hashing raw float bits while comparing within a tolerance breaks the
//	map contract: two "equal" points land in different buckets. Snapping
//	first removes the mismatch. Points that straddle a grid line can still
//	snap apart even though ApproxEqual holds; callers that need tolerance
//	matching use ApproxEqual explicitly.
//
//	Keys hold snapped coordinates as float64, not integer grid indices, so
//	no coordinate range saturates: beyond about 4.5e5 adjacent floats are
//	already more than Epsilon apart and the coordinate is its own key.
//	Non-finite points have no usable Key; check Finite before inserting
//	into a map.
//
// Complexity
//
//   - Every operation is O(1) time and allocation-free.
package point
