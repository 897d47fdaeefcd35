package point

import (
	"math"

	"github.com/golang/geo/r2"
)

// Epsilon is the tolerance of ApproxEqual and the pitch of the Key grid.
const Epsilon = 1e-10

// Point is a 2D coordinate.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Key is a Point snapped onto the Epsilon grid, in coordinate units. It is
// comparable and safe to use as a map key for finite points; a NaN axis
// never equals anything, itself included.
type Key struct {
	X, Y float64
}

// Pt is a shorthand constructor for Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// FromR2 converts an r2.Point.
func FromR2(p r2.Point) Point {
	return Point{X: p.X, Y: p.Y}
}

// R2 converts p to an r2.Point.
func (p Point) R2() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

// Key snaps p onto the Epsilon grid.
func (p Point) Key() Key {
	return Key{X: snap(p.X), Y: snap(p.Y)}
}

// snapLimit is the magnitude from which adjacent float64 values are already
// more than Epsilon apart, so snapping cannot merge anything.
const snapLimit = (1 << 52) * Epsilon

// snap moves v to the nearest multiple of Epsilon. The result is monotone in
// v and never overflows. Map equality on float64 treats -0 and +0 as one key.
func snap(v float64) float64 {
	if math.Abs(v) >= snapLimit {
		return v
	}
	return math.Round(v/Epsilon) * Epsilon
}

// Finite reports whether both axes are neither NaN nor infinite.
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Equal reports whether p and q snap to the same Key.
func (p Point) Equal(q Point) bool {
	return p.Key() == q.Key()
}

// ApproxEqual reports whether both axis deltas are below Epsilon.
func (p Point) ApproxEqual(q Point) bool {
	return math.Abs(p.X-q.X) < Epsilon && math.Abs(p.Y-q.Y) < Epsilon
}

// ApproxCompare returns 0 when p and q are ApproxEqual, -1 when |dx| < |dy|
// and +1 otherwise. The result depends only on the deltas, so it is neither
// antisymmetric nor transitive.
func (p Point) ApproxCompare(q Point) int {
	dx := math.Abs(p.X - q.X)
	dy := math.Abs(p.Y - q.Y)
	switch {
	case dx < Epsilon && dy < Epsilon:
		return 0
	case dx < dy:
		return -1
	default:
		return 1
	}
}

// Compare orders points lexicographically by Key (X first, then Y).
// It is a total order consistent with Equal over finite points.
func (p Point) Compare(q Point) int {
	return p.Key().Compare(q.Key())
}

// Compare orders keys lexicographically (X first, then Y).
func (k Key) Compare(o Key) int {
	switch {
	case k.X < o.X:
		return -1
	case k.X > o.X:
		return 1
	case k.Y < o.Y:
		return -1
	case k.Y > o.Y:
		return 1
	default:
		return 0
	}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns p * s.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Cross returns the z-component of the 3D cross product of p and q.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Dist2 returns the squared Euclidean distance from p to q.
func (p Point) Dist2(q Point) float64 {
	d := q.Sub(p)
	return d.X*d.X + d.Y*d.Y
}
