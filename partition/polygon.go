package partition

import (
	"math"

	"github.com/golang/geo/r2"

	"github.com/katalvlaran/tessera/point"
)

// Area returns the unsigned area of the polygon (shoelace formula).
func (pg Polygon) Area() float64 {
	return math.Abs(pg.signedArea())
}

func (pg Polygon) signedArea() float64 {
	n := len(pg)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += pg[i].Cross(pg[(i+1)%n])
	}
	return sum / 2
}

// Centroid returns the area centroid of the polygon. Degenerate polygons
// (fewer than three vertices or zero area) fall back to the vertex mean;
// an empty polygon yields the origin.
func (pg Polygon) Centroid() point.Point {
	n := len(pg)
	if n == 0 {
		return point.Point{}
	}

	a := pg.signedArea()
	if math.Abs(a) < point.Epsilon {
		var sum point.Point
		for _, v := range pg {
			sum = sum.Add(v)
		}
		return sum.Scale(1 / float64(n))
	}

	var cx, cy float64
	for i := 0; i < n; i++ {
		p, q := pg[i], pg[(i+1)%n]
		c := p.Cross(q)
		cx += (p.X + q.X) * c
		cy += (p.Y + q.Y) * c
	}
	return point.Pt(cx/(6*a), cy/(6*a))
}

// Bounds returns the axis-aligned bounding rectangle of the polygon.
func (pg Polygon) Bounds() r2.Rect {
	r := r2.EmptyRect()
	for _, v := range pg {
		r = r.AddPoint(v.R2())
	}
	return r
}
