package partition

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tessera/point"
)

func sq(x, y, side float64) Polygon {
	return Polygon{point.Pt(x, y), point.Pt(x+side, y), point.Pt(x+side, y+side), point.Pt(x, y+side)}
}

// TestLloydStep_ClampCollision covers two cells whose centroids clamp onto
// the same corner of the bounds. The second one must not land on the first.
func TestLloydStep_ClampCollision(t *testing.T) {
	bounds := r2.RectFromPoints(r2.Point{}, r2.Point{X: 6, Y: 6})
	p := New(
		[]point.Point{point.Pt(0.5, 0.5), point.Pt(1, 1), point.Pt(2, 2), point.Pt(3, 3)},
		[]Polygon{
			sq(0, 0, 2),   // centroid (1, 1), inside
			sq(10, 10, 1), // clamps to (6, 6)
			sq(12, 12, 1), // clamps to (6, 6) as well
			{point.Pt(math.NaN(), 0), point.Pt(1, 0), point.Pt(1, 1)},
		},
		[][]int{{}, {}, {}, {}},
		nil,
	)

	next := lloydStep(p, bounds)
	require.Len(t, next, 4)
	assert.Equal(t, point.Pt(1, 1), next[0])
	assert.Equal(t, point.Pt(6, 6), next[1])
	assert.Equal(t, point.Pt(4, 4), next[2], "midpoint of old site and taken target")
	assert.Equal(t, point.Pt(3, 3), next[3], "non-finite centroid keeps the old site")

	seen := map[point.Key]bool{}
	for i, s := range next {
		assert.False(t, seen[s.Key()], "site %d duplicated", i)
		seen[s.Key()] = true
	}
}

// TestLloydStep_FallsBackToOldSite covers a target and midpoint that are
// both taken: the site stays put.
func TestLloydStep_FallsBackToOldSite(t *testing.T) {
	bounds := r2.RectFromPoints(r2.Point{}, r2.Point{X: 6, Y: 6})
	p := New(
		[]point.Point{point.Pt(5, 5), point.Pt(4, 4), point.Pt(2, 2)},
		[]Polygon{sq(10, 10, 1), sq(3.5, 3.5, 1), sq(20, 20, 1)},
		[][]int{{}, {}, {}},
		nil,
	)

	next := lloydStep(p, bounds)
	// Cell 2 targets (6, 6) (taken by cell 0) then (4, 4) (taken by cell 1).
	assert.Equal(t, []point.Point{point.Pt(6, 6), point.Pt(4, 4), point.Pt(2, 2)}, next)
}
