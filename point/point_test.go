package point_test

import (
	"math"
	"sort"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tessera/point"
)

// TestKey_HashMatchesEquality covers the float-bits vs tolerance mismatch:
// 0.1+0.2 and 0.3 differ in their bit patterns but must share one map slot.
func TestKey_HashMatchesEquality(t *testing.T) {
	a := point.Pt(0.1+0.2, 1.0)
	b := point.Pt(0.3, 1.0)
	require.NotEqual(t, math.Float64bits(a.X), math.Float64bits(b.X))

	assert.True(t, a.ApproxEqual(b))
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Key(), b.Key())

	m := map[point.Key]int{a.Key(): 7}
	got, ok := m[b.Key()]
	require.True(t, ok, "b must find the slot stored under a")
	assert.Equal(t, 7, got)
}

func TestKey_DistinctPointsDiffer(t *testing.T) {
	a := point.Pt(1, 1)
	b := point.Pt(1, 1+1e-6)
	assert.False(t, a.ApproxEqual(b))
	assert.False(t, a.Equal(b))
	assert.NotEqual(t, a.Key(), b.Key())
}

func TestApproxCompare(t *testing.T) {
	origin := point.Pt(0, 0)
	tests := []struct {
		name string
		q    point.Point
		want int
	}{
		{"within epsilon", point.Pt(1e-11, -1e-11), 0},
		{"dx smaller than dy", point.Pt(1, 5), -1},
		{"dx larger than dy", point.Pt(5, 1), 1},
		{"dx equal dy", point.Pt(2, 2), 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, origin.ApproxCompare(tc.q))
		})
	}
}

func TestCompare_TotalOrder(t *testing.T) {
	pts := []point.Point{point.Pt(2, 1), point.Pt(1, 3), point.Pt(1, 2), point.Pt(0, 9)}
	sort.Slice(pts, func(i, j int) bool { return pts[i].Compare(pts[j]) < 0 })
	want := []point.Point{point.Pt(0, 9), point.Pt(1, 2), point.Pt(1, 3), point.Pt(2, 1)}
	assert.Equal(t, want, pts)
	assert.Equal(t, 0, point.Pt(0.1+0.2, 0).Compare(point.Pt(0.3, 0)))
}

func TestVectorHelpers(t *testing.T) {
	p, q := point.Pt(1, 2), point.Pt(4, 6)
	assert.Equal(t, point.Pt(5, 8), p.Add(q))
	assert.Equal(t, point.Pt(3, 4), q.Sub(p))
	assert.Equal(t, point.Pt(2, 4), p.Scale(2))
	assert.InDelta(t, -2.0, p.Cross(q), 1e-12)
	assert.InDelta(t, 25.0, p.Dist2(q), 1e-12)
}

func TestR2RoundTrip(t *testing.T) {
	p := point.Pt(3.5, -2)
	assert.Equal(t, r2.Point{X: 3.5, Y: -2}, p.R2())
	assert.Equal(t, p, point.FromR2(p.R2()))
}

// TestKey_LargeCoordinatesStayDistinct checks coordinates whose grid index
// exceeds the int64 range, up to the edge of float64.
func TestKey_LargeCoordinatesStayDistinct(t *testing.T) {
	tests := []struct {
		name string
		a, b point.Point
	}{
		{"1e9 vs 5e9", point.Pt(1e9, 0), point.Pt(5e9, 0)},
		{"negative", point.Pt(-2e9, 0), point.Pt(-3e9, 0)},
		{"y axis", point.Pt(0, 7e12), point.Pt(0, 7e12+1)},
		{"huge", point.Pt(1e300, 1), point.Pt(2e300, 1)},
		{"max", point.Pt(math.MaxFloat64, 0), point.Pt(-math.MaxFloat64, 0)},
		{"around snap limit", point.Pt(450359.5, 0), point.Pt(450360.5, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, tc.a.Equal(tc.b))
			assert.NotEqual(t, tc.a.Key(), tc.b.Key())
			assert.NotEqual(t, 0, tc.a.Compare(tc.b))
		})
	}

	// Equality still holds for the same large point.
	assert.True(t, point.Pt(4e9, 2e9).Equal(point.Pt(4e9, 2e9)))
	assert.Equal(t, -1, point.Pt(1e9, 0).Compare(point.Pt(5e9, 0)))
}

func TestFinite(t *testing.T) {
	assert.True(t, point.Pt(1e300, -1e300).Finite())
	assert.False(t, point.Pt(math.NaN(), 0).Finite())
	assert.False(t, point.Pt(0, math.Inf(-1)).Finite())

	nan := point.Pt(math.NaN(), 0)
	assert.False(t, nan.Equal(nan), "NaN keys never match")
}

func TestKey_SignedZero(t *testing.T) {
	m := map[point.Key]int{point.Pt(0, 0).Key(): 1}
	_, ok := m[point.Pt(math.Copysign(0, -1), 0).Key()]
	assert.True(t, ok)
}
