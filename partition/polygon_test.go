package partition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/tessera/partition"
	"github.com/katalvlaran/tessera/point"
)

func TestPolygon_AreaAndCentroid(t *testing.T) {
	tests := []struct {
		name     string
		pg       partition.Polygon
		area     float64
		centroid point.Point
	}{
		{"unit square ccw", square(0, 0), 1, point.Pt(0.5, 0.5)},
		{
			"rectangle cw",
			partition.Polygon{point.Pt(0, 0), point.Pt(0, 2), point.Pt(4, 2), point.Pt(4, 0)},
			8, point.Pt(2, 1),
		},
		{
			"right triangle",
			partition.Polygon{point.Pt(0, 0), point.Pt(3, 0), point.Pt(0, 3)},
			4.5, point.Pt(1, 1),
		},
		{"segment", partition.Polygon{point.Pt(0, 0), point.Pt(2, 2)}, 0, point.Pt(1, 1)},
		{"empty", nil, 0, point.Pt(0, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.area, tc.pg.Area(), 1e-9)
			c := tc.pg.Centroid()
			assert.InDelta(t, tc.centroid.X, c.X, 1e-9)
			assert.InDelta(t, tc.centroid.Y, c.Y, 1e-9)
		})
	}
}

func TestPolygon_Bounds(t *testing.T) {
	b := partition.Polygon{point.Pt(1, 5), point.Pt(-2, 3), point.Pt(4, -1)}.Bounds()
	assert.Equal(t, -2.0, b.X.Lo)
	assert.Equal(t, 4.0, b.X.Hi)
	assert.Equal(t, -1.0, b.Y.Lo)
	assert.Equal(t, 5.0, b.Y.Hi)

	assert.True(t, partition.Polygon(nil).Bounds().IsEmpty())
}
